package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestWrapDegrees(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{180, -180},
		{-180, -180},
		{190, -170},
		{360, 0},
		{-370, -10},
		{725, 5},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, WrapDegrees(c.in), 1e-9, "WrapDegrees(%v)", c.in)
	}
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	assert.InDelta(t, 0, LerpAngle(350, 10, 0.5), 1e-9)
	assert.InDelta(t, 0, LerpAngle(10, 350, 0.5), 1e-9)
	assert.InDelta(t, -175, LerpAngle(170, -160, 0.5), 1e-9)
	assert.InDelta(t, 45, LerpAngle(0, 90, 0.5), 1e-9)
}

func TestLerpAngleEndpointsExact(t *testing.T) {
	assert.Equal(t, 350.0, LerpAngle(350, 10, 0))
	assert.Equal(t, 10.0, LerpAngle(350, 10, 1))
}

func TestLerpEndpointsExact(t *testing.T) {
	a, b := 0.1, 0.3
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.InDelta(t, 0.5, Lerp(0, 1, 0.5), 1e-12)
	assert.InDelta(t, 15, Lerp(0, 10, 1.5), 1e-12)
}

func TestSlerpQuatShortestPath(t *testing.T) {
	a := mgl64.QuatIdent()
	b := mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0})
	// -b is the same rotation; the blend must not swing through 270 degrees.
	mid := SlerpQuat(a, b.Scale(-1), 0.5)
	want := mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 1, 0})
	assert.True(t, mid.OrientationEqualThreshold(want, 1e-9), "got %v want %v", mid, want)
}

func TestMoveDirection(t *testing.T) {
	x, y := MoveDirection(1, 0, 0)
	assert.InDelta(t, 1, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	x, y = MoveDirection(1, 1, 0)
	assert.InDelta(t, 1, math.Hypot(x, y), 1e-9)

	x, y = MoveDirection(0, 0, 90)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

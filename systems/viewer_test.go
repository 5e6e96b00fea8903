package systems

import (
	"testing"

	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func press(entry *donburi.Entry, actions ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, a := range actions {
		current[a] = true
	}
	ApplyInput(components.Input.Get(entry), current)
}

func TestStepViewerMovesForward(t *testing.T) {
	_, viewer := newTestWorld(t)
	obj := components.Object.Get(viewer).Object
	startX, startY := obj.X, obj.Y

	press(viewer, cfg.ActionMoveForward)
	StepViewer(viewer)

	assert.InDelta(t, startX+cfg.Viewer.Acceleration, obj.X, 1e-9)
	assert.InDelta(t, startY, obj.Y, 1e-9)
	assert.InDelta(t, cfg.Viewer.Acceleration, components.Viewer.Get(viewer).Travelled, 1e-9)
}

func TestStepViewerStopsAtWall(t *testing.T) {
	_, viewer := newTestWorld(t)
	obj := components.Object.Get(viewer).Object
	wallEdge := float64(cfg.Arena.Width) - cfg.Arena.WallThickness

	for i := 0; i < 400; i++ {
		press(viewer, cfg.ActionMoveForward)
		StepViewer(viewer)
	}
	assert.LessOrEqual(t, obj.X+obj.W, wallEdge+1e-9)
	assert.Greater(t, obj.X+obj.W, wallEdge-cfg.Viewer.MaxSpeed)
}

func TestStepViewerTurnWraps(t *testing.T) {
	_, viewer := newTestWorld(t)
	v := components.Viewer.Get(viewer)
	v.Yaw = 175

	press(viewer, cfg.ActionTurnLeft)
	StepViewer(viewer)

	assert.InDelta(t, 175+cfg.Viewer.TurnSpeed-360, v.Yaw, 1e-9)
	assert.Equal(t, 175.0, v.LastYaw)
}

func TestStepViewerPitchClamped(t *testing.T) {
	_, viewer := newTestWorld(t)
	v := components.Viewer.Get(viewer)

	for i := 0; i < 100; i++ {
		press(viewer, cfg.ActionLookUp)
		StepViewer(viewer)
	}
	assert.Equal(t, cfg.Viewer.MaxPitch, v.Pitch)
}

func TestWeaponSwitchAndFire(t *testing.T) {
	_, viewer := newTestWorld(t)
	v := components.Viewer.Get(viewer)
	recoil := components.Recoil.Get(viewer)

	press(viewer, cfg.ActionSwitchWeapon)
	StepViewer(viewer)
	assert.Equal(t, 1, v.WeaponIndex)
	assert.Equal(t, components.AnimReady, v.Animation)

	// Fire is ignored while readying.
	press(viewer, cfg.ActionFire)
	StepViewer(viewer)
	assert.Equal(t, components.AnimReady, v.Animation)
	assert.Nil(t, recoil.Kick)

	for i := 0; i < readyTicks; i++ {
		press(viewer)
		StepViewer(viewer)
	}
	assert.Equal(t, components.AnimIdle, v.Animation)

	press(viewer, cfg.ActionFire)
	StepViewer(viewer)
	assert.Equal(t, components.AnimFire, v.Animation)
	require.NotNil(t, recoil.Kick)
	assert.Equal(t, 1.0, recoil.Offset)
}

func TestWeaponSwitchWrapsAround(t *testing.T) {
	_, viewer := newTestWorld(t)
	v := components.Viewer.Get(viewer)

	for i := 0; i < cfg.Viewer.WeaponCount; i++ {
		press(viewer)
		StepViewer(viewer)
		press(viewer, cfg.ActionSwitchWeapon)
		StepViewer(viewer)
	}
	assert.Equal(t, 0, v.WeaponIndex)
}

func TestStepRecoilDecays(t *testing.T) {
	var r components.RecoilData
	startRecoil(&r)

	StepRecoil(&r, cfg.Viewer.RecoilDuration/2)
	assert.Greater(t, r.Offset, 0.0)
	assert.Less(t, r.Offset, 1.0)
	require.NotNil(t, r.Kick)

	StepRecoil(&r, cfg.Viewer.RecoilDuration)
	assert.Nil(t, r.Kick)
	assert.Equal(t, 0.0, r.Offset)
}

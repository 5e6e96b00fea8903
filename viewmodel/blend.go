package viewmodel

import (
	"fmt"

	"github.com/automoto/fpinterp/shared/gamemath"
)

// AngleMode selects how orientation fields are blended.
type AngleMode int

const (
	// AngleShortest blends along the shorter arc, so 350 -> 10 passes 0.
	AngleShortest AngleMode = iota
	// AngleLinear blends the raw numbers, so 350 -> 10 passes 180.
	AngleLinear
)

func (m AngleMode) String() string {
	switch m {
	case AngleShortest:
		return "shortest"
	case AngleLinear:
		return "linear"
	}
	return fmt.Sprintf("AngleMode(%d)", int(m))
}

// ParseAngleMode accepts the names produced by String.
func ParseAngleMode(s string) (AngleMode, error) {
	switch s {
	case "shortest", "":
		return AngleShortest, nil
	case "linear":
		return AngleLinear, nil
	}
	return AngleShortest, fmt.Errorf("unknown angle mode %q", s)
}

func (m AngleMode) lerp(a, b, t float64) float64 {
	if m == AngleLinear {
		return gamemath.Lerp(a, b, t)
	}
	return gamemath.LerpAngle(a, b, t)
}

// Blend writes the blend of prev and cur at alpha into dst. Positional
// fields and scale are blended linearly, orientation angles per mode, node
// rotations by shortest-path slerp. Discrete fields always come from cur.
// alpha 0 reproduces prev and alpha 1 reproduces cur exactly; values above 1
// extrapolate.
func Blend(dst, prev, cur *Snapshot, alpha float64, mode AngleMode) {
	switch alpha {
	case 0:
		*dst = *prev
		return
	case 1:
		*dst = *cur
		return
	}

	dst.NodeCount = cur.NodeCount
	dst.WeaponID = cur.WeaponID
	dst.AnimationID = cur.AnimationID
	dst.AnimationFrame = gamemath.Lerp(prev.AnimationFrame, cur.AnimationFrame, alpha)
	dst.CameraOffset = gamemath.LerpVec3(prev.CameraOffset, cur.CameraOffset, alpha)
	dst.Yaw = mode.lerp(prev.Yaw, cur.Yaw, alpha)
	dst.Pitch = mode.lerp(prev.Pitch, cur.Pitch, alpha)
	dst.Roll = mode.lerp(prev.Roll, cur.Roll, alpha)

	n := len(cur.ActiveNodes())
	for i := 0; i < n; i++ {
		p, c := &prev.Nodes[i], &cur.Nodes[i]
		dst.Nodes[i] = Node{
			Rotation: gamemath.SlerpQuat(p.Rotation, c.Rotation, alpha),
			Position: gamemath.LerpVec3(p.Position, c.Position, alpha),
			Scale:    gamemath.Lerp(p.Scale, c.Scale, alpha),
		}
	}
	// Inactive tail mirrors cur so dst stays a faithful record.
	copy(dst.Nodes[n:], cur.Nodes[n:])
}

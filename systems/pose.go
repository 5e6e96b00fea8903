package systems

import (
	"math"

	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/shared/gamemath"
	"github.com/automoto/fpinterp/tags"
	"github.com/automoto/fpinterp/viewmodel"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Weapon rest position in view space: +X right, +Y down, +Z forward.
var weaponRest = mgl64.Vec3{40, 30, 60}

// UpdatePose writes each viewer's weapon pose into its FirstPerson
// component. It runs once per tick, after movement and recoil.
func UpdatePose(e *ecs.ECS) {
	tags.Viewer.Each(e.World, func(entry *donburi.Entry) {
		v := components.Viewer.Get(entry)
		phys := components.Physics.Get(entry)
		recoil := components.Recoil.Get(entry)

		speed := math.Hypot(phys.SpeedX, phys.SpeedY)
		v.BobPhase = v.Travelled * cfg.Viewer.BobFrequency
		v.Breath += cfg.Viewer.IdleBreathRate
		target := -gamemath.AngleDelta(v.LastYaw, v.Yaw) * cfg.Viewer.SwayPerDegree
		v.Sway += (target - v.Sway) * 0.3

		BuildPose(v, speed, recoil.Offset, &components.FirstPerson.Get(entry).View)
	})
}

// BuildPose derives the first-person snapshot from the viewer state. speed
// scales the walking bob and recoil (0..1) kicks the model back and up.
func BuildPose(v *components.ViewerData, speed, recoil float64, dst *viewmodel.Snapshot) {
	n := gamemath.Clamp(float64(cfg.Viewer.NodeCount), 1, viewmodel.MaxNodes)
	count := int(n)

	moving := 0.0
	if cfg.Viewer.MaxSpeed > 0 {
		moving = gamemath.Clamp(speed/cfg.Viewer.MaxSpeed, 0, 1)
	}
	bobX := math.Sin(v.BobPhase) * cfg.Viewer.BobAmplitude * moving
	bobY := math.Abs(math.Cos(v.BobPhase)) * cfg.Viewer.BobAmplitude * moving
	breath := math.Sin(v.Breath) * 1.5

	lower := 0.0
	if v.Animation == components.AnimReady {
		lower = (1 - gamemath.Clamp(v.AnimFrame/readyTicks, 0, 1)) * 60
	}

	dst.NodeCount = uint16(count)
	dst.WeaponID = uint32(v.WeaponIndex)
	dst.AnimationID = v.Animation
	dst.AnimationFrame = v.AnimFrame
	dst.Yaw = v.Yaw
	dst.Pitch = v.Pitch
	dst.Roll = v.Sway * 0.5
	dst.CameraOffset = mgl64.Vec3{0, -cfg.Viewer.EyeHeight + bobY*0.25, 0}

	base := weaponRest.Add(mgl64.Vec3{
		bobX + v.Sway,
		bobY + breath + lower,
		-recoil * cfg.Viewer.RecoilKick,
	})
	rot := mgl64.AnglesToQuat(
		mgl64.DegToRad(-recoil*cfg.Viewer.RecoilPitch),
		mgl64.DegToRad(v.Sway),
		0,
		mgl64.XYZ,
	)
	segment := 10 + 4*float64(v.WeaponIndex)

	// Nodes run from the grip forward along the barrel.
	for i := 0; i < count; i++ {
		dst.Nodes[i] = viewmodel.Node{
			Rotation: rot,
			Position: base.Add(rot.Rotate(mgl64.Vec3{0, 0, float64(i) * segment})),
			Scale:    math.Max(0.2, 1-float64(i)*0.08),
		}
	}
	clear(dst.Nodes[count:])
}

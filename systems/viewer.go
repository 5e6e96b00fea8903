package systems

import (
	"math"

	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/shared/gamemath"
	"github.com/automoto/fpinterp/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Weapon animation lengths in ticks
const (
	readyTicks = 8
	fireTicks  = 3
)

// UpdateViewer advances every viewer by one tick from its input.
func UpdateViewer(e *ecs.ECS) {
	tags.Viewer.Each(e.World, StepViewer)
}

// StepViewer applies one tick of input to a viewer entry.
func StepViewer(entry *donburi.Entry) {
	in := components.Input.Get(entry)
	v := components.Viewer.Get(entry)
	phys := components.Physics.Get(entry)

	// --- Look ---
	v.LastYaw = v.Yaw
	v.Yaw = gamemath.WrapDegrees(v.Yaw + in.Axis(cfg.ActionTurnRight, cfg.ActionTurnLeft)*cfg.Viewer.TurnSpeed)
	v.Pitch = gamemath.Clamp(
		v.Pitch+in.Axis(cfg.ActionLookDown, cfg.ActionLookUp)*cfg.Viewer.LookSpeed,
		-cfg.Viewer.MaxPitch, cfg.Viewer.MaxPitch)

	// --- Move ---
	dirX, dirY := gamemath.MoveDirection(
		in.Axis(cfg.ActionMoveBack, cfg.ActionMoveForward),
		in.Axis(cfg.ActionStrafeLeft, cfg.ActionStrafeRight),
		v.Yaw)
	if dirX == 0 {
		phys.SpeedX = gamemath.ApplyFriction(phys.SpeedX, cfg.Viewer.Friction)
	}
	if dirY == 0 {
		phys.SpeedY = gamemath.ApplyFriction(phys.SpeedY, cfg.Viewer.Friction)
	}
	phys.SpeedX = gamemath.ClampSpeed(phys.SpeedX+dirX*cfg.Viewer.Acceleration, cfg.Viewer.MaxSpeed)
	phys.SpeedY = gamemath.ClampSpeed(phys.SpeedY+dirY*cfg.Viewer.Acceleration, cfg.Viewer.MaxSpeed)

	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry).Object; obj != nil {
			moveViewer(obj, phys)
		}
	}
	v.Travelled += math.Hypot(phys.SpeedX, phys.SpeedY)

	// --- Weapon ---
	v.AnimFrame++
	switch {
	case in.JustPressed(cfg.ActionSwitchWeapon):
		v.WeaponIndex = (v.WeaponIndex + 1) % max(1, cfg.Viewer.WeaponCount)
		startAnimation(v, components.AnimReady)
		components.Recoil.Get(entry).Kick = nil
	case in.JustPressed(cfg.ActionFire) && v.Animation != components.AnimReady:
		startAnimation(v, components.AnimFire)
		startRecoil(components.Recoil.Get(entry))
	case v.Animation == components.AnimReady && v.AnimFrame >= readyTicks,
		v.Animation == components.AnimFire && v.AnimFrame >= fireTicks:
		startAnimation(v, components.AnimIdle)
	}
}

func startAnimation(v *components.ViewerData, anim int32) {
	v.Animation = anim
	v.AnimFrame = 0
}

// moveViewer moves obj by its speed, stopping flush against solid walls.
func moveViewer(obj *resolv.Object, phys *components.PhysicsData) {
	if dx := phys.SpeedX; dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				phys.SpeedX = 0
			}
		}
		obj.X += dx
	}
	if dy := phys.SpeedY; dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
				phys.SpeedY = 0
			}
		}
		obj.Y += dy
	}
	obj.Update()
}

func startRecoil(r *components.RecoilData) {
	r.Kick = gween.New(1, 0, float32(cfg.Viewer.RecoilDuration), ease.OutQuad)
	r.Offset = 1
}

// UpdateRecoil plays out every active recoil kick by one tick.
func UpdateRecoil(e *ecs.ECS) {
	dt := 1 / float64(max(1, cfg.Interp.TickRate))
	components.Recoil.Each(e.World, func(entry *donburi.Entry) {
		StepRecoil(components.Recoil.Get(entry), dt)
	})
}

// StepRecoil advances r by dt seconds.
func StepRecoil(r *components.RecoilData, dt float64) {
	if r.Kick == nil {
		r.Offset = 0
		return
	}
	val, done := r.Kick.Update(float32(dt))
	r.Offset = float64(val)
	if done {
		r.Kick = nil
		r.Offset = 0
	}
}

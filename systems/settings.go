package systems

import (
	"log"

	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/tags"
	"github.com/automoto/fpinterp/viewmodel"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickRateStep = 5

// UpdateInterpSettings applies the interpolation toggles and the respawn
// action from the viewer's input.
func UpdateInterpSettings(e *ecs.ECS) {
	entry, ok := tags.Viewer.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)

	if ToggleInterpSettings(in) {
		ApplyInterpOptions(e.World, cfg.Interp.Options())
		SaveCurrentSettings()
		log.Printf("[interp] enabled=%t max_alpha=%.2f angles=%s tps=%d",
			cfg.Interp.Enabled, cfg.Interp.MaxAlpha, cfg.Interp.AngleMode, cfg.Interp.TickRate)
	}
	if in.JustPressed(cfg.ActionRespawn) {
		RespawnViewers(e.World)
	}
}

// ToggleInterpSettings updates cfg.Interp from the toggle actions and
// reports whether anything changed.
func ToggleInterpSettings(in *components.InputData) bool {
	changed := false
	if in.JustPressed(cfg.ActionToggleInterp) {
		cfg.Interp.Enabled = !cfg.Interp.Enabled
		changed = true
	}
	if in.JustPressed(cfg.ActionToggleExtrapolate) {
		if cfg.Interp.Extrapolating() {
			cfg.Interp.MaxAlpha = 1
		} else {
			cfg.Interp.MaxAlpha = cfg.Interp.ExtrapolateAlpha
		}
		changed = true
	}
	if in.JustPressed(cfg.ActionToggleAngleMode) {
		mode, _ := viewmodel.ParseAngleMode(cfg.Interp.AngleMode)
		if mode == viewmodel.AngleShortest {
			cfg.Interp.AngleMode = viewmodel.AngleLinear.String()
		} else {
			cfg.Interp.AngleMode = viewmodel.AngleShortest.String()
		}
		changed = true
	}
	if in.JustPressed(cfg.ActionTickRateUp) {
		cfg.Interp.TickRate = cfg.Interp.ClampTickRate(cfg.Interp.TickRate + tickRateStep)
		changed = true
	}
	if in.JustPressed(cfg.ActionTickRateDown) {
		cfg.Interp.TickRate = cfg.Interp.ClampTickRate(cfg.Interp.TickRate - tickRateStep)
		changed = true
	}
	return changed
}

// RespawnViewers puts every viewer back at the spawn point and starts its
// interpolation over, as a level restart would.
func RespawnViewers(w donburi.World) {
	tags.Viewer.Each(w, func(entry *donburi.Entry) {
		size := cfg.Viewer.CollisionSize
		if obj := components.Object.Get(entry).Object; obj != nil {
			obj.X = cfg.Arena.SpawnX - size/2
			obj.Y = cfg.Arena.SpawnY - size/2
			obj.Update()
		}
		*components.Physics.Get(entry) = components.PhysicsData{}
		*components.Recoil.Get(entry) = components.RecoilData{}
		components.Viewer.SetValue(entry, components.ViewerData{
			Animation: components.AnimReady,
		})
	})
	ResetViews(w)
}

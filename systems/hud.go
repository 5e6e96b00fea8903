package systems

import (
	"fmt"

	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/fonts"
	"github.com/automoto/fpinterp/interp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 13
)

// DrawHUD renders the interpolation status of the first view in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	entry, ok := components.FPInterp.First(ecs.World)
	if !ok {
		return
	}
	c := components.FPInterp.Get(entry).Controller

	face := fonts.Mono.Get()
	lines := HUDLines(c, ebiten.ActualTPS(), ebiten.ActualFPS())
	for i, line := range lines {
		clr := cfg.LightGreen
		if i == len(lines)-1 && c.Stats().Violations > 0 {
			clr = cfg.Red
		}
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1), clr)
	}
}

// HUDLines formats the controller status for display.
func HUDLines(c *interp.Controller, tps, fps float64) []string {
	opts := c.Options()
	stats := c.Stats()

	mode := "interpolate"
	if opts.MaxAlpha > 1 {
		mode = fmt.Sprintf("extrapolate <= %.1f", opts.MaxAlpha)
	}
	enabled := "on"
	if !opts.Enabled {
		enabled = "off"
	}

	return []string{
		fmt.Sprintf("TPS %5.1f (target %d)  FPS %5.1f", tps, cfg.Interp.TickRate, fps),
		fmt.Sprintf("[I] blend %s  [X] %s  [N] angles %s", enabled, mode, opts.AngleMode),
		fmt.Sprintf("alpha %.2f  ticks %d  state %s", stats.LastAlpha, c.Ticks(), c.State()),
		fmt.Sprintf("frames %d  blended %d  held %d", stats.Frames, stats.Blended, stats.Skipped),
		fmt.Sprintf("violations %d", stats.Violations),
	}
}

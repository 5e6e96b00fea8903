package systems

import (
	"image/color"
	"math"

	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/fonts"
	"github.com/automoto/fpinterp/shared/gamemath"
	"github.com/automoto/fpinterp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	focalLength    = 220.0
	compassSpan    = 60.0 // Degrees visible either side of the view direction
	compassY       = 24
	minimapSize    = 96
	minimapMargin  = 10
	pixelsPerPitch = 3.0
)

var compassLabels = []struct {
	deg   float64
	label string
}{
	{0, "E"}, {45, "NE"}, {90, "N"}, {135, "NW"},
	{180, "W"}, {-135, "SW"}, {-90, "S"}, {-45, "SE"},
}

// ProjectPoint maps a view-space point onto the screen around the centre
// (cx, cy) and returns the perspective scale used.
func ProjectPoint(p mgl64.Vec3, cx, cy float64) (x, y, scale float64) {
	scale = focalLength / math.Max(1, p.Z()+focalLength)
	return cx + p.X()*scale, cy + p.Y()*scale, scale
}

// DrawViewmodel renders each viewer's first-person state: horizon, compass
// and weapon model. It reads the FirstPerson component, so during a frame it
// shows the interpolated state.
func DrawViewmodel(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	cx, cy := w/2, h/2

	components.FirstPerson.Each(ecs.World, func(entry *donburi.Entry) {
		view := &components.FirstPerson.Get(entry).View

		// Horizon
		horizonY := cy - view.CameraOffset.Y()*0.2 + view.Pitch*pixelsPerPitch
		tilt := math.Tan(mgl64.DegToRad(view.Roll)) * cx
		vector.StrokeLine(screen, 0, float32(horizonY+tilt), float32(w), float32(horizonY-tilt), 1, cfg.Grey, false)

		drawCompass(screen, view.Yaw, cx)

		// Crosshair
		vector.StrokeLine(screen, float32(cx-6), float32(cy), float32(cx+6), float32(cy), 1, cfg.White, false)
		vector.StrokeLine(screen, float32(cx), float32(cy-6), float32(cx), float32(cy+6), 1, cfg.White, false)

		// Weapon
		clr := cfg.WeaponColors[int(view.WeaponID)%len(cfg.WeaponColors)]
		nodes := view.ActiveNodes()
		for i := 1; i < len(nodes); i++ {
			x0, y0, s0 := ProjectPoint(nodes[i-1].Position, cx, cy)
			x1, y1, _ := ProjectPoint(nodes[i].Position, cx, cy)
			width := float32(12 * nodes[i-1].Scale * s0)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
		}
		if len(nodes) > 0 {
			x, y, s := ProjectPoint(nodes[0].Position, cx, cy)
			vector.DrawFilledRect(screen, float32(x-8*s), float32(y), float32(16*s), float32(40*s), clr, false)
		}
	})
}

func drawCompass(screen *ebiten.Image, yaw, cx float64) {
	face := fonts.Small.Get()
	pxPerDeg := cx / compassSpan
	vector.StrokeLine(screen, float32(cx), compassY-8, float32(cx), compassY+4, 1, cfg.Yellow, false)
	for _, l := range compassLabels {
		// Yaw grows counter-clockwise, so headings to the left sit at positive deltas.
		d := gamemath.AngleDelta(yaw, l.deg)
		if math.Abs(d) > compassSpan {
			continue
		}
		x := cx - d*pxPerDeg
		vector.StrokeLine(screen, float32(x), compassY, float32(x), compassY+6, 1, cfg.White, false)
		text.Draw(screen, l.label, face, int(x)-len(l.label)*3, compassY+18, cfg.White)
	}
}

// DrawMinimap renders the arena from above with the viewer's true tick
// position and facing.
func DrawMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	ox := w - minimapSize - minimapMargin
	oy := float64(minimapMargin)
	scale := minimapSize / math.Max(float64(cfg.Arena.Width), float64(cfg.Arena.Height))

	vector.DrawFilledRect(screen, float32(ox), float32(oy), minimapSize, minimapSize, cfg.BlackOverlay, false)

	tags.Wall.Each(ecs.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(ox+o.X*scale), float32(oy+o.Y*scale),
			float32(math.Max(1, o.W*scale)), float32(math.Max(1, o.H*scale)),
			cfg.Grey, false)
	})

	tags.Viewer.Each(ecs.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		v := components.Viewer.Get(entry)
		px := ox + (o.X+o.W/2)*scale
		py := oy + (o.Y+o.H/2)*scale
		dx, dy := gamemath.MoveDirection(1, 0, v.Yaw)
		vector.DrawFilledRect(screen, float32(px-2), float32(py-2), 4, 4, cfg.BrightGreen, false)
		vector.StrokeLine(screen, float32(px), float32(py), float32(px+dx*8), float32(py+dy*8), 1, cfg.BrightGreen, false)
	})
}

// clearColor is the scene background
var clearColor = color.RGBA{R: 16, G: 18, B: 24, A: 255}

// DrawBackground clears the frame.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(clearColor)
}

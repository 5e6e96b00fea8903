package systems

import (
	"testing"

	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/interp"
	"github.com/automoto/fpinterp/systems/factory"
	"github.com/automoto/fpinterp/viewmodel"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e)
	viewer := factory.CreateViewer(e, cfg.Arena.SpawnX, cfg.Arena.SpawnY)
	return e, viewer
}

func view(entry *donburi.Entry) *viewmodel.Snapshot {
	return &components.FirstPerson.Get(entry).View
}

func controller(entry *donburi.Entry) *interp.Controller {
	return components.FPInterp.Get(entry).Controller
}

// setView stands in for the pose system writing a tick.
func setView(entry *donburi.Entry, x, yaw float64) {
	v := view(entry)
	v.NodeCount = 1
	v.CameraOffset = mgl64.Vec3{x, 0, 0}
	v.Yaw = yaw
	v.Nodes[0] = viewmodel.Node{Rotation: mgl64.QuatIdent(), Position: mgl64.Vec3{x, 0, 0}, Scale: 1}
}

func TestDrawInterpolatedBlendsAndRestores(t *testing.T) {
	e, viewer := newTestWorld(t)

	setView(viewer, 0, 170)
	require.NoError(t, TickViews(e.World))
	setView(viewer, 10, -170)
	require.NoError(t, TickViews(e.World))

	var drawn viewmodel.Snapshot
	err := DrawInterpolated(e.World, 0.5, func() {
		drawn = *view(viewer)
	})
	require.NoError(t, err)

	assert.InDelta(t, 5, drawn.CameraOffset.X(), 1e-9)
	assert.InDelta(t, -180, drawn.Yaw, 1e-9, "blends across the wrap")
	assert.Equal(t, 10.0, view(viewer).CameraOffset.X(), "true state restored after the frame")
	assert.Equal(t, -170.0, view(viewer).Yaw)
	assert.Equal(t, interp.Idle, controller(viewer).State())
}

func TestDrawInterpolatedRestoresOnPanic(t *testing.T) {
	e, viewer := newTestWorld(t)

	setView(viewer, 0, 0)
	require.NoError(t, TickViews(e.World))
	setView(viewer, 10, 0)
	require.NoError(t, TickViews(e.World))

	assert.Panics(t, func() {
		_ = DrawInterpolated(e.World, 0.25, func() {
			panic("draw failed")
		})
	})
	assert.Equal(t, 10.0, view(viewer).CameraOffset.X())
	assert.Equal(t, interp.Idle, controller(viewer).State())
}

func TestDrawInterpolatedBeforeFirstTick(t *testing.T) {
	e, viewer := newTestWorld(t)
	setView(viewer, 3, 0)

	var drawn float64
	require.NoError(t, DrawInterpolated(e.World, 0.5, func() {
		drawn = view(viewer).CameraOffset.X()
	}))
	assert.Equal(t, 3.0, drawn, "nothing captured yet, so the live state is drawn as is")
	assert.Equal(t, uint64(1), controller(viewer).Stats().Skipped)
}

func TestDrawInterpolatedHoldsAcrossWeaponSwitch(t *testing.T) {
	e, viewer := newTestWorld(t)

	setView(viewer, 0, 0)
	require.NoError(t, TickViews(e.World))
	setView(viewer, 10, 0)
	view(viewer).WeaponID = 2
	require.NoError(t, TickViews(e.World))

	var drawn float64
	require.NoError(t, DrawInterpolated(e.World, 0.5, func() {
		drawn = view(viewer).CameraOffset.X()
	}))
	assert.Equal(t, 10.0, drawn)
}

func TestDrawInterpolatedReportsOverlap(t *testing.T) {
	e, viewer := newTestWorld(t)
	setView(viewer, 0, 0)
	require.NoError(t, TickViews(e.World))

	c := controller(viewer)
	require.NoError(t, c.Before(0.5))

	drew := false
	err := DrawInterpolated(e.World, 0.5, func() { drew = true })
	assert.True(t, drew)
	assert.ErrorIs(t, err, interp.ErrOverlappingBefore)

	require.NoError(t, c.After())
	assert.Equal(t, interp.Idle, c.State())
}

func TestTickViewsDuringBlend(t *testing.T) {
	e, viewer := newTestWorld(t)
	setView(viewer, 0, 0)
	require.NoError(t, TickViews(e.World))

	c := controller(viewer)
	require.NoError(t, c.Before(0.5))
	assert.ErrorIs(t, TickViews(e.World), interp.ErrTickDuringBlend)
	require.NoError(t, c.After())
	assert.Equal(t, uint64(1), c.Ticks())
}

func TestApplyInterpOptionsDisables(t *testing.T) {
	e, viewer := newTestWorld(t)

	setView(viewer, 0, 0)
	require.NoError(t, TickViews(e.World))
	setView(viewer, 10, 0)
	require.NoError(t, TickViews(e.World))

	opts := interp.DefaultOptions()
	opts.Enabled = false
	ApplyInterpOptions(e.World, opts)

	var drawn float64
	require.NoError(t, DrawInterpolated(e.World, 0.5, func() {
		drawn = view(viewer).CameraOffset.X()
	}))
	assert.Equal(t, 10.0, drawn)
	assert.False(t, controller(viewer).Options().Enabled)
}

func TestScheduledTickThroughECS(t *testing.T) {
	e, viewer := newTestWorld(t)
	e.AddSystem(UpdatePose)
	e.AddSystem(UpdateFPTick)

	e.Update()
	e.Update()

	c := controller(viewer)
	assert.Equal(t, uint64(2), c.Ticks())
	_, cur := c.Snapshots()
	assert.Equal(t, *view(viewer), cur)
	assert.Equal(t, uint16(cfg.Viewer.NodeCount), cur.NodeCount)
}

func TestDrawInterpolatedReleasesOnStrictPanic(t *testing.T) {
	e, first := newTestWorld(t)
	second := factory.CreateViewer(e, cfg.Arena.SpawnX, cfg.Arena.SpawnY)

	opts := interp.DefaultOptions()
	opts.Strict = true
	ApplyInterpOptions(e.World, opts)

	for _, x := range []float64{0, 10} {
		setView(first, x, 0)
		setView(second, x, 0)
		require.NoError(t, TickViews(e.World))
	}

	// The second view already has a frame open, so its Before panics.
	require.NoError(t, controller(second).Before(0.5))

	drew := false
	assert.Panics(t, func() {
		_ = DrawInterpolated(e.World, 0.25, func() { drew = true })
	})
	assert.False(t, drew)

	assert.Equal(t, interp.Idle, controller(first).State())
	_, cur := controller(first).Snapshots()
	assert.Equal(t, cur, *view(first), "first view restored to its tick")

	assert.Equal(t, interp.Blended, controller(second).State())
	require.NoError(t, controller(second).After())
	assert.Equal(t, 10.0, view(second).CameraOffset.X())
}

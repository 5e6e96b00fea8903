package systems

import (
	"errors"

	"github.com/automoto/fpinterp/components"
	"github.com/automoto/fpinterp/interp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var fpInterpQuery = donburi.NewQuery(filter.Contains(components.FPInterp, components.FirstPerson))

// UpdateFPTick captures every first-person view as a new tick. It must be
// the last system to run so it sees the finished simulation state.
// Violations are logged by the controllers.
func UpdateFPTick(e *ecs.ECS) {
	_ = TickViews(e.World)
}

// TickViews calls OnTick on every view's controller.
func TickViews(w donburi.World) error {
	var errs []error
	fpInterpQuery.Each(w, func(entry *donburi.Entry) {
		if err := components.FPInterp.Get(entry).Controller.OnTick(); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// DrawInterpolated blends every view at frameTime, runs draw, and restores
// every view that was blended. The restore runs even if draw or a strict
// Before panics.
func DrawInterpolated(w donburi.World, frameTime float64, draw func()) (err error) {
	var began []*interp.Controller
	var errs []error
	defer func() {
		for _, c := range began {
			if afterErr := c.After(); afterErr != nil {
				errs = append(errs, afterErr)
			}
		}
		err = errors.Join(errs...)
	}()

	fpInterpQuery.Each(w, func(entry *donburi.Entry) {
		c := components.FPInterp.Get(entry).Controller
		if err := c.Before(frameTime); err != nil {
			errs = append(errs, err)
			return
		}
		began = append(began, c)
	})

	draw()
	return nil
}

// ApplyInterpOptions pushes new options into every view's controller.
func ApplyInterpOptions(w donburi.World, opts interp.Options) {
	fpInterpQuery.Each(w, func(entry *donburi.Entry) {
		components.FPInterp.Get(entry).Controller.SetOptions(opts)
	})
}

// ResetViews drops the buffered ticks of every view, as on a respawn.
func ResetViews(w donburi.World) {
	fpInterpQuery.Each(w, func(entry *donburi.Entry) {
		components.FPInterp.Get(entry).Controller.Reset()
	})
}

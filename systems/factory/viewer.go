package factory

import (
	"github.com/automoto/fpinterp/archetypes"
	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/interp"
	"github.com/automoto/fpinterp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewer spawns the first-person viewer centred on (x, y) with its
// own interpolation controller bound to its FirstPerson component.
func CreateViewer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	viewer := archetypes.Viewer.Spawn(ecs)

	size := cfg.Viewer.CollisionSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvViewer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = viewer
	components.Object.SetValue(viewer, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Viewer.SetValue(viewer, components.ViewerData{
		Animation: components.AnimReady,
	})

	controller := interp.New(components.FirstPersonLive{Entry: viewer}, cfg.Interp.Options())
	components.FPInterp.SetValue(viewer, components.FPInterpData{Controller: controller})

	return viewer
}

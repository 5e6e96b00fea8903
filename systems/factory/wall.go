package factory

import (
	"github.com/automoto/fpinterp/archetypes"
	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateArena builds the collision space and the four walls around it.
func CreateArena(ecs *ecs.ECS) {
	w, h := float64(cfg.Arena.Width), float64(cfg.Arena.Height)
	t := cfg.Arena.WallThickness

	CreateSpace(ecs, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	CreateWall(ecs, 0, 0, w, t)
	CreateWall(ecs, 0, h-t, w, t)
	CreateWall(ecs, 0, t, t, h-2*t)
	CreateWall(ecs, w-t, t, t, h-2*t)
}

package archetypes

import (
	"github.com/automoto/fpinterp/components"
	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Viewer = newArchetype(
		tags.Viewer,
		components.Viewer,
		components.Object,
		components.Physics,
		components.Input,
		components.Recoil,
		components.FirstPerson,
		components.FPInterp,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

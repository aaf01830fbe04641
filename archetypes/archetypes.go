package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/tags"
)

var (
	Ship = newArchetype(
		tags.Ship,
		components.Ship,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Terrain,
	)
	Camera = newArchetype(
		components.Camera,
		components.Tween,
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

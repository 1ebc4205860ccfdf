package archetypes

import (
	"github.com/automoto/wallmerge/components"
	cfg "github.com/automoto/wallmerge/config"
	"github.com/automoto/wallmerge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.WallCollider,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Object,
		components.WallCollider,
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

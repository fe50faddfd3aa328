package archetypes

import (
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Kite,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Kite,
		components.Object,
	)
	Lantern = newArchetype(
		tags.Lantern,
		components.Lantern,
		components.Object,
	)
	FloatingText = newArchetype(
		tags.FloatingText,
		components.FloatingText,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
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

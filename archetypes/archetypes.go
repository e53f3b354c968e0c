package archetypes

import (
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Character,
		components.Object,
		components.Stats,
		components.Weapon,
		components.Invincibility,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Character,
		components.Object,
		components.Stats,
		components.Weapon,
		components.Invincibility,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Planner = newArchetype(
		components.Planner,
	)
	DamageNumber = newArchetype(
		tags.DamageNumber,
		components.DamageNumber,
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

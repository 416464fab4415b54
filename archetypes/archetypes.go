package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	"github.com/nrem/corridash/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Position,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Position,
	)
	Segment = newArchetype(
		tags.Segment,
		components.Segment,
		components.Position,
	)
	Session = newArchetype(
		components.Session,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Overlay = newArchetype(
		tags.Overlay,
		components.Overlay,
		components.Tween,
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

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
}

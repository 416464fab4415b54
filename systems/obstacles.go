package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/systems/factory"
	"github.com/nrem/corridash/tags"
)

// UpdateObstacles advances every obstacle toward the camera and recycles the
// ones that passed the recycle line back into the far spawn window. Recycling
// mutates entities in place, so world iteration order stays stable across the
// whole run.
func UpdateObstacles(e *ecs.ECS) {
	s := Session(e)
	step := s.Speed * s.DT
	recycleZ := cfg.Runner.RecycleZ()

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		pos.Z += step
		if pos.Z > recycleZ {
			factory.PlaceObstacle(pos, components.Obstacle.Get(entry), s.Rand)
		}
	})
}

// RecycleObstacle re-randomizes a single obstacle into the far window, used
// when a projectile destroys it.
func RecycleObstacle(e *ecs.ECS, entry *donburi.Entry) {
	s := Session(e)
	factory.PlaceObstacle(components.Position.Get(entry), components.Obstacle.Get(entry), s.Rand)
}

// ObstacleCount reports the live obstacle population.
func ObstacleCount(e *ecs.ECS) int {
	count := 0
	tags.Obstacle.Each(e.World, func(*donburi.Entry) {
		count++
	})
	return count
}

// obstaclesInOrder snapshots the obstacle entries in world iteration order.
// Hit tests and collision checks resolve ties by this order, which in-place
// recycling keeps deterministic.
func obstaclesInOrder(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

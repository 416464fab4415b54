package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/archetypes"
	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
)

// CreateObstacle spawns one obstacle with randomized placement. Used for the
// initial population and for spawn-timer growth; recycling reuses entities
// through PlaceObstacle instead.
func CreateObstacle(e *ecs.ECS, src gamemath.Source) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)
	PlaceObstacle(
		components.Position.Get(obstacle),
		components.Obstacle.Get(obstacle),
		src,
	)
	return obstacle
}

// PlaceObstacle re-randomizes an obstacle in place: new lane, far-forward z,
// breakable flag, and height class. The same rules apply at creation and at
// recycle time.
func PlaceObstacle(pos *components.PositionData, ob *components.ObstacleData, src gamemath.Source) {
	ob.Lane = src.Intn(cfg.Runner.LaneCount)
	ob.Breakable = src.Float64() < cfg.Obstacle.BreakableChance
	ob.Class = components.HeightGround
	if src.Float64() < cfg.Obstacle.OverheadChance {
		ob.Class = components.HeightOverhead
	}

	y := cfg.Obstacle.GroundY
	if ob.Class == components.HeightOverhead {
		y = cfg.Obstacle.OverheadY
	}
	pos.Vec3 = gamemath.Vec3{
		X: cfg.Runner.LaneX(ob.Lane),
		Y: y,
		Z: cfg.Obstacle.FarMin + src.Float64()*(cfg.Obstacle.FarMax-cfg.Obstacle.FarMin),
	}
}

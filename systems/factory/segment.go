package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/archetypes"
	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
)

// CreateSegments spawns the fixed segment ring: SegmentsPerLane tiles per
// lane, laid end to end from the recycle line backward. Nothing else ever
// allocates segments; they only leapfrog.
func CreateSegments(e *ecs.ECS) {
	for lane := 0; lane < cfg.Runner.LaneCount; lane++ {
		for i := 0; i < cfg.Runner.SegmentsPerLane; i++ {
			segment := archetypes.Segment.Spawn(e)
			components.Segment.SetValue(segment, components.SegmentData{
				Lane: lane,
			})
			components.Position.SetValue(segment, components.PositionData{
				Vec3: gamemath.Vec3{
					X: cfg.Runner.LaneX(lane),
					Y: cfg.Player.GroundY,
					Z: cfg.Runner.RecycleZ() - cfg.Runner.SegmentLength*(float64(i)+0.5),
				},
			})
		}
	}
}

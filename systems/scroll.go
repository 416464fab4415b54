package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/tags"
)

// UpdateScroller drifts the floor segments toward the camera and snaps any
// segment that passed the recycle line back behind its lane's farthest
// neighbor. The segments form a fixed ring; none are ever created or
// destroyed after setup.
func UpdateScroller(e *ecs.ECS) {
	s := Session(e)
	step := s.Speed * s.DT

	tags.Segment.Each(e.World, func(entry *donburi.Entry) {
		components.Position.Get(entry).Z += step
	})

	ringLength := cfg.Runner.SegmentLength * float64(cfg.Runner.SegmentsPerLane)
	recycleZ := cfg.Runner.RecycleZ()
	tags.Segment.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		for pos.Z > recycleZ {
			pos.Z -= ringLength
		}
	})
}

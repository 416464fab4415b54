package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	"github.com/nrem/corridash/systems/factory"
	"github.com/nrem/corridash/tags"
)

// scriptedSource replays fixed sequences, wrapping when exhausted. Obstacle
// placement draws Intn once and Float64 three times per call.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

const testDT = 1.0 / 60.0

// newTestECS builds a world with a session, player, camera, and segment ring,
// but no obstacles; tests place those explicitly.
func newTestECS(src *scriptedSource) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, src)
	factory.CreateSettings(e, true, false)
	factory.CreateCamera(e)
	factory.CreatePlayer(e)
	factory.CreateSegments(e)
	Session(e).DT = testDT
	return e
}

func playerEntry(e *ecs.ECS) *donburi.Entry {
	entry, _ := tags.Player.First(e.World)
	return entry
}

// placeTestObstacle pins an obstacle at an exact position, bypassing the
// randomized factory placement.
func placeTestObstacle(e *ecs.ECS, x, y, z float64, class components.HeightClass, breakable bool) *donburi.Entry {
	src := &scriptedSource{floats: []float64{0}, ints: []int{0}}
	entry := factory.CreateObstacle(e, src)
	components.Obstacle.SetValue(entry, components.ObstacleData{
		Breakable: breakable,
		Class:     class,
	})
	pos := components.Position.Get(entry)
	pos.X = x
	pos.Y = y
	pos.Z = z
	return entry
}

// stepRunning runs the gameplay pipeline for n frames in scene order.
func stepRunning(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		if Session(e).GameOver {
			return
		}
		UpdateSession(e)
		UpdatePlayer(e)
		UpdateScroller(e)
		UpdateObstacles(e)
		UpdateProjectiles(e)
		UpdateCollisions(e)
	}
}

func segmentCount(e *ecs.ECS) int {
	count := 0
	tags.Segment.Each(e.World, func(*donburi.Entry) {
		count++
	})
	return count
}

func projectileCount(e *ecs.ECS) int {
	count := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) {
		count++
	})
	return count
}

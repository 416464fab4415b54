package systems

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/systems/factory"
	"github.com/nrem/corridash/tags"
)

func TestObstaclePlacementStaysInWindow(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	src := &scriptedSource{
		floats: []float64{0.0, 0.99, 0.5, 0.7, 0.01, 0.2},
		ints:   []int{0, 1, 2},
	}

	for i := 0; i < 30; i++ {
		entry := factory.CreateObstacle(e, src)
		ob := components.Obstacle.Get(entry)
		pos := components.Position.Get(entry)

		if ob.Lane < 0 || ob.Lane >= cfg.Runner.LaneCount {
			t.Fatalf("lane %d out of range", ob.Lane)
		}
		if pos.X != cfg.Runner.LaneX(ob.Lane) {
			t.Fatalf("x = %f does not match lane %d", pos.X, ob.Lane)
		}
		if pos.Z < cfg.Obstacle.FarMin || pos.Z > cfg.Obstacle.FarMax {
			t.Fatalf("z = %f outside [%f, %f]", pos.Z, cfg.Obstacle.FarMin, cfg.Obstacle.FarMax)
		}
		switch ob.Class {
		case components.HeightGround:
			if pos.Y != cfg.Obstacle.GroundY {
				t.Fatalf("ground obstacle at y = %f", pos.Y)
			}
		case components.HeightOverhead:
			if pos.Y != cfg.Obstacle.OverheadY {
				t.Fatalf("overhead obstacle at y = %f", pos.Y)
			}
		}
	}
}

func TestObstacleRecyclesPastCamera(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	src := Session(e).Rand.(*scriptedSource)
	src.floats = []float64{0.5}
	src.ints = []int{1}

	entry := placeTestObstacle(e, 0, 0, cfg.Runner.RecycleZ()-0.01, components.HeightGround, false)

	UpdateObstacles(e)

	pos := components.Position.Get(entry)
	if pos.Z < cfg.Obstacle.FarMin || pos.Z > cfg.Obstacle.FarMax {
		t.Fatalf("recycled z = %f outside far window", pos.Z)
	}
	if got := ObstacleCount(e); got != 1 {
		t.Fatalf("recycling changed population: %d", got)
	}
}

func TestObstacleShortOfRecycleLineKeepsDrifting(t *testing.T) {
	e := newTestECS(&scriptedSource{})

	z := cfg.Runner.RecycleZ() - 5
	entry := placeTestObstacle(e, 0, 0, z, components.HeightGround, false)

	UpdateObstacles(e)

	want := z + Session(e).Speed*testDT
	if got := components.Position.Get(entry).Z; got != want {
		t.Fatalf("z = %f, want %f", got, want)
	}
}

func TestSpawnTimerGrowsPopulationToCap(t *testing.T) {
	e := newTestECS(&scriptedSource{floats: []float64{0.5}, ints: []int{0}})
	for i := 0; i < cfg.Obstacle.InitialCount; i++ {
		factory.CreateObstacle(e, Session(e).Rand)
	}

	// One spawn interval adds exactly one obstacle.
	ticksPerSpawn := int(cfg.Obstacle.SpawnInterval/testDT) + 1
	for i := 0; i < ticksPerSpawn; i++ {
		UpdateSession(e)
	}
	if got := ObstacleCount(e); got != cfg.Obstacle.InitialCount+1 {
		t.Fatalf("population after one interval: %d, want %d", got, cfg.Obstacle.InitialCount+1)
	}

	// Run long enough to hit the cap, then confirm it holds.
	for i := 0; i < ticksPerSpawn*(cfg.Obstacle.MaxCount+5); i++ {
		UpdateSession(e)
	}
	if got := ObstacleCount(e); got != cfg.Obstacle.MaxCount {
		t.Fatalf("population = %d, want cap %d", got, cfg.Obstacle.MaxCount)
	}
}

func TestRecyclingPreservesIterationOrder(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	src := Session(e).Rand.(*scriptedSource)
	src.floats = []float64{0.5}
	src.ints = []int{0}

	var created []*donburi.Entry
	created = append(created, placeTestObstacle(e, 0, 0, -100, components.HeightGround, false))
	created = append(created, placeTestObstacle(e, 0, 0, cfg.Runner.RecycleZ()-0.01, components.HeightGround, false))
	created = append(created, placeTestObstacle(e, 0, 0, -150, components.HeightGround, false))

	UpdateObstacles(e)

	var after []*donburi.Entry
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		after = append(after, entry)
	})
	if len(after) != len(created) {
		t.Fatalf("population changed: %d -> %d", len(created), len(after))
	}
	for i := range created {
		if after[i] != created[i] {
			t.Fatalf("iteration order changed at index %d", i)
		}
	}
}

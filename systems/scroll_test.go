package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/tags"
)

func TestSegmentsDriftForward(t *testing.T) {
	e := newTestECS(&scriptedSource{})

	before := map[*donburi.Entry]float64{}
	tags.Segment.Each(e.World, func(entry *donburi.Entry) {
		before[entry] = components.Position.Get(entry).Z
	})

	UpdateScroller(e)

	step := Session(e).Speed * testDT
	tags.Segment.Each(e.World, func(entry *donburi.Entry) {
		got := components.Position.Get(entry).Z
		want := before[entry] + step
		if got != want {
			t.Fatalf("segment z = %f, want %f", got, want)
		}
	})
}

func TestSegmentRingRecycles(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	count := segmentCount(e)
	recycleZ := cfg.Runner.RecycleZ()

	// Scroll far enough that every segment recycles at least once.
	ticks := int(2 * cfg.Runner.SegmentLength * float64(cfg.Runner.SegmentsPerLane) /
		(Session(e).Speed * testDT))
	for i := 0; i < ticks; i++ {
		UpdateScroller(e)
		tags.Segment.Each(e.World, func(entry *donburi.Entry) {
			if z := components.Position.Get(entry).Z; z > recycleZ {
				t.Fatalf("tick %d: segment left behind at z = %f (recycle line %f)",
					i, z, recycleZ)
			}
		})
	}

	if got := segmentCount(e); got != count {
		t.Fatalf("segment count changed: %d -> %d", count, got)
	}
}

func TestSegmentsKeepLaneSpacing(t *testing.T) {
	e := newTestECS(&scriptedSource{})

	for i := 0; i < 500; i++ {
		UpdateScroller(e)
	}

	// Per lane, the two ring tiles must stay exactly one segment apart
	// modulo the ring length.
	perLane := map[int][]float64{}
	tags.Segment.Each(e.World, func(entry *donburi.Entry) {
		lane := components.Segment.Get(entry).Lane
		perLane[lane] = append(perLane[lane], components.Position.Get(entry).Z)
	})

	ring := cfg.Runner.SegmentLength * float64(cfg.Runner.SegmentsPerLane)
	for lane, zs := range perLane {
		if len(zs) != cfg.Runner.SegmentsPerLane {
			t.Fatalf("lane %d has %d segments, want %d", lane, len(zs), cfg.Runner.SegmentsPerLane)
		}
		gap := math.Abs(zs[0] - zs[1])
		if math.Abs(gap-cfg.Runner.SegmentLength) > 1e-6 &&
			math.Abs(gap-(ring-cfg.Runner.SegmentLength)) > 1e-6 {
			t.Fatalf("lane %d: segment gap %f, want %f", lane, gap, cfg.Runner.SegmentLength)
		}
	}
}

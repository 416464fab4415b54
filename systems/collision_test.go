package systems

import (
	"testing"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
)

func TestGroundObstacleEndsRun(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	playerPos := components.Position.Get(playerEntry(e))

	placeTestObstacle(e, playerPos.X, 0, playerPos.Z+0.2, components.HeightGround, false)

	UpdateCollisions(e)
	if !Session(e).GameOver {
		t.Fatalf("grounded player ran through a ground obstacle")
	}
}

func TestJumpClearsGroundObstacle(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	player := playerEntry(e)
	playerPos := components.Position.Get(player)

	placeTestObstacle(e, playerPos.X, 0, playerPos.Z, components.HeightGround, false)

	components.Player.Get(player).Mode = components.Jumping
	playerPos.Y = cfg.Collision.JumpClearance + 0.2

	UpdateCollisions(e)
	if Session(e).GameOver {
		t.Fatalf("jump with clearance %f collided", playerPos.Y)
	}
}

func TestJumpClearanceBoundaryCollides(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	player := playerEntry(e)
	playerPos := components.Position.Get(player)

	placeTestObstacle(e, playerPos.X, 0, playerPos.Z, components.HeightGround, false)

	// A gap exactly equal to the clearance is not enough.
	components.Player.Get(player).Mode = components.Jumping
	playerPos.Y = cfg.Collision.JumpClearance

	UpdateCollisions(e)
	if !Session(e).GameOver {
		t.Fatalf("boundary-equal jump gap passed")
	}
}

func TestSlideClearsOverheadObstacle(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	player := playerEntry(e)
	playerPos := components.Position.Get(player)

	placeTestObstacle(e, playerPos.X, cfg.Obstacle.OverheadY, playerPos.Z,
		components.HeightOverhead, false)

	components.Player.Get(player).Mode = components.Sliding
	playerPos.Y = cfg.Obstacle.OverheadY - cfg.Collision.SlideClearance - 0.2

	UpdateCollisions(e)
	if Session(e).GameOver {
		t.Fatalf("deep slide under an overhead collided")
	}
}

func TestSlideClearanceBoundaryCollides(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	player := playerEntry(e)
	playerPos := components.Position.Get(player)

	placeTestObstacle(e, playerPos.X, cfg.Obstacle.OverheadY, playerPos.Z,
		components.HeightOverhead, false)

	components.Player.Get(player).Mode = components.Sliding
	playerPos.Y = cfg.Obstacle.OverheadY - cfg.Collision.SlideClearance

	UpdateCollisions(e)
	if !Session(e).GameOver {
		t.Fatalf("boundary-equal slide gap passed")
	}
}

func TestJumpDoesNotClearOverhead(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	player := playerEntry(e)
	playerPos := components.Position.Get(player)

	placeTestObstacle(e, playerPos.X, cfg.Obstacle.OverheadY, playerPos.Z,
		components.HeightOverhead, false)

	components.Player.Get(player).Mode = components.Jumping
	playerPos.Y = 1.1

	UpdateCollisions(e)
	if !Session(e).GameOver {
		t.Fatalf("jumping into an overhead obstacle passed")
	}
}

func TestNeighborLaneObstacleIgnored(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	playerPos := components.Position.Get(playerEntry(e))

	placeTestObstacle(e, playerPos.X+cfg.Runner.LaneWidth, 0, playerPos.Z,
		components.HeightGround, false)

	UpdateCollisions(e)
	if Session(e).GameOver {
		t.Fatalf("obstacle a full lane away collided")
	}
}

func TestDistanceScoreIsMonotonic(t *testing.T) {
	e := newTestECS(&scriptedSource{floats: []float64{0.5}, ints: []int{0}})

	prev := Session(e).Distance
	for i := 0; i < 300; i++ {
		stepRunning(e, 1)
		s := Session(e)
		if s.Distance < prev {
			t.Fatalf("tick %d: distance decreased %f -> %f", i, prev, s.Distance)
		}
		if !s.GameOver && s.Distance == prev {
			t.Fatalf("tick %d: distance froze while running", i)
		}
		prev = s.Distance
	}
}

func TestCrashTriggersScreenShake(t *testing.T) {
	e := newTestECS(&scriptedSource{})
	playerPos := components.Position.Get(playerEntry(e))

	placeTestObstacle(e, playerPos.X, 0, playerPos.Z, components.HeightGround, false)

	UpdateCollisions(e)

	cameraEntry, _ := components.Camera.First(e.World)
	if !cameraEntry.HasComponent(components.ScreenShake) {
		t.Fatalf("crash did not start a screen shake")
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Intensity != cfg.ScreenShake.CrashIntensity {
		t.Fatalf("shake intensity = %f, want %f", shake.Intensity, cfg.ScreenShake.CrashIntensity)
	}
}

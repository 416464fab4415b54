package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
	"github.com/nrem/corridash/tags"
)

// UpdateCollisions banks the tick's distance and then tests the player
// against every obstacle in world order. The first hit ends the run.
func UpdateCollisions(e *ecs.ECS) {
	s := Session(e)
	s.Distance += s.Speed * s.DT

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerPos := components.Position.Get(playerEntry)

	for _, obstacleEntry := range obstaclesInOrder(e) {
		obstacle := components.Obstacle.Get(obstacleEntry)
		obstaclePos := components.Position.Get(obstacleEntry)

		if gamemath.HorizontalDist(playerPos.Vec3, obstaclePos.Vec3) >= cfg.Collision.HitRadius {
			continue
		}
		if clearsVertically(player, playerPos, obstacle, obstaclePos) {
			continue
		}

		s.GameOver = true
		TriggerScreenShake(e)
		return
	}
}

// clearsVertically reports whether the player's arc carries it past an
// obstacle that overlaps horizontally. Clearance must strictly exceed the
// threshold; grazing the boundary counts as a hit.
func clearsVertically(player *components.PlayerData, playerPos *components.PositionData, obstacle *components.ObstacleData, obstaclePos *components.PositionData) bool {
	switch obstacle.Class {
	case components.HeightGround:
		return player.Mode == components.Jumping &&
			playerPos.Y-obstaclePos.Y > cfg.Collision.JumpClearance
	case components.HeightOverhead:
		return player.Mode == components.Sliding &&
			obstaclePos.Y-playerPos.Y > cfg.Collision.SlideClearance
	}
	return false
}

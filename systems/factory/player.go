package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/archetypes"
	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
)

// CreatePlayer spawns the player in the center lane, grounded.
func CreatePlayer(e *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	ResetPlayer(player)
	return player
}

// ResetPlayer restores the player to its initial lane, position, and mode.
func ResetPlayer(player *donburi.Entry) {
	center := cfg.Runner.LaneCount / 2
	components.Player.SetValue(player, components.PlayerData{
		TargetLane: center,
		Mode:       components.Grounded,
		Aim:        gamemath.Vec3{Z: -1},
		// Far enough in the past that the first shot is never gated.
		LastFireAt: -1e9,
	})
	components.Position.SetValue(player, components.PositionData{
		Vec3: gamemath.Vec3{
			X: cfg.Runner.LaneX(center),
			Y: cfg.Player.GroundY,
			Z: cfg.Runner.PlayerZ,
		},
	})
}

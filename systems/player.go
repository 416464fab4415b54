package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
	"github.com/nrem/corridash/tags"
)

// UpdatePlayer applies buffered movement actions and integrates the player's
// vertical arc one tick.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	if action := GetAction(e, cfg.ActionLaneLeft); action.JustPressed {
		ShiftLane(playerEntry, -1)
	}
	if action := GetAction(e, cfg.ActionLaneRight); action.JustPressed {
		ShiftLane(playerEntry, 1)
	}
	if action := GetAction(e, cfg.ActionJump); action.JustPressed {
		TryJump(playerEntry)
	}
	if action := GetAction(e, cfg.ActionSlide); action.JustPressed {
		TrySlide(playerEntry)
	}

	StepPlayer(playerEntry)
}

// ShiftLane moves the player's target lane by delta, clamped to the track.
// Requests past the outer lanes are swallowed.
func ShiftLane(playerEntry *donburi.Entry, delta int) {
	player := components.Player.Get(playerEntry)
	player.TargetLane = gamemath.ClampInt(player.TargetLane+delta, 0, cfg.Runner.LaneCount-1)
}

// TryJump starts a jump. Ignored mid-air and mid-slide; the two arcs never
// overlap.
func TryJump(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.Mode != components.Grounded {
		return
	}
	player.Mode = components.Jumping
	player.VerticalVel = cfg.Player.JumpVelocity
}

// TrySlide starts a slide, ducking the player below ground level. Ignored
// unless grounded.
func TrySlide(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.Mode != components.Grounded {
		return
	}
	player.Mode = components.Sliding
	player.VerticalVel = cfg.Player.SlideVelocity
}

// StepPlayer runs one tick of lane smoothing and vertical integration.
func StepPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	pos := components.Position.Get(playerEntry)

	targetX := cfg.Runner.LaneX(player.TargetLane)
	pos.X = gamemath.Lerp(pos.X, targetX, cfg.Player.LaneSmoothing)

	switch player.Mode {
	case components.Jumping:
		pos.Y += player.VerticalVel
		player.VerticalVel -= cfg.Player.Gravity
		if pos.Y <= cfg.Player.GroundY {
			land(player, pos)
		}
	case components.Sliding:
		pos.Y += player.VerticalVel
		player.VerticalVel += cfg.Player.StandUpAccel
		if pos.Y >= cfg.Player.GroundY {
			land(player, pos)
		}
	}
}

func land(player *components.PlayerData, pos *components.PositionData) {
	pos.Y = cfg.Player.GroundY
	player.Mode = components.Grounded
	player.VerticalVel = 0
}

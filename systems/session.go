package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/systems/factory"
	"github.com/nrem/corridash/tags"
)

// Session returns the session singleton. It panics if the scene never
// created one; that is a wiring bug, not a runtime condition.
func Session(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

// WithRunningCheck gates a gameplay system on the session still running.
// While paused or after a crash the world stays frozen; presentation systems
// are added unwrapped so shake, fades, and restart input keep working.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if entry, ok := components.Session.First(e.World); ok {
			s := components.Session.Get(entry)
			if s.GameOver || s.Paused {
				return
			}
		}
		system(e)
	}
}

// UpdatePause toggles the pause freeze. A crashed run cannot be paused; the
// game-over flow owns it.
func UpdatePause(e *ecs.ECS) {
	s := Session(e)
	if s.GameOver {
		s.Paused = false
		return
	}
	if GetAction(e, cfg.ActionPause).JustPressed {
		s.Paused = !s.Paused
	}
}

// UpdateSession advances the run clock, ramps speed, and grows the obstacle
// population on the spawn timer.
func UpdateSession(e *ecs.ECS) {
	s := Session(e)
	if s.DT < 0 {
		s.DT = 0
	}

	s.Elapsed += s.DT

	speed := cfg.Runner.BaseSpeed + cfg.Runner.SpeedRamp*s.Elapsed
	if speed > cfg.Runner.MaxSpeed {
		speed = cfg.Runner.MaxSpeed
	}
	// Tuning reloads can lower BaseSpeed mid-run; never let the ramp move
	// backward.
	if speed > s.Speed {
		s.Speed = speed
	}

	s.SpawnTimer += s.DT
	for s.SpawnTimer >= cfg.Obstacle.SpawnInterval {
		s.SpawnTimer -= cfg.Obstacle.SpawnInterval
		if ObstacleCount(e) < cfg.Obstacle.MaxCount {
			factory.CreateObstacle(e, s.Rand)
		}
	}
}

// ResetSession restores the frozen world to a fresh run: initial speed and
// score, player back to the center lane and grounded, projectiles cleared,
// and the obstacle population re-randomized at its starting count.
func ResetSession(e *ecs.ECS) {
	s := Session(e)
	s.Speed = cfg.Runner.BaseSpeed
	s.Elapsed = 0
	s.Distance = 0
	s.SpawnTimer = 0
	s.Paused = false
	s.GameOver = false

	if player, ok := tags.Player.First(e.World); ok {
		factory.ResetPlayer(player)
	}

	removeAll(e, tags.Projectile)
	removeAll(e, tags.Obstacle)
	for i := 0; i < cfg.Obstacle.InitialCount; i++ {
		factory.CreateObstacle(e, s.Rand)
	}

	removeAll(e, tags.Overlay)

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		if cameraEntry.HasComponent(components.ScreenShake) {
			cameraEntry.RemoveComponent(components.ScreenShake)
		}
		components.Camera.SetValue(cameraEntry, components.CameraData{})
	}
}

func removeAll(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var entries []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	for _, entry := range entries {
		e.World.Remove(entry.Entity())
	}
}

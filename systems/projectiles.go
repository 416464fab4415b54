package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
	"github.com/nrem/corridash/systems/factory"
	"github.com/nrem/corridash/tags"
)

// UpdateProjectiles handles fire input, flies live projectiles forward, and
// resolves their hits against obstacles. Expired projectiles are removed in a
// second pass so the hit loop never mutates the set it iterates.
func UpdateProjectiles(e *ecs.ECS) {
	s := Session(e)

	if action := GetAction(e, cfg.ActionFire); action.JustPressed {
		FireProjectile(e)
	}

	obstacles := obstaclesInOrder(e)

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectile := components.Projectile.Get(entry)
		if projectile.Expired {
			return
		}

		pos := components.Position.Get(entry)
		pos.Vec3 = pos.Vec3.Add(projectile.Dir.Scale(cfg.Projectile.Speed * s.DT))

		if s.Elapsed-projectile.CreatedAt > cfg.Projectile.Lifespan {
			projectile.Expired = true
			return
		}

		for _, obstacleEntry := range obstacles {
			obstaclePos := components.Position.Get(obstacleEntry)
			if gamemath.Dist(pos.Vec3, obstaclePos.Vec3) >= cfg.Projectile.HitRadius {
				continue
			}
			if components.Obstacle.Get(obstacleEntry).Breakable {
				RecycleObstacle(e, obstacleEntry)
			}
			// The projectile is spent either way. Unbreakables just absorb it.
			projectile.Expired = true
			break
		}
	})

	var expired []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if components.Projectile.Get(entry).Expired {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		e.World.Remove(entry.Entity())
	}
}

// FireProjectile spawns a projectile from the player along its aim direction,
// subject to the fire cooldown. Reports whether a shot actually left.
func FireProjectile(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}

	s := Session(e)
	player := components.Player.Get(playerEntry)
	if s.Elapsed-player.LastFireAt <= cfg.Projectile.Cooldown {
		return false
	}
	player.LastFireAt = s.Elapsed

	origin := components.Position.Get(playerEntry).Vec3
	factory.CreateProjectile(e, origin, player.Aim, s.Elapsed)
	return true
}

package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/archetypes"
	"github.com/nrem/corridash/components"
	"github.com/nrem/corridash/gamemath"
)

// CreateProjectile spawns a projectile at origin heading along dir.
func CreateProjectile(e *ecs.ECS, origin, dir gamemath.Vec3, now float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(e)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Dir:       dir.Normalized(),
		CreatedAt: now,
	})
	components.Position.SetValue(projectile, components.PositionData{
		Vec3: origin,
	})
	return projectile
}

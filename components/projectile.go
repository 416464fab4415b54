package components

import (
	"github.com/yohamta/donburi"

	"github.com/nrem/corridash/gamemath"
)

type ProjectileData struct {
	Dir       gamemath.Vec3 // unit direction of travel
	CreatedAt float64       // session time at fire
	Expired   bool          // marked during the tick, removed before it ends
}

var Projectile = donburi.NewComponentType[ProjectileData]()

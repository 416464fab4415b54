package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Projectile = donburi.NewTag().SetName("Projectile")
	Segment    = donburi.NewTag().SetName("Segment")
	Overlay    = donburi.NewTag().SetName("Overlay")
)

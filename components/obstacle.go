package components

import "github.com/yohamta/donburi"

// HeightClass determines whether an obstacle is avoided by jumping over it
// or sliding under it.
type HeightClass int

const (
	HeightGround HeightClass = iota
	HeightOverhead
)

type ObstacleData struct {
	Lane      int
	Breakable bool
	Class     HeightClass
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

package components

import (
	"github.com/yohamta/donburi"

	"github.com/nrem/corridash/gamemath"
)

// PositionData is an entity's location in corridor space.
type PositionData struct {
	gamemath.Vec3
}

var Position = donburi.NewComponentType[PositionData]()

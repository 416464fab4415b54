package components

import (
	"github.com/yohamta/donburi"

	"github.com/nrem/corridash/gamemath"
)

// VerticalMode is the player's vertical state. Exactly one mode is active
// at a time; jump and slide are mutually exclusive.
type VerticalMode int

const (
	Grounded VerticalMode = iota
	Jumping
	Sliding
)

func (m VerticalMode) String() string {
	switch m {
	case Jumping:
		return "jumping"
	case Sliding:
		return "sliding"
	default:
		return "grounded"
	}
}

type PlayerData struct {
	TargetLane  int
	Mode        VerticalMode
	VerticalVel float64

	// Aim is the unit direction projectiles travel and the vector the
	// presentation layer uses for its light cone. The core only supplies it.
	Aim gamemath.Vec3

	// LastFireAt is the session time of the last accepted shot, used for
	// the fire cooldown gate.
	LastFireAt float64
}

var Player = donburi.NewComponentType[PlayerData]()

package components

import (
	"github.com/yohamta/donburi"

	"github.com/nrem/corridash/gamemath"
)

// SessionData is the single owned session object: clock, speed, score, and
// the run's randomness source. All of it lives on one ECS entity; there is
// no package-level game state.
type SessionData struct {
	// DT is the seconds covered by the current tick, written by the scene
	// before the system pipeline runs.
	DT float64

	Speed      float64 // units/second, monotonically increasing while running
	Elapsed    float64 // run time in seconds
	Distance   float64 // monotonic score accumulator
	SpawnTimer float64 // seconds since the obstacle population last grew
	Paused     bool
	GameOver   bool

	Rand gamemath.Source
}

// Score reports the traveled distance as the whole-number score the UI shows.
func (s *SessionData) Score() int {
	return int(s.Distance)
}

var Session = donburi.NewComponentType[SessionData]()

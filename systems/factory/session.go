package factory

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/archetypes"
	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
)

// CreateSession spawns the session singleton. src may be nil, in which case
// a time-seeded math/rand source is used; tests pass a deterministic one.
func CreateSession(e *ecs.ECS, src gamemath.Source) *donburi.Entry {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	session := archetypes.Session.Spawn(e)
	components.Session.SetValue(session, components.SessionData{
		Speed: cfg.Runner.BaseSpeed,
		Rand:  src,
	})
	return session
}

// CreateSettings spawns the presentation-toggle singleton.
func CreateSettings(e *ecs.ECS, screenShake, fog bool) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Settings))
	components.Settings.SetValue(entry, components.SettingsData{
		ScreenShake: screenShake,
		Fog:         fog,
	})
	return entry
}

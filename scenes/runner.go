package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/gamemath"
	"github.com/nrem/corridash/systems"
	"github.com/nrem/corridash/systems/factory"
)

// RunOptions carries the menu's presentation toggles into a run.
type RunOptions struct {
	ScreenShake bool
	Fog         bool

	// Rand seeds the run's obstacle placement; nil means time-seeded.
	Rand gamemath.Source
}

// RunnerScene owns the endless-run world. It builds the ECS on first update
// and keeps it for the scene's lifetime; restarts reuse the same world.
type RunnerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      RunOptions
	once         sync.Once
}

// NewRunnerScene creates a new run with the given options
func NewRunnerScene(sc SceneChanger, options RunOptions) *RunnerScene {
	return &RunnerScene{sceneChanger: sc, options: options}
}

func (rs *RunnerScene) Update() {
	rs.once.Do(rs.configure)

	// The frame clock. Ebitengine ticks at a fixed rate; every gameplay
	// system reads this instead of touching wall time.
	systems.Session(rs.ecs).DT = 1.0 / float64(ebiten.TPS())

	rs.ecs.Update()
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunnerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Entities first; UpdateSession runs on the first frame.
	session := factory.CreateSession(e, rs.options.Rand)
	factory.CreateSettings(e, rs.options.ScreenShake, rs.options.Fog)
	factory.CreateCamera(e)
	factory.CreatePlayer(e)
	factory.CreateSegments(e)

	src := components.Session.Get(session).Rand
	for i := 0; i < cfg.Obstacle.InitialCount; i++ {
		factory.CreateObstacle(e, src)
	}

	// Input always runs; gameplay systems freeze while paused or crashed.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithRunningCheck(systems.UpdateSession))
	e.AddSystem(systems.WithRunningCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateScroller))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateObstacles))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateProjectiles))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateCollisions))

	// Presentation systems keep running while frozen.
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.NewUpdateGameOver(func() {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, MenuOptionsFromRun(rs.options)))
	}))

	e.AddRenderer(ecs.LayerDefault, systems.DrawWorld)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
	e.AddRenderer(ecs.LayerDefault, systems.DrawGameOver)

	rs.ecs = e
}

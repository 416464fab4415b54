package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nrem/corridash/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	options      ui.MenuOptions
	once         sync.Once
}

// NewMenuScene creates a new menu scene with the given option state
func NewMenuScene(sc SceneChanger, options ui.MenuOptions) *MenuScene {
	return &MenuScene{sceneChanger: sc, options: options}
}

// MenuOptionsFromRun carries a run's toggles back into the menu.
func MenuOptionsFromRun(options RunOptions) ui.MenuOptions {
	return ui.MenuOptions{
		ScreenShake: options.ScreenShake,
		Fog:         options.Fog,
	}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(&ms.options,
		func() {
			ms.sceneChanger.ChangeScene(NewRunnerScene(ms.sceneChanger, RunOptions{
				ScreenShake: ms.options.ScreenShake,
				Fog:         ms.options.Fog,
			}))
		},
		func() {
			ms.sceneChanger.Quit()
		},
	)
}

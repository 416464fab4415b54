package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nrem/corridash/config"
	"github.com/nrem/corridash/fonts"
	"github.com/nrem/corridash/scenes"
	"github.com/nrem/corridash/ui"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop cleanly on the next update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, 11)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 30)

	g := &Game{
		bounds: image.Rectangle{},
	}

	options := ui.MenuOptions{ScreenShake: true, Fog: true}
	if config.Debug.SkipMenu {
		g.scene = scenes.NewRunnerScene(g, scenes.RunOptions{
			ScreenShake: options.ScreenShake,
			Fog:         options.Fog,
		})
	} else {
		g.scene = scenes.NewMenuScene(g, options)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "skip the menu and start a run")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML tuning override file")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "hot-reload the tuning file on change")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		if err := config.LoadFile(config.Debug.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning file: %v", err)
		}
		if config.Debug.Watch {
			watcher, err := config.WatchFile(config.Debug.TuningPath, func() {
				log.Printf("Tuning reloaded from %s", config.Debug.TuningPath)
			})
			if err != nil {
				log.Printf("Warning: Could not watch tuning file: %v", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

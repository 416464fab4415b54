package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/fonts"
	"github.com/nrem/corridash/systems/factory"
	"github.com/nrem/corridash/tags"
)

// NewUpdateGameOver creates the crash-screen system. It spawns the fade
// overlay when a run ends and handles restart and back-to-menu input.
// Runs unwrapped; it is the only system that acts while the world is frozen.
func NewUpdateGameOver(onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		if !Session(e).GameOver {
			return
		}

		if _, ok := tags.Overlay.First(e.World); !ok {
			factory.CreateOverlay(e)
		}

		if GetAction(e, cfg.ActionRestart).JustPressed {
			ResetSession(e)
			return
		}
		if GetAction(e, cfg.ActionMenuBack).JustPressed {
			onMenu()
		}
	}
}

// DrawGameOver renders the crash overlay, final score, and restart hint.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	s := Session(e)
	if !s.GameOver {
		return
	}

	width := float64(screen.Bounds().Dx())

	alpha := float32(0)
	if overlayEntry, ok := tags.Overlay.First(e.World); ok {
		alpha = components.Overlay.Get(overlayEntry).Alpha
	}
	overlayColor := cfg.GameOver.OverlayColor
	overlayColor.A = uint8(alpha)
	vector.DrawFilledRect(screen,
		0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		overlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.GameOver.Title
	titleWidth := len(title) * 20 // Approximate width for title font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	hudFont := fonts.HUD.Get()
	score := fmt.Sprintf("DISTANCE  %d", s.Score())
	scoreX := int((width - float64(len(score)*10)) / 2)
	text.Draw(screen, score, hudFont, scoreX, int(cfg.GameOver.ScoreY), cfg.GameOver.TextColor)

	hint := cfg.GameOver.RestartHint
	hintX := int((width - float64(len(hint)*8)) / 2)
	text.Draw(screen, hint, fonts.HUDSmall.Get(), hintX, int(cfg.GameOver.HintY), cfg.HUD.DimColor)
}

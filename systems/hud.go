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
	"github.com/nrem/corridash/tags"
)

const (
	cooldownBarWidth  = 60
	cooldownBarHeight = 6
)

// DrawHUD renders the score, current speed, and fire-cooldown bar.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	s := Session(e)
	margin := cfg.HUD.Margin

	hudFont := fonts.HUD.Get()
	text.Draw(screen,
		fmt.Sprintf("%06d", s.Score()),
		hudFont, int(margin), int(margin)+12, cfg.HUD.TextColor)

	text.Draw(screen,
		fmt.Sprintf("%.0f u/s", s.Speed),
		fonts.HUDSmall.Get(), int(margin), int(margin)+30, cfg.HUD.DimColor)

	drawCooldownBar(e, screen, s)

	if s.Paused {
		label := "PAUSED"
		x := (screen.Bounds().Dx() - len(label)*10) / 2
		text.Draw(screen, label, hudFont, x, screen.Bounds().Dy()/2, cfg.HUD.TextColor)
	}
}

// drawCooldownBar shows fire readiness in the top-right corner. Full bar
// means the next shot will leave.
func drawCooldownBar(e *ecs.ECS, screen *ebiten.Image, s *components.SessionData) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	ratio := float32(1)
	if cfg.Projectile.Cooldown > 0 {
		ratio = float32((s.Elapsed - player.LastFireAt) / cfg.Projectile.Cooldown)
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}
	}

	x := float32(screen.Bounds().Dx()) - float32(cfg.HUD.Margin) - cooldownBarWidth
	y := float32(cfg.HUD.Margin)

	vector.DrawFilledRect(screen, x, y, cooldownBarWidth, cooldownBarHeight,
		cfg.HUD.DimColor, false)
	vector.DrawFilledRect(screen, x, y, cooldownBarWidth*ratio, cooldownBarHeight,
		cfg.BrightOrange, false)
}

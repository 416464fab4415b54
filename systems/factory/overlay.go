package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/archetypes"
	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
)

// CreateOverlay spawns the game-over overlay with a fade-in tween from fully
// transparent to the configured resting alpha.
func CreateOverlay(e *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(e)

	tw := gween.NewSequence()
	tw.Add(gween.New(0, cfg.GameOver.OverlayAlpha, cfg.GameOver.FadeSeconds, ease.OutQuad))
	components.Tween.Set(overlay, tw)

	return overlay
}

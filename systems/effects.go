package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
)

// UpdateTweens advances every tween sequence by the frame's dt and copies the
// result into the owning overlay. Completed sequences hold their final value.
func UpdateTweens(e *ecs.ECS) {
	dt := float32(Session(e).DT)

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tween := components.Tween.Get(entry)
		value, _, done := tween.Update(dt)
		if entry.HasComponent(components.Overlay) {
			overlay := components.Overlay.Get(entry)
			if done {
				overlay.Alpha = cfg.GameOver.OverlayAlpha
			} else {
				overlay.Alpha = value
			}
		}
	})
}

package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/nrem/corridash/components"
	cfg "github.com/nrem/corridash/config"
	"github.com/nrem/corridash/tags"
)

// UpdateCamera drifts the camera's x after the player's lane and advances any
// active screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	camera.ShakeX = 0
	camera.ShakeY = 0
	updateScreenShake(e, cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerPos := components.Position.Get(playerEntry)

	targetLean := playerPos.X * cfg.Camera.LeanScale
	camera.LeanX += (targetLean - camera.LeanX) * cfg.Camera.LeanSmoothing
}

// updateScreenShake applies a decaying oscillation and removes the component
// when it runs out.
func updateScreenShake(e *ecs.ECS, cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	if settings, ok := components.Settings.First(e.World); ok {
		if !components.Settings.Get(settings).ScreenShake {
			cameraEntry.RemoveComponent(components.ScreenShake)
			return
		}
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.ShakeX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.ShakeY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts the crash shake on the camera. A stronger shake
// already in flight is left alone.
func TriggerScreenShake(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	intensity := cfg.ScreenShake.CrashIntensity
	duration := cfg.ScreenShake.CrashDuration

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

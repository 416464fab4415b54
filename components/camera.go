package components

import "github.com/yohamta/donburi"

type CameraData struct {
	LeanX  float64 // smoothed x drift after the player's lane
	ShakeX float64 // per-frame shake offset, pixels
	ShakeY float64
}

var Camera = donburi.NewComponentType[CameraData]()

type ScreenShakeData struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

package components

import "github.com/yohamta/donburi"

// OverlayData holds the game-over overlay's current fade alpha, advanced by
// its tween each frame.
type OverlayData struct {
	Alpha float32
}

var Overlay = donburi.NewComponentType[OverlayData]()

package components

import "github.com/yohamta/donburi"

// SettingsData holds in-memory presentation toggles set from the menu.
// Nothing here is persisted.
type SettingsData struct {
	ScreenShake bool
	Fog         bool
}

var Settings = donburi.NewComponentType[SettingsData]()

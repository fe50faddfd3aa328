package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted player preferences.
type SettingsData struct {
	Muted      bool
	ColorIndex int
	Dirty      bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()

package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds runtime toggles that survive restarts.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

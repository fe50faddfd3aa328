package config

// SettingsConfig contains defaults for persisted player settings
type SettingsConfig struct {
	AppName           string
	HighScoreKey      string
	SettingsKey       string
	DefaultColorIndex int
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:           "kaipoche",
		HighScoreKey:      "kite_flyer_highscore",
		SettingsKey:       "settings",
		DefaultColorIndex: 0,
	}
}

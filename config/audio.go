package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCut
	SoundSwoosh
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	DefaultWindVol  float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Music             string
	WindLoop          string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.4,
		DefaultSFXVol:   1.0,
		DefaultWindVol:  0.6,
	}

	Sound = SoundConfig{
		Music:    "audio/music/bgm.wav",
		WindLoop: "audio/sfx/wind.wav",
		SFXPaths: map[SoundID]string{
			SoundCut:        "audio/sfx/cut.wav",
			SoundSwoosh:     "audio/sfx/swoosh.wav",
			SoundMenuSelect: "audio/sfx/select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSwoosh: 0.5,
		},
	}
}

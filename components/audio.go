package components

import (
	cfg "github.com/automoto/kaipoche/config"
	"github.com/yohamta/donburi"
)

// AudioData stores audio requests raised by the simulation (singleton).
// The simulation only writes requests; playback drains and applies them.
type AudioData struct {
	PendingSFX []cfg.SoundID
	LastSwoosh float64 // clock ms of the last swoosh request
	WantWind   bool    // wind ambience should be looping
	WantMusic  bool    // background music should be playing
}

var Audio = donburi.NewComponentType[AudioData]()

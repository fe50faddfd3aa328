package systems

import (
	"log"
	gomath "math"
	"sync"

	"github.com/automoto/kaipoche/assets"
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalWindPlayer   *audio.Player
	failedLoops        = map[string]bool{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("[audio] preload %s: %v", path, err)
		}
	}
}

// UpdateAudio drains the queued effects and keeps the music and wind loops
// in line with the simulation's requests. Muting silences everything.
// Playback errors never reach the simulation.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	muted := GetOrCreateSettings(e).Muted

	if !muted {
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	globalMusicPlayer = syncLoop(globalMusicPlayer, cfg.Sound.Music,
		audioData.WantMusic && !muted, cfg.Audio.DefaultMusicVol)
	globalWindPlayer = syncLoop(globalWindPlayer, cfg.Sound.WindLoop,
		audioData.WantWind && !muted, cfg.Audio.DefaultWindVol)
}

func playSFX(soundID cfg.SoundID) {
	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := cfg.Audio.DefaultSFXVol
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// syncLoop starts or pauses a looping player, loading it on first use.
// A loop that failed to load is not retried.
func syncLoop(player *audio.Player, path string, want bool, volume float64) *audio.Player {
	if !want {
		if player != nil && player.IsPlaying() {
			player.Pause()
		}
		return player
	}
	if player == nil {
		if failedLoops[path] {
			return nil
		}
		p, err := globalAudioLoader.LoadLoop(path)
		if err != nil {
			log.Printf("[audio] loop %s: %v", path, err)
			failedLoops[path] = true
			return nil
		}
		p.SetVolume(volume)
		player = p
	}
	if !player.IsPlaying() {
		player.Play()
	}
	return player
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
			LastSwoosh: gomath.Inf(-1),
		})
	}
	return components.Audio.Get(entry)
}

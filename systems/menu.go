package systems

import (
	"log"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMenu maps the keyboard shortcuts onto session transitions. Runs
// before the simulation so every transition lands between frames.
func UpdateMenu(e *ecs.ECS) {
	input := getOrCreateInput(e)
	pressed := func(id cfg.ActionID) bool { return GetAction(input, id).JustPressed }

	if pressed(cfg.ActionMute) {
		ToggleMute(e)
	}

	switch GetOrCreateSession(e).State {
	case cfg.StateStart:
		switch {
		case pressed(cfg.ActionStart):
			Select(e, StartPlaying)
		case pressed(cfg.ActionTutorial):
			Select(e, StartTutorial)
		case pressed(cfg.ActionNextColor):
			NextKiteColor(e)
		}

	case cfg.StateTutorial:
		if pressed(cfg.ActionSkip) {
			Select(e, SkipTutorial)
		}

	case cfg.StateGameOver:
		switch {
		case pressed(cfg.ActionStart):
			Select(e, StartPlaying)
		case pressed(cfg.ActionSkip):
			Select(e, ReturnToMenu)
		}
	}
}

// Select runs a menu transition with the selection sound.
func Select(e *ecs.ECS, transition func(*ecs.ECS)) {
	transition(e)
	PlaySFX(e, cfg.SoundMenuSelect)
}

// ToggleMute flips the mute setting and marks it for saving.
func ToggleMute(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Muted = !settings.Muted
	settings.Dirty = true
	log.Printf("[settings] muted=%v", settings.Muted)
}

// NextKiteColor cycles the player's kite color.
func NextKiteColor(e *ecs.ECS) {
	SetKiteColor(e, GetOrCreateSettings(e).ColorIndex+1)
}

// SetKiteColor selects a kite color by index, wrapping around the palette.
func SetKiteColor(e *ecs.ECS, idx int) {
	n := len(cfg.UI.KiteColors)
	idx = ((idx % n) + n) % n

	settings := GetOrCreateSettings(e)
	settings.ColorIndex = idx
	settings.Dirty = true

	if entry, ok := tags.Player.First(e.World); ok {
		components.Kite.Get(entry).Color = playerColor(e)
	}
	PlaySFX(e, cfg.SoundMenuSelect)
}

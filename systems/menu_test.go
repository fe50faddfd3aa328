package systems

import (
	"testing"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/yohamta/donburi/ecs"
)

// press simulates a fresh key press this frame.
func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

func TestMenuShortcuts(t *testing.T) {
	e := NewSimulation(SimulationOptions{Seed: 3})
	session := GetOrCreateSession(e)

	press(e, cfg.ActionTutorial)
	UpdateMenu(e)
	if session.State != cfg.StateTutorial {
		t.Fatalf("state = %v, want tutorial", session.State)
	}

	press(e, cfg.ActionSkip)
	UpdateMenu(e)
	if session.State != cfg.StatePlaying {
		t.Fatalf("state = %v, skip should start unrestricted play", session.State)
	}

	EndSession(e)
	press(e, cfg.ActionSkip)
	UpdateMenu(e)
	if session.State != cfg.StateStart {
		t.Fatalf("state = %v, want start", session.State)
	}

	press(e, cfg.ActionStart)
	UpdateMenu(e)
	if session.State != cfg.StatePlaying {
		t.Errorf("state = %v, want playing", session.State)
	}
}

func TestHeldKeyTriggersOnce(t *testing.T) {
	e := NewSimulation(SimulationOptions{Seed: 3})

	press(e, cfg.ActionMute)
	UpdateMenu(e)
	// Still held on the next frame.
	input := getOrCreateInput(e)
	input.Previous = input.Current
	UpdateMenu(e)

	if !GetOrCreateSettings(e).Muted {
		t.Error("mute should toggle exactly once while held")
	}
}

func TestKiteColorWrapsAndRecolorsPlayer(t *testing.T) {
	e := NewSimulation(SimulationOptions{Seed: 3, ColorIndex: len(cfg.UI.KiteColors) - 1})

	NextKiteColor(e)

	settings := GetOrCreateSettings(e)
	if settings.ColorIndex != 0 || !settings.Dirty {
		t.Errorf("settings = %+v, want index 0 and dirty", settings)
	}
	if got := playerKite(t, e).Color; got != cfg.UI.KiteColors[0].Color {
		t.Errorf("player color = %v, want %v", got, cfg.UI.KiteColors[0].Color)
	}

	SetKiteColor(e, -1)
	if settings.ColorIndex != len(cfg.UI.KiteColors)-1 {
		t.Errorf("index = %d, want last", settings.ColorIndex)
	}
}

func TestSetPointerClampsToViewport(t *testing.T) {
	input := &components.InputData{}
	SetPointer(input, -40, float64(cfg.C.Height)+300)

	if !input.HasPointer {
		t.Fatal("pointer should be marked present")
	}
	if input.PointerX != 0 || input.PointerY != float64(cfg.C.Height) {
		t.Errorf("pointer = (%v, %v), want clamped to the viewport", input.PointerX, input.PointerY)
	}
}

package systems

import (
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// last raw cursor sample, used to detect the first mouse movement
var (
	lastCursorX, lastCursorY int
	cursorSampled            bool
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE the simulation systems in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	// A touch wins over the mouse. The mouse only counts once it moved,
	// so a stale cursor does not yank the kite on startup.
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		SetPointer(input, float64(x), float64(y))
		return
	}

	x, y := ebiten.CursorPosition()
	moved := cursorSampled && (x != lastCursorX || y != lastCursorY)
	if moved || input.HasPointer {
		SetPointer(input, float64(x), float64(y))
	}
	lastCursorX, lastCursorY = x, y
	cursorSampled = true
}

// SetPointer records a pointer sample clamped to the viewport.
func SetPointer(input *components.InputData, x, y float64) {
	input.PointerX = clamp(x, 0, float64(cfg.C.Width))
	input.PointerY = clamp(y, 0, float64(cfg.C.Height))
	input.HasPointer = true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (no pointer yet)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

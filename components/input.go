package components

import (
	cfg "github.com/automoto/kaipoche/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the most recent pointer position.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	PointerX   float64
	PointerY   float64
	HasPointer bool // false until the first pointer sample arrives
}

var Input = donburi.NewComponentType[InputData]()

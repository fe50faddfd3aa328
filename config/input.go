package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionStart
	ActionTutorial
	ActionSkip
	ActionMute
	ActionNextColor
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionStart:     {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionTutorial:  {Keys: []ebiten.Key{ebiten.KeyT}},
			ActionSkip:      {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionMute:      {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionNextColor: {Keys: []ebiten.Key{ebiten.KeyC}},
		},
	}
}

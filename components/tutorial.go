package components

import (
	cfg "github.com/automoto/kaipoche/config"
	"github.com/yohamta/donburi"
)

// StepTransition is a tutorial step change scheduled for a later frame.
type StepTransition struct {
	FireAt float64 // clock ms
	To     cfg.TutorialStep
}

// TutorialData tracks progress through the guided tutorial.
type TutorialData struct {
	Step      cfg.TutorialStep
	Distance  float64 // movement accumulated during StepMovement
	Spawned   bool    // scripted entity already spawned for this step
	StepStart float64 // clock ms when the current step was entered
	Pending   *StepTransition
}

var Tutorial = donburi.NewComponentType[TutorialData]()

package config

// SessionState is the lifecycle state of one play session
type SessionState int

const (
	StateStart SessionState = iota
	StateTutorial
	StatePlaying
	StateGameOver
)

var sessionStateNames = map[SessionState]string{
	StateStart:    "start",
	StateTutorial: "tutorial",
	StatePlaying:  "playing",
	StateGameOver: "gameover",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Active reports whether the world ticks physics in this state.
func (s SessionState) Active() bool {
	return s == StatePlaying || s == StateTutorial
}

// TutorialStep is one stage of the guided tutorial, in strict forward order
type TutorialStep int

const (
	StepMovement TutorialStep = iota
	StepEnemies
	StepLanterns
	StepWind
)

var tutorialStepNames = map[TutorialStep]string{
	StepMovement: "movement",
	StepEnemies:  "enemies",
	StepLanterns: "lanterns",
	StepWind:     "wind",
}

func (s TutorialStep) String() string {
	if name, ok := tutorialStepNames[s]; ok {
		return name
	}
	return "unknown"
}

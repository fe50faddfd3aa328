package components

import (
	cfg "github.com/automoto/kaipoche/config"
	"github.com/yohamta/donburi"
	"go.opentelemetry.io/otel/trace"
)

// SessionData is the lifecycle and score of the current session (singleton).
type SessionData struct {
	State          cfg.SessionState
	Score          int
	HighScore      int
	HighScoreDirty bool // HighScore changed and is not yet saved
	Cuts           int

	Span trace.Span // nil while idle
}

var Session = donburi.NewComponentType[SessionData]()

// SpawnerData holds the spawn timers for unrestricted play.
type SpawnerData struct {
	LastEnemy   float64 // clock ms
	LastLantern float64 // clock ms
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// ClockData is the monotonic frame clock. Now advances a fixed step per tick.
type ClockData struct {
	Now   float64 // ms
	Frame int64
}

var Clock = donburi.NewComponentType[ClockData]()

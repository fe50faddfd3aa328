package systems

import (
	"image/color"
	"math/rand"

	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/ids"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimulationOptions configures a new world.
type SimulationOptions struct {
	Seed       int64
	IDs        ids.Generator // defaults to a Sequence
	HighScore  int
	Muted      bool
	ColorIndex int
}

// NewSimulation builds a world with every core system registered in frame
// order. It creates no window, audio or renderer.
func NewSimulation(opts SimulationOptions) *ecs.ECS {
	e := NewWorld(opts)
	AddSimulationSystems(e)
	return e
}

// NewWorld creates the player, scenery and singletons without registering
// any system, so a host can put its own systems around the simulation.
func NewWorld(opts SimulationOptions) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	gen := opts.IDs
	if gen == nil {
		gen = ids.NewSequence()
	}
	factory.CreateEnv(e, rand.New(rand.NewSource(opts.Seed)), gen)
	factory.CreatePlayfieldSpace(e)
	factory.CreateScenery(e)

	session := GetOrCreateSession(e)
	session.HighScore = opts.HighScore

	settings := GetOrCreateSettings(e)
	settings.Muted = opts.Muted
	settings.ColorIndex = opts.ColorIndex

	GetOrCreateClock(e)
	GetOrCreateAudio(e)
	GetOrCreateTutorial(e)
	GetOrCreateSpawner(e)
	getOrCreateInput(e)

	factory.CreatePlayer(e, playerStart(), playerColor(e))
	return e
}

// AddSimulationSystems registers the per-frame simulation in its fixed order.
func AddSimulationSystems(e *ecs.ECS) {
	e.AddSystem(UpdateClock)

	// Decoration runs in every state
	e.AddSystem(UpdateClouds)

	e.AddSystem(WithGameplayChecks(UpdatePlayer))
	e.AddSystem(WithGameplayChecks(UpdateTutorial))
	e.AddSystem(WithGameplayChecks(UpdateSpawns))
	e.AddSystem(WithGameplayChecks(UpdateEnemies))
	e.AddSystem(WithGameplayChecks(UpdateLanterns))
	e.AddSystem(WithGameplayChecks(UpdateCleanup))

	e.AddSystem(UpdateFloatingTexts)
}

// playerColor is the selected kite color.
func playerColor(e *ecs.ECS) color.RGBA {
	colors := cfg.UI.KiteColors
	idx := GetOrCreateSettings(e).ColorIndex
	if idx < 0 || idx >= len(colors) {
		idx = 0
	}
	return colors[idx].Color
}

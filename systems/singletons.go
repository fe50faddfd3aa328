package systems

import (
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{State: cfg.StateStart})
	}
	return components.Session.Get(entry)
}

func GetOrCreateTutorial(e *ecs.ECS) *components.TutorialData {
	entry, ok := components.Tutorial.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Tutorial))
	}
	return components.Tutorial.Get(entry)
}

func GetOrCreateSpawner(e *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Spawner))
	}
	return components.Spawner.Get(entry)
}

func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{ColorIndex: cfg.Settings.DefaultColorIndex})
	}
	return components.Settings.Get(entry)
}

// WithGameplayChecks wraps a system to skip execution unless a session
// is actively playing or in the tutorial.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateSession(e).State.Active() {
			return
		}
		system(e)
	}
}

// UpdateClock advances the frame clock by one fixed step.
// Must run before every system that reads the clock.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.Frame++
	clock.Now += cfg.C.FrameMillis
}

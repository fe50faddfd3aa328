package systems

import (
	"log"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/gamemath"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/attribute"
)

// UpdateTutorial fires scheduled step transitions and ends the timed Wind
// step. Runs before spawning so a step entered this frame spawns at once.
func UpdateTutorial(e *ecs.ECS) {
	if GetOrCreateSession(e).State != cfg.StateTutorial {
		return
	}
	tut := GetOrCreateTutorial(e)
	now := GetOrCreateClock(e).Now

	if tut.Pending != nil && now >= tut.Pending.FireAt {
		advanceTutorial(e, tut.Pending.To)
	}

	if tut.Step == cfg.StepWind && now-tut.StepStart > cfg.Tutorial.WindDuration {
		log.Printf("[tutorial] complete")
		StartPlaying(e)
	}
}

// trackTutorialMovement accumulates the player's follow effort during the
// Movement step.
func trackTutorialMovement(e *ecs.ECS, dx, dy float64) {
	tut := GetOrCreateTutorial(e)
	if tut.Step != cfg.StepMovement {
		return
	}
	tut.Distance += abs(dx*cfg.Kite.FollowGain) + abs(dy*cfg.Kite.FollowGain)
	if tut.Distance >= cfg.Tutorial.MovementThreshold {
		advanceTutorial(e, cfg.StepEnemies)
	}
}

// scheduleTutorialAdvance queues a step change for a later frame. Only one
// transition can be pending.
func scheduleTutorialAdvance(e *ecs.ECS, to cfg.TutorialStep, delay float64) {
	tut := GetOrCreateTutorial(e)
	if tut.Pending != nil {
		return
	}
	tut.Pending = &components.StepTransition{
		FireAt: GetOrCreateClock(e).Now + delay,
		To:     to,
	}
}

// advanceTutorial enters step to, clearing the entities of the step being
// left. Steps only move forward.
func advanceTutorial(e *ecs.ECS, to cfg.TutorialStep) {
	tut := GetOrCreateTutorial(e)
	if to <= tut.Step {
		tut.Pending = nil
		return
	}

	switch tut.Step {
	case cfg.StepEnemies:
		destroyTagged(e, tags.Enemy.Each)
	case cfg.StepLanterns:
		destroyTagged(e, tags.Lantern.Each)
	}

	*tut = components.TutorialData{
		Step:      to,
		StepStart: GetOrCreateClock(e).Now,
	}

	sessionEvent(e, "tutorial.step", attribute.String("step", to.String()))
	log.Printf("[tutorial] step %s", to)
}

// activeWindZones is the zone set in effect: all zones in unrestricted
// play and the Wind step, none otherwise.
func activeWindZones(e *ecs.ECS) []gamemath.WindZone {
	session := GetOrCreateSession(e)
	switch session.State {
	case cfg.StatePlaying:
	case cfg.StateTutorial:
		if GetOrCreateTutorial(e).Step != cfg.StepWind {
			return nil
		}
	default:
		return nil
	}
	entry, ok := components.WindField.First(e.World)
	if !ok {
		return nil
	}
	return components.WindField.Get(entry).Zones
}

// destroyTagged removes every entity visited by each, e.g. tags.Enemy.Each.
func destroyTagged(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) {
	var toRemove []*donburi.Entry
	each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		factory.Destroy(e, entry)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

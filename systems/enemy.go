package systems

import (
	gomath "math"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/gamemath"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/attribute"
)

// UpdateEnemies moves every enemy kite, relaxes the strings of the ones
// still flying and resolves cuts against the player.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Kite.Get(playerEntry)
	zones := activeWindZones(ecs)
	now := GetOrCreateClock(ecs).Now
	rng := factory.Rand(ecs)

	var cut []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Kite.Get(entry)
		wind := gamemath.SampleWind(enemy.Position, zones, windParams())

		if enemy.IsCut {
			enemy.Translate(
				gomath.Sin(now/cfg.Enemy.SwayPeriod+enemy.WobbleOffset)*cfg.Enemy.SwayAmplitude+wind.DX,
				cfg.Enemy.FallSpeed,
			)
			enemy.Angle += cfg.Enemy.SpinRate
		} else {
			// Vertical motion is bob and wind only; Velocity.Y is spawn data.
			bob := gomath.Sin(now/cfg.Enemy.BobPeriod+enemy.WobbleOffset) *
				(cfg.Enemy.BobAmplitude + wind.Turbulence*cfg.Enemy.BobTurbGain)
			enemy.Translate(enemy.Velocity.X+wind.DX, wind.DY+bob)
			enemy.StringPath = gamemath.StepTether(enemy.StringPath, enemy.Anchor(), wind.Turbulence,
				tetherParams(cfg.Tether.EnemyRelax), rng.Float64)

			if kiteCut(player, enemy) {
				cut = append(cut, entry)
			}
		}
		components.Object.Get(entry).CenterOn(enemy.Position, float64(cfg.C.SpaceMargin))
	})

	for _, entry := range cut {
		onKiteCut(ecs, entry)
	}
}

// onKiteCut turns an enemy into falling debris and raises the cut feedback.
func onKiteCut(ecs *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Kite.Get(entry)
	enemy.IsCut = true
	PlaySFX(ecs, cfg.SoundCut)

	session := GetOrCreateSession(ecs)
	switch session.State {
	case cfg.StatePlaying:
		AddScore(ecs, cfg.Scoring.CutPoints)
		session.Cuts++
	case cfg.StateTutorial:
		if GetOrCreateTutorial(ecs).Step == cfg.StepEnemies {
			scheduleTutorialAdvance(ecs, cfg.StepLanterns, cfg.Tutorial.CutAdvanceDelay)
		}
	}

	phrases := cfg.Scoring.Phrases
	factory.SpawnFloatingText(ecs, enemy.Position, phrases[factory.Rand(ecs).Intn(len(phrases))])
	sessionEvent(ecs, "kite.cut", attribute.String("enemy.id", enemy.ID), attribute.Int("session.score", session.Score))
}

package systems

import (
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateSpawns creates enemies and lanterns on their timers in unrestricted
// play, or the single scripted entity of the current tutorial step.
func UpdateSpawns(ecs *ecs.ECS) {
	switch GetOrCreateSession(ecs).State {
	case cfg.StatePlaying:
		spawnTimed(ecs)
	case cfg.StateTutorial:
		spawnScripted(ecs)
	}
}

func spawnTimed(ecs *ecs.ECS) {
	now := GetOrCreateClock(ecs).Now
	spawner := GetOrCreateSpawner(ecs)

	if now-spawner.LastEnemy > cfg.Spawn.EnemyInterval {
		spawnRandomEnemy(ecs)
		spawner.LastEnemy = now
	}
	if now-spawner.LastLantern > cfg.Spawn.LanternInterval {
		spawnRandomLantern(ecs)
		spawner.LastLantern = now
	}
}

func spawnRandomEnemy(ecs *ecs.ECS) {
	rng := factory.Rand(ecs)
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	fromLeft := rng.Float64() > 0.5
	speed := cfg.Enemy.MinSpeed + rng.Float64()*cfg.Enemy.SpeedRange
	x, vx := -cfg.Enemy.SpawnOffset, speed
	if !fromLeft {
		x, vx = width+cfg.Enemy.SpawnOffset, -speed
	}

	factory.CreateEnemy(ecs, factory.EnemyParams{
		Position: math.Vec2{X: x, Y: rng.Float64() * height * cfg.Enemy.SpawnBand},
		Velocity: math.Vec2{X: vx, Y: (rng.Float64() - 0.5) * cfg.Enemy.DriftRange},
		Speed:    speed,
		Color:    cfg.Enemy.Palette[rng.Intn(len(cfg.Enemy.Palette))],
		Wobble:   rng.Float64() * cfg.Enemy.WobbleRange,
	})
}

func spawnRandomLantern(ecs *ecs.ECS) {
	rng := factory.Rand(ecs)
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	factory.CreateLantern(ecs,
		math.Vec2{X: rng.Float64() * width, Y: height + cfg.Lantern.SpawnOffset},
		math.Vec2{
			X: (rng.Float64() - 0.5) * cfg.Lantern.DriftRange,
			Y: -cfg.Lantern.RiseSpeed - rng.Float64()*cfg.Lantern.RiseJitter,
		},
		rng.Float64()*cfg.Lantern.WobbleRange,
	)
}

func spawnScripted(ecs *ecs.ECS) {
	tut := GetOrCreateTutorial(ecs)
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	switch tut.Step {
	case cfg.StepEnemies:
		// A scripted enemy that left the screen uncut is respawned.
		if tut.Spawned && tut.Pending == nil && countTagged(ecs, tags.Enemy.Each) == 0 {
			tut.Spawned = false
		}
		if tut.Spawned {
			return
		}
		factory.CreateEnemy(ecs, factory.EnemyParams{
			Position: math.Vec2{X: width + cfg.Enemy.SpawnOffset, Y: height * cfg.Enemy.TutorialHeight},
			Velocity: math.Vec2{X: -cfg.Enemy.TutorialSpeed},
			Speed:    cfg.Enemy.TutorialSpeed,
			Color:    cfg.Enemy.Palette[cfg.Enemy.TutorialColor],
		})
		tut.Spawned = true

	case cfg.StepLanterns:
		if tut.Spawned {
			return
		}
		factory.CreateLantern(ecs,
			math.Vec2{X: width / 2, Y: height + cfg.Lantern.SpawnOffset},
			math.Vec2{Y: -cfg.Lantern.TutorialRise},
			0,
		)
		tut.Spawned = true
	}
}

func countTagged(ecs *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(ecs.World, func(*donburi.Entry) { n++ })
	return n
}

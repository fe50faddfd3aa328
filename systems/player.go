package systems

import (
	gomath "math"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/gamemath"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer steers the player kite toward the pointer, applies wind and
// weave, and relaxes its string.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	kite := components.Kite.Get(playerEntry)
	input := getOrCreateInput(ecs)
	now := GetOrCreateClock(ecs).Now

	wind := gamemath.SampleWind(kite.Position, activeWindZones(ecs), windParams())

	target := kite.Position
	if input.HasPointer {
		target = math.Vec2{X: input.PointerX, Y: input.PointerY}
	}
	dx := target.X - kite.Position.X
	dy := target.Y - kite.Position.Y

	if GetOrCreateSession(ecs).State == cfg.StateTutorial {
		trackTutorialMovement(ecs, dx, dy)
	}

	// First-order follow: velocity is recomputed from scratch every frame.
	kite.Velocity = math.Vec2{
		X: dx*cfg.Kite.FollowGain + wind.DX*cfg.Kite.WindGain,
		Y: dy*cfg.Kite.FollowGain + wind.DY*cfg.Kite.WindGain,
	}
	if abs(kite.Velocity.X) > cfg.Kite.SwooshSpeed || abs(kite.Velocity.Y) > cfg.Kite.SwooshSpeed {
		requestSwoosh(ecs, now)
	}

	t := now / 1000
	weaveX := gomath.Sin(t*cfg.Kite.WeaveFreqX+kite.WobbleOffset) * wind.Turbulence * cfg.Kite.WeaveScale
	weaveY := gomath.Cos(t*cfg.Kite.WeaveFreqY+kite.WobbleOffset) * wind.Turbulence * cfg.Kite.WeaveScale
	kite.Translate(kite.Velocity.X+weaveX, kite.Velocity.Y+weaveY)

	kite.StringPath = gamemath.StepTether(kite.StringPath, kite.Anchor(), wind.Turbulence,
		tetherParams(cfg.Tether.PlayerRelax), factory.Rand(ecs).Float64)

	components.Object.Get(playerEntry).CenterOn(kite.Position, float64(cfg.C.SpaceMargin))

	GetOrCreateAudio(ecs).WantWind = wind.Strength > cfg.Wind.LoopThreshold
}

// requestSwoosh queues the swoosh effect at most once per cooldown.
func requestSwoosh(ecs *ecs.ECS, now float64) {
	audio := GetOrCreateAudio(ecs)
	if now-audio.LastSwoosh < cfg.Kite.SwooshCooldown {
		return
	}
	audio.LastSwoosh = now
	PlaySFX(ecs, cfg.SoundSwoosh)
}

func windParams() gamemath.WindParams {
	return gamemath.WindParams{
		BaseTurbulence: cfg.Wind.BaseTurbulence,
		TurbulenceBase: cfg.Wind.TurbulenceBase,
		TurbulenceGain: cfg.Wind.TurbulenceGain,
	}
}

func tetherParams(relax float64) gamemath.TetherParams {
	return gamemath.TetherParams{
		MaxLength:       cfg.Tether.Length,
		Relax:           relax,
		Sag:             cfg.Tether.Sag,
		JitterThreshold: cfg.Tether.JitterThreshold,
		JitterScale:     cfg.Tether.JitterScale,
	}
}

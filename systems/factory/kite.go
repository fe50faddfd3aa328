package factory

import (
	"image/color"

	"github.com/automoto/kaipoche/archetypes"
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/ids"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// EnemyParams describes one enemy kite at spawn time.
type EnemyParams struct {
	ID       string // generated when empty
	Position math.Vec2
	Velocity math.Vec2
	Speed    float64
	Color    color.RGBA
	Wobble   float64
}

func CreatePlayer(ecs *ecs.ECS, pos math.Vec2, c color.RGBA) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Kite.SetValue(player, components.KiteData{
		Body: components.Body{
			Position: pos,
			Width:    cfg.Kite.Width,
			Height:   cfg.Kite.Height,
		},
		ID:    ids.PlayerID,
		Color: c,
	})
	attachBody(ecs, player, pos, cfg.Kite.Width, cfg.Kite.Height, tags.ResolvPlayer)

	return player
}

func CreateEnemy(ecs *ecs.ECS, p EnemyParams) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	id := p.ID
	if id == "" {
		id = nextID(ecs, "enemy")
	}
	components.Kite.SetValue(enemy, components.KiteData{
		Body: components.Body{
			Position: p.Position,
			Velocity: p.Velocity,
			Width:    cfg.Kite.Width,
			Height:   cfg.Kite.Height,
		},
		ID:           id,
		Color:        p.Color,
		WobbleOffset: p.Wobble,
		Speed:        p.Speed,
	})
	attachBody(ecs, enemy, p.Position, cfg.Kite.Width, cfg.Kite.Height, tags.ResolvEnemy)

	return enemy
}

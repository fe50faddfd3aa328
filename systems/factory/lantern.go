package factory

import (
	"github.com/automoto/kaipoche/archetypes"
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateLantern(ecs *ecs.ECS, pos, vel math.Vec2, wobble float64) *donburi.Entry {
	lantern := archetypes.Lantern.Spawn(ecs)

	components.Lantern.SetValue(lantern, components.LanternData{
		Body: components.Body{
			Position: pos,
			Velocity: vel,
			Width:    cfg.Lantern.Width,
			Height:   cfg.Lantern.Height,
		},
		ID:           nextID(ecs, "lantern"),
		WobbleOffset: wobble,
	})
	// Padded so the broad phase never splits a sub-pixel contact across cells.
	pad := 2 * cfg.Lantern.BodyPad
	attachBody(ecs, lantern, pos, cfg.Lantern.Width+pad, cfg.Lantern.Height+pad, tags.ResolvLantern)

	return lantern
}

package systems

import (
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClouds drifts the decorative clouds and wraps them around the
// screen. Runs in every session state.
func UpdateClouds(ecs *ecs.ECS) {
	width := float64(cfg.C.Width)
	tags.Cloud.Each(ecs.World, func(entry *donburi.Entry) {
		cloud := components.Cloud.Get(entry)
		cloud.Position.X += cloud.Speed
		if cloud.Position.X > width+cfg.Scenery.CloudWrap {
			cloud.Position.X = -cfg.Scenery.CloudWrap
		}
	})
}

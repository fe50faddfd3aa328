package systems

import (
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup removes enemies that left the padded viewport and lanterns
// that rose past the top margin.
func UpdateCleanup(ecs *ecs.ECS) {
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	em := cfg.Enemy.CleanupMargin

	var toRemove []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		if !onScreen(components.Kite.Get(entry), width, height, em) {
			toRemove = append(toRemove, entry)
		}
	})
	tags.Lantern.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Lantern.Get(entry).Pos().Y <= -cfg.Lantern.CleanupMargin {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		factory.Destroy(ecs, entry)
	}
}

// onScreen reports whether p is inside the viewport grown by margin on the
// left, right and bottom. Enemies above the top edge are kept.
func onScreen(p components.Positioned, width, height, margin float64) bool {
	pos := p.Pos()
	return pos.Y < height+margin && pos.X > -margin && pos.X < width+margin
}

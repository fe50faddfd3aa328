package systems

import (
	"github.com/automoto/kaipoche/components"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingTexts advances every feedback token by one frame and drops
// the ones whose life ran out.
func UpdateFloatingTexts(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.FloatingText.Each(ecs.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)

		rise, _ := ft.Rise.Update(1)
		opacity, _ := ft.Fade.Update(1)
		scale, _ := ft.Grow.Update(1)
		ft.Position.X = ft.Origin.X
		ft.Position.Y = ft.Origin.Y - float64(rise)
		ft.Opacity = float64(opacity)
		ft.Scale = float64(scale)

		ft.Life--
		if ft.Life <= 0 {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		factory.Destroy(ecs, entry)
	}
}

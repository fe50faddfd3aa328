package factory

import (
	"math/rand"

	"github.com/automoto/kaipoche/archetypes"
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// GenerateWindZones places the configured number of zones in the upper
// band of a width x height viewport.
func GenerateWindZones(rng *rand.Rand, width, height float64) []gamemath.WindZone {
	w := cfg.Wind
	zones := make([]gamemath.WindZone, 0, w.ZoneCount)
	for i := 0; i < w.ZoneCount; i++ {
		zw := w.MinWidth + rng.Float64()*w.WidthRange
		zh := w.MinHeight + rng.Float64()*w.HeightRange
		dirX := w.MinDirX + rng.Float64()*w.DirXRange
		if rng.Float64() < 0.5 {
			dirX = -dirX
		}
		zones = append(zones, gamemath.WindZone{
			X:          rng.Float64() * (width - zw),
			Y:          rng.Float64() * height * w.Band,
			Width:      zw,
			Height:     zh,
			DirectionX: dirX,
			DirectionY: (rng.Float64() - 0.5) * w.DirYRange,
			Strength:   w.MinStrength + rng.Float64()*w.StrengthRange,
		})
	}
	return zones
}

// GenerateSkyline lines the bottom edge with overlapping buildings until
// the viewport width is covered.
func GenerateSkyline(rng *rand.Rand, width float64) []components.Building {
	s := cfg.Scenery
	var buildings []components.Building
	x := 0.0
	for x < width {
		b := components.Building{
			X:       x,
			Width:   s.BuildingMinWidth + rng.Float64()*s.BuildingWidthRange,
			Height:  s.BuildingMinHeight + rng.Float64()*s.BuildingHeightRange,
			Pointed: rng.Float64() < 0.5,
			Roof:    s.RoofColors[rng.Intn(len(s.RoofColors))],
		}
		buildings = append(buildings, b)
		x += b.Width - s.BuildingOverlap
	}
	return buildings
}

// CreateScenery generates wind zones, skyline and clouds for a new world.
func CreateScenery(ecs *ecs.ECS) {
	rng := Rand(ecs)
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	wind := ecs.World.Entry(ecs.World.Create(components.WindField))
	components.WindField.SetValue(wind, components.WindFieldData{
		Zones: GenerateWindZones(rng, width, height),
	})

	skyline := ecs.World.Entry(ecs.World.Create(components.Skyline))
	components.Skyline.SetValue(skyline, components.SkylineData{
		Buildings: GenerateSkyline(rng, width),
	})

	for i := 0; i < cfg.Scenery.CloudCount; i++ {
		CreateCloud(ecs, math.Vec2{X: rng.Float64() * width, Y: rng.Float64() * height / 2},
			cfg.Scenery.CloudMinScale+rng.Float64()*cfg.Scenery.CloudScaleRange,
			cfg.Scenery.CloudMinSpeed+rng.Float64()*cfg.Scenery.CloudSpeedRange)
	}
}

func CreateCloud(ecs *ecs.ECS, pos math.Vec2, scale, speed float64) *donburi.Entry {
	cloud := archetypes.Cloud.Spawn(ecs)
	components.Cloud.SetValue(cloud, components.CloudData{
		Position: pos,
		Scale:    scale,
		Speed:    speed,
	})
	return cloud
}

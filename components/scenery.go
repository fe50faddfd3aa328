package components

import (
	"image/color"

	"github.com/automoto/kaipoche/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CloudData is a decorative cloud drifting right and wrapping around.
type CloudData struct {
	Position math.Vec2
	Scale    float64
	Speed    float64
}

var Cloud = donburi.NewComponentType[CloudData]()

// WindFieldData holds the zones generated for the current world.
type WindFieldData struct {
	Zones []gamemath.WindZone
}

var WindField = donburi.NewComponentType[WindFieldData]()

// Building is one skyline silhouette, standing on the bottom edge.
type Building struct {
	X       float64
	Width   float64
	Height  float64
	Pointed bool
	Roof    color.RGBA
}

// SkylineData holds the static buildings.
type SkylineData struct {
	Buildings []Building
}

var Skyline = donburi.NewComponentType[SkylineData]()

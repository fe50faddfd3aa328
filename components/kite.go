package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// KiteData is the player kite or an enemy kite.
type KiteData struct {
	Body
	ID           string
	Color        color.RGBA
	Angle        float64 // only changes once cut
	StringPath   []math.Vec2
	IsCut        bool
	WobbleOffset float64
	Speed        float64
}

var Kite = donburi.NewComponentType[KiteData]()

// Anchor is where the string attaches, half a kite below the center.
func (k *KiteData) Anchor() math.Vec2 {
	return math.Vec2{X: k.Position.X, Y: k.Position.Y + k.Height/2}
}

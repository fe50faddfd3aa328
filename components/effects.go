package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FloatingTextData is cut feedback that rises, grows and fades. The tweens
// run in frames; Life counts the frames left.
type FloatingTextData struct {
	ID       string
	Origin   math.Vec2
	Position math.Vec2
	Text     string
	Opacity  float64
	Scale    float64
	Life     int

	Rise *gween.Tween
	Fade *gween.Tween
	Grow *gween.Tween
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()

package components

import "github.com/yohamta/donburi/features/math"

// Positioned is anything with a world-space center.
type Positioned interface {
	Pos() math.Vec2
}

// Movable is a Positioned entity that carries a velocity and can be
// displaced. Kites and lanterns both satisfy it through Body, so wind
// sampling and cleanup treat them alike.
type Movable interface {
	Positioned
	Vel() math.Vec2
	Translate(dx, dy float64)
}

// Body is the shape shared by kites and lanterns. Position is the center.
type Body struct {
	Position math.Vec2
	Velocity math.Vec2
	Width    float64
	Height   float64
}

func (b *Body) Pos() math.Vec2 { return b.Position }

func (b *Body) Vel() math.Vec2 { return b.Velocity }

func (b *Body) Translate(dx, dy float64) {
	b.Position.X += dx
	b.Position.Y += dy
}

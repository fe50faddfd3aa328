package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's collision body. Bodies live in space
// coordinates, which are world coordinates shifted by the space margin so
// that off-screen spawns still land inside the grid.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// CenterOn moves the body so its center sits on the world point p.
func (o ObjectData) CenterOn(p math.Vec2, margin float64) {
	o.X = p.X - o.W/2 + margin
	o.Y = p.Y - o.H/2 + margin
	o.Update()
}

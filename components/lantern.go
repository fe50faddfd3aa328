package components

import "github.com/yohamta/donburi"

// LanternData is a rising sky lantern hazard.
type LanternData struct {
	Body
	ID           string
	WobbleOffset float64
}

var Lantern = donburi.NewComponentType[LanternData]()

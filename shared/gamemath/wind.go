package gamemath

import "github.com/yohamta/donburi/features/math"

// WindZone is an axis-aligned rectangle pushing everything inside it in a
// fixed direction. Zones are immutable once generated.
type WindZone struct {
	X, Y          float64
	Width, Height float64
	DirectionX    float64
	DirectionY    float64
	Strength      float64
}

// Contains reports whether p lies inside the zone, edges included.
func (z WindZone) Contains(p math.Vec2) bool {
	return p.X >= z.X && p.X <= z.X+z.Width &&
		p.Y >= z.Y && p.Y <= z.Y+z.Height
}

// WindSample is the combined effect of every zone covering a point.
type WindSample struct {
	DX, DY     float64
	Turbulence float64
	Strength   float64
}

// WindParams controls how zone strength maps to turbulence.
type WindParams struct {
	BaseTurbulence float64 // turbulence with no zone coverage
	TurbulenceBase float64 // added per covering zone
	TurbulenceGain float64 // added per covering zone, times its strength
}

// SampleWind sums the contribution of every zone containing p. Zones
// outside the active set must not be passed in.
func SampleWind(p math.Vec2, zones []WindZone, params WindParams) WindSample {
	s := WindSample{Turbulence: params.BaseTurbulence}
	for _, z := range zones {
		if !z.Contains(p) {
			continue
		}
		s.DX += z.DirectionX * z.Strength
		s.DY += z.DirectionY * z.Strength
		s.Turbulence += params.TurbulenceBase + params.TurbulenceGain*z.Strength
		s.Strength += z.Strength
	}
	return s
}

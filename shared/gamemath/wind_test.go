package gamemath

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

var testWind = WindParams{BaseTurbulence: 0.2, TurbulenceBase: 1.5, TurbulenceGain: 0.3}

func TestSampleWindOutsideZones(t *testing.T) {
	zones := []WindZone{{X: 100, Y: 100, Width: 50, Height: 50, DirectionX: 1, Strength: 3}}

	points := []math.Vec2{{X: 0, Y: 0}, {X: 99.9, Y: 120}, {X: 151, Y: 120}, {X: 120, Y: 500}}
	for _, p := range points {
		s := SampleWind(p, zones, testWind)
		if s.Strength != 0 || s.DX != 0 || s.DY != 0 {
			t.Errorf("SampleWind(%v) = %+v, want no push", p, s)
		}
		if s.Turbulence != 0.2 {
			t.Errorf("SampleWind(%v).Turbulence = %v, want 0.2", p, s.Turbulence)
		}
	}

	if s := SampleWind(math.Vec2{X: 5, Y: 5}, nil, testWind); s.Turbulence != 0.2 || s.Strength != 0 {
		t.Errorf("empty zone set gave %+v", s)
	}
}

func TestSampleWindSingleZone(t *testing.T) {
	z := WindZone{X: 0, Y: 0, Width: 100, Height: 100, DirectionX: -0.8, DirectionY: 0.2, Strength: 2.5}
	s := SampleWind(math.Vec2{X: 50, Y: 50}, []WindZone{z}, testWind)

	if !approx(s.DX, -0.8*2.5) || !approx(s.DY, 0.2*2.5) {
		t.Errorf("push = (%v,%v), want (%v,%v)", s.DX, s.DY, -0.8*2.5, 0.2*2.5)
	}
	if want := 0.2 + 1.5 + 0.3*2.5; !approx(s.Turbulence, want) {
		t.Errorf("turbulence = %v, want %v", s.Turbulence, want)
	}
	if s.Strength != 2.5 {
		t.Errorf("strength = %v, want 2.5", s.Strength)
	}

	// Edges are inside.
	if s := SampleWind(math.Vec2{X: 100, Y: 0}, []WindZone{z}, testWind); s.Strength != 2.5 {
		t.Errorf("edge point strength = %v, want 2.5", s.Strength)
	}
}

func TestSampleWindOverlapSums(t *testing.T) {
	a := WindZone{X: 0, Y: 0, Width: 100, Height: 100, DirectionX: 1, DirectionY: 0, Strength: 2}
	b := WindZone{X: 50, Y: 50, Width: 100, Height: 100, DirectionX: -0.5, DirectionY: 0.25, Strength: 4}
	p := math.Vec2{X: 75, Y: 75}

	both := SampleWind(p, []WindZone{a, b}, testWind)
	onlyA := SampleWind(p, []WindZone{a}, testWind)
	onlyB := SampleWind(p, []WindZone{b}, testWind)

	if both.DX != onlyA.DX+onlyB.DX || both.DY != onlyA.DY+onlyB.DY {
		t.Errorf("push does not sum: %+v vs %+v + %+v", both, onlyA, onlyB)
	}
	if both.Strength != 6 {
		t.Errorf("strength = %v, want 6", both.Strength)
	}
	wantTurb := onlyA.Turbulence + onlyB.Turbulence - testWind.BaseTurbulence
	if !approx(both.Turbulence, wantTurb) {
		t.Errorf("turbulence = %v, want %v", both.Turbulence, wantTurb)
	}
}

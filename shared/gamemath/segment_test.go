package gamemath

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func v(x, y float64) math.Vec2 { return math.Vec2{X: x, Y: y} }

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 math.Vec2
		want           bool
	}{
		{"crossing X", v(0, 0), v(2, 2), v(0, 2), v(2, 0), true},
		{"parallel horizontal", v(0, 0), v(2, 0), v(0, 1), v(2, 1), false},
		{"collinear overlapping", v(0, 0), v(2, 0), v(1, 0), v(3, 0), false},
		{"endpoint touch", v(0, 0), v(1, 1), v(1, 1), v(2, 0), false},
		{"T on endpoint", v(0, 0), v(2, 0), v(1, 0), v(1, 2), false},
		{"disjoint", v(0, 0), v(1, 1), v(3, 0), v(4, -1), false},
		{"crossing steep", v(5, -10), v(5, 10), v(0, 0), v(10, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p1, tt.p2, tt.p3, tt.p4); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
			if got := SegmentsIntersect(tt.p3, tt.p4, tt.p1, tt.p2); got != tt.want {
				t.Errorf("swapped SegmentsIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChainsCross(t *testing.T) {
	vertical := []math.Vec2{v(50, 0), v(50, 10), v(50, 20), v(50, 30)}
	horizontal := []math.Vec2{v(0, 15), v(40, 15), v(80, 15)}

	if !ChainsCross(vertical, horizontal, 3) {
		t.Error("expected crossing chains")
	}

	// Only the first segment of the vertical chain is searched.
	if ChainsCross(vertical, horizontal, 1) {
		t.Error("crossing lies beyond the searched segments")
	}

	short := []math.Vec2{v(50, 0), v(50, 30)}
	if ChainsCross(short, horizontal, 3) {
		t.Error("chains of two points are never tested")
	}
}

func TestAnyWithin(t *testing.T) {
	pts := []math.Vec2{v(0, 0), v(10, 0)}
	if !AnyWithin(pts, v(13, 0), 4) {
		t.Error("expected point within radius")
	}
	if AnyWithin(pts, v(14, 0), 4) {
		t.Error("boundary distance must not count")
	}
	if AnyWithin(nil, v(0, 0), 100) {
		t.Error("empty chain has no points")
	}
}

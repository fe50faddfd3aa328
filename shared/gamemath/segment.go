package gamemath

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// SegmentsIntersect reports whether segment p1-p2 crosses segment p3-p4.
// Parallel and collinear segments never intersect, and touching at an
// endpoint does not count.
func SegmentsIntersect(p1, p2, p3, p4 math.Vec2) bool {
	det := (p2.X-p1.X)*(p4.Y-p3.Y) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if det == 0 {
		return false
	}
	lambda := ((p4.Y-p3.Y)*(p4.X-p1.X) + (p3.X-p4.X)*(p4.Y-p1.Y)) / det
	gamma := ((p1.Y-p2.Y)*(p4.X-p1.X) + (p2.X-p1.X)*(p4.Y-p1.Y)) / det
	return lambda > 0 && lambda < 1 && gamma > 0 && gamma < 1
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b math.Vec2) float64 {
	return gomath.Hypot(a.X-b.X, a.Y-b.Y)
}

// AnyWithin reports whether any point lies strictly closer than radius to c.
func AnyWithin(points []math.Vec2, c math.Vec2, radius float64) bool {
	for _, p := range points {
		if Distance(p, c) < radius {
			return true
		}
	}
	return false
}

// ChainsCross reports whether any of the first n segments of a crosses any
// segment of b. Both chains need more than two points to be considered.
func ChainsCross(a, b []math.Vec2, n int) bool {
	if len(a) <= 2 || len(b) <= 2 {
		return false
	}
	limit := min(n, len(a)-1)
	for i := 0; i < limit; i++ {
		for j := 0; j < len(b)-1; j++ {
			if SegmentsIntersect(a[i], a[i+1], b[j], b[j+1]) {
				return true
			}
		}
	}
	return false
}

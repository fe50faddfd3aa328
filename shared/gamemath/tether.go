package gamemath

import "github.com/yohamta/donburi/features/math"

// TetherParams controls one step of string relaxation.
type TetherParams struct {
	MaxLength       int
	Relax           float64 // fraction of the gap to the previous node closed per step
	Sag             float64 // constant downward pull per step
	JitterThreshold float64 // turbulence above which nodes shake sideways
	JitterScale     float64
}

// StepTether pushes anchor as the new head of path, evicting the oldest
// tail node once MaxLength is reached, then relaxes every following node
// toward its predecessor. rnd returns values in [0,1). The returned slice
// reuses path's backing array when it has room.
func StepTether(path []math.Vec2, anchor math.Vec2, turbulence float64, p TetherParams, rnd func() float64) []math.Vec2 {
	if len(path) < p.MaxLength {
		path = append(path, math.Vec2{})
	}
	copy(path[1:], path[:len(path)-1])
	path[0] = anchor

	jitter := turbulence > p.JitterThreshold
	for i := 1; i < len(path); i++ {
		prev := path[i-1]
		node := &path[i]
		node.X += (prev.X - node.X) * p.Relax
		node.Y += (prev.Y-node.Y)*p.Relax + p.Sag
		if jitter {
			node.X += (rnd() - 0.5) * turbulence * p.JitterScale
		}
	}
	return path
}

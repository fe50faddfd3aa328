package gamemath

import (
	"math/rand"
	"testing"

	"github.com/yohamta/donburi/features/math"
)

var testTether = TetherParams{MaxLength: 15, Relax: 0.5, Sag: 2, JitterThreshold: 0.6, JitterScale: 3}

func TestStepTetherLengthBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var path []math.Vec2
	prevLen := 0

	for frame := 0; frame < 200; frame++ {
		anchor := math.Vec2{X: float64(frame * 3), Y: 100 + float64(frame%17)}
		path = StepTether(path, anchor, 2.5, testTether, rng.Float64)

		if len(path) > testTether.MaxLength {
			t.Fatalf("frame %d: length %d exceeds cap", frame, len(path))
		}
		if len(path) < prevLen {
			t.Fatalf("frame %d: length shrank from %d to %d", frame, prevLen, len(path))
		}
		if prevLen < testTether.MaxLength && len(path) != prevLen+1 {
			t.Fatalf("frame %d: length %d, want %d", frame, len(path), prevLen+1)
		}
		if path[0] != anchor {
			t.Fatalf("frame %d: head %v, want anchor %v", frame, path[0], anchor)
		}
		prevLen = len(path)
	}
}

func TestStepTetherRelaxesTowardHead(t *testing.T) {
	path := []math.Vec2{{X: 0, Y: 0}}
	path = StepTether(path, math.Vec2{X: 10, Y: 0}, 0.2, testTether, func() float64 { return 0.99 })

	if len(path) != 2 {
		t.Fatalf("len = %d, want 2", len(path))
	}
	// Old head moves half way toward the new head and sags by 2.
	if path[1].X != 5 || path[1].Y != 2 {
		t.Errorf("tail = %v, want (5,2)", path[1])
	}
}

func TestStepTetherJitterOnlyAboveThreshold(t *testing.T) {
	base := []math.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}}
	calm := StepTether(append([]math.Vec2(nil), base...), math.Vec2{}, 0.6, testTether, func() float64 { return 1 })
	windy := StepTether(append([]math.Vec2(nil), base...), math.Vec2{}, 2, testTether, func() float64 { return 1 })

	if calm[1].X != 0 || calm[2].X != 0 {
		t.Errorf("no jitter expected at threshold, got %v", calm)
	}
	// (1 - 0.5) * 2 * 3 = 3 on every non-head node
	if windy[1].X != 3 {
		t.Errorf("jittered node x = %v, want 3", windy[1].X)
	}
}

func TestStepTetherEvictsOldestTail(t *testing.T) {
	p := TetherParams{MaxLength: 3, Relax: 0.5}
	path := []math.Vec2{{X: 1}, {X: 2}, {X: 100}}
	path = StepTether(path, math.Vec2{X: 0}, 0, p, func() float64 { return 0.5 })

	if len(path) != 3 {
		t.Fatalf("len = %d, want 3", len(path))
	}
	// {X:100} was dropped; {X:1} relaxes to 0.5, {X:2} relaxes toward 0.5.
	if path[1].X != 0.5 || path[2].X != 1.25 {
		t.Errorf("path = %v, want x values 0, 0.5, 1.25", path)
	}
}

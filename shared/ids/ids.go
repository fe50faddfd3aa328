// Package ids generates entity identities.
package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerID is the fixed identity of the player kite.
const PlayerID = "player"

// Generator hands out a fresh identity for every spawned entity.
type Generator interface {
	Next(kind string) string
}

// Sequence produces "<kind>-<n>" identities from a monotonically
// increasing counter. Deterministic, so tests can assert on them.
type Sequence struct {
	n uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next(kind string) string {
	s.n++
	return fmt.Sprintf("%s-%d", kind, s.n)
}

// UUID produces random "<kind>-<uuid>" identities.
type UUID struct{}

func (UUID) Next(kind string) string {
	return kind + "-" + uuid.NewString()
}

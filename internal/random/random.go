// Package random provides the random sources used by the simulations.
//
// Simulations take a Source rather than calling math/rand directly, so tests
// can replay a fixed sequence and production runs can be reproduced from the
// logged seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source yields uniform numbers in [0, 1).
type Source interface {
	Float64() float64
}

// Rand is a seeded generator that is safe for concurrent use.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays a fixed list of values, wrapping around at the end.
// An empty Sequence always returns 0.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Package rng holds the draw sources the simulation consumes. Every probabilistic
// path in the engine takes a Source so tests can script outcomes.
package rng

import (
	"math/rand"
	"sync"
)

type Source interface {
	// Float64 returns a draw in [0,1).
	Float64() float64
	// Intn returns a draw in [0,n). n must be > 0.
	Intn(n int) int
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a Source safe for use by concurrent sessions.
func NewSeeded(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Sequence replays a fixed list of draws, wrapping around when exhausted.
// Intn consumes one draw and scales it, so a single list drives both kinds of call.
type Sequence struct {
	Values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 0.999999
	}
	return v
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Consumed reports how many draws have been taken.
func (s *Sequence) Consumed() int {
	return s.next
}

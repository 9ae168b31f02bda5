package rng

import "math/rand"

// Source is the capability every provider draws from. Implementations
// advance their own state on each call; providers never depend on a
// concrete engine type.
type Source interface {
	Uint32() uint32
	Uint64() uint64
}

var _ Source = (*Chi)(nil)

// RandSource adapts an engine to math/rand so the stdlib distributions
// can consume it.
func RandSource(c *Chi) rand.Source64 {
	return &randSource{c}
}

type randSource struct {
	c *Chi
}

func (s *randSource) Uint64() uint64 {
	return s.c.Uint64()
}

func (s *randSource) Int63() int64 {
	return int64(s.c.Uint64() >> 1)
}

func (s *randSource) Seed(seed int64) {
	s.c.Restore(Snapshot{Seed: seed})
}

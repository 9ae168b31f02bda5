// Package rng implements a counter-based pseudorandom engine. The word at
// any position of a stream is a pure function of (seed, phase), so a stream
// can be replayed from any point and split by phase offset. The engine is
// deliberately non-cryptographic.
package rng

// Chi is a counter-based pseudorandom engine. Output words are derived
// from the immutable seed and a monotonically advancing phase counter;
// the struct only carries the counter forward. For a fixed seed the word
// sequence is identical across processes, machines and time.
//
// A Chi is not safe for concurrent use. Use one engine per goroutine and
// split streams by seed or phase offset instead of sharing.
type Chi struct {
	seed  int64
	phase int64
}

// NewChi returns an engine positioned at phase zero of the seed's stream.
func NewChi(seed int64) *Chi {
	return &Chi{seed: seed}
}

// NewChiString seeds the engine from a string. Equal strings always yield
// the same stream.
func NewChiString(s string) *Chi {
	return &Chi{seed: SeedString(s)}
}

// FromSnapshot reconstructs an engine that continues the exact stream the
// snapshotted engine would have produced.
func FromSnapshot(snap Snapshot) *Chi {
	return &Chi{seed: snap.Seed, phase: snap.Phase}
}

// Seed returns the immutable stream identifier.
func (c *Chi) Seed() int64 { return c.seed }

// Phase returns the position of the next word in the stream.
func (c *Chi) Phase() int64 { return c.phase }

// Uint32 returns the next 32-bit word and advances the phase by one.
func (c *Chi) Uint32() uint32 {
	w := ValueAt(c.seed, c.phase)
	c.phase++
	return w
}

// Uint64 concatenates two successive 32-bit words, first high then low,
// advancing the phase by two.
func (c *Chi) Uint64() uint64 {
	hi := c.Uint32()
	lo := c.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Skip moves the phase counter n words forward without deriving them.
// Negative n rewinds.
func (c *Chi) Skip(n int64) {
	c.phase += n
}

// Snapshot captures the complete engine state. The two integers are the
// only thing an embedder needs to persist for a deterministic resume.
func (c *Chi) Snapshot() Snapshot {
	return Snapshot{Seed: c.seed, Phase: c.phase}
}

// Restore repositions the engine at a captured snapshot. Subsequent draws
// reproduce bit-for-bit the continuation the snapshotted engine would have
// produced.
func (c *Chi) Restore(snap Snapshot) {
	c.seed, c.phase = snap.Seed, snap.Phase
}

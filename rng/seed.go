package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed gathers a high-entropy seed from crypto/rand. Use it when the
// embedder has no seed to replay; persist the value if the stream must be
// reproducible later.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SeedString derives a deterministic seed from a string by interleaving
// its bytes, eight at a time, into a running accumulator. The length is
// folded in first so prefixes of each other do not collide trivially.
func SeedString(s string) int64 {
	h := uint64(len(s)) + 1
	for len(s) > 0 {
		var chunk uint64
		n := len(s)
		if n > 8 {
			n = 8
		}
		for i := 0; i < n; i++ {
			chunk |= uint64(s[i]) << (8 * i)
		}
		h = Interleave(h, chunk)
		s = s[n:]
	}
	return int64(h)
}

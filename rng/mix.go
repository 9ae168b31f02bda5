package rng

import "math/bits"

// Odd 64-bit multiplicative mixing constants. Fixed; there is no
// configuration surface.
const (
	mixMul = 0xff51afd7ed558ccd
	mixXor = 0xc4ceb9fe1a85ec53

	interleaveMul = 0x9e3779b97f4a7c15
)

// Mix folds a 32-bit value into a 64-bit accumulator: XOR, multiply by an
// odd constant, rotate right by an amount taken from the product's own top
// bits, XOR with a second odd constant. One flipped input bit flips about
// half the output bits.
func Mix(acc uint64, v uint32) uint64 {
	acc ^= uint64(v)
	acc *= mixMul
	acc = bits.RotateLeft64(acc, -int(acc>>58))
	return acc ^ mixXor
}

// ValueAt derives the 32-bit word at the given phase of a seed's stream.
// It is a pure function of its arguments, which is what makes O(1) replay
// and phase-offset stream splitting possible.
func ValueAt(seed, phase int64) uint32 {
	p := uint64(phase)
	h := Mix(uint64(seed), uint32(p))
	h = Mix(h, uint32(p>>32))
	return uint32(h ^ (h >> 32))
}

// Interleave deterministically folds two 64-bit values into one well-mixed
// 64-bit value.
func Interleave(a, b uint64) uint64 {
	h := Mix(a, uint32(b))
	h = Mix(h, uint32(b>>32))
	h ^= h >> 29
	h *= interleaveMul
	return h ^ (h >> 31)
}

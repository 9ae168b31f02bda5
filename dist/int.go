// Package dist turns raw engine words into unbiased integers, interval-
// correct unit reals and standard-normal variates. Every function draws
// through the rng.Source capability, never a concrete engine.
package dist

import (
	"fmt"
	"math"

	"github.com/moontrade/chi/rng"
	"golang.org/x/exp/constraints"
)

// Int returns an integer in [min, max) drawn without modulo bias: words
// landing in the remainder band above the largest whole multiple of the
// range are rejected and redrawn before the reduction. Ranges that fit a
// 32-bit word draw 32-bit words; wider ranges draw 64-bit words. A range
// of exactly one value returns min without consuming entropy.
//
// Panics if max <= min; bad bounds are a programmer error, not a sampling
// outcome.
func Int[T constraints.Integer](src rng.Source, min, max T) T {
	if max <= min {
		panic(fmt.Sprintf("dist: invalid bounds [%v, %v)", min, max))
	}
	// Unsigned range size is exact for every width thanks to two's
	// complement wraparound.
	n := uint64(max) - uint64(min)
	if n == 1 {
		return min
	}
	var v uint64
	if n <= math.MaxUint32 {
		v = uint64(bounded32(src, uint32(n)))
	} else {
		v = bounded64(src, n)
	}
	return T(uint64(min) + v)
}

func bounded32(src rng.Source, n uint32) uint32 {
	if n&(n-1) == 0 {
		return src.Uint32() & (n - 1)
	}
	// lo is 2^32 mod n: words below it fall in the remainder band that
	// would skew the reduction.
	lo := -n % n
	for {
		if v := src.Uint32(); v >= lo {
			return v % n
		}
	}
}

func bounded64(src rng.Source, n uint64) uint64 {
	if n&(n-1) == 0 {
		return src.Uint64() & (n - 1)
	}
	lo := -n % n
	for {
		if v := src.Uint64(); v >= lo {
			return v % n
		}
	}
}

package dist

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/moontrade/chi/rng"
	"golang.org/x/exp/constraints"
)

// Interval selects which endpoints of the unit interval a real draw may
// return. Several downstream transforms (log-of-uniform in particular)
// are undefined at exactly 0 or exactly 1, so the exclusion must be
// guaranteed, not merely improbable.
type Interval uint8

const (
	// ExcludeMax draws from [0, 1). The zero value and the default.
	ExcludeMax Interval = iota
	// ExcludeMin draws from (0, 1].
	ExcludeMin
	// ExcludeBoth draws from (0, 1).
	ExcludeBoth
	// IncludeBoth draws from [0, 1].
	IncludeBoth
)

// Float returns a unit-interval value of T. A full-width integer draw is
// divided by the integer's range; when an excluded endpoint is hit
// exactly, the result is nudged one ULP inward.
func Float[T constraints.Float](src rng.Source, ival Interval) T {
	switch unsafe.Sizeof(T(0)) {
	case 8:
		return T(float64Unit(src, ival))
	case 4:
		return T(float32Unit(src, ival))
	default:
		panic(ErrUnsupportedWidth)
	}
}

// Uniform scales a unit draw to [lo, hi) (or the ival-adjusted variant).
// Bounds are validated before any entropy is consumed.
func Uniform[T constraints.Float](src rng.Source, lo, hi T, ival Interval) (T, error) {
	flo, fhi := float64(lo), float64(hi)
	if math.IsNaN(flo) || math.IsNaN(fhi) || math.IsInf(flo, 0) || math.IsInf(fhi, 0) || fhi <= flo {
		return 0, fmt.Errorf("%w: lo=%v hi=%v", ErrInvalidBounds, lo, hi)
	}
	return lo + (hi-lo)*Float[T](src, ival), nil
}

func float64Unit(src rng.Source, ival Interval) float64 {
	f := float64(src.Uint64()) / float64(math.MaxUint64)
	switch ival {
	case ExcludeMax:
		if f == 1 {
			f = math.Nextafter(1, 0)
		}
	case ExcludeMin:
		if f == 0 {
			f = math.Nextafter(0, 1)
		}
	case ExcludeBoth:
		if f == 0 {
			f = math.Nextafter(0, 1)
		} else if f == 1 {
			f = math.Nextafter(1, 0)
		}
	}
	return f
}

func float32Unit(src rng.Source, ival Interval) float32 {
	f := float32(src.Uint32()) / float32(math.MaxUint32)
	switch ival {
	case ExcludeMax:
		if f == 1 {
			f = math.Nextafter32(1, 0)
		}
	case ExcludeMin:
		if f == 0 {
			f = math.Nextafter32(0, 1)
		}
	case ExcludeBoth:
		if f == 0 {
			f = math.Nextafter32(0, 1)
		} else if f == 1 {
			f = math.Nextafter32(1, 0)
		}
	}
	return f
}

package dist

import (
	"fmt"
	"math"

	"github.com/moontrade/chi/rng"
)

// Normal produces standard-normal variates with the Marsaglia polar
// transform. Each accepted trial yields two independent variates; the
// second is cached and returned by the following call, halving the
// average number of rejection trials per draw.
//
// A Normal is stateful (one cached variate) and, like the engine it
// wraps, not safe for concurrent use.
type Normal struct {
	src   rng.Source
	spare float64
	ready bool
}

// NewNormal returns a provider drawing from src.
func NewNormal(src rng.Source) *Normal {
	return &Normal{src: src}
}

// Next returns one standard-normal variate.
func (n *Normal) Next() float64 {
	if n.ready {
		n.ready = false
		return n.spare
	}
	for {
		u := 2*float64Unit(n.src, IncludeBoth) - 1
		v := 2*float64Unit(n.src, IncludeBoth) - 1
		s := u*u + v*v
		if s > 0 && s < 1 {
			f := math.Sqrt(-2 * math.Log(s) / s)
			n.spare = v * f
			n.ready = true
			return u * f
		}
	}
}

// NextAt returns a variate with the given mean and standard deviation.
// Parameters are validated before any entropy is consumed.
func (n *Normal) NextAt(mean, stddev float64) (float64, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(stddev) || math.IsInf(stddev, 0) || stddev <= 0 {
		return 0, fmt.Errorf("%w: mean=%v stddev=%v", ErrInvalidParam, mean, stddev)
	}
	return mean + stddev*n.Next(), nil
}

package sample

import (
	"fmt"
	"math"

	"github.com/moontrade/chi/dist"
	"github.com/moontrade/chi/rng"
)

// Alias is a Walker alias table: O(n) to build from arbitrary
// non-negative weights, O(1) per categorical draw.
type Alias struct {
	prob  []float64
	alias []int
}

// NewAlias builds a table from weights. Weights must be non-negative,
// finite and not all zero; validation happens before any entropy is
// consumed.
func NewAlias(weights []float64) (*Alias, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty weights", dist.ErrInvalidParam)
	}
	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weight %d is %v", dist.ErrInvalidParam, i, w)
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: weights sum to %v", dist.ErrInvalidParam, total)
	}

	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
	}
	a := &Alias{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, s := range scaled {
		if s < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}
	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]
		a.prob[l] = scaled[l]
		a.alias[l] = g
		scaled[g] += scaled[l] - 1
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	// Leftovers are exactly 1 up to rounding.
	for _, i := range large {
		a.prob[i] = 1
	}
	for _, i := range small {
		a.prob[i] = 1
	}
	return a, nil
}

// Len returns the number of categories.
func (a *Alias) Len() int { return len(a.prob) }

// Next returns a category index distributed per the construction weights.
func (a *Alias) Next(src rng.Source) int {
	i := dist.Int(src, 0, len(a.prob))
	if dist.Float[float64](src, dist.ExcludeMax) < a.prob[i] {
		return i
	}
	return a.alias[i]
}

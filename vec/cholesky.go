package vec

import (
	"fmt"
	"math"
)

// Pivots closer to zero than this cannot be divided by safely.
const minPivot = 1e-12

// Cholesky returns the lower-triangular factor L with L·Lᵗ equal to the
// viewed matrix, which must be square, symmetric and positive-definite.
// Only the lower triangle is read. Intended for float element types;
// accumulation happens in float64 regardless of E.
//
// A consumed operand is disposed on both the success and the error path.
func (a MatView[E]) Cholesky() (Matrix[E], error) {
	m := a.m
	if m.rows != m.cols {
		panic(shapeMismatch("cholesky", m.rows, m.cols, m.cols, m.rows))
	}
	n := m.rows
	src := m.Raw()
	// Zeroed so the upper triangle is already in place.
	out := NewMatrix[E](n, n)
	dst := out.Raw()
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := float64(src[i*n+j])
			for k := 0; k < j; k++ {
				sum -= float64(dst[i*n+k]) * float64(dst[j*n+k])
			}
			if i == j {
				if sum <= 0 {
					out.Dispose()
					a.done()
					return Matrix[E]{}, fmt.Errorf("%w: pivot %d is %v", ErrNotPositiveDefinite, i, sum)
				}
				d := math.Sqrt(sum)
				if d < minPivot {
					out.Dispose()
					a.done()
					return Matrix[E]{}, fmt.Errorf("%w: pivot %d is %v", ErrSingularPivot, i, d)
				}
				dst[i*n+i] = E(d)
			} else {
				dst[i*n+j] = E(sum / float64(dst[j*n+j]))
			}
		}
	}
	a.done()
	return out, nil
}

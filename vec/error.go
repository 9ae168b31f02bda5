package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal
	// pivot is not positive.
	ErrNotPositiveDefinite = errors.New("matrix is not positive-definite")

	// ErrSingularPivot is returned by Cholesky when a pivot is too close
	// to zero to divide by.
	ErrSingularPivot = errors.New("near-zero pivot")
)

const (
	panicDisposed   = "vec: use of disposed value"
	panicDoubleFree = "vec: pooled buffer returned twice"
)

func shapeMismatch(op string, ar, ac, br, bc int) string {
	return fmt.Sprintf("vec: %s shape mismatch %dx%d vs %dx%d", op, ar, ac, br, bc)
}

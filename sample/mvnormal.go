// Package sample implements multivariate samplers over the provider layer
// and the pooled vector/matrix substrate.
package sample

import (
	"fmt"

	"github.com/moontrade/chi/dist"
	"github.com/moontrade/chi/rng"
	"github.com/moontrade/chi/vec"
)

// MVNormal draws correlated vectors from a multivariate normal
// distribution. The covariance factorization happens once at
// construction; each draw is one matrix-vector product over pooled
// scratch memory.
type MVNormal struct {
	mean vec.Vector[float64]
	chol vec.Matrix[float64]
	norm *dist.Normal
}

// NewMVNormal validates and factorizes the distribution parameters.
// mean's length must equal cov's order and cov must be symmetric
// positive-definite; only its lower triangle is read. The inputs are
// copied, the caller keeps ownership of cov.
func NewMVNormal(src rng.Source, mean []float64, cov *vec.Matrix[float64]) (*MVNormal, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("%w: empty mean", dist.ErrInvalidParam)
	}
	if cov.Rows() != cov.Cols() || cov.Rows() != len(mean) {
		return nil, fmt.Errorf("%w: mean length %d vs covariance %dx%d",
			dist.ErrInvalidParam, len(mean), cov.Rows(), cov.Cols())
	}
	chol, err := cov.View().Cholesky()
	if err != nil {
		return nil, err
	}
	return &MVNormal{
		mean: vec.VectorOf(mean...),
		chol: chol,
		norm: dist.NewNormal(src),
	}, nil
}

// Dim returns the dimensionality of the distribution.
func (d *MVNormal) Dim() int { return d.mean.Len() }

// Sample returns one draw as an owned vector. The caller disposes it.
func (d *MVNormal) Sample() vec.Vector[float64] {
	z := vec.NewVectorUninit[float64](d.mean.Len())
	zs := z.Raw()
	for i := range zs {
		zs[i] = d.norm.Next()
	}
	// y = mean + L·z; the scratch and the product are consumed so their
	// pooled storage is back in the pool before Sample returns.
	y := d.chol.View().MulVec(z.Consume())
	return d.mean.View().Add(y.Consume())
}

// Close releases the sampler's pooled state. The sampler must not be
// used afterward.
func (d *MVNormal) Close() {
	d.mean.Dispose()
	d.chol.Dispose()
}

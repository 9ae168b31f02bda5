package sample_test

import (
	"testing"

	"github.com/moontrade/chi/dist"
	"github.com/moontrade/chi/rng"
	"github.com/moontrade/chi/sample"
	"github.com/moontrade/chi/vec"
	"github.com/stretchr/testify/require"
)

func TestMVNormalMoments(t *testing.T) {
	cov := vec.MatrixOf(2, 2,
		2.0, 0.6,
		0.6, 1.0)
	defer cov.Dispose()

	d, err := sample.NewMVNormal(rng.NewChi(42), []float64{1, -2}, &cov)
	require.NoError(t, err)
	defer d.Close()
	require.Equal(t, 2, d.Dim())

	const draws = 100000
	var m0, m1 float64
	xs := make([][2]float64, draws)
	for i := 0; i < draws; i++ {
		v := d.Sample()
		xs[i] = [2]float64{v.At(0), v.At(1)}
		m0 += xs[i][0]
		m1 += xs[i][1]
		v.Dispose()
	}
	m0 /= draws
	m1 /= draws
	require.InDelta(t, 1.0, m0, 0.05)
	require.InDelta(t, -2.0, m1, 0.05)

	var c00, c01, c11 float64
	for _, x := range xs {
		c00 += (x[0] - m0) * (x[0] - m0)
		c01 += (x[0] - m0) * (x[1] - m1)
		c11 += (x[1] - m1) * (x[1] - m1)
	}
	require.InDelta(t, 2.0, c00/draws, 0.05)
	require.InDelta(t, 0.6, c01/draws, 0.05)
	require.InDelta(t, 1.0, c11/draws, 0.05)
}

func TestMVNormalDeterminism(t *testing.T) {
	cov := vec.MatrixOf(2, 2,
		1.0, 0.2,
		0.2, 1.0)
	defer cov.Dispose()

	a, err := sample.NewMVNormal(rng.NewChi(7), []float64{0, 0}, &cov)
	require.NoError(t, err)
	defer a.Close()
	b, err := sample.NewMVNormal(rng.NewChi(7), []float64{0, 0}, &cov)
	require.NoError(t, err)
	defer b.Close()

	for i := 0; i < 100; i++ {
		va := a.Sample()
		vb := b.Sample()
		require.Equal(t, va.Raw(), vb.Raw())
		va.Dispose()
		vb.Dispose()
	}
}

func TestMVNormalValidation(t *testing.T) {
	cov := vec.MatrixOf(2, 2,
		1.0, 0.0,
		0.0, 1.0)
	defer cov.Dispose()

	_, err := sample.NewMVNormal(rng.NewChi(1), nil, &cov)
	require.ErrorIs(t, err, dist.ErrInvalidParam)

	_, err = sample.NewMVNormal(rng.NewChi(1), []float64{1, 2, 3}, &cov)
	require.ErrorIs(t, err, dist.ErrInvalidParam)

	bad := vec.MatrixOf(2, 2,
		1.0, 2.0,
		2.0, 1.0)
	defer bad.Dispose()
	_, err = sample.NewMVNormal(rng.NewChi(1), []float64{0, 0}, &bad)
	require.ErrorIs(t, err, vec.ErrNotPositiveDefinite)
}

func TestMVNormalNoLeaks(t *testing.T) {
	vec.SetDebug(true)
	defer vec.SetDebug(false)

	// Dimension above the inline threshold so mean, scratch and every
	// intermediate all carry pooled buffers.
	const dim = 40
	mean := make([]float64, dim)
	cov := vec.Identity[float64](dim)

	d, err := sample.NewMVNormal(rng.NewChi(11), mean, &cov)
	require.NoError(t, err)
	cov.Dispose()

	for i := 0; i < 50; i++ {
		v := d.Sample()
		require.True(t, v.Pooled())
		v.Dispose()
	}
	d.Close()
	require.Equal(t, 0, vec.Outstanding())
}

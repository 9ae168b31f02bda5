package sample_test

import (
	"math"
	"testing"

	"github.com/moontrade/chi/dist"
	"github.com/moontrade/chi/rng"
	"github.com/moontrade/chi/sample"
	"github.com/stretchr/testify/require"
)

func TestAliasFrequencies(t *testing.T) {
	weights := []float64{1, 2, 3, 4}
	a, err := sample.NewAlias(weights)
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())

	src := rng.NewChi(42)
	const draws = 1000000
	counts := make([]int, len(weights))
	for i := 0; i < draws; i++ {
		counts[a.Next(src)]++
	}
	for i, w := range weights {
		want := w / 10
		require.InDelta(t, want, float64(counts[i])/draws, 0.005, "category %d", i)
	}
}

func TestAliasZeroWeightNeverDrawn(t *testing.T) {
	a, err := sample.NewAlias([]float64{0, 1, 0, 1})
	require.NoError(t, err)
	src := rng.NewChi(1)
	for i := 0; i < 100000; i++ {
		got := a.Next(src)
		require.True(t, got == 1 || got == 3, "drew zero-weight category %d", got)
	}
}

func TestAliasSingleCategory(t *testing.T) {
	a, err := sample.NewAlias([]float64{5})
	require.NoError(t, err)
	src := rng.NewChi(2)
	for i := 0; i < 100; i++ {
		require.Equal(t, 0, a.Next(src))
	}
}

func TestAliasValidation(t *testing.T) {
	cases := [][]float64{
		nil,
		{},
		{1, -1},
		{0, 0},
		{math.NaN(), 1},
		{math.Inf(1), 1},
	}
	for _, weights := range cases {
		_, err := sample.NewAlias(weights)
		require.ErrorIs(t, err, dist.ErrInvalidParam, "weights %v", weights)
	}
}

func TestAliasDeterminism(t *testing.T) {
	a, err := sample.NewAlias([]float64{3, 1, 4, 1, 5})
	require.NoError(t, err)
	x := rng.NewChi(3)
	y := rng.NewChi(3)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(x), a.Next(y))
	}
}

func TestShuffle(t *testing.T) {
	src := rng.NewChi(4)
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	sample.Shuffle(src, s)

	seen := make(map[int]bool, len(s))
	for _, v := range s {
		seen[v] = true
	}
	require.Len(t, seen, 10)

	// Same seed, same permutation.
	s2 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	sample.Shuffle(rng.NewChi(4), s2)
	require.Equal(t, s, s2)
}

func TestPick(t *testing.T) {
	src := rng.NewChi(5)
	s := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		require.Contains(t, s, sample.Pick(src, s))
	}
	require.Panics(t, func() { sample.Pick(src, []string{}) })
}

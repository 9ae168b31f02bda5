package rng_test

import (
	"math/rand"
	"testing"

	"github.com/moontrade/chi/rng"
	"github.com/stretchr/testify/require"
)

// Golden values for seed 42. Fixed by the engine definition; any change
// here is a breaking change for every persisted stream.
var seed42Words = []uint32{
	0xa057db03, 0xd66350db, 0x5be8a31f, 0x3598fd98,
	0x2ac8085d, 0xa6754847, 0x4c04eb4f, 0x9708417e,
}

func TestGoldenSeed42(t *testing.T) {
	require.Equal(t, seed42Words[0], rng.ValueAt(42, 0))

	c := rng.NewChi(42)
	for i, want := range seed42Words {
		require.Equal(t, want, c.Uint32(), "word %d", i)
	}

	c = rng.NewChi(42)
	require.Equal(t, uint64(0xa057db03d66350db), c.Uint64())
	require.Equal(t, int64(2), c.Phase())
}

func TestDeterminism(t *testing.T) {
	a := rng.NewChi(-12345)
	b := rng.NewChi(-12345)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32())
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	require.Equal(t, a.Phase(), b.Phase())
}

func TestUint64Composition(t *testing.T) {
	a := rng.NewChi(7)
	b := rng.NewChi(7)
	hi := b.Uint32()
	lo := b.Uint32()
	require.Equal(t, uint64(hi)<<32|uint64(lo), a.Uint64())
}

func TestSnapshotRoundTrip(t *testing.T) {
	full := rng.NewChi(42)
	var uninterrupted [8]uint32
	for i := range uninterrupted {
		uninterrupted[i] = full.Uint32()
	}

	c := rng.NewChi(42)
	for i := 0; i < 5; i++ {
		c.Uint32()
	}
	snap := c.Snapshot()
	require.Equal(t, int64(42), snap.Seed)
	require.Equal(t, int64(5), snap.Phase)

	restored := rng.FromSnapshot(snap)
	for i := 5; i < 8; i++ {
		require.Equal(t, uninterrupted[i], restored.Uint32(), "draw %d", i)
	}

	// Restore in place behaves the same as reconstruction.
	c.Restore(snap)
	for i := 5; i < 8; i++ {
		require.Equal(t, uninterrupted[i], c.Uint32(), "draw %d", i)
	}

	// N = 0: restoring without drawing leaves state identical.
	d := rng.NewChi(9)
	require.Equal(t, d.Snapshot(), rng.FromSnapshot(d.Snapshot()).Snapshot())
}

func TestRandomAccessReplay(t *testing.T) {
	c := rng.NewChi(1001)
	for p := int64(0); p < 100; p++ {
		require.Equal(t, rng.ValueAt(1001, p), c.Uint32(), "phase %d", p)
	}
}

func TestSkip(t *testing.T) {
	a := rng.NewChi(5)
	b := rng.NewChi(5)
	for i := 0; i < 10; i++ {
		a.Uint32()
	}
	b.Skip(10)
	require.Equal(t, a.Uint32(), b.Uint32())

	b.Skip(-11)
	require.Equal(t, rng.ValueAt(5, 0), b.Uint32())
}

func TestNewChiString(t *testing.T) {
	a := rng.NewChiString("portfolio-sim")
	b := rng.NewChiString("portfolio-sim")
	require.Equal(t, a.Uint64(), b.Uint64())
	require.NotEqual(t, rng.SeedString("portfolio-sim"), rng.SeedString("portfolio-sin"))
	require.NotEqual(t, rng.SeedString(""), rng.SeedString("\x00"))
}

func TestNewSeed(t *testing.T) {
	a, err := rng.NewSeed()
	require.NoError(t, err)
	b, err := rng.NewSeed()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestRandSource(t *testing.T) {
	r := rand.New(rng.RandSource(rng.NewChi(3)))
	r2 := rand.New(rng.RandSource(rng.NewChi(3)))
	for i := 0; i < 100; i++ {
		v := r.Int63()
		require.GreaterOrEqual(t, v, int64(0))
		require.Equal(t, v, r2.Int63())
	}
}

func BenchmarkUint32(b *testing.B) {
	c := rng.NewChi(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Uint32()
	}
}

func BenchmarkUint64(b *testing.B) {
	c := rng.NewChi(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Uint64()
	}
}

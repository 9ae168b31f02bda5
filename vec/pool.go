// Package vec provides the pooled vector/matrix substrate multivariate
// samplers build on: a type-keyed buffer pool, hybrid inline/pooled value
// types and short-lived algebraic views over them. The discipline
// throughout is never read uninitialized memory, never leak a pooled
// buffer, never read one after release.
package vec

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/moontrade/chi/logger"
)

// Size classes for pooled buffers, in elements. Rent rounds a request up
// to the next class; requests above the largest class are plain
// allocations that never enter a pool.
var poolClasses = [...]int{64, 256, 1024, 4096, 16384, 65536}

// typePool holds one sync.Pool per size class for a single element type.
type typePool struct {
	classes [len(poolClasses)]sync.Pool
}

// pools maps reflect.Type of the element to its *typePool. Rent and
// return are safe from arbitrary goroutines; sync.Pool carries the
// contention.
var pools sync.Map

var (
	poolRents   atomic.Int64
	poolReturns atomic.Int64
	poolNews    atomic.Int64
)

func poolFor[E Element]() *typePool {
	key := reflect.TypeOf((*E)(nil)).Elem()
	if p, ok := pools.Load(key); ok {
		return p.(*typePool)
	}
	p, _ := pools.LoadOrStore(key, &typePool{})
	return p.(*typePool)
}

func classOf(n int) int {
	for i, c := range poolClasses {
		if n <= c {
			return i
		}
	}
	return -1
}

// rent checks out a buffer of n elements. Recycled memory is dirty unless
// zero is set; the caller must write every element it intends to read.
func rent[E Element](n int, zero bool) []E {
	ci := classOf(n)
	if ci < 0 {
		poolNews.Add(1)
		return make([]E, n)
	}
	poolRents.Add(1)
	p := poolFor[E]()
	if b, ok := p.classes[ci].Get().([]E); ok {
		buf := b[:n]
		if zero {
			clear(buf)
		}
		trackRent(buf)
		return buf
	}
	poolNews.Add(1)
	buf := make([]E, poolClasses[ci])[:n]
	trackRent(buf)
	return buf
}

// giveBack returns a buffer to its size-class pool. The caller must not
// touch the buffer afterward and must not return it twice.
func giveBack[E Element](buf []E) {
	c := cap(buf)
	if c == 0 {
		return
	}
	for i, size := range poolClasses {
		if c == size {
			trackReturn(buf)
			poolReturns.Add(1)
			poolFor[E]().classes[i].Put(buf[:c])
			return
		}
	}
	// Oversized buffers are left to the GC.
}

// PoolStats reports cumulative pool traffic. Rents counts pool checkouts,
// News counts fresh allocations (pool misses plus oversized requests).
type PoolStats struct {
	Rents   int64
	Returns int64
	News    int64
}

func Stats() PoolStats {
	return PoolStats{
		Rents:   poolRents.Load(),
		Returns: poolReturns.Load(),
		News:    poolNews.Load(),
	}
}

// DumpStats writes the pool counters through the logger.
func DumpStats() {
	s := Stats()
	logger.Log().Info().
		Int64("rents", s.Rents).
		Int64("returns", s.Returns).
		Int64("news", s.News).
		Msg("vec pool")
}

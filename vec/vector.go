package vec

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Element is the closed set of numeric element kinds the substrate
// supports.
type Element interface {
	constraints.Integer | constraints.Float
}

// Storage selection: element counts whose backing fits the byte budget
// stay in the inline array, everything larger rents a pooled buffer. The
// effective threshold is per element type, derived from the element size:
// 32 for float64/int64, 64 for every narrower type.
const (
	inlineBudget = 256
	inlineCap    = 64
)

func inlineThreshold(elemSize uintptr) int {
	n := int(inlineBudget / elemSize)
	if n > inlineCap {
		n = inlineCap
	}
	return n
}

// Vector is a fixed-length numeric vector with hybrid storage. It is a
// value type with exactly one live owner: mutate it in place through the
// owner, lend it to algebra through View or Consume, and Dispose it when
// done so pooled storage is returned. Copying the struct and using both
// copies is a misuse the disposal checks exist to catch.
//
// Not safe for concurrent mutation.
type Vector[E Element] struct {
	inline [inlineCap]E
	heap   []E
	n      int
	valid  bool
}

// NewVector returns a zeroed vector of length n.
func NewVector[E Element](n int) Vector[E] {
	return makeVector[E](n, true)
}

// NewVectorUninit returns a vector whose elements are unspecified until
// written. Pooled memory is recycled dirty; write every element before
// reading.
func NewVectorUninit[E Element](n int) Vector[E] {
	return makeVector[E](n, false)
}

// VectorOf copies src into a new vector.
func VectorOf[E Element](src ...E) Vector[E] {
	v := makeVector[E](len(src), false)
	copy(v.Raw(), src)
	return v
}

func makeVector[E Element](n int, zero bool) Vector[E] {
	if n <= 0 {
		panic(fmt.Sprintf("vec: invalid vector length %d", n))
	}
	v := Vector[E]{n: n, valid: true}
	if n > inlineThreshold(unsafe.Sizeof(v.inline[0])) {
		v.heap = rent[E](n, zero)
	}
	return v
}

// Len returns the fixed element count.
func (v *Vector[E]) Len() int { return v.n }

// Valid reports whether the vector is still live.
func (v *Vector[E]) Valid() bool { return v.valid }

// Pooled reports whether the vector carries pooled storage.
func (v *Vector[E]) Pooled() bool { return v.heap != nil }

// At returns element i.
func (v *Vector[E]) At(i int) E {
	v.check(i)
	if v.heap != nil {
		return v.heap[i]
	}
	return v.inline[i]
}

// Set writes element i.
func (v *Vector[E]) Set(i int, x E) {
	v.check(i)
	if v.heap != nil {
		v.heap[i] = x
		return
	}
	v.inline[i] = x
}

// Raw exposes the contiguous backing memory. It fails loudly on a
// disposed vector rather than handing out recycled pool memory.
func (v *Vector[E]) Raw() []E {
	if !v.valid {
		panic(panicDisposed)
	}
	if v.heap != nil {
		return v.heap[:v.n]
	}
	return v.inline[:v.n]
}

// Clone returns an owned copy.
func (v *Vector[E]) Clone() Vector[E] {
	out := makeVector[E](v.n, false)
	copy(out.Raw(), v.Raw())
	return out
}

// Dispose releases pooled storage and invalidates the vector. Disposing
// twice is a no-op; the pooled buffer is returned exactly once.
func (v *Vector[E]) Dispose() {
	if !v.valid {
		return
	}
	v.valid = false
	if v.heap != nil {
		giveBack(v.heap)
		v.heap = nil
	}
}

// View lends the vector to one algebraic expression. The caller keeps
// ownership. Views are ephemeral: obtain one per expression, never store
// one.
func (v *Vector[E]) View() VecView[E] {
	return VecView[E]{v: v}
}

// Consume lends the vector and transfers destruction to the operator: the
// operation disposes the vector as part of its cleanup, releasing pooled
// intermediates without a separate pass.
func (v *Vector[E]) Consume() VecView[E] {
	return VecView[E]{v: v, consume: true}
}

func (v *Vector[E]) check(i int) {
	if !v.valid {
		panic(panicDisposed)
	}
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.n))
	}
}

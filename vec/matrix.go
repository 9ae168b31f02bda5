package vec

import (
	"fmt"
	"math"
	"unsafe"
)

// Matrix is a dense row-major matrix with the same hybrid storage and
// single-owner rules as Vector.
type Matrix[E Element] struct {
	inline     [inlineCap]E
	heap       []E
	rows, cols int
	valid      bool
}

// NewMatrix returns a zeroed rows×cols matrix.
func NewMatrix[E Element](rows, cols int) Matrix[E] {
	return makeMatrix[E](rows, cols, true)
}

// NewMatrixUninit returns a matrix whose elements are unspecified until
// written.
func NewMatrixUninit[E Element](rows, cols int) Matrix[E] {
	return makeMatrix[E](rows, cols, false)
}

// MatrixOf copies row-major src into a new rows×cols matrix.
func MatrixOf[E Element](rows, cols int, src ...E) Matrix[E] {
	if rows > 0 && cols > 0 && len(src) != rows*cols {
		panic(fmt.Sprintf("vec: %d elements for a %dx%d matrix", len(src), rows, cols))
	}
	m := makeMatrix[E](rows, cols, false)
	copy(m.Raw(), src)
	return m
}

// Identity returns the n×n identity matrix.
func Identity[E Element](n int) Matrix[E] {
	m := makeMatrix[E](n, n, true)
	raw := m.Raw()
	for i := 0; i < n; i++ {
		raw[i*n+i] = 1
	}
	return m
}

func makeMatrix[E Element](rows, cols int, zero bool) Matrix[E] {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		panic(fmt.Sprintf("vec: invalid matrix shape %dx%d", rows, cols))
	}
	m := Matrix[E]{rows: rows, cols: cols, valid: true}
	n := rows * cols
	if n > inlineThreshold(unsafe.Sizeof(m.inline[0])) {
		m.heap = rent[E](n, zero)
	}
	return m
}

// Rows returns the fixed row count.
func (m *Matrix[E]) Rows() int { return m.rows }

// Cols returns the fixed column count.
func (m *Matrix[E]) Cols() int { return m.cols }

// Valid reports whether the matrix is still live.
func (m *Matrix[E]) Valid() bool { return m.valid }

// Pooled reports whether the matrix carries pooled storage.
func (m *Matrix[E]) Pooled() bool { return m.heap != nil }

// At returns the element at row r, column c.
func (m *Matrix[E]) At(r, c int) E {
	m.check(r, c)
	if m.heap != nil {
		return m.heap[r*m.cols+c]
	}
	return m.inline[r*m.cols+c]
}

// Set writes the element at row r, column c.
func (m *Matrix[E]) Set(r, c int, x E) {
	m.check(r, c)
	if m.heap != nil {
		m.heap[r*m.cols+c] = x
		return
	}
	m.inline[r*m.cols+c] = x
}

// Raw exposes the contiguous row-major backing memory. It fails loudly on
// a disposed matrix rather than handing out recycled pool memory.
func (m *Matrix[E]) Raw() []E {
	if !m.valid {
		panic(panicDisposed)
	}
	n := m.rows * m.cols
	if m.heap != nil {
		return m.heap[:n]
	}
	return m.inline[:n]
}

// Clone returns an owned copy.
func (m *Matrix[E]) Clone() Matrix[E] {
	out := makeMatrix[E](m.rows, m.cols, false)
	copy(out.Raw(), m.Raw())
	return out
}

// Dispose releases pooled storage and invalidates the matrix. Disposing
// twice is a no-op; the pooled buffer is returned exactly once.
func (m *Matrix[E]) Dispose() {
	if !m.valid {
		return
	}
	m.valid = false
	if m.heap != nil {
		giveBack(m.heap)
		m.heap = nil
	}
}

// View lends the matrix to one algebraic expression; the caller keeps
// ownership. Never store a view.
func (m *Matrix[E]) View() MatView[E] {
	return MatView[E]{m: m}
}

// Consume lends the matrix and transfers destruction to the operator.
func (m *Matrix[E]) Consume() MatView[E] {
	return MatView[E]{m: m, consume: true}
}

func (m *Matrix[E]) check(r, c int) {
	if !m.valid {
		panic(panicDisposed)
	}
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("vec: index (%d, %d) out of range %dx%d", r, c, m.rows, m.cols))
	}
}

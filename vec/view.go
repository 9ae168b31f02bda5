package vec

// VecView is an ephemeral, non-storable handle that scopes one algebraic
// operation over a Vector. The non-consuming flavor (View) lends the
// vector; the consuming flavor (Consume) disposes it once the operation
// completes, so a fluent pipeline releases its intermediates immediately.
type VecView[E Element] struct {
	v       *Vector[E]
	consume bool
}

func (a VecView[E]) done() {
	if a.consume {
		a.v.Dispose()
	}
}

// Len returns the viewed vector's length.
func (a VecView[E]) Len() int { return a.v.n }

// Add returns a new owned vector holding a + b elementwise.
func (a VecView[E]) Add(b VecView[E]) Vector[E] {
	return a.zip("add", b, func(x, y E) E { return x + y })
}

// Sub returns a new owned vector holding a - b elementwise.
func (a VecView[E]) Sub(b VecView[E]) Vector[E] {
	return a.zip("sub", b, func(x, y E) E { return x - y })
}

// MulElem returns the Hadamard product of a and b.
func (a VecView[E]) MulElem(b VecView[E]) Vector[E] {
	return a.zip("mulelem", b, func(x, y E) E { return x * y })
}

// Scale returns a new owned vector holding k·a.
func (a VecView[E]) Scale(k E) Vector[E] {
	as := a.v.Raw()
	out := NewVectorUninit[E](len(as))
	os := out.Raw()
	for i := range as {
		os[i] = k * as[i]
	}
	a.done()
	return out
}

// Dot returns the inner product of a and b.
func (a VecView[E]) Dot(b VecView[E]) E {
	as, bs := a.v.Raw(), b.v.Raw()
	if len(as) != len(bs) {
		panic(shapeMismatch("dot", len(as), 1, len(bs), 1))
	}
	s := dot(as, bs)
	a.done()
	b.done()
	return s
}

func (a VecView[E]) zip(op string, b VecView[E], f func(E, E) E) Vector[E] {
	as, bs := a.v.Raw(), b.v.Raw()
	if len(as) != len(bs) {
		panic(shapeMismatch(op, len(as), 1, len(bs), 1))
	}
	out := NewVectorUninit[E](len(as))
	os := out.Raw()
	for i := range as {
		os[i] = f(as[i], bs[i])
	}
	a.done()
	b.done()
	return out
}

// MatView is the matrix counterpart of VecView. All matrix algebra lives
// here, never on the owning Matrix, so operating on a stale copy requires
// a deliberate step that the validity checks then catch.
type MatView[E Element] struct {
	m       *Matrix[E]
	consume bool
}

func (a MatView[E]) done() {
	if a.consume {
		a.m.Dispose()
	}
}

// Dims returns the viewed matrix's shape.
func (a MatView[E]) Dims() (rows, cols int) { return a.m.rows, a.m.cols }

// Add returns a new owned matrix holding a + b elementwise. A 1×1 operand
// broadcasts as a scalar.
func (a MatView[E]) Add(b MatView[E]) Matrix[E] {
	return a.zip("add", b, func(x, y E) E { return x + y })
}

// Sub returns a new owned matrix holding a - b elementwise. A 1×1 operand
// broadcasts as a scalar.
func (a MatView[E]) Sub(b MatView[E]) Matrix[E] {
	return a.zip("sub", b, func(x, y E) E { return x - y })
}

// MulElem returns the Hadamard product. A 1×1 operand broadcasts as a
// scalar.
func (a MatView[E]) MulElem(b MatView[E]) Matrix[E] {
	return a.zip("mulelem", b, func(x, y E) E { return x * y })
}

// Scale returns a new owned matrix holding k·a.
func (a MatView[E]) Scale(k E) Matrix[E] {
	as := a.m.Raw()
	out := NewMatrixUninit[E](a.m.rows, a.m.cols)
	os := out.Raw()
	for i := range as {
		os[i] = k * as[i]
	}
	a.done()
	return out
}

// T returns the transpose as a new owned matrix.
func (a MatView[E]) T() Matrix[E] {
	out := transposeOf(a.m)
	a.done()
	return out
}

func (a MatView[E]) zip(op string, b MatView[E], f func(E, E) E) Matrix[E] {
	am, bm := a.m, b.m
	if scalar(am) && !scalar(bm) {
		s := am.At(0, 0)
		out := NewMatrixUninit[E](bm.rows, bm.cols)
		bs, os := bm.Raw(), out.Raw()
		for i := range bs {
			os[i] = f(s, bs[i])
		}
		a.done()
		b.done()
		return out
	}
	if scalar(bm) && !scalar(am) {
		s := bm.At(0, 0)
		out := NewMatrixUninit[E](am.rows, am.cols)
		as, os := am.Raw(), out.Raw()
		for i := range as {
			os[i] = f(as[i], s)
		}
		a.done()
		b.done()
		return out
	}
	if am.rows != bm.rows || am.cols != bm.cols {
		panic(shapeMismatch(op, am.rows, am.cols, bm.rows, bm.cols))
	}
	as, bs := am.Raw(), bm.Raw()
	out := NewMatrixUninit[E](am.rows, am.cols)
	os := out.Raw()
	for i := range as {
		os[i] = f(as[i], bs[i])
	}
	a.done()
	b.done()
	return out
}

func scalar[E Element](m *Matrix[E]) bool {
	return m.rows == 1 && m.cols == 1
}

func transposeOf[E Element](m *Matrix[E]) Matrix[E] {
	src := m.Raw()
	out := NewMatrixUninit[E](m.cols, m.rows)
	dst := out.Raw()
	for r := 0; r < m.rows; r++ {
		row := src[r*m.cols : (r+1)*m.cols]
		for c, x := range row {
			dst[c*m.rows+r] = x
		}
	}
	return out
}

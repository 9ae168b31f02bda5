package vec

// Mul computes the matrix product a×b. The right operand is transposed
// once up front so every output entry reduces to a dot product over two
// contiguous rows. A 1×1 operand broadcasts as a scalar instead of
// requiring conformable shapes.
func (a MatView[E]) Mul(b MatView[E]) Matrix[E] {
	am, bm := a.m, b.m
	if scalar(am) && !scalar(bm) {
		s := am.At(0, 0)
		out := b.Scale(s)
		a.done()
		return out
	}
	if scalar(bm) && !scalar(am) {
		s := bm.At(0, 0)
		out := a.Scale(s)
		b.done()
		return out
	}
	if am.cols != bm.rows {
		panic(shapeMismatch("mul", am.rows, am.cols, bm.rows, bm.cols))
	}
	bt := transposeOf(bm)
	out := NewMatrixUninit[E](am.rows, bm.cols)
	as, bts, os := am.Raw(), bt.Raw(), out.Raw()
	n := am.cols
	for i := 0; i < am.rows; i++ {
		arow := as[i*n : (i+1)*n]
		orow := os[i*bm.cols : (i+1)*bm.cols]
		for j := 0; j < bm.cols; j++ {
			orow[j] = dot(arow, bts[j*n:(j+1)*n])
		}
	}
	bt.Dispose()
	a.done()
	b.done()
	return out
}

// MulVec applies the matrix to a column vector, returning a new owned
// vector.
func (a MatView[E]) MulVec(x VecView[E]) Vector[E] {
	m := a.m
	xs := x.v.Raw()
	if m.cols != len(xs) {
		panic(shapeMismatch("mulvec", m.rows, m.cols, len(xs), 1))
	}
	ms := m.Raw()
	out := NewVectorUninit[E](m.rows)
	os := out.Raw()
	for i := 0; i < m.rows; i++ {
		os[i] = dot(ms[i*m.cols:(i+1)*m.cols], xs)
	}
	a.done()
	x.done()
	return out
}

// dot accumulates four independent lanes so the sums stay in registers
// and vectorize for float elements; the scalar tail handles the rest.
func dot[E Element](a, b []E) E {
	var s0, s1, s2, s3 E
	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1 + s2 + s3
}

// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/lvsparse/scalar"

// Transpose returns mᵗ; values are permuted through the pattern's
// transpose mapping.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	sp, mapping := m.sp.Transpose()

	return wrap(sp, gather(m.data, mapping))
}

// MTimes returns the matrix product x·y. A 1×1 factor degrades to the
// elementwise product.
// Errors: ErrDimensionMismatch when x.Cols() != y.Rows().
func MTimes[T scalar.Ring[T]](x, y *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(opMTimes, x, y); err != nil {
		return nil, err
	}
	if x.IsScalar() || y.IsScalar() {
		return Mul(x, y)
	}
	if x.Cols() != y.Rows() {
		return nil, shapeError(opMTimes, x.Rows(), x.Cols(), y.Rows(), y.Cols())
	}
	sp, err := x.sp.MTimes(y.sp)
	if err != nil {
		return nil, matrixErrorf(opMTimes, err)
	}

	return MAC(x, y, Zeros[T](sp))
}

// MAC returns z + x·y.
//
// Implementation:
//   - A 1×1 factor: z + x.*y.
//   - Identity factor: z + (the other factor). Structurally zero factor: z.
//   - Otherwise: the result pattern is z ∪ pattern(x·y); z is projected
//     onto it and every result column j is accumulated in a dense work
//     vector of length x.Rows():  w += x(:,k)·y(k,j) for y's nonzeros k.
//
// Errors: ErrDimensionMismatch (inner dimensions or z's shape).
// Complexity: O(x.Rows() + Σ_j Σ_{k∈y(:,j)} nnz(x(:,k))).
func MAC[T scalar.Ring[T]](x, y, z *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(opMAC, x, y, z); err != nil {
		return nil, err
	}
	if x.IsScalar() || y.IsScalar() {
		xy, err := Mul(x, y)
		if err != nil {
			return nil, matrixErrorf(opMAC, err)
		}
		return Add(z, xy)
	}
	if x.Cols() != y.Rows() {
		return nil, shapeError(opMAC, x.Rows(), x.Cols(), y.Rows(), y.Cols())
	}
	if z.Rows() != x.Rows() || z.Cols() != y.Cols() {
		return nil, shapeError(opMAC, x.Rows(), y.Cols(), z.Rows(), z.Cols())
	}

	switch {
	case x.NNZ() == 0 || y.NNZ() == 0:
		return z.Clone(), nil
	case x.IsIdentity():
		return Add(z, y)
	case y.IsIdentity():
		return Add(z, x)
	}

	prod, err := x.sp.MTimes(y.sp)
	if err != nil {
		return nil, matrixErrorf(opMAC, err)
	}
	rsp, _, err := z.sp.Union(prod)
	if err != nil {
		return nil, matrixErrorf(opMAC, err)
	}
	out := project(z, rsp)

	w := make([]T, x.Rows())
	var j, kk, k, b, e, yb, ye, xb, xe int
	for j = 0; j < y.Cols(); j++ {
		b, e = rsp.Column(j)
		for kk = b; kk < e; kk++ {
			w[rsp.RowAt(kk)] = out[kk]
		}
		yb, ye = y.sp.Column(j)
		for kk = yb; kk < ye; kk++ {
			xb, xe = x.sp.Column(y.sp.RowAt(kk))
			for k = xb; k < xe; k++ {
				w[x.sp.RowAt(k)] = w[x.sp.RowAt(k)].Add(x.data[k].Mul(y.data[kk]))
			}
		}
		for kk = b; kk < e; kk++ {
			out[kk] = w[rsp.RowAt(kk)]
		}
	}

	return wrap(rsp, out), nil
}

// Kron returns the Kronecker product x ⊗ y.
// Errors: ErrNilMatrix.
func Kron[T scalar.Ring[T]](x, y *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil("Kron", x, y); err != nil {
		return nil, err
	}
	sp, fromX, fromY := x.sp.Kron(y.sp)
	out := make([]T, sp.NNZ())
	for k := range out {
		out[k] = x.data[fromX[k]].Mul(y.data[fromY[k]])
	}

	return wrap(sp, out), nil
}

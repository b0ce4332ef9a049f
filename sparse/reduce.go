// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// Trace returns the sum of the diagonal.
// Errors: ErrNotSquare.
func (m *Matrix[T]) Trace() (T, error) {
	acc := scalar.Zero[T]()
	if !m.IsSquare() {
		return acc, fmt.Errorf("Trace: %dx%d: %w", m.Rows(), m.Cols(), ErrNotSquare)
	}
	var b, e, k int
	for c := 0; c < m.Cols(); c++ {
		b, e = m.sp.Column(c)
		for k = b; k < e; k++ {
			if m.sp.RowAt(k) == c {
				acc = acc.Add(m.data[k])
			}
		}
	}

	return acc, nil
}

// SumRows adds the rows together: the result is the 1×Cols() row vector of
// column sums. Empty columns stay structurally zero.
func (m *Matrix[T]) SumRows() *Matrix[T] {
	rows := make([]int, 0, m.Cols())
	cols := make([]int, 0, m.Cols())
	vals := make([]T, 0, m.Cols())
	for c := 0; c < m.Cols(); c++ {
		b, e := m.sp.Column(c)
		if b == e {
			continue
		}
		acc := m.data[b]
		for k := b + 1; k < e; k++ {
			acc = acc.Add(m.data[k])
		}
		rows = append(rows, 0)
		cols = append(cols, c)
		vals = append(vals, acc)
	}
	sp, _, _ := sparsity.Triplet(1, m.Cols(), rows, cols)

	return wrap(sp, vals)
}

// SumCols adds the columns together: the Rows()×1 vector of row sums.
func (m *Matrix[T]) SumCols() *Matrix[T] {
	return m.Transpose().SumRows().Transpose()
}

// Sum returns the sum of all stored values.
func (m *Matrix[T]) Sum() T {
	return scalar.Sum(m.data...)
}

// Dot returns Σ x(i,j)·y(i,j) over positions stored in both.
// Errors: ErrDimensionMismatch.
func Dot[T scalar.Ring[T]](x, y *Matrix[T]) (T, error) {
	p, err := Mul(x, y)
	if err != nil {
		return scalar.Zero[T](), matrixErrorf("Dot", err)
	}

	return p.Sum(), nil
}

// Norm1 returns Σ|x| over all stored values.
func Norm1[T scalar.Real[T]](x *Matrix[T]) T {
	acc := scalar.Zero[T]()
	for _, v := range x.data {
		acc = acc.Add(v.Abs())
	}

	return acc
}

// NormF returns the Frobenius norm sqrt(Σ x²).
func NormF[T scalar.Real[T]](x *Matrix[T]) T {
	acc := scalar.Zero[T]()
	for _, v := range x.data {
		acc = acc.Add(v.Mul(v))
	}

	return acc.Sqrt()
}

// Norm2 returns the Euclidean norm of a vector.
// Errors: ErrNotVector.
func Norm2[T scalar.Real[T]](x *Matrix[T]) (T, error) {
	if !x.IsVector() {
		return scalar.Zero[T](), fmt.Errorf("Norm2: %dx%d: %w", x.Rows(), x.Cols(), ErrNotVector)
	}

	return NormF(x), nil
}

// NormInf returns max |x| over all elements; structural zeros count as 0.
func NormInf[T scalar.Numeric[T]](x *Matrix[T]) T {
	acc := scalar.Zero[T]()
	for _, v := range x.data {
		acc = acc.Apply2(scalar.OpFmax, v.Abs())
	}

	return acc
}

// Reshape reinterprets m with a new shape of equal numel, keeping the
// column-major order of the elements.
// Errors: ErrDimensionMismatch.
func (m *Matrix[T]) Reshape(nrow, ncol int) (*Matrix[T], error) {
	sp, err := m.sp.Reshape(nrow, ncol)
	if err != nil {
		return nil, matrixErrorf(opReshape, err)
	}

	return wrap(sp, append([]T(nil), m.data...)), nil
}

// Vec stacks the columns of m into one column vector.
func (m *Matrix[T]) Vec() *Matrix[T] {
	v, _ := m.Reshape(m.Numel(), 1)

	return v
}

// triangle keeps the entries with keep(row, col).
func (m *Matrix[T]) triangle(keep func(r, c int) bool) *Matrix[T] {
	rows := make([]int, 0, len(m.data))
	cols := make([]int, 0, len(m.data))
	vals := make([]T, 0, len(m.data))
	cidx := m.sp.ColIndices()
	for k, v := range m.data {
		if !keep(m.sp.RowAt(k), cidx[k]) {
			continue
		}
		rows = append(rows, m.sp.RowAt(k))
		cols = append(cols, cidx[k])
		vals = append(vals, v)
	}
	sp, _, _ := sparsity.Triplet(m.Rows(), m.Cols(), rows, cols)

	return wrap(sp, vals)
}

// Tril returns the lower triangle (diagonal included when withDiag).
func (m *Matrix[T]) Tril(withDiag bool) *Matrix[T] {
	return m.triangle(func(r, c int) bool { return r > c || (withDiag && r == c) })
}

// Triu returns the upper triangle (diagonal included when withDiag).
func (m *Matrix[T]) Triu(withDiag bool) *Matrix[T] {
	return m.triangle(func(r, c int) bool { return r < c || (withDiag && r == c) })
}

// GetDiag returns the diagonal of a square matrix as a column vector.
// Errors: ErrNotSquare.
func (m *Matrix[T]) GetDiag() (*Matrix[T], error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("GetDiag: %dx%d: %w", m.Rows(), m.Cols(), ErrNotSquare)
	}
	d := m.triangle(func(r, c int) bool { return r == c })
	rows := make([]int, d.NNZ())
	for k := range rows {
		rows[k] = d.sp.RowAt(k)
	}
	sp, _, _ := sparsity.Triplet(m.Rows(), 1, rows, make([]int, len(rows)))

	return wrap(sp, d.data), nil
}

// IsIdentity reports a square matrix whose stored values are exactly the
// full diagonal of ones.
func (m *Matrix[T]) IsIdentity() bool {
	if !m.sp.IsDiag() || !m.sp.HasFullDiagonal() {
		return false
	}
	for _, v := range m.data {
		if !v.IsOne() {
			return false
		}
	}

	return true
}

// IsZero reports that every element is zero (structural or stored).
func (m *Matrix[T]) IsZero() bool {
	for _, v := range m.data {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

// IsOne reports a dense matrix of ones.
func (m *Matrix[T]) IsOne() bool {
	if !m.IsDense() {
		return false
	}
	for _, v := range m.data {
		if !v.IsOne() {
			return false
		}
	}

	return true
}

// IsEqual reports equal shapes and element-by-element equality under T's
// Equal, structural zeros comparing as zero. Two nil matrices are equal; a
// nil and a non-nil one are not.
func IsEqual[T scalar.Ring[T]](x, y *Matrix[T]) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Rows() != y.Rows() || x.Cols() != y.Cols() {
		return false
	}
	u, _, _ := x.sp.Union(y.sp)
	xv, yv := project(x, u), project(y, u)
	for k := range xv {
		if !xv[k].Equal(yv[k]) {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// Matrix is a sparse matrix in compressed column storage with elements
// of type T. The pattern may be shared with other matrices; the value
// slice is owned exclusively and always has length sp.NNZ().
type Matrix[T scalar.Ring[T]] struct {
	sp   *sparsity.Pattern
	data []T
}

// New pairs a pattern with a copy of values (in pattern order).
// Errors: ErrNNZMismatch.
func New[T scalar.Ring[T]](sp *sparsity.Pattern, values []T) (*Matrix[T], error) {
	if sp == nil {
		return nil, matrixErrorf(opNew, ErrNilMatrix)
	}
	if len(values) != sp.NNZ() {
		return nil, fmt.Errorf("%s: %d values for %d nonzeros: %w", opNew, len(values), sp.NNZ(), ErrNNZMismatch)
	}

	return &Matrix[T]{sp: sp, data: append([]T(nil), values...)}, nil
}

// wrap builds a matrix around values without copying. Internal use only.
func wrap[T scalar.Ring[T]](sp *sparsity.Pattern, values []T) *Matrix[T] {
	return &Matrix[T]{sp: sp, data: values}
}

// Zeros returns a matrix with pattern sp and every stored value zero.
func Zeros[T scalar.Ring[T]](sp *sparsity.Pattern) *Matrix[T] {
	return Fill(sp, scalar.Zero[T]())
}

// Fill returns a matrix with pattern sp and every stored value v.
func Fill[T scalar.Ring[T]](sp *sparsity.Pattern, v T) *Matrix[T] {
	data := make([]T, sp.NNZ())
	for k := range data {
		data[k] = v
	}

	return wrap(sp, data)
}

// Ones returns the dense nrow×ncol matrix of ones.
func Ones[T scalar.Ring[T]](nrow, ncol int) *Matrix[T] {
	return Fill(sparsity.Dense(nrow, ncol), scalar.One[T]())
}

// Empty returns the nrow×ncol matrix without structural nonzeros.
func Empty[T scalar.Ring[T]](nrow, ncol int) *Matrix[T] {
	return wrap(sparsity.Empty(nrow, ncol), []T{})
}

// Eye returns the n×n identity.
func Eye[T scalar.Ring[T]](n int) *Matrix[T] {
	return Fill(sparsity.Diag(n), scalar.One[T]())
}

// ScalarOf returns the dense 1×1 matrix holding v.
func ScalarOf[T scalar.Ring[T]](v T) *Matrix[T] {
	return wrap(sparsity.Dense(1, 1), []T{v})
}

// FromDense builds a matrix from row-major rows. Every position becomes a
// structural nonzero unless WithDropZeros is given.
// Errors: ErrDimensionMismatch for ragged rows.
func FromDense[T scalar.Ring[T]](rows [][]T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	nrow := len(rows)
	ncol := 0
	if nrow > 0 {
		ncol = len(rows[0])
	}
	for i := range rows {
		if len(rows[i]) != ncol {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", opFromDense, i, len(rows[i]), ncol, ErrDimensionMismatch)
		}
	}
	colind := make([]int, ncol+1)
	row := make([]int, 0, nrow*ncol)
	data := make([]T, 0, nrow*ncol)
	var r, c int
	for c = 0; c < ncol; c++ {
		for r = 0; r < nrow; r++ {
			if o.dropZeros && rows[r][c].IsZero() {
				continue
			}
			row = append(row, r)
			data = append(data, rows[r][c])
		}
		colind[c+1] = len(row)
	}
	sp, err := sparsity.New(nrow, ncol, colind, row)
	if err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}

	return wrap(sp, data), nil
}

// FromValues is FromDense over any Go number type, converting through
// scalar.Of.
func FromValues[T scalar.Ring[T], N scalar.Number](rows [][]N, opts ...Option) (*Matrix[T], error) {
	return FromDense(scalar.Rows[T](rows...), opts...)
}

// Column returns the dense column vector of vs.
func Column[T scalar.Ring[T]](vs ...T) *Matrix[T] {
	return wrap(sparsity.Dense(len(vs), 1), append([]T(nil), vs...))
}

// Triplet builds an nrow×ncol matrix from coordinate lists; values at
// duplicate positions are summed.
// Errors: ErrDimensionMismatch (list lengths), ErrOutOfRange.
func Triplet[T scalar.Ring[T]](nrow, ncol int, rows, cols []int, values []T) (*Matrix[T], error) {
	if len(values) != len(rows) {
		return nil, fmt.Errorf("%s: %d values for %d positions: %w", opTriplet, len(values), len(rows), ErrDimensionMismatch)
	}
	sp, mapping, err := sparsity.Triplet(nrow, ncol, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTriplet, err)
	}
	m := Zeros[T](sp)
	for t, k := range mapping {
		m.data[k] = m.data[k].Add(values[t])
	}

	return m, nil
}

// Diag returns the square matrix with the vector v on its diagonal,
// keeping v's sparsity.
// Errors: ErrNotVector.
func Diag[T scalar.Ring[T]](v *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil("Diag", v); err != nil {
		return nil, err
	}
	if !v.sp.IsVector() {
		return nil, fmt.Errorf("Diag: %dx%d: %w", v.Rows(), v.Cols(), ErrNotVector)
	}
	n := v.Numel()
	idx := make([]int, 0, v.NNZ())
	cols := v.sp.ColIndices()
	for k := 0; k < v.NNZ(); k++ {
		idx = append(idx, v.sp.RowAt(k)+cols[k]) // one of the two is always 0
	}
	sp, _, err := sparsity.Triplet(n, n, idx, idx)
	if err != nil {
		return nil, matrixErrorf("Diag", err)
	}

	// linear order of a vector's nonzeros is already ascending
	return wrap(sp, append([]T(nil), v.data...)), nil
}

// Clone returns a copy that shares the pattern but owns its values.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return wrap(m.sp, append([]T(nil), m.data...))
}

// Sparsity returns the (shared, immutable) pattern.
func (m *Matrix[T]) Sparsity() *sparsity.Pattern { return m.sp }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.sp.Rows() }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.sp.Cols() }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (int, int) { return m.sp.Shape() }

// NNZ returns the number of structural nonzeros.
func (m *Matrix[T]) NNZ() int { return m.sp.NNZ() }

// Numel returns rows·cols.
func (m *Matrix[T]) Numel() int { return m.sp.Numel() }

// IsScalar reports a 1×1 matrix.
func (m *Matrix[T]) IsScalar() bool { return m.sp.IsScalar() }

// IsDense reports that every position is structurally stored.
func (m *Matrix[T]) IsDense() bool { return m.sp.IsDense() }

// IsSquare reports rows == cols.
func (m *Matrix[T]) IsSquare() bool { return m.sp.IsSquare() }

// IsVector reports a matrix with a single row or a single column.
func (m *Matrix[T]) IsVector() bool { return m.sp.IsVector() }

// IsColumn reports a matrix with a single column.
func (m *Matrix[T]) IsColumn() bool { return m.sp.IsColumn() }

// IsTril reports a square pattern with nothing stored above the diagonal.
func (m *Matrix[T]) IsTril() bool { return m.sp.IsTril() }

// IsTriu reports a square pattern with nothing stored below the diagonal.
func (m *Matrix[T]) IsTriu() bool { return m.sp.IsTriu() }

// IsEmpty reports a matrix with zero rows or columns.
func (m *Matrix[T]) IsEmpty() bool { return m.sp.Numel() == 0 }

// NonZeros returns a copy of the stored values in pattern order.
func (m *Matrix[T]) NonZeros() []T { return append([]T(nil), m.data...) }

// scalarValue returns the single value of a 1×1 matrix, zero when it is
// structurally zero.
func (m *Matrix[T]) scalarValue() T {
	if len(m.data) == 0 {
		return scalar.Zero[T]()
	}

	return m.data[0]
}

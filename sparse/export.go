// SPDX-License-Identifier: MIT
// Package sparse: read-only exports in the layouts solver adapters expect.
//
// Contract:
//   - Every export returns fresh slices; adapters never write back.
//   - Dense buffers are column-major unless named otherwise.
//   - CompressedColumn mirrors the pattern's own storage; CompressedRow is
//     the compressed-column form of the transpose.

package sparse

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsparse/scalar"
)

// DenseColumnMajor returns all Numel() elements, column after column.
func (m *Matrix[T]) DenseColumnMajor() []T {
	out := make([]T, m.Numel())
	_ = m.WriteDense(out, false)

	return out
}

// DenseRowMajor returns all Numel() elements, row after row.
func (m *Matrix[T]) DenseRowMajor() []T {
	out := make([]T, m.Numel())
	_ = m.WriteDense(out, true)

	return out
}

// WriteDense fills buf with every element, row-major when transpose is
// set, column-major otherwise. Structural zeros are written as zero.
// Errors: ErrDimensionMismatch when len(buf) != Numel().
func (m *Matrix[T]) WriteDense(buf []T, transpose bool) error {
	if len(buf) != m.Numel() {
		return fmt.Errorf("%s: buffer %d for %d elements: %w", opExport, len(buf), m.Numel(), ErrDimensionMismatch)
	}
	zero := scalar.Zero[T]()
	for i := range buf {
		buf[i] = zero
	}
	nrow, ncol := m.Shape()
	var b, e, k int
	for c := 0; c < ncol; c++ {
		b, e = m.sp.Column(c)
		for k = b; k < e; k++ {
			if transpose {
				buf[m.sp.RowAt(k)*ncol+c] = m.data[k]
			} else {
				buf[c*nrow+m.sp.RowAt(k)] = m.data[k]
			}
		}
	}

	return nil
}

// WriteNonZeros copies the stored values into buf.
// Errors: ErrDimensionMismatch when len(buf) != NNZ().
func (m *Matrix[T]) WriteNonZeros(buf []T) error {
	if len(buf) != len(m.data) {
		return fmt.Errorf("%s: buffer %d for %d nonzeros: %w", opExport, len(buf), len(m.data), ErrDimensionMismatch)
	}
	copy(buf, m.data)

	return nil
}

// CompressedColumn returns copies of the column offsets, row indices and
// values.
func (m *Matrix[T]) CompressedColumn() (colind, row []int, values []T) {
	return m.sp.ColInd(), m.sp.RowIndices(), m.NonZeros()
}

// CompressedRow returns the row offsets, column indices and values of the
// compressed-row layout.
func (m *Matrix[T]) CompressedRow() (rowind, col []int, values []T) {
	t := m.Transpose()

	return t.sp.ColInd(), t.sp.RowIndices(), t.data
}

// Rows2D returns the elements as row-major nested slices.
func (m *Matrix[T]) Rows2D() [][]T {
	flat := m.DenseRowMajor()
	nrow, ncol := m.Shape()
	out := make([][]T, nrow)
	for i := range out {
		out[i] = flat[i*ncol : (i+1)*ncol : (i+1)*ncol]
	}

	return out
}

// String prints the matrix row by row, marking structural zeros "00".
func (m *Matrix[T]) String() string {
	nrow, ncol := m.Shape()
	cells := make([]string, nrow*ncol)
	for i := range cells {
		cells[i] = "00"
	}
	var b, e, k int
	for c := 0; c < ncol; c++ {
		b, e = m.sp.Column(c)
		for k = b; k < e; k++ {
			cells[m.sp.RowAt(k)*ncol+c] = fmt.Sprint(m.data[k])
		}
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < nrow; i++ {
		if i > 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('[')
		sb.WriteString(strings.Join(cells[i*ncol:(i+1)*ncol], ", "))
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// Map applies f to every stored value, keeping the pattern. It converts
// between element types, e.g. numbers into symbolic constants.
// Errors: ErrNilMatrix.
func Map[T scalar.Ring[T], U scalar.Ring[U]](m *Matrix[T], f func(T) U) (*Matrix[U], error) {
	if err := validateNotNil("Map", m); err != nil {
		return nil, err
	}
	out := make([]U, len(m.data))
	for k, v := range m.data {
		out[k] = f(v)
	}

	return wrap(m.sp, out), nil
}

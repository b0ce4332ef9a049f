// SPDX-License-Identifier: MIT

package sparse

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/scalar"
)

// gonumView exposes a float matrix through gonum's mat.Matrix interface
// without copying. Reads of structural zeros return 0.
type gonumView struct {
	m *Matrix[scalar.Float]
}

var _ mat.Matrix = gonumView{}

// AsGonum returns a read-only mat.Matrix view of m.
func AsGonum(m *Matrix[scalar.Float]) mat.Matrix { return gonumView{m: m} }

// Dims implements mat.Matrix.
func (g gonumView) Dims() (int, int) { return g.m.Shape() }

// At implements mat.Matrix; it panics on out-of-range indices like every
// gonum matrix.
func (g gonumView) At(i, j int) float64 {
	if i < 0 || i >= g.m.Rows() {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= g.m.Cols() {
		panic(mat.ErrColAccess)
	}
	v, _ := g.m.At(i, j)

	return float64(v)
}

// T implements mat.Matrix.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// ToGonumDense copies m into a new *mat.Dense.
func ToGonumDense(m *Matrix[scalar.Float]) *mat.Dense {
	nrow, ncol := m.Shape()
	if nrow == 0 || ncol == 0 {
		return &mat.Dense{}
	}
	flat := m.DenseRowMajor()
	data := make([]float64, len(flat))
	for i, v := range flat {
		data[i] = float64(v)
	}

	return mat.NewDense(nrow, ncol, data)
}

// FromGonum copies any gonum matrix. Every element is stored unless
// WithDropZeros is given.
func FromGonum(a mat.Matrix, opts ...Option) *Matrix[scalar.Float] {
	o := gatherOptions(opts...)
	nrow, ncol := a.Dims()
	rows := make([]int, 0, nrow*ncol)
	cols := make([]int, 0, nrow*ncol)
	vals := make([]scalar.Float, 0, nrow*ncol)
	for j := 0; j < ncol; j++ {
		for i := 0; i < nrow; i++ {
			v := a.At(i, j)
			if o.dropZeros && v == 0 {
				continue
			}
			rows = append(rows, i)
			cols = append(cols, j)
			vals = append(vals, scalar.Float(v))
		}
	}
	m, _ := Triplet(nrow, ncol, rows, cols, vals)

	return m
}

// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// Get returns the submatrix m(rr, cc).
//
// Implementation:
//   - Stage 1: resolve both index expressions against the shape.
//   - Stage 2: a 1×1 selection is a single lookup.
//   - Stage 3: otherwise the pattern computes the sub-pattern and its
//     nonzero mapping, and values are gathered through it.
//
// Errors: ErrOutOfRange, ErrBadIndex.
func (m *Matrix[T]) Get(rr, cc Index) (*Matrix[T], error) {
	if rr.isAll() && cc.isAll() {
		return m.Clone(), nil
	}
	rows, err := rr.Resolve(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}
	cols, err := cc.Resolve(m.Cols())
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}

	if len(rows) == 1 && len(cols) == 1 {
		k, ok, _ := m.sp.Lookup(rows[0], cols[0])
		if !ok {
			return Empty[T](1, 1), nil
		}

		return ScalarOf(m.data[k]), nil
	}

	sp, mapping, err := m.sp.Sub(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}

	return wrap(sp, gather(m.data, mapping)), nil
}

// gather returns data[mapping[k]] for every k.
func gather[T any](data []T, mapping []int) []T {
	out := make([]T, len(mapping))
	for k, src := range mapping {
		out[k] = data[src]
	}

	return out
}

// GetLinear selects elements by column-major linear index. The result is
// a column vector, or a row vector when m itself is a row vector.
// Errors: ErrOutOfRange, ErrBadIndex.
func (m *Matrix[T]) GetLinear(kk Index) (*Matrix[T], error) {
	lin, err := kk.Resolve(m.Numel())
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}
	nrow := m.Rows()
	rows := make([]int, 0, len(lin))
	vals := make([]T, 0, len(lin))
	for t, k := range lin {
		idx, ok, _ := m.sp.Lookup(k%nrow, k/nrow)
		if !ok {
			continue
		}
		rows = append(rows, t)
		vals = append(vals, m.data[idx])
	}
	colind := []int{0, len(rows)}
	sp, err := sparsity.New(len(lin), 1, colind, rows)
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}
	out := wrap(sp, vals)
	if m.Rows() == 1 && m.Cols() != 1 {
		return out.Transpose(), nil
	}

	return out, nil
}

// GetNZ returns the selected stored values as a dense column vector.
// Errors: ErrOutOfRange, ErrBadIndex.
func (m *Matrix[T]) GetNZ(kk Index) (*Matrix[T], error) {
	ks, err := kk.Resolve(len(m.data))
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}

	return Column(gather(m.data, ks)...), nil
}

// Project returns m restricted to (and extended onto) the pattern sp:
// positions of sp that m stores keep their value, the others hold zero.
// Errors: ErrDimensionMismatch.
func (m *Matrix[T]) Project(sp *sparsity.Pattern) (*Matrix[T], error) {
	if m.Rows() != sp.Rows() || m.Cols() != sp.Cols() {
		return nil, shapeError("Project", m.Rows(), m.Cols(), sp.Rows(), sp.Cols())
	}
	if sp == m.sp || sp.Equal(m.sp) {
		return wrap(sp, append([]T(nil), m.data...)), nil
	}

	return wrap(sp, project(m, sp)), nil
}

// project walks m and sp column by column and returns m's values on sp.
// Shapes must already agree.
func project[T scalar.Ring[T]](m *Matrix[T], sp *sparsity.Pattern) []T {
	out := make([]T, sp.NNZ())
	zero := scalar.Zero[T]()
	var c, k, q, e, qe int
	for c = 0; c < sp.Cols(); c++ {
		q, qe = m.sp.Column(c)
		k, e = sp.Column(c)
		for ; k < e; k++ {
			r := sp.RowAt(k)
			for q < qe && m.sp.RowAt(q) < r {
				q++
			}
			if q < qe && m.sp.RowAt(q) == r {
				out[k] = m.data[q]
			} else {
				out[k] = zero
			}
		}
	}

	return out
}

// assignment is one pending write; present=false erases the position.
type assignment[T any] struct {
	r, c    int
	v       T
	present bool
}

// assign applies writes to m: present writes store v (growing the pattern
// as needed), absent writes erase the position. Later writes to the same
// position win.
func (m *Matrix[T]) assign(tag string, writes []assignment[T]) error {
	rs := make([]int, len(writes))
	cs := make([]int, len(writes))
	for t, w := range writes {
		rs[t], cs[t] = w.r, w.c
	}
	targets, mapping, err := sparsity.Triplet(m.Rows(), m.Cols(), rs, cs)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	final := make([]int, targets.NNZ()) // last write per target
	for t, k := range mapping {
		final[k] = t
	}

	union, tags, _ := m.sp.Union(targets)
	cols := union.ColIndices()
	keepRow := make([]int, 0, union.NNZ())
	keepCol := make([]int, 0, union.NNZ())
	vals := make([]T, 0, union.NNZ())
	var ka, kb int
	for k, tg := range tags {
		switch tg {
		case sparsity.FromA:
			keepRow = append(keepRow, union.RowAt(k))
			keepCol = append(keepCol, cols[k])
			vals = append(vals, m.data[ka])
			ka++
		default:
			w := writes[final[kb]]
			if tg == sparsity.FromBoth {
				ka++
			}
			kb++
			if !w.present {
				continue
			}
			keepRow = append(keepRow, union.RowAt(k))
			keepCol = append(keepCol, cols[k])
			vals = append(vals, w.v)
		}
	}
	sp, _, err := sparsity.Triplet(m.Rows(), m.Cols(), keepRow, keepCol)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	m.sp, m.data = sp, vals

	return nil
}

// conform returns src shaped nrow×ncol: a 1×1 source is broadcast, a
// vector whose transpose fits is transposed.
// Errors: ErrDimensionMismatch naming both shapes.
func conform[T scalar.Ring[T]](tag string, src *Matrix[T], nrow, ncol int) (*Matrix[T], error) {
	switch {
	case src.Rows() == nrow && src.Cols() == ncol:
		return src, nil
	case src.IsScalar():
		if src.NNZ() == 0 {
			return Empty[T](nrow, ncol), nil
		}
		return Fill(sparsity.Dense(nrow, ncol), src.data[0]), nil
	case src.IsVector() && src.Rows() == ncol && src.Cols() == nrow:
		return src.Transpose(), nil
	}

	return nil, shapeError(tag, nrow, ncol, src.Rows(), src.Cols())
}

// SetBlock assigns src to the block m(rr, cc). A 1×1 src is broadcast to
// the whole block; a vector whose transpose matches the block is
// transposed. Positions of the block that src does not store become
// structural zeros.
// Errors: ErrOutOfRange, ErrBadIndex, ErrDimensionMismatch.
func (m *Matrix[T]) SetBlock(rr, cc Index, src *Matrix[T]) error {
	if err := validateNotNil(opSetBlock, src); err != nil {
		return err
	}
	rows, err := rr.Resolve(m.Rows())
	if err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	cols, err := cc.Resolve(m.Cols())
	if err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	src, err = conform(opSetBlock, src, len(rows), len(cols))
	if err != nil {
		return err
	}

	writes := make([]assignment[T], 0, len(rows)*len(cols))
	for j, c := range cols {
		for i, r := range rows {
			k, ok, _ := src.sp.Lookup(i, j)
			w := assignment[T]{r: r, c: c, present: ok}
			if ok {
				w.v = src.data[k]
			}
			writes = append(writes, w)
		}
	}

	return m.assign(opSetBlock, writes)
}

// SetLinearBlock assigns src to the elements selected by column-major
// linear indices. src must have as many elements as the selection (or be
// 1×1); its elements are read in column-major order.
// Errors: ErrOutOfRange, ErrBadIndex, ErrDimensionMismatch.
func (m *Matrix[T]) SetLinearBlock(kk Index, src *Matrix[T]) error {
	if err := validateNotNil(opSetBlock, src); err != nil {
		return err
	}
	lin, err := kk.Resolve(m.Numel())
	if err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	if !src.IsScalar() && src.Numel() != len(lin) {
		return shapeError(opSetBlock, len(lin), 1, src.Rows(), src.Cols())
	}
	nrow := m.Rows()
	srcRows := src.Rows()
	writes := make([]assignment[T], len(lin))
	for t, k := range lin {
		s := t
		if src.IsScalar() {
			s = 0
		}
		idx, ok, _ := src.sp.Lookup(s%srcRows, s/srcRows)
		writes[t] = assignment[T]{r: k % nrow, c: k / nrow, present: ok}
		if ok {
			writes[t].v = src.data[idx]
		}
	}

	return m.assign(opSetBlock, writes)
}

// SetNZs overwrites the selected stored values with the elements of src
// (column-major), or broadcasts a 1×1 src. The pattern never changes.
// Errors: ErrOutOfRange, ErrBadIndex, ErrDimensionMismatch.
func (m *Matrix[T]) SetNZs(kk Index, src *Matrix[T]) error {
	if err := validateNotNil(opSet, src); err != nil {
		return err
	}
	ks, err := kk.Resolve(len(m.data))
	if err != nil {
		return matrixErrorf(opSet, err)
	}
	if src.IsScalar() {
		v := src.scalarValue()
		for _, k := range ks {
			m.data[k] = v
		}
		return nil
	}
	if src.Numel() != len(ks) {
		return shapeError(opSet, len(ks), 1, src.Rows(), src.Cols())
	}
	dense := src.DenseColumnMajor()
	for t, k := range ks {
		m.data[k] = dense[t]
	}

	return nil
}

// Erase removes every structural nonzero in the block (rr, cc); the shape
// is unchanged.
// Errors: ErrOutOfRange, ErrBadIndex.
func (m *Matrix[T]) Erase(rr, cc Index) error {
	rows, err := rr.Resolve(m.Rows())
	if err != nil {
		return matrixErrorf(opErase, err)
	}
	cols, err := cc.Resolve(m.Cols())
	if err != nil {
		return matrixErrorf(opErase, err)
	}
	sp, mapping, err := m.sp.Erase(rows, cols)
	if err != nil {
		return matrixErrorf(opErase, err)
	}
	m.sp, m.data = sp, gather(m.data, mapping)

	return nil
}

// Remove deletes whole rows and columns, returning the smaller matrix.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Remove(rows, cols []int) (*Matrix[T], error) {
	sp, mapping, err := m.sp.Remove(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opErase, err)
	}

	return wrap(sp, gather(m.data, mapping)), nil
}

// Enlarge embeds m into an nrow×ncol matrix with source row i at rows[i]
// and source column j at cols[j].
// Errors: ErrDimensionMismatch, ErrOutOfRange.
func (m *Matrix[T]) Enlarge(nrow, ncol int, rows, cols []int) (*Matrix[T], error) {
	sp, err := m.sp.Enlarge(nrow, ncol, rows, cols)
	if err != nil {
		return nil, matrixErrorf("Enlarge", err)
	}
	// rows/cols need not be increasing, so scatter through lookups
	out := Zeros[T](sp)
	cidx := m.sp.ColIndices()
	for k, v := range m.data {
		q, _, _ := sp.Lookup(rows[m.sp.RowAt(k)], cols[cidx[k]])
		out.data[q] = v
	}

	return out, nil
}

// GetBlock is Get with plain index lists.
func (m *Matrix[T]) GetBlock(rows, cols []int) (*Matrix[T], error) {
	return m.Get(Indices(rows...), Indices(cols...))
}

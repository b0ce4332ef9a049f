// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// nonEmpty drops 0×0 operands, which concatenate with anything.
func nonEmpty[T scalar.Ring[T]](ms []*Matrix[T]) ([]*Matrix[T], error) {
	out := make([]*Matrix[T], 0, len(ms))
	for _, m := range ms {
		if m == nil {
			return nil, matrixErrorf(opConcat, ErrNilMatrix)
		}
		if m.Rows() == 0 && m.Cols() == 0 {
			continue
		}
		out = append(out, m)
	}

	return out, nil
}

// Horzcat concatenates matrices side by side; values keep their order.
// Errors: ErrDimensionMismatch.
func Horzcat[T scalar.Ring[T]](ms ...*Matrix[T]) (*Matrix[T], error) {
	ms, err := nonEmpty(ms)
	if err != nil {
		return nil, err
	}
	ps := make([]*sparsity.Pattern, len(ms))
	var data []T
	for i, m := range ms {
		ps[i] = m.sp
		data = append(data, m.data...)
	}
	sp, err := sparsity.Horzcat(ps...)
	if err != nil {
		return nil, matrixErrorf("Horzcat", err)
	}
	if data == nil {
		data = []T{}
	}

	return wrap(sp, data), nil
}

// Vertcat stacks matrices; the pattern layer performs it as
// transpose–horzcat–transpose and returns the value mapping.
// Errors: ErrDimensionMismatch.
func Vertcat[T scalar.Ring[T]](ms ...*Matrix[T]) (*Matrix[T], error) {
	ms, err := nonEmpty(ms)
	if err != nil {
		return nil, err
	}
	ps := make([]*sparsity.Pattern, len(ms))
	var data []T
	for i, m := range ms {
		ps[i] = m.sp
		data = append(data, m.data...)
	}
	sp, mapping, err := sparsity.Vertcat(ps...)
	if err != nil {
		return nil, matrixErrorf("Vertcat", err)
	}

	return wrap(sp, gather(data, mapping)), nil
}

// Horzsplit cuts m at the given column offsets (0 = offsets[0] ≤ ... ≤
// offsets[last] = Cols()). Horzcat of the pieces gives m back.
// Errors: ErrBadOffsets.
func (m *Matrix[T]) Horzsplit(offsets []int) ([]*Matrix[T], error) {
	parts, err := m.sp.Horzsplit(offsets)
	if err != nil {
		return nil, matrixErrorf(opSplit, err)
	}
	out := make([]*Matrix[T], len(parts))
	colind := m.sp.ColInd()
	for i, p := range parts {
		base := colind[offsets[i]]
		out[i] = wrap(p, append([]T(nil), m.data[base:base+p.NNZ()]...))
	}

	return out, nil
}

// Vertsplit cuts m at the given row offsets.
// Errors: ErrBadOffsets.
func (m *Matrix[T]) Vertsplit(offsets []int) ([]*Matrix[T], error) {
	parts, maps, err := m.sp.Vertsplit(offsets)
	if err != nil {
		return nil, matrixErrorf(opSplit, err)
	}
	out := make([]*Matrix[T], len(parts))
	for i, p := range parts {
		out[i] = wrap(p, gather(m.data, maps[i]))
	}

	return out, nil
}

// HorzsplitN cuts m into pieces of incr columns (the last one may be
// narrower).
func (m *Matrix[T]) HorzsplitN(incr int) ([]*Matrix[T], error) {
	return m.Horzsplit(evenOffsets(m.Cols(), incr))
}

// VertsplitN cuts m into pieces of incr rows.
func (m *Matrix[T]) VertsplitN(incr int) ([]*Matrix[T], error) {
	return m.Vertsplit(evenOffsets(m.Rows(), incr))
}

func evenOffsets(extent, incr int) []int {
	if incr <= 0 {
		return nil
	}
	out := []int{0}
	for o := incr; o < extent; o += incr {
		out = append(out, o)
	}
	if extent > 0 {
		out = append(out, extent)
	}

	return out
}

// Diagcat builds the block-diagonal matrix of its operands.
func Diagcat[T scalar.Ring[T]](ms ...*Matrix[T]) (*Matrix[T], error) {
	ps := make([]*sparsity.Pattern, len(ms))
	data := []T{}
	for i, m := range ms {
		if m == nil {
			return nil, matrixErrorf(opConcat, ErrNilMatrix)
		}
		ps[i] = m.sp
		data = append(data, m.data...)
	}

	return wrap(sparsity.Diagcat(ps...), data), nil
}

// Blockcat assembles a block matrix row by row: Vertcat of the Horzcat of
// every block row.
// Errors: ErrDimensionMismatch.
func Blockcat[T scalar.Ring[T]](blocks [][]*Matrix[T]) (*Matrix[T], error) {
	rows := make([]*Matrix[T], len(blocks))
	for i, br := range blocks {
		r, err := Horzcat(br...)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return Vertcat(rows...)
}

// SPDX-License-Identifier: MIT

package sparsity

import "fmt"

// Horzcat places patterns side by side. All operands must have the same
// row count; nonzero order of the result is the concatenation of the
// operands' nonzero orders, so values concatenate without permutation.
// Errors: ErrDimensionMismatch.
func Horzcat(ps ...*Pattern) (*Pattern, error) {
	if len(ps) == 0 {
		return Empty(0, 0), nil
	}
	nrow := ps[0].nrow
	var ncol, nnz int
	for _, p := range ps {
		if p.nrow != nrow {
			return nil, shapeError(opHorzcat, nrow, ncol, p.nrow, p.ncol)
		}
		ncol += p.ncol
		nnz += len(p.row)
	}
	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, nnz)
	for _, p := range ps {
		base := len(row)
		for c := 1; c <= p.ncol; c++ {
			colind = append(colind, base+p.colind[c])
		}
		row = append(row, p.row...)
	}

	return build(nrow, ncol, colind, row), nil
}

// Vertcat stacks patterns on top of each other (transpose, Horzcat,
// transpose). The returned mapping gives, per result nonzero, its index in
// the virtual concatenation of the operands' nonzero sequences.
// Errors: ErrDimensionMismatch.
func Vertcat(ps ...*Pattern) (*Pattern, []int, error) {
	if len(ps) == 0 {
		return Empty(0, 0), nil, nil
	}
	ts := make([]*Pattern, len(ps))
	maps := make([][]int, len(ps))
	for i, p := range ps {
		ts[i], maps[i] = p.Transpose()
	}
	h, err := Horzcat(ts...)
	if err != nil {
		// report in the caller's orientation
		return nil, nil, fmt.Errorf("Vertcat: column counts differ: %w", ErrDimensionMismatch)
	}
	// Source index of each Horzcat nonzero in the concatenated original order.
	src := make([]int, 0, len(h.row))
	offset := 0
	for i, m := range maps {
		for _, k := range m {
			src = append(src, offset+k)
		}
		offset += len(ps[i].row)
	}
	out, back := h.Transpose()
	mapping := make([]int, len(back))
	for k, b := range back {
		mapping[k] = src[b]
	}

	return out, mapping, nil
}

// checkOffsets validates that offsets partition [0, extent].
func checkOffsets(tag string, offsets []int, extent int) error {
	if len(offsets) < 1 || offsets[0] != 0 || offsets[len(offsets)-1] != extent {
		return fmt.Errorf("%s: offsets %v must run from 0 to %d: %w", tag, offsets, extent, ErrBadOffsets)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%s: offsets %v decrease at %d: %w", tag, offsets, i, ErrBadOffsets)
		}
	}

	return nil
}

// Horzsplit cuts the pattern at the given column offsets. offsets must
// start at 0, end at Cols() and never decrease; piece i spans columns
// [offsets[i], offsets[i+1]). Piece i's nonzeros are the contiguous range
// starting at ColInd()[offsets[i]] of the source.
// Errors: ErrBadOffsets.
func (p *Pattern) Horzsplit(offsets []int) ([]*Pattern, error) {
	if err := checkOffsets(opHorzsplit, offsets, p.ncol); err != nil {
		return nil, err
	}
	out := make([]*Pattern, len(offsets)-1)
	for i := range out {
		c0, c1 := offsets[i], offsets[i+1]
		base := p.colind[c0]
		colind := make([]int, c1-c0+1)
		for c := c0; c <= c1; c++ {
			colind[c-c0] = p.colind[c] - base
		}
		row := append([]int(nil), p.row[base:p.colind[c1]]...)
		out[i] = build(p.nrow, c1-c0, colind, row)
	}

	return out, nil
}

// Vertsplit cuts the pattern at the given row offsets. Each piece comes
// with a mapping from its nonzeros to the source nonzeros.
// Errors: ErrBadOffsets.
func (p *Pattern) Vertsplit(offsets []int) ([]*Pattern, [][]int, error) {
	if err := checkOffsets("Vertsplit", offsets, p.nrow); err != nil {
		return nil, nil, err
	}
	out := make([]*Pattern, len(offsets)-1)
	maps := make([][]int, len(offsets)-1)
	for i := range out {
		r0, r1 := offsets[i], offsets[i+1]
		colind := make([]int, p.ncol+1)
		row := make([]int, 0)
		mapping := make([]int, 0)
		for c := 0; c < p.ncol; c++ {
			for k := p.colind[c]; k < p.colind[c+1]; k++ {
				if p.row[k] >= r0 && p.row[k] < r1 {
					row = append(row, p.row[k]-r0)
					mapping = append(mapping, k)
				}
			}
			colind[c+1] = len(row)
		}
		out[i] = build(r1-r0, p.ncol, colind, row)
		maps[i] = mapping
	}

	return out, maps, nil
}

// Diagcat builds the block-diagonal pattern of its operands. Nonzero
// order matches the concatenation of the operands' nonzero sequences.
func Diagcat(ps ...*Pattern) *Pattern {
	var nrow, ncol, nnz int
	for _, p := range ps {
		nrow += p.nrow
		ncol += p.ncol
		nnz += len(p.row)
	}
	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, nnz)
	roff := 0
	for _, p := range ps {
		base := len(row)
		for c := 1; c <= p.ncol; c++ {
			colind = append(colind, base+p.colind[c])
		}
		for _, r := range p.row {
			row = append(row, r+roff)
		}
		roff += p.nrow
	}

	return build(nrow, ncol, colind, row)
}

// Offsets returns the running sums [0, n0, n0+n1, ...] of the given sizes,
// the offset list Horzsplit/Vertsplit expect.
func Offsets(sizes ...int) []int {
	out := make([]int, len(sizes)+1)
	for i, s := range sizes {
		out[i+1] = out[i] + s
	}

	return out
}

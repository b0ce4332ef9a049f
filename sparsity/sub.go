// SPDX-License-Identifier: MIT

package sparsity

import "sort"

// Sub extracts the sub-pattern p(rows, cols). The index lists may be in
// any order and may repeat; result row i corresponds to source row rows[i]
// and result column j to source column cols[j]. mapping[k] is the source
// nonzero of result nonzero k.
//
// Implementation:
//   - Stage 1: Validate indices and build a row → result-positions table.
//   - Stage 2: For each requested column, scatter the source entries to
//     every result row they feed, then sort the column segment.
//
// Errors: ErrOutOfRange.
// Complexity: O(len(rows) + Σ nnz(selected columns)·multiplicity + sort).
func (p *Pattern) Sub(rows, cols []int) (*Pattern, []int, error) {
	for _, r := range rows {
		if r < 0 || r >= p.nrow {
			return nil, nil, rangeError(opSub, "row", r, p.nrow)
		}
	}
	for _, c := range cols {
		if c < 0 || c >= p.ncol {
			return nil, nil, rangeError(opSub, "column", c, p.ncol)
		}
	}

	// targets[r] lists every result row fed by source row r.
	targets := make([][]int, p.nrow)
	for i, r := range rows {
		targets[r] = append(targets[r], i)
	}

	type entry struct{ row, src int }
	colind := make([]int, len(cols)+1)
	row := make([]int, 0)
	mapping := make([]int, 0)
	var buf []entry
	for j, c := range cols {
		buf = buf[:0]
		for k := p.colind[c]; k < p.colind[c+1]; k++ {
			for _, i := range targets[p.row[k]] {
				buf = append(buf, entry{row: i, src: k})
			}
		}
		sort.Slice(buf, func(a, b int) bool { return buf[a].row < buf[b].row })
		for _, e := range buf {
			row = append(row, e.row)
			mapping = append(mapping, e.src)
		}
		colind[j+1] = len(row)
	}

	return build(len(rows), len(cols), colind, row), mapping, nil
}

// Erase removes every structural nonzero at (rows[i], cols[j]) for all i, j.
// It returns the new pattern and, for each kept nonzero, its source index
// (the compaction mapping). Positions that are already zero are ignored.
//
// Errors: ErrOutOfRange.
// Complexity: O(nnz + nrow + ncol).
func (p *Pattern) Erase(rows, cols []int) (*Pattern, []int, error) {
	inRow := make([]bool, p.nrow)
	inCol := make([]bool, p.ncol)
	for _, r := range rows {
		if r < 0 || r >= p.nrow {
			return nil, nil, rangeError(opErase, "row", r, p.nrow)
		}
		inRow[r] = true
	}
	for _, c := range cols {
		if c < 0 || c >= p.ncol {
			return nil, nil, rangeError(opErase, "column", c, p.ncol)
		}
		inCol[c] = true
	}

	colind := make([]int, p.ncol+1)
	row := make([]int, 0, len(p.row))
	mapping := make([]int, 0, len(p.row))
	for c := 0; c < p.ncol; c++ {
		for k := p.colind[c]; k < p.colind[c+1]; k++ {
			if inCol[c] && inRow[p.row[k]] {
				continue
			}
			row = append(row, p.row[k])
			mapping = append(mapping, k)
		}
		colind[c+1] = len(row)
	}

	return build(p.nrow, p.ncol, colind, row), mapping, nil
}

// Remove deletes whole rows and columns, shrinking the shape.
// mapping[k] is the source nonzero of result nonzero k.
// Errors: ErrOutOfRange.
func (p *Pattern) Remove(rows, cols []int) (*Pattern, []int, error) {
	dropRow := make([]bool, p.nrow)
	dropCol := make([]bool, p.ncol)
	for _, r := range rows {
		if r < 0 || r >= p.nrow {
			return nil, nil, rangeError(opErase, "row", r, p.nrow)
		}
		dropRow[r] = true
	}
	for _, c := range cols {
		if c < 0 || c >= p.ncol {
			return nil, nil, rangeError(opErase, "column", c, p.ncol)
		}
		dropCol[c] = true
	}
	keepRows := make([]int, 0, p.nrow)
	for r := 0; r < p.nrow; r++ {
		if !dropRow[r] {
			keepRows = append(keepRows, r)
		}
	}
	keepCols := make([]int, 0, p.ncol)
	for c := 0; c < p.ncol; c++ {
		if !dropCol[c] {
			keepCols = append(keepCols, c)
		}
	}

	return p.Sub(keepRows, keepCols)
}

// Enlarge embeds p into an nrow×ncol pattern, placing source row i at
// rows[i] and source column j at cols[j]. The index lists must have the
// source's dimensions and contain distinct in-range targets.
//
// Errors: ErrDimensionMismatch, ErrOutOfRange.
func (p *Pattern) Enlarge(nrow, ncol int, rows, cols []int) (*Pattern, error) {
	if len(rows) != p.nrow || len(cols) != p.ncol {
		return nil, shapeError(opEnlarge, len(rows), len(cols), p.nrow, p.ncol)
	}
	seen := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r < 0 || r >= nrow {
			return nil, rangeError(opEnlarge, "row", r, nrow)
		}
		if seen[r] {
			return nil, rangeError(opEnlarge, "duplicate row", r, nrow)
		}
		seen[r] = true
	}
	seenCol := make(map[int]bool, len(cols))
	for _, c := range cols {
		if seenCol[c] {
			return nil, rangeError(opEnlarge, "duplicate column", c, ncol)
		}
		seenCol[c] = true
	}
	rr := make([]int, 0, len(p.row))
	cc := make([]int, 0, len(p.row))
	for c := 0; c < p.ncol; c++ {
		if cols[c] < 0 || cols[c] >= ncol {
			return nil, rangeError(opEnlarge, "column", cols[c], ncol)
		}
		for k := p.colind[c]; k < p.colind[c+1]; k++ {
			rr = append(rr, rows[p.row[k]])
			cc = append(cc, cols[c])
		}
	}
	out, _, err := Triplet(nrow, ncol, rr, cc)
	if err != nil {
		return nil, sparsityErrorf(opEnlarge, err)
	}

	return out, nil
}

// Reshape reinterprets the pattern with a new shape of equal numel,
// keeping the column-major linear position of every nonzero. Nonzero
// order is unchanged, so values need no permutation.
// Errors: ErrDimensionMismatch.
func (p *Pattern) Reshape(nrow, ncol int) (*Pattern, error) {
	if nrow < 0 || ncol < 0 || nrow*ncol != p.nrow*p.ncol {
		return nil, shapeError(opReshape, p.nrow, p.ncol, nrow, ncol)
	}
	colind := make([]int, ncol+1)
	row := make([]int, len(p.row))
	var c, k, lin, nc int
	for c = 0; c < p.ncol; c++ {
		for k = p.colind[c]; k < p.colind[c+1]; k++ {
			lin = c*p.nrow + p.row[k]
			nc = lin / nrow
			row[k] = lin % nrow
			colind[nc+1]++
		}
	}
	for c = 0; c < ncol; c++ {
		colind[c+1] += colind[c]
	}

	return build(nrow, ncol, colind, row), nil
}

// Permute returns p(rowperm, colperm) with its nonzero mapping; a thin
// wrapper over Sub for the common permutation case.
func (p *Pattern) Permute(rowperm, colperm []int) (*Pattern, []int, error) {
	return p.Sub(rowperm, colperm)
}

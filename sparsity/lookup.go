// SPDX-License-Identifier: MIT

package sparsity

import "sort"

// checkIndex validates (r, c) against the shape.
func (p *Pattern) checkIndex(tag string, r, c int) error {
	if r < 0 || r >= p.nrow {
		return rangeError(tag, "row", r, p.nrow)
	}
	if c < 0 || c >= p.ncol {
		return rangeError(tag, "column", c, p.ncol)
	}

	return nil
}

// find binary-searches row r inside column c; returns the insertion point
// and whether r is present. Assumes (r, c) already validated.
func (p *Pattern) find(r, c int) (int, bool) {
	lo, hi := p.colind[c], p.colind[c+1]
	k := lo + sort.SearchInts(p.row[lo:hi], r)

	return k, k < hi && p.row[k] == r
}

// Lookup returns the nonzero index of (r, c), or ok=false when the
// position is a structural zero.
// Errors: ErrOutOfRange.
// Complexity: O(log k), k = nonzeros in column c. Never mutates.
func (p *Pattern) Lookup(r, c int) (int, bool, error) {
	if err := p.checkIndex(opLookup, r, c); err != nil {
		return -1, false, err
	}
	k, ok := p.find(r, c)
	if !ok {
		return -1, false, nil
	}

	return k, true, nil
}

// Has reports whether (r, c) is a structural nonzero; out-of-range
// positions report false.
func (p *Pattern) Has(r, c int) bool {
	if r < 0 || r >= p.nrow || c < 0 || c >= p.ncol {
		return false
	}
	_, ok := p.find(r, c)

	return ok
}

// LookupMany resolves many positions at once; absent entries map to -1.
// Errors: ErrDimensionMismatch (length mismatch), ErrOutOfRange.
func (p *Pattern) LookupMany(rows, cols []int) ([]int, error) {
	if len(rows) != len(cols) {
		return nil, shapeError(opLookup, len(rows), 1, len(cols), 1)
	}
	out := make([]int, len(rows))
	for i := range rows {
		if err := p.checkIndex(opLookup, rows[i], cols[i]); err != nil {
			return nil, err
		}
		k, ok := p.find(rows[i], cols[i])
		if !ok {
			k = -1
		}
		out[i] = k
	}

	return out, nil
}

// AddEntry returns a pattern that contains (r, c) and the nonzero index of
// that position. If the entry already exists the receiver itself is
// returned, otherwise a NEW pattern is built with the entry inserted and
// all later nonzero indices shifted by one. The receiver is never mutated.
//
// Errors: ErrOutOfRange.
// Complexity: O(log k) when present, O(nnz + ncol) when inserting.
func (p *Pattern) AddEntry(r, c int) (*Pattern, int, error) {
	if err := p.checkIndex(opAddEntry, r, c); err != nil {
		return nil, -1, err
	}
	k, ok := p.find(r, c)
	if ok {
		return p, k, nil
	}

	row := make([]int, len(p.row)+1)
	copy(row, p.row[:k])
	row[k] = r
	copy(row[k+1:], p.row[k:])
	colind := make([]int, p.ncol+1)
	copy(colind, p.colind)
	for j := c + 1; j <= p.ncol; j++ {
		colind[j]++
	}

	return build(p.nrow, p.ncol, colind, row), k, nil
}

// Transpose returns the pattern with rows and columns swapped together with
// mapping, where mapping[k] is the source nonzero of result nonzero k.
// The mapping is mandatory: the transposed nonzero order differs from the
// source order and values must be permuted through it.
//
// Complexity: O(nnz + nrow + ncol).
func (p *Pattern) Transpose() (*Pattern, []int) {
	nnz := len(p.row)
	colind := make([]int, p.nrow+1)
	for _, r := range p.row {
		colind[r+1]++
	}
	for r := 0; r < p.nrow; r++ {
		colind[r+1] += colind[r]
	}
	next := make([]int, p.nrow)
	copy(next, colind[:p.nrow])

	row := make([]int, nnz)
	mapping := make([]int, nnz)
	var c, k, q int
	for c = 0; c < p.ncol; c++ {
		for k = p.colind[c]; k < p.colind[c+1]; k++ {
			q = next[p.row[k]]
			next[p.row[k]]++
			row[q] = c
			mapping[q] = k
		}
	}

	return build(p.ncol, p.nrow, colind, row), mapping
}

// T returns only the transposed pattern.
func (p *Pattern) T() *Pattern {
	t, _ := p.Transpose()
	return t
}

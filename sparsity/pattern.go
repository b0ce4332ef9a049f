// SPDX-License-Identifier: MIT

package sparsity

import (
	"fmt"
	"sort"
	"strings"
)

// Pattern is an immutable compressed-column sparsity pattern.
//
// Invariants (checked by New):
//   - len(colind) == ncol+1, colind[0] == 0, colind[ncol] == len(row)
//   - colind is non-decreasing
//   - inside each column the row indices are strictly increasing and in
//     [0, nrow)
//
// The pattern owns its slices exclusively; accessors return copies.
type Pattern struct {
	nrow, ncol int
	colind     []int // column offsets, length ncol+1
	row        []int // row index of every structural nonzero
}

// New validates and builds a pattern from compressed-column arrays.
// The slices are copied.
// Errors: ErrBadShape, ErrBadPattern.
// Complexity: O(ncol + nnz).
func New(nrow, ncol int, colind, row []int) (*Pattern, error) {
	if nrow < 0 || ncol < 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opNew, nrow, ncol, ErrBadShape)
	}
	p := &Pattern{
		nrow:   nrow,
		ncol:   ncol,
		colind: append([]int(nil), colind...),
		row:    append([]int(nil), row...),
	}
	if err := p.validate(); err != nil {
		return nil, sparsityErrorf(opNew, err)
	}

	return p, nil
}

// validate checks every compressed-column invariant.
func (p *Pattern) validate() error {
	if len(p.colind) != p.ncol+1 {
		return fmt.Errorf("colind length %d, want %d: %w", len(p.colind), p.ncol+1, ErrBadPattern)
	}
	if p.colind[0] != 0 || p.colind[p.ncol] != len(p.row) {
		return fmt.Errorf("colind must span [0,%d]: %w", len(p.row), ErrBadPattern)
	}
	var c, k int
	for c = 0; c < p.ncol; c++ {
		if p.colind[c] > p.colind[c+1] {
			return fmt.Errorf("colind decreases at column %d: %w", c, ErrBadPattern)
		}
	}
	for c = 0; c < p.ncol; c++ {
		for k = p.colind[c]; k < p.colind[c+1]; k++ {
			if p.row[k] < 0 || p.row[k] >= p.nrow {
				return fmt.Errorf("row %d in column %d out of range: %w", p.row[k], c, ErrBadPattern)
			}
			if k > p.colind[c] && p.row[k] <= p.row[k-1] {
				return fmt.Errorf("rows not strictly increasing in column %d: %w", c, ErrBadPattern)
			}
		}
	}

	return nil
}

// build wraps already-valid arrays without copying. Internal use only.
func build(nrow, ncol int, colind, row []int) *Pattern {
	return &Pattern{nrow: nrow, ncol: ncol, colind: colind, row: row}
}

// Empty returns an nrow×ncol pattern with no structural nonzeros.
// Negative dimensions are clamped to zero.
func Empty(nrow, ncol int) *Pattern {
	nrow, ncol = max(nrow, 0), max(ncol, 0)

	return build(nrow, ncol, make([]int, ncol+1), []int{})
}

// Dense returns the fully populated nrow×ncol pattern.
func Dense(nrow, ncol int) *Pattern {
	nrow, ncol = max(nrow, 0), max(ncol, 0)
	colind := make([]int, ncol+1)
	row := make([]int, nrow*ncol)
	var c, r int
	for c = 0; c < ncol; c++ {
		colind[c+1] = colind[c] + nrow
		for r = 0; r < nrow; r++ {
			row[c*nrow+r] = r
		}
	}

	return build(nrow, ncol, colind, row)
}

// Scalar returns the 1×1 pattern, dense or structurally zero.
func Scalar(dense bool) *Pattern {
	if dense {
		return Dense(1, 1)
	}

	return Empty(1, 1)
}

// Diag returns the n×n diagonal pattern.
func Diag(n int) *Pattern {
	n = max(n, 0)
	colind := make([]int, n+1)
	row := make([]int, n)
	for i := 0; i < n; i++ {
		colind[i+1] = i + 1
		row[i] = i
	}

	return build(n, n, colind, row)
}

// Lower returns the dense lower-triangular n×n pattern (diagonal included).
func Lower(n int) *Pattern {
	n = max(n, 0)
	colind := make([]int, n+1)
	row := make([]int, 0, n*(n+1)/2)
	for c := 0; c < n; c++ {
		for r := c; r < n; r++ {
			row = append(row, r)
		}
		colind[c+1] = len(row)
	}

	return build(n, n, colind, row)
}

// Upper returns the dense upper-triangular n×n pattern (diagonal included).
func Upper(n int) *Pattern {
	n = max(n, 0)
	colind := make([]int, n+1)
	row := make([]int, 0, n*(n+1)/2)
	for c := 0; c < n; c++ {
		for r := 0; r <= c; r++ {
			row = append(row, r)
		}
		colind[c+1] = len(row)
	}

	return build(n, n, colind, row)
}

// FromMask builds a pattern from a row-major boolean mask. All rows must
// have the same length.
// Errors: ErrBadPattern for ragged input.
func FromMask(mask [][]bool) (*Pattern, error) {
	nrow := len(mask)
	ncol := 0
	if nrow > 0 {
		ncol = len(mask[0])
	}
	for i := range mask {
		if len(mask[i]) != ncol {
			return nil, fmt.Errorf("%s: mask row %d has %d columns, want %d: %w", opNew, i, len(mask[i]), ncol, ErrBadPattern)
		}
	}
	colind := make([]int, ncol+1)
	row := make([]int, 0)
	for c := 0; c < ncol; c++ {
		for r := 0; r < nrow; r++ {
			if mask[r][c] {
				row = append(row, r)
			}
		}
		colind[c+1] = len(row)
	}

	return build(nrow, ncol, colind, row), nil
}

// Triplet builds a pattern from (row, col) coordinate lists.
// Duplicates are merged. mapping[t] is the nonzero index of triplet t in
// the result, so callers can scatter (and sum) values.
//
// Errors: ErrDimensionMismatch (len(rows) != len(cols)), ErrOutOfRange.
// Complexity: O(t log t) for t triplets.
func Triplet(nrow, ncol int, rows, cols []int) (*Pattern, []int, error) {
	if nrow < 0 || ncol < 0 {
		return nil, nil, fmt.Errorf("%s: %dx%d: %w", opTriplet, nrow, ncol, ErrBadShape)
	}
	if len(rows) != len(cols) {
		return nil, nil, fmt.Errorf("%s: %d rows vs %d cols: %w", opTriplet, len(rows), len(cols), ErrDimensionMismatch)
	}
	n := len(rows)
	for t := 0; t < n; t++ {
		if rows[t] < 0 || rows[t] >= nrow {
			return nil, nil, rangeError(opTriplet, "row", rows[t], nrow)
		}
		if cols[t] < 0 || cols[t] >= ncol {
			return nil, nil, rangeError(opTriplet, "column", cols[t], ncol)
		}
	}

	// Order triplets by (col, row); stable keeps input order for duplicates.
	order := make([]int, n)
	for t := range order {
		order[t] = t
	}
	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := order[a], order[b]
		if cols[ta] != cols[tb] {
			return cols[ta] < cols[tb]
		}
		return rows[ta] < rows[tb]
	})

	colind := make([]int, ncol+1)
	row := make([]int, 0, n)
	mapping := make([]int, n)
	lastR, lastC := -1, -1
	for _, t := range order {
		if rows[t] != lastR || cols[t] != lastC {
			row = append(row, rows[t])
			colind[cols[t]+1]++
			lastR, lastC = rows[t], cols[t]
		}
		mapping[t] = len(row) - 1
	}
	for c := 0; c < ncol; c++ {
		colind[c+1] += colind[c]
	}

	return build(nrow, ncol, colind, row), mapping, nil
}

// Rows returns the number of rows.
func (p *Pattern) Rows() int { return p.nrow }

// Cols returns the number of columns.
func (p *Pattern) Cols() int { return p.ncol }

// NNZ returns the number of structural nonzeros.
func (p *Pattern) NNZ() int { return len(p.row) }

// Numel returns nrow*ncol.
func (p *Pattern) Numel() int { return p.nrow * p.ncol }

// Shape returns (rows, cols).
func (p *Pattern) Shape() (int, int) { return p.nrow, p.ncol }

// ColInd returns a copy of the column offsets.
func (p *Pattern) ColInd() []int { return append([]int(nil), p.colind...) }

// RowIndices returns a copy of the row index of every nonzero.
func (p *Pattern) RowIndices() []int { return append([]int(nil), p.row...) }

// ColIndices returns the column of every nonzero (the expanded colind).
func (p *Pattern) ColIndices() []int {
	out := make([]int, len(p.row))
	for c := 0; c < p.ncol; c++ {
		for k := p.colind[c]; k < p.colind[c+1]; k++ {
			out[k] = c
		}
	}

	return out
}

// Column returns the nonzero index range [begin, end) of column c.
// It panics on an out-of-range column (programmer error in callers that
// already validated c).
func (p *Pattern) Column(c int) (begin, end int) {
	return p.colind[c], p.colind[c+1]
}

// RowAt returns the row of nonzero k.
func (p *Pattern) RowAt(k int) int { return p.row[k] }

// IsEmpty reports a pattern without nonzeros.
func (p *Pattern) IsEmpty() bool { return len(p.row) == 0 }

// IsDense reports nnz == nrow*ncol.
func (p *Pattern) IsDense() bool { return len(p.row) == p.nrow*p.ncol }

// IsScalar reports a 1×1 shape.
func (p *Pattern) IsScalar() bool { return p.nrow == 1 && p.ncol == 1 }

// IsSquare reports nrow == ncol.
func (p *Pattern) IsSquare() bool { return p.nrow == p.ncol }

// IsVector reports a row or column vector shape.
func (p *Pattern) IsVector() bool { return p.nrow == 1 || p.ncol == 1 }

// IsColumn reports an n×1 shape.
func (p *Pattern) IsColumn() bool { return p.ncol == 1 }

// IsTril reports that every nonzero lies on or below the diagonal.
func (p *Pattern) IsTril() bool {
	if !p.IsSquare() {
		return false
	}
	for c := 0; c < p.ncol; c++ {
		// rows are sorted: checking the first entry is enough
		if p.colind[c] < p.colind[c+1] && p.row[p.colind[c]] < c {
			return false
		}
	}

	return true
}

// IsTriu reports that every nonzero lies on or above the diagonal.
func (p *Pattern) IsTriu() bool {
	if !p.IsSquare() {
		return false
	}
	for c := 0; c < p.ncol; c++ {
		if p.colind[c] < p.colind[c+1] && p.row[p.colind[c+1]-1] > c {
			return false
		}
	}

	return true
}

// IsDiag reports a square pattern with nonzeros only on the diagonal.
func (p *Pattern) IsDiag() bool { return p.IsTril() && p.IsTriu() }

// HasFullDiagonal reports a square pattern holding every diagonal entry.
func (p *Pattern) HasFullDiagonal() bool {
	if !p.IsSquare() {
		return false
	}
	for c := 0; c < p.ncol; c++ {
		if !p.Has(c, c) {
			return false
		}
	}

	return true
}

// Equal reports identical shape and nonzero positions.
func (p *Pattern) Equal(q *Pattern) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil || p.nrow != q.nrow || p.ncol != q.ncol || len(p.row) != len(q.row) {
		return false
	}
	for i := range p.colind {
		if p.colind[i] != q.colind[i] {
			return false
		}
	}
	for i := range p.row {
		if p.row[i] != q.row[i] {
			return false
		}
	}

	return true
}

// RowCounts returns the number of nonzeros in every row.
func (p *Pattern) RowCounts() []int {
	out := make([]int, p.nrow)
	for _, r := range p.row {
		out[r]++
	}

	return out
}

// ColCounts returns the number of nonzeros in every column.
func (p *Pattern) ColCounts() []int {
	out := make([]int, p.ncol)
	for c := 0; c < p.ncol; c++ {
		out[c] = p.colind[c+1] - p.colind[c]
	}

	return out
}

// String renders the pattern as rows of '*' (nonzero) and '.' (zero).
func (p *Pattern) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d, %d nnz\n", p.nrow, p.ncol, len(p.row))
	grid := make([][]byte, p.nrow)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", p.ncol))
	}
	for c := 0; c < p.ncol; c++ {
		for k := p.colind[c]; k < p.colind[c+1]; k++ {
			grid[p.row[k]][c] = '*'
		}
	}
	for _, line := range grid {
		sb.Write(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

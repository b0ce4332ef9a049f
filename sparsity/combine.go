// SPDX-License-Identifier: MIT
// Package sparsity: structural set operations between two patterns.
//
// Purpose:
//   - Combine: the result pattern of a pending elementwise operator, driven
//     by whether a structural zero on either side absorbs the result.
//   - Union / Intersect: the same merge, tagging each result nonzero with its
//     provenance so value sequences can be merged in a second pass.
//   - MTimes / Kron: structural products.
//
// Determinism & Performance:
//   - Two-pointer merge per column; O(nnz(a) + nnz(b) + ncol).

package sparsity

// Provenance tags where a merged nonzero came from.
type Provenance uint8

const (
	// FromA marks an entry present only in the left operand.
	FromA Provenance = 1 << iota
	// FromB marks an entry present only in the right operand.
	FromB
	// FromBoth marks an entry present in both operands.
	FromBoth = FromA | FromB
)

// String names the provenance tag.
func (pv Provenance) String() string {
	switch pv {
	case FromA:
		return "A"
	case FromB:
		return "B"
	case FromBoth:
		return "both"
	}

	return "none"
}

// merge walks both patterns column by column. keepA / keepB decide whether
// entries present on only one side survive; entries present on both sides
// always survive.
func (p *Pattern) merge(q *Pattern, keepA, keepB bool) (*Pattern, []Provenance) {
	colind := make([]int, p.ncol+1)
	row := make([]int, 0, len(p.row)+len(q.row))
	tags := make([]Provenance, 0, cap(row))

	var c, ka, kb, ea, eb int
	for c = 0; c < p.ncol; c++ {
		ka, ea = p.colind[c], p.colind[c+1]
		kb, eb = q.colind[c], q.colind[c+1]
		for ka < ea || kb < eb {
			switch {
			case kb >= eb || (ka < ea && p.row[ka] < q.row[kb]):
				if keepA {
					row = append(row, p.row[ka])
					tags = append(tags, FromA)
				}
				ka++
			case ka >= ea || q.row[kb] < p.row[ka]:
				if keepB {
					row = append(row, q.row[kb])
					tags = append(tags, FromB)
				}
				kb++
			default:
				row = append(row, p.row[ka])
				tags = append(tags, FromBoth)
				ka++
				kb++
			}
		}
		colind[c+1] = len(row)
	}

	return build(p.nrow, p.ncol, colind, row), tags
}

// Union returns the structural union of two same-shape patterns and, per
// result nonzero, whether it came from p, q or both.
// Errors: ErrDimensionMismatch.
func (p *Pattern) Union(q *Pattern) (*Pattern, []Provenance, error) {
	if p.nrow != q.nrow || p.ncol != q.ncol {
		return nil, nil, shapeError(opCombine, p.nrow, p.ncol, q.nrow, q.ncol)
	}
	out, tags := p.merge(q, true, true)

	return out, tags, nil
}

// Intersect returns the structural intersection; every tag is FromBoth.
// Errors: ErrDimensionMismatch.
func (p *Pattern) Intersect(q *Pattern) (*Pattern, []Provenance, error) {
	if p.nrow != q.nrow || p.ncol != q.ncol {
		return nil, nil, shapeError(opCombine, p.nrow, p.ncol, q.nrow, q.ncol)
	}
	out, tags := p.merge(q, false, false)

	return out, tags, nil
}

// Combine returns the result pattern of an elementwise operator f(x, y)
// applied to matrices with patterns p (x) and q (y).
//
// Implementation:
//   - Entries present on both sides always survive.
//   - An entry present only in p survives unless fx0IsZero (f(x,0)=0).
//   - An entry present only in q survives unless f0xIsZero (f(0,y)=0).
//
// So addition (neither absorbing) gives the union, multiplication (both
// absorbing) the intersection, and division keeps exactly p's entries.
// Identical patterns short-circuit to p itself.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(nnz(p) + nnz(q) + ncol).
func (p *Pattern) Combine(q *Pattern, f0xIsZero, fx0IsZero bool) (*Pattern, error) {
	if p.nrow != q.nrow || p.ncol != q.ncol {
		return nil, shapeError(opCombine, p.nrow, p.ncol, q.nrow, q.ncol)
	}
	if p.Equal(q) {
		return p, nil
	}
	out, _ := p.merge(q, !fx0IsZero, !f0xIsZero)

	return out, nil
}

// MTimes returns the structural product pattern of p·q.
// Errors: ErrDimensionMismatch when p.Cols() != q.Rows().
// Complexity: O(nrow + Σ_j Σ_{k∈q(:,j)} nnz(p(:,k))).
func (p *Pattern) MTimes(q *Pattern) (*Pattern, error) {
	if p.ncol != q.nrow {
		return nil, shapeError(opMTimes, p.nrow, p.ncol, q.nrow, q.ncol)
	}
	mark := make([]int, p.nrow)
	for i := range mark {
		mark[i] = -1
	}
	colind := make([]int, q.ncol+1)
	row := make([]int, 0, len(p.row)+len(q.row))
	var j, kq, kp, r, start int
	for j = 0; j < q.ncol; j++ {
		start = len(row)
		for kq = q.colind[j]; kq < q.colind[j+1]; kq++ {
			r = q.row[kq] // column of p to scatter
			for kp = p.colind[r]; kp < p.colind[r+1]; kp++ {
				if mark[p.row[kp]] != j {
					mark[p.row[kp]] = j
					row = append(row, p.row[kp])
				}
			}
		}
		sortInts(row[start:])
		colind[j+1] = len(row)
	}

	return build(p.nrow, q.ncol, colind, row), nil
}

// Kron returns the pattern of the Kronecker product p ⊗ q together with,
// per result nonzero, the source nonzero in p and in q.
func (p *Pattern) Kron(q *Pattern) (*Pattern, []int, []int) {
	nrow, ncol := p.nrow*q.nrow, p.ncol*q.ncol
	nnz := len(p.row) * len(q.row)
	colind := make([]int, ncol+1)
	row := make([]int, 0, nnz)
	fromP := make([]int, 0, nnz)
	fromQ := make([]int, 0, nnz)
	var jp, jq, kp, kq int
	for jp = 0; jp < p.ncol; jp++ {
		for jq = 0; jq < q.ncol; jq++ {
			for kp = p.colind[jp]; kp < p.colind[jp+1]; kp++ {
				for kq = q.colind[jq]; kq < q.colind[jq+1]; kq++ {
					row = append(row, p.row[kp]*q.nrow+q.row[kq])
					fromP = append(fromP, kp)
					fromQ = append(fromQ, kq)
				}
			}
			colind[jp*q.ncol+jq+1] = len(row)
		}
	}

	return build(nrow, ncol, colind, row), fromP, fromQ
}

// SPDX-License-Identifier: MIT

package sparsity

import "math/rand"

// MaximumTransversal computes a maximum-cardinality matching between the
// rows and columns of p. rowMatch[i] is the column matched to row i and
// colMatch[j] the row matched to column j, -1 when unmatched.
//
// Implementation:
//   - Fast path: a pattern whose diagonal is full up to min(nrow, ncol)
//     is matched along the diagonal.
//   - Otherwise the wider side is transposed so that columns are the
//     smaller set, then every column starts an augmenting-path search:
//     first a cheap scan for a free row in the column, then an explicitly
//     stacked DFS through matched rows.
//   - seed selects the column visiting order: 0 is natural order, a
//     negative seed reverses it and a positive seed draws a pseudo-random
//     permutation from math/rand seeded with it.
//
// The result never holds more than min(nrow, ncol) pairs and the call
// cannot fail.
//
// Complexity: O(ncol · nnz) worst case.
func (p *Pattern) MaximumTransversal(seed int64) (rowMatch, colMatch []int) {
	m, n := p.nrow, p.ncol

	// Fast path: full diagonal.
	diag := 0
	rowSeen := make([]bool, m)
	nonEmptyCols := 0
	var j, q int
	for j = 0; j < n; j++ {
		if p.colind[j] < p.colind[j+1] {
			nonEmptyCols++
		}
		for q = p.colind[j]; q < p.colind[j+1]; q++ {
			rowSeen[p.row[q]] = true
			if p.row[q] == j {
				diag++
			}
		}
	}
	if k := min(m, n); diag == k {
		rowMatch, colMatch = filled(m, -1), filled(n, -1)
		for j = 0; j < k; j++ {
			rowMatch[j] = j
			colMatch[j] = j
		}

		return rowMatch, colMatch
	}
	nonEmptyRows := 0
	for _, seen := range rowSeen {
		if seen {
			nonEmptyRows++
		}
	}

	c := p
	flipped := nonEmptyRows < nonEmptyCols
	if flipped {
		c, _ = p.Transpose()
	}
	jmatch, imatch := c.matchColumns(seed)
	if flipped {
		return imatch, jmatch
	}

	return jmatch, imatch
}

// matchColumns runs the augmenting-path search on every column of c and
// returns (row → column, column → row).
func (c *Pattern) matchColumns(seed int64) (jmatch, imatch []int) {
	m, n := c.nrow, c.ncol
	jmatch = filled(m, -1)
	w := filled(n, -1)
	cheap := append([]int(nil), c.colind[:n]...)
	js := make([]int, n)
	is := make([]int, n)
	ps := make([]int, n)

	for _, k := range columnOrder(n, seed) {
		c.augment(k, jmatch, cheap, w, js, is, ps)
	}

	imatch = filled(n, -1)
	for i, j := range jmatch {
		if j >= 0 {
			imatch[j] = i
		}
	}

	return jmatch, imatch
}

// augment searches for an augmenting path starting at column k and, when
// one exists, flips it into jmatch. w[j] == k marks column j as visited in
// this search; cheap[j] remembers how far column j's cheap scan got.
func (c *Pattern) augment(k int, jmatch, cheap, w, js, is, ps []int) {
	var (
		found            bool
		head, j, q, i, e int
		pushed           bool
	)
	js[0] = k
	for head >= 0 {
		j = js[head]
		e = c.colind[j+1]
		if w[j] != k {
			// first visit: cheap scan for a free row
			w[j] = k
			for q = cheap[j]; q < e; q++ {
				i = c.row[q]
				if jmatch[i] == -1 {
					found = true
					q++
					break
				}
			}
			cheap[j] = q
			if found {
				is[head] = i
				break
			}
			ps[head] = c.colind[j]
		}
		// depth-first through matched rows
		pushed = false
		for q = ps[head]; q < e; q++ {
			i = c.row[q]
			if w[jmatch[i]] == k {
				continue
			}
			ps[head] = q + 1
			is[head] = i
			head++
			js[head] = jmatch[i]
			pushed = true
			break
		}
		if !pushed {
			head--
		}
	}
	if found {
		for q = head; q >= 0; q-- {
			jmatch[is[q]] = js[q]
		}
	}
}

// columnOrder returns the visiting order for seed (see MaximumTransversal).
func columnOrder(n int, seed int64) []int {
	switch {
	case seed == 0:
		return identityPerm(n)
	case seed < 0:
		out := make([]int, n)
		for k := range out {
			out[k] = n - 1 - k
		}

		return out
	}

	return rand.New(rand.NewSource(seed)).Perm(n)
}

// StructuralRank returns the size of a maximum transversal of p.
func (p *Pattern) StructuralRank() int {
	_, colMatch := p.MaximumTransversal(0)
	r := 0
	for _, i := range colMatch {
		if i >= 0 {
			r++
		}
	}

	return r
}

// SPDX-License-Identifier: MIT

package sparsity

// Blocks is a Dulmage–Mendelsohn decomposition. Permuting rows by RowPerm
// and columns by ColPerm gives a block upper triangular matrix whose fine
// block b spans rows RowPerm[RowBlock[b]:RowBlock[b+1]] and columns
// ColPerm[ColBlock[b]:ColBlock[b+1]].
//
// The coarse decomposition splits rows into R0..R3 and columns into C0..C3,
// set i spanning CoarseRowBlock[i]..CoarseRowBlock[i+1] of the permuted
// order (likewise for columns):
//
//	      C0   C1   C2   C3
//	R0  [ A00  A01  A02  A03 ]
//	R1  [  .    .   A12  A13 ]
//	R2  [  .    .    .   A23 ]
//	R3  [  .    .    .   A33 ]
//
// C0 holds unmatched columns and R3 unmatched rows. (R0, C0∪C1) is the
// under-determined part, (R1, C2) the square structurally nonsingular
// part, which is split further into strongly connected fine blocks, and
// (R2∪R3, C3) the over-determined part.
type Blocks struct {
	RowPerm        []int
	ColPerm        []int
	RowBlock       []int
	ColBlock       []int
	CoarseRowBlock [5]int
	CoarseColBlock [5]int
}

// NumBlocks returns the number of fine blocks.
func (b *Blocks) NumBlocks() int { return len(b.RowBlock) - 1 }

// DulmageMendelsohn computes the coarse and fine Dulmage–Mendelsohn
// decomposition of p.
//
// Implementation:
//   - Stage 1: maximum transversal (seed as in MaximumTransversal).
//   - Stage 2: breadth-first search from unmatched columns along
//     column → row → matched column, and from unmatched rows along
//     row → column → matched row; the marks give the coarse sets.
//   - Stage 3: collect the sets into the permutations and coarse bounds.
//   - Stage 4: strongly connected components of the square, matched part
//     refine it into fine blocks; the leading and trailing coarse parts
//     become one block each when non-empty.
//
// The call never fails; a structurally singular pattern yields non-empty
// C0/R3 sets.
func (p *Pattern) DulmageMendelsohn(seed int64) *Blocks {
	m, n := p.nrow, p.ncol
	rowMatch, colMatch := p.MaximumTransversal(seed)

	// Stage 2: coarse marks, -1 = untouched.
	wi := filled(m, -1)
	wj := filled(n, -1)
	rowPerm := make([]int, m)
	colPerm := make([]int, n)
	bfsMark(p, n, wi, wj, colPerm, colMatch, rowMatch, 1)
	at, _ := p.Transpose()
	bfsMark(at, m, wj, wi, rowPerm, rowMatch, colMatch, 3)

	// Stage 3: coarse sets.
	var cc, rr [5]int
	unmatched(n, wj, colPerm, &cc, 0)
	matched(n, wj, colMatch, rowPerm, colPerm, &cc, &rr, 1, 1)
	matched(n, wj, colMatch, rowPerm, colPerm, &cc, &rr, 2, -1)
	matched(n, wj, colMatch, rowPerm, colPerm, &cc, &rr, 3, 3)
	unmatched(m, wi, rowPerm, &rr, 3)

	// Stage 4: fine blocks of the square part.
	nc := cc[3] - cc[2]
	c, _, _ := p.Sub(rowPerm[rr[1]:rr[2]], colPerm[cc[2]:cc[3]])
	sccPerm, sccBlocks, nb1, _ := c.StronglyConnectedComponents()
	tmp := make([]int, nc)
	for k := 0; k < nc; k++ {
		tmp[k] = colPerm[sccPerm[k]+cc[2]]
	}
	copy(colPerm[cc[2]:], tmp)
	for k := 0; k < nc; k++ {
		tmp[k] = rowPerm[sccPerm[k]+rr[1]]
	}
	copy(rowPerm[rr[1]:], tmp)

	r := make([]int, 0, nb1+3)
	s := make([]int, 0, nb1+3)
	if cc[2] > 0 {
		r = append(r, 0)
		s = append(s, 0)
	}
	for k := 0; k < nb1; k++ {
		r = append(r, sccBlocks[k]+rr[1])
		s = append(s, sccBlocks[k]+cc[2])
	}
	if rr[2] < m {
		r = append(r, rr[2])
		s = append(s, cc[3])
	}
	r = append(r, m)
	s = append(s, n)

	return &Blocks{
		RowPerm:        rowPerm,
		ColPerm:        colPerm,
		RowBlock:       r,
		ColBlock:       s,
		CoarseRowBlock: rr,
		CoarseColBlock: cc,
	}
}

// BTF returns the block triangular form used by the general linear
// solve: DulmageMendelsohn with the natural column order.
func (p *Pattern) BTF() *Blocks { return p.DulmageMendelsohn(0) }

// bfsMark runs a breadth-first search over g starting from every
// unmatched node j < n (imatch[j] < 0). Reached opposite-side nodes i get
// wi[i] = mark, and their partners jmatch[i] get wj = mark. Start nodes
// get wj = 0. queue needs length n.
func bfsMark(g *Pattern, n int, wi, wj, queue, imatch, jmatch []int, mark int) {
	var head, tail, j, q, i, j2 int
	for j = 0; j < n; j++ {
		if imatch[j] >= 0 {
			continue
		}
		wj[j] = 0
		queue[tail] = j
		tail++
	}
	for head < tail {
		j = queue[head]
		head++
		for q = g.colind[j]; q < g.colind[j+1]; q++ {
			i = g.row[q]
			if wi[i] >= 0 {
				continue
			}
			wi[i] = mark
			j2 = jmatch[i]
			if j2 < 0 || wj[j2] >= 0 {
				continue
			}
			wj[j2] = mark
			queue[tail] = j2
			tail++
		}
	}
}

// unmatched appends every node with w == 0 to perm starting at
// bounds[set], recording the end in bounds[set+1].
func unmatched(n int, w, perm []int, bounds *[5]int, set int) {
	k := bounds[set]
	for i := 0; i < n; i++ {
		if w[i] == 0 {
			perm[k] = i
			k++
		}
	}
	bounds[set+1] = k
}

// matched appends every column with wj == mark, and its matched row, to
// the permutations, closing column set `set` and row set `set-1`.
func matched(n int, wj, imatch, rowPerm, colPerm []int, cc, rr *[5]int, set, mark int) {
	kc := cc[set]
	kr := rr[set-1]
	for j := 0; j < n; j++ {
		if wj[j] != mark {
			continue
		}
		rowPerm[kr] = imatch[j]
		kr++
		colPerm[kc] = j
		kc++
	}
	cc[set+1] = kc
	rr[set] = kr
}

// SPDX-License-Identifier: MIT

package sparsity

// StronglyConnectedComponents partitions the directed graph of a square
// pattern (edge j → i for every nonzero (i, j)) into strongly connected
// components.
//
// Returns:
//   - perm:   node order grouping every component contiguously
//   - blocks: component boundaries, component b is perm[blocks[b]:blocks[b+1]]
//   - nb:     number of components, len(blocks) == nb+1
//
// Applying perm to both rows and columns gives a block-triangular form
// whose diagonal blocks are the components.
//
// Implementation:
//   - Stage 1: DFS over p recording finish order.
//   - Stage 2: DFS over pᵗ in reverse finish order; every tree is one
//     component.
//   - Stage 3: Counting sort of nodes by component.
//
// Errors: ErrNotSquare.
// Complexity: O(n + nnz).
func (p *Pattern) StronglyConnectedComponents() (perm, blocks []int, nb int, err error) {
	if p.nrow != p.ncol {
		return nil, nil, 0, sparsityErrorf(opSCC, ErrNotSquare)
	}
	n := p.ncol
	at, _ := p.Transpose()
	xi := make([]int, n)
	pstack := make([]int, n)
	marked := make([]bool, n)
	perm = make([]int, n)
	r := make([]int, n+1)

	// Stage 1: finish order on p.
	top := n
	var i, k, b int
	for i = 0; i < n; i++ {
		if !marked[i] {
			top = p.DepthFirstSearch(i, top, xi, pstack, nil, marked)
		}
	}

	// Stage 2: trees of pᵗ, visited in reverse finish order.
	for i = range marked {
		marked[i] = false
	}
	top = n
	nb = n
	for k = 0; k < n; k++ {
		i = xi[k]
		if marked[i] {
			continue
		}
		r[nb] = top
		nb--
		top = at.DepthFirstSearch(i, top, perm, pstack, nil, marked)
	}
	r[nb] = 0
	for k = nb; k <= n; k++ {
		r[k-nb] = r[k]
	}
	nb = n - nb
	blocks = r[:nb+1]

	// Stage 3: sort nodes by component.
	blk := make([]int, n)
	for b = 0; b < nb; b++ {
		for k = blocks[b]; k < blocks[b+1]; k++ {
			blk[perm[k]] = b
		}
	}
	next := append([]int(nil), blocks...)
	for i = 0; i < n; i++ {
		perm[next[blk[i]]] = i
		next[blk[i]]++
	}

	return perm, blocks, nb, nil
}

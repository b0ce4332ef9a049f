// SPDX-License-Identifier: MIT

package sparsity

// DepthFirstSearch runs an explicitly stacked depth-first search of the
// directed graph of p (edge j → i for every nonzero (i, j)) starting at
// node j. Finished nodes are pushed onto xi from the top down, so on
// return xi[newTop:top] holds the newly reached nodes in reverse finish
// order (a topological order of the reached subgraph).
//
// Parameters:
//   - top:    current top of the output stack inside xi
//   - xi:     shared work array; the DFS stack grows from xi[0] upwards and
//     the output stack grows from xi[top] downwards, they never meet
//   - pstack: per-stack-level resume position inside the column
//   - pinv:   optional node renumbering (nil = identity); a node with
//     pinv[j] < 0 has no outgoing edges
//   - marked: visited flags, set for every reached node and left set
//
// Returns the new top. Nodes already marked are not revisited, so calling
// it repeatedly with one marked slice accumulates a forest.
//
// Complexity: O(nodes reached + edges scanned).
func (p *Pattern) DepthFirstSearch(j, top int, xi, pstack, pinv []int, marked []bool) int {
	var (
		head, jnew, q, end, i int
		done                  bool
	)
	xi[0] = j
	for head >= 0 {
		j = xi[head]
		jnew = j
		if pinv != nil {
			jnew = pinv[j]
		}
		if !marked[j] {
			marked[j] = true
			if jnew < 0 {
				pstack[head] = 0
			} else {
				pstack[head] = p.colind[jnew]
			}
		}
		done = true
		end = 0
		if jnew >= 0 {
			end = p.colind[jnew+1]
		}
		for q = pstack[head]; q < end; q++ {
			i = p.row[q]
			if marked[i] {
				continue
			}
			pstack[head] = q // resume here after i finishes
			head++
			xi[head] = i
			done = false
			break
		}
		if done {
			head--
			top--
			xi[top] = j
		}
	}

	return top
}

// Reach computes the set of nodes reachable in the graph of p from the
// nonzeros of column k of b, i.e. the nonzero rows of x in p·x = b(:,k)
// when p is triangular. xi must have length ≥ 2·Cols(); the result is
// xi[top:n] in topological order, n = Cols(). marked is restored to all
// false before returning. pstack needs length ≥ Cols().
func (p *Pattern) Reach(b *Pattern, k int, xi, pstack []int, marked []bool) int {
	n := p.ncol
	top := n
	for q := b.colind[k]; q < b.colind[k+1]; q++ {
		if !marked[b.row[q]] {
			top = p.DepthFirstSearch(b.row[q], top, xi, pstack, nil, marked)
		}
	}
	for q := top; q < n; q++ {
		marked[xi[q]] = false
	}

	return top
}

// TopologicalReach is the allocating form of Reach: it returns the nodes
// reachable from column k of b in topological order.
// Errors: ErrDimensionMismatch when b.Rows() != Cols() or p is not square,
// ErrOutOfRange for k.
func (p *Pattern) TopologicalReach(b *Pattern, k int) ([]int, error) {
	if p.nrow != p.ncol || b.nrow != p.ncol {
		return nil, shapeError("Reach", p.nrow, p.ncol, b.nrow, b.ncol)
	}
	if k < 0 || k >= b.ncol {
		return nil, rangeError("Reach", "column", k, b.ncol)
	}
	n := p.ncol
	xi := make([]int, 2*n)
	pstack := make([]int, n)
	marked := make([]bool, n)
	top := p.Reach(b, k, xi, pstack, marked)

	return append([]int(nil), xi[top:n]...), nil
}

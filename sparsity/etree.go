// SPDX-License-Identifier: MIT

package sparsity

// EliminationTree returns the parent of every column in the elimination
// tree of AᵗA (ata == true) or of A itself, taken as symmetric with only
// its upper triangle consulted (ata == false). Roots have parent -1.
//
// Implementation:
//   - Columns are visited in order; for every entry i < k the path from i
//     to its current root is walked and compressed onto k (the ancestor
//     array plays the role of a union–find forest).
//   - For AᵗA the row structure is folded in through prev[row], the last
//     column seen in that row, so AᵗA is never formed.
//
// Complexity: O(nnz · α(n)) time, O(nrow + ncol) extra memory.
func (p *Pattern) EliminationTree(ata bool) []int {
	n := p.ncol
	parent := make([]int, n)
	ancestor := make([]int, n)
	var prev []int
	if ata {
		prev = filled(p.nrow, -1)
	}

	var k, q, i, inext int
	for k = 0; k < n; k++ {
		parent[k] = -1
		ancestor[k] = -1
		for q = p.colind[k]; q < p.colind[k+1]; q++ {
			if ata {
				i = prev[p.row[q]]
			} else {
				i = p.row[q]
			}
			for i != -1 && i < k {
				inext = ancestor[i]
				ancestor[i] = k
				if inext == -1 {
					parent[i] = k
				}
				i = inext
			}
			if ata {
				prev[p.row[q]] = k
			}
		}
	}

	return parent
}

// PostOrder returns a postordering of the forest described by parent:
// every node appears after all of its descendants.
func PostOrder(parent []int) []int {
	n := len(parent)
	head := filled(n, -1)
	next := make([]int, n)
	// children are linked in reverse so that they pop in increasing order
	for j := n - 1; j >= 0; j-- {
		if parent[j] == -1 {
			continue
		}
		next[j] = head[parent[j]]
		head[parent[j]] = j
	}

	post := make([]int, 0, n)
	stack := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if parent[j] != -1 {
			continue
		}
		stack = append(stack, j)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if child := head[top]; child != -1 {
				head[top] = next[child]
				stack = append(stack, child)
				continue
			}
			stack = stack[:len(stack)-1]
			post = append(post, top)
		}
	}

	return post
}

// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

// SolveTriangular solves a·x = b for a lower or upper triangular a, one
// right-hand side column at a time.
//
// Implementation:
//   - Stage 1: the nonzero rows of x(:,k) are the nodes reachable in the
//     graph of a from the nonzeros of b(:,k); Reach returns them in
//     topological order, which is forward substitution order for a lower
//     and backward order for an upper a.
//   - Stage 2: scatter b(:,k) into a dense work vector, then for every
//     reached j: x_j /= a_jj and x_i -= a_ij·x_j for the off-diagonal
//     nonzeros of column j.
//   - Stage 3: gather the reached rows into the result column.
//
// Rows of b(:,k) that are structurally zero and unreachable stay
// structural zeros in x. A structurally zero diagonal divides by zero.
// Errors: sparse.ErrNotSquare, sparse.ErrDimensionMismatch,
// ErrNotTriangular.
// Complexity: O(Σ_k flops(x(:,k))) plus O(n) per column for the diagonal.
func SolveTriangular[T scalar.Field[T]](a, b *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	if err := checkSquare(opTriSolve, a); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, linalgErrorf(opTriSolve, sparse.ErrNilMatrix)
	}
	if b.Rows() != a.Rows() {
		return nil, fmt.Errorf("%s: a is %dx%d, b is %dx%d: %w", opTriSolve, a.Rows(), a.Cols(), b.Rows(), b.Cols(), sparse.ErrDimensionMismatch)
	}
	if !a.IsTril() && !a.IsTriu() {
		return nil, linalgErrorf(opTriSolve, ErrNotTriangular)
	}

	var (
		n      = a.Rows()
		asp    = a.Sparsity()
		bsp    = b.Sparsity()
		avals  = a.NonZeros()
		bvals  = b.NonZeros()
		diag   = make([]T, n)
		w      = make([]T, n)
		xi     = make([]int, 2*n)
		pstack = make([]int, n)
		marked = make([]bool, n)
		zero   = scalar.Zero[T]()

		rows, cols []int
		vals       []T
		reach      []int
		j, k, q    int
		top, e     int
	)
	for j = 0; j < n; j++ {
		diag[j], _ = a.At(j, j)
	}

	for k = 0; k < b.Cols(); k++ {
		top = asp.Reach(bsp, k, xi, pstack, marked)
		reach = xi[top:n]
		for _, j = range reach {
			w[j] = zero
		}
		q, e = bsp.Column(k)
		for ; q < e; q++ {
			w[bsp.RowAt(q)] = bvals[q]
		}

		for _, j = range reach {
			w[j] = w[j].Div(diag[j])
			q, e = asp.Column(j)
			for ; q < e; q++ {
				if i := asp.RowAt(q); i != j {
					w[i] = w[i].Sub(avals[q].Mul(w[j]))
				}
			}
		}

		sorted := append([]int(nil), reach...)
		sort.Ints(sorted)
		for _, j = range sorted {
			rows, cols, vals = append(rows, j), append(cols, k), append(vals, w[j])
		}
	}

	x, err := sparse.Triplet(n, b.Cols(), rows, cols, vals)
	if err != nil {
		return nil, linalgErrorf(opTriSolve, err)
	}

	return x, nil
}

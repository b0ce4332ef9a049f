// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// QR factorises a (rows ≥ cols) as Q·R with orthonormal columns in Q and
// upper triangular R, by modified Gram-Schmidt (Demmel, Applied Numerical
// Linear Algebra, alg. 3.1).
//
// Implementation:
//   - Stage 1: column i of a seeds q_i.
//   - Stage 2: for every earlier q_j that shares a nonzero row with q_i,
//     r_ji = q_iᵗq_j and q_i -= r_ji·q_j. Structurally orthogonal pairs are
//     skipped and leave r_ji a structural zero.
//   - Stage 3: r_ii = ‖q_i‖₂, q_i /= r_ii.
//
// A rank-deficient column gives r_ii = 0 and non-finite entries in q_i.
// Errors: ErrShape for a wide matrix.
// Complexity: O(cols² · rows) in the dense case.
func QR[T scalar.Real[T]](a *sparse.Matrix[T]) (q, r *sparse.Matrix[T], err error) {
	if a == nil {
		return nil, nil, linalgErrorf(opQR, sparse.ErrNilMatrix)
	}
	if a.Rows() < a.Cols() {
		return nil, nil, fmt.Errorf("%s: %dx%d has fewer rows than columns: %w", opQR, a.Rows(), a.Cols(), ErrShape)
	}

	return qr(a)
}

func qr[T scalar.Real[T]](a *sparse.Matrix[T]) (*sparse.Matrix[T], *sparse.Matrix[T], error) {
	nrow, n := a.Shape()
	if n == 0 {
		return sparse.Empty[T](nrow, 0), sparse.Empty[T](0, 0), nil
	}
	var (
		qs         = make([]*sparse.Matrix[T], n)
		rows, cols []int
		vals       []T
		qi, p      *sparse.Matrix[T]
		rji, rii   T
		i, j       int
		err        error
	)
	for i = 0; i < n; i++ {
		if qi, err = a.Get(sparse.All(), sparse.Indices(i)); err != nil {
			return nil, nil, linalgErrorf(opQR, err)
		}
		for j = 0; j < i; j++ {
			if p, err = sparse.Mul(qi, qs[j]); err != nil {
				return nil, nil, linalgErrorf(opQR, err)
			}
			if p.NNZ() == 0 {
				continue
			}
			rji = p.Sum()
			rows, cols, vals = append(rows, j), append(cols, i), append(vals, rji)
			if p, err = sparse.Scale(rji, qs[j]); err != nil {
				return nil, nil, linalgErrorf(opQR, err)
			}
			if qi, err = sparse.Sub(qi, p); err != nil {
				return nil, nil, linalgErrorf(opQR, err)
			}
		}
		rii = sparse.NormF(qi)
		rows, cols, vals = append(rows, i), append(cols, i), append(vals, rii)
		if qs[i], err = sparse.Div(qi, sparse.ScalarOf(rii)); err != nil {
			return nil, nil, linalgErrorf(opQR, err)
		}
	}

	q, err := sparse.Horzcat(qs...)
	if err != nil {
		return nil, nil, linalgErrorf(opQR, err)
	}
	r, err := sparse.Triplet(n, n, rows, cols, vals)
	if err != nil {
		return nil, nil, linalgErrorf(opQR, err)
	}

	return q, r, nil
}

// Cholesky returns the lower triangular L with L·Lᵗ = a for a symmetric
// positive definite a (Cholesky-Banachiewicz, row by row). Only the lower
// triangle of a is read. A matrix that is not positive definite is not
// detected: it surfaces as NaN from Sqrt.
// Errors: sparse.ErrNotSquare.
// Complexity: O(n³); L is stored on the full lower pattern.
func Cholesky[T scalar.Real[T]](a *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	if err := checkSquare(opCholesky, a); err != nil {
		return nil, err
	}
	n := a.Rows()
	at := func(r, c int) T {
		v, _ := a.At(r, c)
		return v
	}
	// l holds the lower triangle row-major: l[i*n+j], j ≤ i.
	l := make([]T, n*n)
	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			sum = scalar.Zero[T]()
			for k = 0; k < j; k++ {
				sum = sum.Add(l[i*n+k].Mul(l[j*n+k]))
			}
			l[i*n+j] = at(i, j).Sub(sum).Div(l[j*n+j])
		}
		sum = scalar.Zero[T]()
		for k = 0; k < i; k++ {
			sum = sum.Add(l[i*n+k].Mul(l[i*n+k]))
		}
		l[i*n+i] = at(i, i).Sub(sum).Sqrt()
	}

	vals := make([]T, 0, n*(n+1)/2)
	for j = 0; j < n; j++ {
		for i = j; i < n; i++ {
			vals = append(vals, l[i*n+j])
		}
	}
	out, err := sparse.New(sparsity.Lower(n), vals)
	if err != nil {
		return nil, linalgErrorf(opCholesky, err)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Nullspace returns an m×(m-n) matrix whose columns span the nullspace of
// a full row rank n×m matrix a (m ≥ n), with orthonormal columns.
//
// Implementation:
//   - Stage 1: Householder reflections eliminate a row by row from the
//     right; reflector i is u_i (u_i[0] = 1) with weight β_i.
//   - Stage 2: the last m-n columns of the identity are multiplied by the
//     reflectors in reverse order.
//
// Errors: ErrShape for a tall matrix.
// Complexity: O(n·m²) dense operations.
func Nullspace[T scalar.Real[T]](a *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	if a == nil {
		return nil, linalgErrorf(opNullspace, sparse.ErrNilMatrix)
	}
	n, m := a.Shape()
	if m < n {
		return nil, fmt.Errorf("%s: %dx%d has more rows than columns: %w", opNullspace, n, m, ErrShape)
	}
	if m == n {
		return sparse.Empty[T](m, 0), nil
	}

	var (
		x     = a.Clone()
		one   = scalar.One[T]()
		us    = make([]*sparse.Matrix[T], n)
		betas = make([]T, n)
		err   error
	)
	for i := 0; i < n; i++ {
		rows, cols := sparse.Range(i, n, 1), sparse.Range(i, m, 1)
		row, err := x.Get(sparse.Indices(i), cols)
		if err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		sigma := sparse.NormF(row)
		x0, _ := row.At(0, 0)
		b := sigma.Copysign(x0).Neg()

		u, err := sparse.Scale(one.Div(x0.Sub(b)), row)
		if err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		if err = u.Set(0, 0, one); err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		beta := one.Sub(x0.Div(b))

		// x(i:, i:) -= β·(x(i:, i:)·uᵗ)·u
		blk, err := x.Get(rows, cols)
		if err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		if blk, err = reflect(blk, u.Transpose(), u, beta); err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		if err = x.SetBlock(rows, cols, blk); err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		us[i], betas[i] = u, beta
	}

	seed, err := sparse.Eye[T](m).Get(sparse.All(), sparse.Range(n, m, 1))
	if err != nil {
		return nil, linalgErrorf(opNullspace, err)
	}
	for i := n - 1; i >= 0; i-- {
		rows := sparse.Range(i, m, 1)
		blk, err := seed.Get(rows, sparse.All())
		if err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		// seed(i:, :) -= β·uᵗ·(u·seed(i:, :))
		uT := us[i].Transpose()
		if blk, err = reflectLeft(blk, uT, us[i], betas[i]); err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
		if err = seed.SetBlock(rows, sparse.All(), blk); err != nil {
			return nil, linalgErrorf(opNullspace, err)
		}
	}

	return seed, nil
}

// reflect returns blk - β·(blk·uT)·u.
func reflect[T scalar.Ring[T]](blk, uT, u *sparse.Matrix[T], beta T) (*sparse.Matrix[T], error) {
	bu, err := sparse.MTimes(blk, uT)
	if err != nil {
		return nil, err
	}
	upd, err := sparse.MTimes(bu, u)
	if err != nil {
		return nil, err
	}

	scaled, err := sparse.Scale(beta, upd)
	if err != nil {
		return nil, err
	}

	return sparse.Sub(blk, scaled)
}

// reflectLeft returns blk - β·uT·(u·blk).
func reflectLeft[T scalar.Ring[T]](blk, uT, u *sparse.Matrix[T], beta T) (*sparse.Matrix[T], error) {
	ub, err := sparse.MTimes(u, blk)
	if err != nil {
		return nil, err
	}
	upd, err := sparse.MTimes(uT, ub)
	if err != nil {
		return nil, err
	}

	scaled, err := sparse.Scale(beta, upd)
	if err != nil {
		return nil, err
	}

	return sparse.Sub(blk, scaled)
}

// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Pinv returns the Moore-Penrose pseudo-inverse of a full-rank a through
// the normal equations: solve(a·aᵗ, a)ᵗ when a is wide (or square) and
// solve(aᵗ·a, aᵗ) when it is tall.
// Errors: as Solve.
func Pinv[T scalar.Real[T]](a *sparse.Matrix[T], opts ...Option) (*sparse.Matrix[T], error) {
	if a == nil {
		return nil, linalgErrorf(opPinv, sparse.ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	at := a.Transpose()
	if a.Cols() >= a.Rows() {
		aat, err := sparse.MTimes(a, at)
		if err != nil {
			return nil, linalgErrorf(opPinv, err)
		}
		x, err := solve(aat, a, o)
		if err != nil {
			return nil, linalgErrorf(opPinv, err)
		}
		return x.Transpose(), nil
	}
	ata, err := sparse.MTimes(at, a)
	if err != nil {
		return nil, linalgErrorf(opPinv, err)
	}
	x, err := solve(ata, at, o)
	if err != nil {
		return nil, linalgErrorf(opPinv, err)
	}

	return x, nil
}

// Mpower returns a^k for a square a and k ≥ 0 by repeated squaring; a^0 is
// the identity.
// Errors: sparse.ErrNotSquare, ErrNegativePower.
func Mpower[T scalar.Ring[T]](a *sparse.Matrix[T], k int) (*sparse.Matrix[T], error) {
	if err := checkSquare(opMpower, a); err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, fmt.Errorf("%s: exponent %d: %w", opMpower, k, ErrNegativePower)
	}
	var (
		acc  = sparse.Eye[T](a.Rows())
		base = a
		err  error
	)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			if acc, err = sparse.MTimes(acc, base); err != nil {
				return nil, linalgErrorf(opMpower, err)
			}
		}
		if k > 1 {
			if base, err = sparse.MTimes(base, base); err != nil {
				return nil, linalgErrorf(opMpower, err)
			}
		}
	}

	return acc, nil
}

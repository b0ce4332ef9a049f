// SPDX-License-Identifier: MIT
// Package linalg: determinant, minors, cofactors, adjugate and inverse by
// Laplace expansion.
//
// Expansion rules:
//   - 1×1 and 2×2 use closed forms.
//   - A row or column without nonzeros makes the determinant a structural
//     zero; no expansion happens.
//   - Otherwise expansion runs along the line (row or column) with the
//     fewest nonzeros, rows winning ties, and only over its nonzeros.
//
// The operation sequence never looks at values, so symbolic matrices get
// the same sparse expansion as numeric ones.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

// checkOrder applies the cofactor order limit.
func checkOrder(tag string, n int, o options) error {
	if n > o.maxCofactor {
		return fmt.Errorf("%s: order %d above %d: %w", tag, n, o.maxCofactor, ErrTooLarge)
	}

	return nil
}

// checkEntry rejects (r, c) outside an n×n matrix.
func checkEntry(tag string, n, r, c int) error {
	if r < 0 || r >= n || c < 0 || c >= n {
		return fmt.Errorf("%s: entry (%d,%d) of %dx%d: %w", tag, r, c, n, n, sparse.ErrOutOfRange)
	}

	return nil
}

// Det returns the determinant of a square matrix.
// Errors: sparse.ErrNotSquare, ErrTooLarge.
func Det[T scalar.Ring[T]](x *sparse.Matrix[T], opts ...Option) (T, error) {
	if err := checkSquare(opDet, x); err != nil {
		return scalar.Zero[T](), err
	}
	if err := checkOrder(opDet, x.Rows(), gatherOptions(opts...)); err != nil {
		return scalar.Zero[T](), err
	}

	return det(x), nil
}

// Minor returns the determinant of x without row r and column c. The minor
// of a 1×1 matrix is one.
// Errors: sparse.ErrNotSquare, sparse.ErrOutOfRange, ErrTooLarge.
func Minor[T scalar.Ring[T]](x *sparse.Matrix[T], r, c int, opts ...Option) (T, error) {
	if err := checkSquare(opMinor, x); err != nil {
		return scalar.Zero[T](), err
	}
	if err := checkEntry(opMinor, x.Rows(), r, c); err != nil {
		return scalar.Zero[T](), err
	}
	if err := checkOrder(opMinor, x.Rows(), gatherOptions(opts...)); err != nil {
		return scalar.Zero[T](), err
	}

	return minor(x, r, c), nil
}

// Cofactor returns (-1)^(r+c) · Minor(x, r, c).
// Errors: as Minor.
func Cofactor[T scalar.Ring[T]](x *sparse.Matrix[T], r, c int, opts ...Option) (T, error) {
	m, err := Minor(x, r, c, opts...)
	if err != nil {
		return m, err
	}
	if (r+c)%2 == 1 {
		return m.Neg(), nil
	}

	return m, nil
}

// Adjugate returns the transposed cofactor matrix. Cofactors that are
// exactly zero stay structural zeros.
// Errors: sparse.ErrNotSquare, ErrTooLarge.
func Adjugate[T scalar.Ring[T]](x *sparse.Matrix[T], opts ...Option) (*sparse.Matrix[T], error) {
	if err := checkSquare(opAdjugate, x); err != nil {
		return nil, err
	}
	if err := checkOrder(opAdjugate, x.Rows(), gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return adjugate(x)
}

// Inverse returns Adjugate(x) / Det(x). A singular x is not detected: the
// division by a zero determinant yields non-finite entries for Float.
// Errors: sparse.ErrNotSquare, ErrTooLarge.
func Inverse[T scalar.Field[T]](x *sparse.Matrix[T], opts ...Option) (*sparse.Matrix[T], error) {
	if err := checkSquare(opInverse, x); err != nil {
		return nil, err
	}
	if err := checkOrder(opInverse, x.Rows(), gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return inverse(x)
}

func inverse[T scalar.Field[T]](x *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	adj, err := adjugate(x)
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	inv, err := sparse.Div(adj, sparse.ScalarOf(det(x)))
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}

	return inv, nil
}

func adjugate[T scalar.Ring[T]](x *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	n := x.Rows()
	if n == 1 {
		return sparse.Eye[T](1), nil
	}
	var (
		rows, cols []int
		vals       []T
		r, c       int
		cof        T
	)
	for c = 0; c < n; c++ {
		for r = 0; r < n; r++ {
			cof = cofactor(x, r, c)
			if cof.IsZero() {
				continue
			}
			// adj(c, r) = cof(r, c)
			rows = append(rows, c)
			cols = append(cols, r)
			vals = append(vals, cof)
		}
	}

	return sparse.Triplet(n, n, rows, cols, vals)
}

func cofactor[T scalar.Ring[T]](x *sparse.Matrix[T], r, c int) T {
	m := minor(x, r, c)
	if (r+c)%2 == 1 {
		return m.Neg()
	}

	return m
}

func minor[T scalar.Ring[T]](x *sparse.Matrix[T], r, c int) T {
	if x.Rows() == 1 {
		return scalar.One[T]()
	}
	sub, _ := x.Remove([]int{r}, []int{c})

	return det(sub)
}

// det expands recursively; x is square and within the order limit.
func det[T scalar.Ring[T]](x *sparse.Matrix[T]) T {
	n := x.Rows()
	at := func(r, c int) T {
		v, _ := x.At(r, c)
		return v
	}
	switch n {
	case 0:
		return scalar.One[T]()
	case 1:
		return at(0, 0)
	case 2:
		return at(0, 0).Mul(at(1, 1)).Sub(at(0, 1).Mul(at(1, 0)))
	}

	sp := x.Sparsity()
	minRow, rowCount := argMin(sp.RowCounts())
	minCol, colCount := argMin(sp.ColCounts())
	acc := scalar.Zero[T]()
	if rowCount == 0 || colCount == 0 {
		return acc
	}

	var (
		k, i int
		ok   bool
		v    T
	)
	for i = 0; i < n; i++ {
		if rowCount <= colCount {
			k, ok, _ = sp.Lookup(minRow, i)
		} else {
			k, ok, _ = sp.Lookup(i, minCol)
		}
		if !ok {
			continue
		}
		v, _ = x.AtNZ(k)
		if rowCount <= colCount {
			acc = acc.Add(v.Mul(cofactor(x, minRow, i)))
		} else {
			acc = acc.Add(v.Mul(cofactor(x, i, minCol)))
		}
	}

	return acc
}

// argMin returns the first index of the smallest count and the count.
func argMin(counts []int) (int, int) {
	best := 0
	for i, c := range counts {
		if c < counts[best] {
			best = i
		}
	}

	return best, counts[best]
}

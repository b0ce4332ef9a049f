// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// Solve paths, as logged.
const (
	pathTriangular    = "triangular"
	pathSparsify      = "sparsify"
	pathBTFTriangular = "btf-triangular"
	pathInverse       = "inverse"
	pathQR            = "qr"
)

// Solve returns x with a·x = b for a square a.
//
// Implementation:
//   - Stage 1: a triangular a is solved by substitution directly.
//   - Stage 2: stored values that are exactly zero are dropped and the
//     solve restarts, so the permutation below sees the true structure.
//   - Stage 3: the block triangular form of a's pattern gives row and
//     column permutations; the permuted system is solved by substitution
//     when it became triangular, by the explicit inverse when it is small
//     (WithSmallInverseLimit), and by QR followed by back substitution
//     otherwise.
//   - Stage 4: the solution is un-permuted with the inverse column
//     permutation.
//
// The path chosen depends only on the pattern. A singular a is not
// detected and yields non-finite entries.
// Errors: sparse.ErrNotSquare, sparse.ErrDimensionMismatch.
func Solve[T scalar.Real[T]](a, b *sparse.Matrix[T], opts ...Option) (*sparse.Matrix[T], error) {
	return solve(a, b, gatherOptions(opts...))
}

func solve[T scalar.Real[T]](a, b *sparse.Matrix[T], o options) (*sparse.Matrix[T], error) {
	if err := checkSquare(opSolve, a); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, linalgErrorf(opSolve, sparse.ErrNilMatrix)
	}
	if b.Rows() != a.Rows() {
		return nil, fmt.Errorf("%s: a is %dx%d, b is %dx%d: %w", opSolve, a.Rows(), a.Cols(), b.Rows(), b.Cols(), sparse.ErrDimensionMismatch)
	}
	n := a.Rows()

	switch {
	case a.IsTril() || a.IsTriu():
		logPath(o, pathTriangular, n, 0)
		return SolveTriangular(a, b)
	case a.HasZeros():
		logPath(o, pathSparsify, n, 0)
		return solve(a.Sparsify(), b, o)
	}

	blocks := a.Sparsity().BTF()
	rowSel := sparse.Indices(blocks.RowPerm...)
	bperm, err := b.Get(rowSel, sparse.All())
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	aperm, err := a.Get(rowSel, sparse.Indices(blocks.ColPerm...))
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	var xperm *sparse.Matrix[T]
	switch {
	case aperm.IsTril() || aperm.IsTriu():
		logPath(o, pathBTFTriangular, n, blocks.NumBlocks())
		xperm, err = SolveTriangular(aperm, bperm)
	case n <= o.smallInverse && n <= o.maxCofactor:
		logPath(o, pathInverse, n, blocks.NumBlocks())
		xperm, err = solveByInverse(aperm, bperm)
	default:
		logPath(o, pathQR, n, blocks.NumBlocks())
		xperm, err = solveByQR(aperm, bperm)
	}
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	x, err := xperm.Get(sparse.Indices(sparsity.InversePerm(blocks.ColPerm)...), sparse.All())
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	return x, nil
}

func solveByInverse[T scalar.Real[T]](a, b *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	inv, err := inverse(a)
	if err != nil {
		return nil, err
	}

	return sparse.MTimes(inv, b)
}

func solveByQR[T scalar.Real[T]](a, b *sparse.Matrix[T]) (*sparse.Matrix[T], error) {
	q, r, err := qr(a)
	if err != nil {
		return nil, err
	}
	qtb, err := sparse.MTimes(q.Transpose(), b)
	if err != nil {
		return nil, err
	}

	return SolveTriangular(r, qtb)
}

func logPath(o options, path string, n, blocks int) {
	o.logger.Debug("linalg solve",
		slog.String("path", path),
		slog.Int("n", n),
		slog.Int("blocks", blocks),
	)
}

// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// Matrix is a sparse matrix of expressions.
type Matrix = sparse.Matrix[Expr]

// SymMatrix returns a matrix on sp whose k-th nonzero is the symbol
// "<prefix>_k".
func SymMatrix(prefix string, sp *sparsity.Pattern) *Matrix {
	m := sparse.Zeros[Expr](sp)
	for k, s := range Symbols(prefix, sp.NNZ()) {
		_ = m.SetNZ(k, s)
	}

	return m
}

// Lift converts a float matrix into constant expressions with the same
// pattern.
// Errors: sparse.ErrNilMatrix.
func Lift(m *sparse.Matrix[scalar.Float]) (*Matrix, error) {
	return sparse.Map(m, func(v scalar.Float) Expr { return Const(float64(v)) })
}

// EvalMatrix evaluates every stored expression under env. The result keeps
// m's pattern.
// Errors: ErrUnboundSymbol naming the nonzero that failed.
func EvalMatrix(m *Matrix, env Env) (*sparse.Matrix[scalar.Float], error) {
	vals := m.NonZeros()
	out := make([]scalar.Float, len(vals))
	for k, e := range vals {
		v, err := e.Eval(env)
		if err != nil {
			return nil, fmt.Errorf("EvalMatrix: nonzero %d: %w", k, err)
		}
		out[k] = scalar.Float(v)
	}

	return sparse.New(m.Sparsity(), out)
}

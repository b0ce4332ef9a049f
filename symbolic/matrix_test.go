// SPDX-License-Identifier: MIT

package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/internal/testutil"
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/sparsity"
	"github.com/katalvlaran/lvsparse/symbolic"
)

func TestSymMatrixEval(t *testing.T) {
	a := symbolic.SymMatrix("a", sparsity.Lower(2))
	syms, err := a.Symbols()
	require.NoError(t, err)
	assert.Equal(t, []string{"a_0", "a_1", "a_2"}, syms)

	sym, err := a.IsSymbolic()
	require.NoError(t, err)
	assert.True(t, sym)

	p, err := sparse.MTimes(a, a.Transpose())
	require.NoError(t, err)
	got, err := symbolic.EvalMatrix(p, symbolic.Env{"a_0": 1, "a_1": 2, "a_2": 3})
	require.NoError(t, err)
	// [[1,0],[2,3]]·[[1,2],[0,3]]
	testutil.RequireApprox(t, [][]float64{{1, 2}, {2, 13}}, got, testutil.Tol)

	_, err = symbolic.EvalMatrix(a, symbolic.Env{"a_0": 1})
	assert.ErrorIs(t, err, symbolic.ErrUnboundSymbol)
}

func TestLift(t *testing.T) {
	m := testutil.MustSparseFloat(t, [][]float64{{1, 0}, {0, 2}})
	l, err := symbolic.Lift(m)
	require.NoError(t, err)
	assert.Same(t, m.Sparsity(), l.Sparsity())
	sym, err := l.IsSymbolic()
	require.NoError(t, err)
	assert.False(t, sym)

	// numeric and symbolic elementwise results agree
	cos, err := sparse.Unary(scalar.OpCos, l)
	require.NoError(t, err)
	got, err := symbolic.EvalMatrix(cos, nil)
	require.NoError(t, err)
	want, err := sparse.Unary(scalar.OpCos, m)
	require.NoError(t, err)
	testutil.RequireSame(t, want, got, 0)
}

func TestSymbols_NumericMatrix(t *testing.T) {
	_, err := sparse.Eye[scalar.Float](2).Symbols()
	assert.ErrorIs(t, err, sparse.ErrUnsupported)
	_, err = sparse.Eye[scalar.Int](2).IsSymbolic()
	assert.ErrorIs(t, err, sparse.ErrUnsupported)
}

func TestSymbols_SharedGraph(t *testing.T) {
	e := squared(x, 30)
	m, err := sparse.New(sparsity.Dense(2, 1), []symbolic.Expr{e, e.Add(y)})
	require.NoError(t, err)

	syms, err := m.Symbols()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, syms)
}

// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/internal/testutil"
	"github.com/katalvlaran/lvsparse/linalg"
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/sparsity"
	"github.com/katalvlaran/lvsparse/symbolic"
)

type F = scalar.Float

func TestDet(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{7}}, 7},
		{"2x2", [][]float64{{2, 3}, {1, 4}}, 5},
		{"3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"diagonal", [][]float64{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 5}}, 120},
		{"empty column", [][]float64{{1, 0, 2}, {3, 0, 4}, {5, 0, 6}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := linalg.Det(testutil.MustSparseFloat(t, tc.rows))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, float64(d), testutil.Tol)
		})
	}
}

func TestDet_MatchesGonum(t *testing.T) {
	rng := testutil.Rand(7)
	for n := 3; n <= 6; n++ {
		a := testutil.RandomFloat(rng, n, n, 0.6)
		d, err := linalg.Det(a)
		require.NoError(t, err)
		want := mat.Det(sparse.AsGonum(a))
		assert.InDelta(t, want, float64(d), 1e-9, "n=%d", n)
	}
}

func TestDet_Int(t *testing.T) {
	a, err := sparse.FromValues[scalar.Int]([][]int{{2, 1, 0}, {1, 2, 1}, {0, 1, 2}}, sparse.WithDropZeros())
	require.NoError(t, err)
	d, err := linalg.Det(a)
	require.NoError(t, err)
	assert.Equal(t, scalar.Int(4), d)
}

func TestDet_Symbolic(t *testing.T) {
	x := symbolic.SymMatrix("a", sparsity.Dense(2, 2))
	d, err := linalg.Det(x)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a_0", "a_1", "a_2", "a_3"}, d.FreeSymbols())

	v, err := d.Eval(symbolic.Env{"a_0": 2, "a_1": 1, "a_2": 3, "a_3": 4})
	require.NoError(t, err)
	assert.InDelta(t, 5, v, testutil.Tol)
}

func TestDet_Errors(t *testing.T) {
	_, err := linalg.Det(sparse.Ones[F](2, 3))
	require.ErrorIs(t, err, sparse.ErrNotSquare)

	_, err = linalg.Det[F](nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	_, err = linalg.Det(sparse.Eye[F](5), linalg.WithMaxCofactorOrder(4))
	require.ErrorIs(t, err, linalg.ErrTooLarge)
}

func TestMinorCofactor(t *testing.T) {
	a := testutil.MustFloat(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})

	m, err := linalg.Minor(a, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4*10-6*7, float64(m), testutil.Tol)

	c, err := linalg.Cofactor(a, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, -(4*10 - 6*7), float64(c), testutil.Tol)

	m, err = linalg.Minor(testutil.MustFloat(t, [][]float64{{9}}), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, F(1), m)

	_, err = linalg.Minor(a, 3, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestAdjugateInverse(t *testing.T) {
	a := testutil.MustFloat(t, [][]float64{{4, 3}, {6, 3}})

	adj, err := linalg.Adjugate(a)
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{3, -3}, {-6, 4}}, adj, testutil.Tol)

	inv, err := linalg.Inverse(a)
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{-0.5, 0.5}, {1, -2.0 / 3}}, inv, testutil.Tol)

	p, err := sparse.MTimes(a, inv)
	require.NoError(t, err)
	testutil.RequireSame(t, sparse.Eye[F](2), p, testutil.Tol)
}

func TestAdjugate_KeepsStructuralZeros(t *testing.T) {
	a := testutil.MustSparseFloat(t, [][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}})
	adj, err := linalg.Adjugate(a)
	require.NoError(t, err)
	assert.Equal(t, 3, adj.NNZ())
	testutil.RequireApprox(t, [][]float64{{12, 0, 0}, {0, 8, 0}, {0, 0, 6}}, adj, testutil.Tol)
}

func TestInverse_MatchesGonum(t *testing.T) {
	a := testutil.WellConditioned(testutil.Rand(3), 5, 0.5)
	inv, err := linalg.Inverse(a)
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(sparse.AsGonum(a)))
	got := sparse.ToGonumDense(inv)
	assert.True(t, mat.EqualApprox(&want, got, 1e-9))
}

// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/internal/testutil"
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

func TestMTimes_AgreesWithGonum(t *testing.T) {
	rng := testutil.Rand(3)
	for i := 0; i < 25; i++ {
		m, k, n := 1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6)
		x := testutil.RandomFloat(rng, m, k, 0.4)
		y := testutil.RandomFloat(rng, k, n, 0.4)

		got, err := sparse.MTimes(x, y)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(sparse.AsGonum(x), sparse.AsGonum(y))
		assert.True(t, mat.EqualApprox(&want, sparse.AsGonum(got), testutil.Tol))

		sp, err := x.Sparsity().MTimes(y.Sparsity())
		require.NoError(t, err)
		assert.True(t, sp.Equal(got.Sparsity()), "result uses the symbolic product pattern")
	}
}

func TestMTimes_Shapes(t *testing.T) {
	_, err := sparse.MTimes(sparse.Ones[F](2, 3), sparse.Ones[F](2, 3))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	// a 1×1 factor is an elementwise scale
	got, err := sparse.MTimes(sparse.ScalarOf[F](2), sparse.Ones[F](2, 3))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{2, 2, 2}, {2, 2, 2}}, got, 0)
}

func TestMAC(t *testing.T) {
	x := testutil.MustSparseFloat(t, [][]float64{{1, 2}, {0, 3}})
	y := testutil.MustSparseFloat(t, [][]float64{{0, 1}, {1, 0}})
	z := testutil.MustSparseFloat(t, [][]float64{{0, 0}, {10, 0}})

	got, err := sparse.MAC(x, y, z)
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{2, 1}, {13, 0}}, got, 0)
	testutil.RequireApprox(t, [][]float64{{0, 0}, {10, 0}}, z, 0)

	t.Run("identity factor", func(t *testing.T) {
		got, err := sparse.MAC(sparse.Eye[F](2), y, z)
		require.NoError(t, err)
		testutil.RequireApprox(t, [][]float64{{0, 1}, {11, 0}}, got, 0)
	})
	t.Run("structurally zero factor", func(t *testing.T) {
		got, err := sparse.MAC(sparse.Empty[F](2, 2), y, z)
		require.NoError(t, err)
		testutil.RequireSame(t, z, got, 0)
		assert.Same(t, z.Sparsity(), got.Sparsity())
	})
	t.Run("shape of z", func(t *testing.T) {
		_, err := sparse.MAC(x, y, sparse.Ones[F](3, 2))
		assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	})
}

func TestMTimes_Int(t *testing.T) {
	x, err := sparse.FromValues[scalar.Int]([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	p, err := sparse.MTimes(x, x)
	require.NoError(t, err)
	assert.Equal(t, [][]scalar.Int{{7, 10}, {15, 22}}, p.Rows2D())
}

func TestTransposeKron(t *testing.T) {
	m := testutil.MustSparseFloat(t, [][]float64{{1, 0, 2}, {0, 3, 0}})
	mt := m.Transpose()
	testutil.RequireApprox(t, [][]float64{{1, 0}, {0, 3}, {2, 0}}, mt, 0)
	testutil.RequireSame(t, m, mt.Transpose(), 0)

	k, err := sparse.Kron(sparse.Eye[F](2), testutil.MustSparseFloat(t, [][]float64{{1, 2}}))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{
		{1, 2, 0, 0},
		{0, 0, 1, 2},
	}, k, 0)
	assert.Equal(t, 4, k.NNZ())
}

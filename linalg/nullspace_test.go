// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/internal/testutil"
	"github.com/katalvlaran/lvsparse/linalg"
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

func TestNullspace(t *testing.T) {
	a := testutil.MustSparseFloat(t, [][]float64{{1, 2, 3, 4}, {0, 1, 1, 2}})
	n, err := linalg.Nullspace(a)
	require.NoError(t, err)
	require.Equal(t, 4, n.Rows())
	require.Equal(t, 2, n.Cols())

	an, err := sparse.MTimes(a, n)
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{0, 0}, {0, 0}}, an, 1e-9)

	ntn, err := sparse.MTimes(n.Transpose(), n)
	require.NoError(t, err)
	testutil.RequireSame(t, sparse.Eye[F](2), ntn, 1e-9)
}

func TestNullspace_Shapes(t *testing.T) {
	n, err := linalg.Nullspace(sparse.Eye[F](3))
	require.NoError(t, err)
	assert.Equal(t, 3, n.Rows())
	assert.Equal(t, 0, n.Cols())

	_, err = linalg.Nullspace(sparse.Ones[F](3, 2))
	require.ErrorIs(t, err, linalg.ErrShape)
}

func TestPinv(t *testing.T) {
	t.Run("wide", func(t *testing.T) {
		a := testutil.MustSparseFloat(t, [][]float64{{1, 0, 1}, {0, 1, 1}})
		p, err := linalg.Pinv(a)
		require.NoError(t, err)
		require.Equal(t, 3, p.Rows())
		ap, err := sparse.MTimes(a, p)
		require.NoError(t, err)
		testutil.RequireSame(t, sparse.Eye[F](2), ap, 1e-9)
	})
	t.Run("tall", func(t *testing.T) {
		a := testutil.MustSparseFloat(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
		p, err := linalg.Pinv(a)
		require.NoError(t, err)
		require.Equal(t, 2, p.Rows())
		pa, err := sparse.MTimes(p, a)
		require.NoError(t, err)
		testutil.RequireSame(t, sparse.Eye[F](2), pa, 1e-9)
	})
	t.Run("square is inverse", func(t *testing.T) {
		a := testutil.MustFloat(t, [][]float64{{4, 3}, {6, 3}})
		p, err := linalg.Pinv(a)
		require.NoError(t, err)
		testutil.RequireApprox(t, [][]float64{{-0.5, 0.5}, {1, -2.0 / 3}}, p, 1e-9)
	})
}

func TestMpower(t *testing.T) {
	a, err := sparse.FromValues[scalar.Int]([][]int{{1, 1}, {0, 1}}, sparse.WithDropZeros())
	require.NoError(t, err)

	for k, want := range map[int][][]int{
		0: {{1, 0}, {0, 1}},
		1: {{1, 1}, {0, 1}},
		5: {{1, 5}, {0, 1}},
		8: {{1, 8}, {0, 1}},
	} {
		p, err := linalg.Mpower(a, k)
		require.NoError(t, err)
		w, err := sparse.FromValues[scalar.Int](want, sparse.WithDropZeros())
		require.NoError(t, err)
		assert.True(t, sparse.IsEqual(w, p), "k=%d: %v", k, p)
	}

	_, err = linalg.Mpower(a, -1)
	require.ErrorIs(t, err, linalg.ErrNegativePower)

	_, err = linalg.Mpower(sparse.Ones[scalar.Int](2, 3), 2)
	require.ErrorIs(t, err, sparse.ErrNotSquare)
}

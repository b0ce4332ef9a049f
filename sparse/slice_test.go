// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/internal/testutil"
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/sparsity"
)

var grid = [][]float64{
	{1, 0, 2, 0},
	{0, 3, 0, 4},
	{5, 0, 6, 0},
}

func TestGet(t *testing.T) {
	m := testutil.MustSparseFloat(t, grid)

	sub, err := m.Get(sparse.Indices(2, 0), sparse.Range(0, sparse.End, 2))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{5, 6}, {1, 2}}, sub, 0)
	assert.Equal(t, 4, sub.NNZ())

	one, err := m.Get(sparse.Indices(1), sparse.Indices(0))
	require.NoError(t, err)
	assert.True(t, one.IsScalar())
	assert.Equal(t, 0, one.NNZ(), "structural zero stays structural")

	one, err = m.Get(sparse.Indices(-1), sparse.Indices(-2))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{6}}, one, 0)

	whole, err := m.Get(sparse.All(), sparse.All())
	require.NoError(t, err)
	testutil.RequireSame(t, m, whole, 0)

	_, err = m.Get(sparse.Indices(3), sparse.All())
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.Get(sparse.All(), sparse.Range(0, 1, 0))
	assert.ErrorIs(t, err, sparse.ErrBadIndex)
}

func TestGetLinearAndNZ(t *testing.T) {
	m := testutil.MustSparseFloat(t, grid)

	v, err := m.GetLinear(sparse.Indices(0, 1, 2, 4))
	require.NoError(t, err)
	assert.True(t, v.IsColumn())
	testutil.RequireApprox(t, [][]float64{{1}, {0}, {5}, {3}}, v, 0)
	assert.Equal(t, 3, v.NNZ())

	row := testutil.MustSparseFloat(t, [][]float64{{7, 0, 9}})
	v, err = row.GetLinear(sparse.Range(sparse.End, sparse.End, -1))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{9, 0, 7}}, v, 0)

	nz, err := m.GetNZ(sparse.Indices(0, -1))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{1}, {4}}, nz, 0)
	_, err = m.GetNZ(sparse.Indices(6))
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestSetBlock(t *testing.T) {
	t.Run("broadcast", func(t *testing.T) {
		m := testutil.MustSparseFloat(t, grid)
		require.NoError(t, m.SetBlock(sparse.Indices(0, 1), sparse.Range(0, 2, 1), sparse.ScalarOf[F](9)))
		testutil.RequireApprox(t, [][]float64{
			{9, 9, 2, 0},
			{9, 9, 0, 4},
			{5, 0, 6, 0},
		}, m, 0)
	})
	t.Run("structural zero source erases", func(t *testing.T) {
		m := testutil.MustSparseFloat(t, grid)
		require.NoError(t, m.SetBlock(sparse.All(), sparse.Indices(0), sparse.Empty[F](3, 1)))
		assert.Equal(t, 4, m.NNZ())
		testutil.RequireApprox(t, [][]float64{
			{0, 0, 2, 0},
			{0, 3, 0, 4},
			{0, 0, 6, 0},
		}, m, 0)
	})
	t.Run("transposed vector", func(t *testing.T) {
		m := testutil.MustSparseFloat(t, grid)
		require.NoError(t, m.SetBlock(sparse.Indices(1), sparse.All(), sparse.Column[F](1, 2, 3, 4)))
		testutil.RequireApprox(t, [][]float64{
			{1, 0, 2, 0},
			{1, 2, 3, 4},
			{5, 0, 6, 0},
		}, m, 0)
	})
	t.Run("mismatch", func(t *testing.T) {
		m := testutil.MustSparseFloat(t, grid)
		err := m.SetBlock(sparse.All(), sparse.All(), sparse.Ones[F](2, 2))
		assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	})
	t.Run("repeated target last wins", func(t *testing.T) {
		m := sparse.Empty[F](2, 2)
		require.NoError(t, m.SetBlock(sparse.Indices(0, 0), sparse.Indices(1), sparse.Column[F](1, 2)))
		testutil.RequireApprox(t, [][]float64{{0, 2}, {0, 0}}, m, 0)
	})
}

func TestSetBlock_KeepsSharedPattern(t *testing.T) {
	sp := sparsity.Diag(3)
	a := sparse.Fill[F](sp, 1)
	require.NoError(t, a.SetBlock(sparse.Indices(0), sparse.All(), sparse.ScalarOf[F](2)))
	assert.Equal(t, 3, sp.NNZ())
	assert.Equal(t, 5, a.NNZ())
}

func TestSetLinearBlockAndNZs(t *testing.T) {
	m := sparse.Empty[F](2, 2)
	require.NoError(t, m.SetLinearBlock(sparse.Indices(3, 0), sparse.Column[F](4, 1)))
	testutil.RequireApprox(t, [][]float64{{1, 0}, {0, 4}}, m, 0)
	assert.ErrorIs(t, m.SetLinearBlock(sparse.All(), sparse.Column[F](1, 2)), sparse.ErrDimensionMismatch)

	require.NoError(t, m.SetNZs(sparse.All(), sparse.ScalarOf[F](7)))
	testutil.RequireApprox(t, [][]float64{{7, 0}, {0, 7}}, m, 0)
	require.NoError(t, m.SetNZs(sparse.Indices(1), sparse.Column[F](3)))
	assert.Equal(t, []F{7, 3}, m.NonZeros())
	assert.ErrorIs(t, m.SetNZs(sparse.All(), sparse.Column[F](1, 2, 3)), sparse.ErrDimensionMismatch)
	assert.Equal(t, 2, m.NNZ())
}

func TestEraseRemoveEnlarge(t *testing.T) {
	m := testutil.MustSparseFloat(t, grid)
	require.NoError(t, m.Erase(sparse.Indices(0, 2), sparse.Indices(0)))
	assert.Equal(t, 4, m.NNZ())
	r, c := m.Shape()
	assert.Equal(t, [2]int{3, 4}, [2]int{r, c})

	small, err := m.Remove([]int{1}, []int{1, 3})
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{0, 2}, {0, 6}}, small, 0)

	big, err := small.Enlarge(3, 3, []int{2, 0}, []int{1, 2})
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{
		{0, 0, 6},
		{0, 0, 0},
		{0, 0, 2},
	}, big, 0)

	_, err = small.Enlarge(3, 3, []int{0}, []int{0, 1})
	assert.ErrorIs(t, err, sparsity.ErrDimensionMismatch)
}

func TestProject(t *testing.T) {
	m := testutil.MustSparseFloat(t, [][]float64{{1, 2}, {0, 3}})
	p, err := m.Project(sparsity.Diag(2))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{1, 0}, {0, 3}}, p, 0)

	p, err = m.Project(sparsity.Dense(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []scalar.Float{1, 0, 2, 3}, p.NonZeros())

	_, err = m.Project(sparsity.Dense(3, 2))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestGetBlock_RepeatedIndices(t *testing.T) {
	m := testutil.MustSparseFloat(t, grid)
	sub, err := m.GetBlock([]int{1, 1}, []int{3, 1})
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{4, 3}, {4, 3}}, sub, 0)
	assert.Equal(t, 4, sub.NNZ())
}

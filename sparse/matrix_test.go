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

type F = scalar.Float

func TestNew_NNZMismatch(t *testing.T) {
	_, err := sparse.New(sparsity.Diag(3), []F{1, 2})
	assert.ErrorIs(t, err, sparse.ErrNNZMismatch)

	m, err := sparse.New(sparsity.Diag(2), []F{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ())
}

func TestFromDense(t *testing.T) {
	m, err := sparse.FromDense([][]F{{1, 0}, {0, 4}})
	require.NoError(t, err)
	assert.Equal(t, 4, m.NNZ(), "zeros are stored by default")

	s, err := sparse.FromDense([][]F{{1, 0}, {0, 4}}, sparse.WithDropZeros())
	require.NoError(t, err)
	assert.Equal(t, 2, s.NNZ())
	assert.True(t, s.Sparsity().IsDiag())

	_, err = sparse.FromDense([][]F{{1, 2}, {3}})
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestTriplet_SumsDuplicates(t *testing.T) {
	m, err := sparse.Triplet(2, 2, []int{0, 1, 0}, []int{0, 1, 0}, []F{1, 2, 3})
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{4, 0}, {0, 2}}, m, 0)

	_, err = sparse.Triplet(2, 2, []int{0}, []int{0}, []F{1, 2})
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Triplet(2, 2, []int{2}, []int{0}, []F{1})
	assert.ErrorIs(t, err, sparsity.ErrOutOfRange)
}

func TestConstructors(t *testing.T) {
	assert.True(t, sparse.Eye[F](3).IsIdentity())
	assert.True(t, sparse.Ones[F](2, 3).IsOne())
	assert.True(t, sparse.Empty[F](2, 3).IsZero())
	assert.Equal(t, 0, sparse.Empty[F](2, 3).NNZ())
	assert.True(t, sparse.ScalarOf[F](5).IsScalar())

	d, err := sparse.Diag(sparse.Column[F](1, 2, 3))
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, d, 0)

	_, err = sparse.Diag(sparse.Ones[F](2, 2))
	assert.ErrorIs(t, err, sparse.ErrNotVector)
	_, err = sparse.Diag[F](nil)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestAtSet_GrowthDoesNotTouchSharedPattern(t *testing.T) {
	sp := sparsity.Diag(2)
	a := sparse.Fill[F](sp, 1)
	b := sparse.Fill[F](sp, 2)

	require.NoError(t, a.Set(0, 1, 7))
	assert.Equal(t, 3, a.NNZ())
	assert.NotSame(t, sp, a.Sparsity())
	assert.Equal(t, 2, sp.NNZ(), "shared pattern must not grow")
	assert.Same(t, sp, b.Sparsity())

	v, err := a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, F(7), v)
	v, err = a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, F(0), v)

	// overwrite in place keeps the pattern
	before := a.Sparsity()
	require.NoError(t, a.Set(1, 1, 9))
	assert.Same(t, before, a.Sparsity())
	testutil.RequireApprox(t, [][]float64{{1, 7}, {0, 9}}, a, 0)

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, sparsity.ErrOutOfRange)
	assert.ErrorIs(t, a.Set(0, 2, 1), sparsity.ErrOutOfRange)
}

func TestNonzeroAndLinearAccess(t *testing.T) {
	m := testutil.MustSparseFloat(t, [][]float64{
		{1, 0, 3},
		{0, 2, 0},
	})
	v, err := m.AtNZ(2)
	require.NoError(t, err)
	assert.Equal(t, F(3), v)
	_, err = m.AtNZ(3)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.NoError(t, m.SetNZ(0, 10))
	assert.ErrorIs(t, m.SetNZ(-1, 0), sparse.ErrOutOfRange)

	// column-major: k=3 is (1,1), k=4 is (0,2)
	v, err = m.AtLinear(3)
	require.NoError(t, err)
	assert.Equal(t, F(2), v)
	v, err = m.AtLinear(4)
	require.NoError(t, err)
	assert.Equal(t, F(3), v)
	_, err = m.AtLinear(6)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)

	require.NoError(t, m.SetLinear(1, 5))
	testutil.RequireApprox(t, [][]float64{{10, 0, 3}, {5, 2, 0}}, m, 0)
}

func TestIntElements(t *testing.T) {
	m, err := sparse.FromValues[scalar.Int]([][]int{{7, 2}, {0, -3}}, sparse.WithDropZeros())
	require.NoError(t, err)
	q, err := sparse.Div(m, sparse.ScalarOf[scalar.Int](2))
	require.NoError(t, err)
	assert.Equal(t, [][]scalar.Int{{3, 1}, {0, -1}}, q.Rows2D())
	assert.Equal(t, 3, q.NNZ())
}

func TestString(t *testing.T) {
	m := testutil.MustSparseFloat(t, [][]float64{{1, 0}, {0, 2.5}})
	assert.Equal(t, "[[1, 00],\n [00, 2.5]]", m.String())
}

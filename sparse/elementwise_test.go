// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/internal/testutil"
	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

// sameFloat treats two NaNs as equal and -0 as 0.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b
}

// requireDenseAgree checks every element of got, structural zeros
// included, against the dense reference want(r, c).
func requireDenseAgree(t *testing.T, got *sparse.Matrix[F], want func(r, c int) float64) {
	t.Helper()
	rows := got.Rows2D()
	for r := range rows {
		for c := range rows[r] {
			w := want(r, c)
			require.Truef(t, sameFloat(w, float64(rows[r][c])), "(%d,%d): want %v got %v", r, c, w, rows[r][c])
		}
	}
}

// reference is the dense value of op; zero divided by anything is a
// structural zero.
func reference(op scalar.Op, a, b float64) float64 {
	if op == scalar.OpDiv && a == 0 {
		return 0
	}

	return scalar.EvalFloat(op, a, b)
}

func at(m [][]float64, r, c int) float64 {
	if len(m) == 1 && len(m[0]) == 1 {
		return m[0][0]
	}

	return m[r][c]
}

func TestBinary_MatchesDenseEvaluation(t *testing.T) {
	xs := [][]float64{
		{2, 0, 0},
		{0, -0.5, 0},
	}
	ys := [][]float64{
		{3, 0.25, 0},
		{0, 0, 0},
	}
	operands := []struct {
		name string
		x, y [][]float64
	}{
		{"matrix-matrix", xs, ys},
		{"scalar-matrix", [][]float64{{1.5}}, ys},
		{"zero-scalar-matrix", [][]float64{{0}}, ys},
		{"matrix-scalar", xs, [][]float64{{-2}}},
		{"matrix-zero-scalar", xs, [][]float64{{0}}},
	}
	for op := scalar.OpAdd; op <= scalar.OpCopysign; op++ {
		for _, o := range operands {
			t.Run(op.String()+"/"+o.name, func(t *testing.T) {
				x := testutil.MustSparseFloat(t, o.x)
				y := testutil.MustSparseFloat(t, o.y)
				got, err := sparse.Binary(op, x, y)
				require.NoError(t, err)
				require.Equal(t, 2, got.Rows())
				require.Equal(t, 3, got.Cols())
				requireDenseAgree(t, got, func(r, c int) float64 {
					return reference(op, at(o.x, r, c), at(o.y, r, c))
				})
			})
		}
	}
}

func TestUnary_MatchesDenseEvaluation(t *testing.T) {
	xs := [][]float64{
		{0.5, 0, 0},
		{0, -0.25, 0},
	}
	x := testutil.MustSparseFloat(t, xs)
	for op := scalar.OpNeg; op <= scalar.OpNot; op++ {
		t.Run(op.String(), func(t *testing.T) {
			got, err := sparse.Unary(op, x)
			require.NoError(t, err)
			requireDenseAgree(t, got, func(r, c int) float64 {
				return scalar.EvalFloat(op, xs[r][c], 0)
			})
			if op.F00() {
				assert.Equal(t, x.NNZ(), got.NNZ(), "absorbing op keeps the pattern")
			}
		})
	}
}

func TestElementwise_Patterns(t *testing.T) {
	x := testutil.MustSparseFloat(t, [][]float64{{1, 0}, {2, 0}})
	y := testutil.MustSparseFloat(t, [][]float64{{4, 5}, {0, 0}})

	sum, err := sparse.Add(x, y)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.NNZ(), "union")

	prod, err := sparse.Mul(x, y)
	require.NoError(t, err)
	assert.Equal(t, 1, prod.NNZ(), "intersection")
	testutil.RequireApprox(t, [][]float64{{4, 0}, {0, 0}}, prod, 0)

	cos, err := sparse.Unary(scalar.OpCos, x)
	require.NoError(t, err)
	assert.True(t, cos.IsDense())
	v, _ := cos.At(1, 1)
	assert.Equal(t, F(1), v)

	eq, err := sparse.Binary(scalar.OpEq, x, y)
	require.NoError(t, err)
	assert.True(t, eq.IsDense())
	testutil.RequireApprox(t, [][]float64{{0, 0}, {0, 1}}, eq, 0)

	q, err := sparse.Div(x, sparse.ScalarOf[F](2))
	require.NoError(t, err)
	assert.True(t, q.Sparsity().Equal(x.Sparsity()), "x / s keeps x's pattern")

	q, err = sparse.Div(x, y)
	require.NoError(t, err)
	assert.True(t, q.Sparsity().Equal(x.Sparsity()), "x / y keeps x's pattern")
	v, _ = q.At(1, 0)
	assert.True(t, math.IsInf(float64(v), 1))
}

func TestElementwise_Errors(t *testing.T) {
	x := sparse.Ones[F](2, 2)
	_, err := sparse.Add(x, sparse.Ones[F](2, 3))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Add(x, nil)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Binary(scalar.OpSin, x, x)
	assert.ErrorIs(t, err, sparse.ErrUnsupported)
	_, err = sparse.Unary(scalar.OpAdd, x)
	assert.ErrorIs(t, err, sparse.ErrUnsupported)
}

func TestAddSubRoundTrip(t *testing.T) {
	rng := testutil.Rand(7)
	for i := 0; i < 20; i++ {
		a := testutil.RandomInt(rng, 6, 5, 0.3)
		b := testutil.RandomInt(rng, 6, 5, 0.3)
		s, err := sparse.Add(a, b)
		require.NoError(t, err)
		back, err := sparse.Sub(s, b)
		require.NoError(t, err)
		assert.True(t, sparse.IsEqual(a, back))
	}
}

func TestDensifySparsify(t *testing.T) {
	m := testutil.MustFloat(t, [][]float64{{1, 0}, {0, 1e-12}})
	assert.True(t, m.HasZeros())

	s := m.Sparsify()
	assert.Equal(t, 2, s.NNZ())
	assert.False(t, s.HasZeros())
	assert.Equal(t, 4, m.NNZ(), "receiver untouched")

	tiny := sparse.SparsifyTol(m, 1e-9)
	assert.Equal(t, 1, tiny.NNZ())

	d := s.Sparsify().Densify(0)
	assert.True(t, d.IsDense())
	testutil.RequireSame(t, d, d.Densify(5), 0)

	filled := tiny.Densify(-1)
	testutil.RequireApprox(t, [][]float64{{1, -1}, {-1, -1}}, filled, 0)
}

func TestScaleNeg(t *testing.T) {
	m := testutil.MustSparseFloat(t, [][]float64{{1, 0}, {0, -2}})
	s, err := sparse.Scale(3, m)
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{3, 0}, {0, -6}}, s, 0)

	n, err := sparse.Neg(m)
	require.NoError(t, err)
	testutil.RequireApprox(t, [][]float64{{-1, 0}, {0, 2}}, n, 0)
	assert.Same(t, m.Sparsity(), n.Sparsity())

	s, err = sparse.Scale(-1, m)
	require.NoError(t, err)
	assert.True(t, sparse.IsEqual(n, s))
}

func TestNilOperands(t *testing.T) {
	var nilF *sparse.Matrix[F]
	m := sparse.Eye[F](2)

	_, err := sparse.Neg(nilF)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Scale(2, nilF)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Kron(m, nilF)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Kron(nilF, m)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Map(nilF, func(v F) scalar.Int { return scalar.IntOf(float64(v)) })
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)

	assert.False(t, sparse.IsEqual(m, nilF))
	assert.False(t, sparse.IsEqual(nilF, m))
	assert.True(t, sparse.IsEqual(nilF, nilF))
}

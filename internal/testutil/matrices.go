// SPDX-License-Identifier: MIT

package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Tol is the default comparison tolerance for float results.
const Tol = 1e-9

// MustFloat builds a dense Float matrix from row-major literals.
func MustFloat(t testing.TB, rows [][]float64) *sparse.Matrix[scalar.Float] {
	t.Helper()
	m, err := sparse.FromValues[scalar.Float](rows)
	require.NoError(t, err)

	return m
}

// MustSparseFloat is MustFloat with exact zeros left structural.
func MustSparseFloat(t testing.TB, rows [][]float64) *sparse.Matrix[scalar.Float] {
	t.Helper()
	m, err := sparse.FromValues[scalar.Float](rows, sparse.WithDropZeros())
	require.NoError(t, err)

	return m
}

// Floats returns the row-major elements of m as float64.
func Floats(m *sparse.Matrix[scalar.Float]) []float64 {
	flat := m.DenseRowMajor()
	out := make([]float64, len(flat))
	for i, v := range flat {
		out[i] = float64(v)
	}

	return out
}

// Flatten concatenates row-major literals.
func Flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}

// RequireApprox checks shape and element values of got against want.
func RequireApprox(t testing.TB, want [][]float64, got *sparse.Matrix[scalar.Float], tol float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), got.Cols(), "cols")
	}
	require.True(t, floats.EqualApprox(Flatten(want), Floats(got), tol), "want %v\ngot  %v", want, got)
}

// RequireSame checks two float matrices element by element.
func RequireSame(t testing.TB, want, got *sparse.Matrix[scalar.Float], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.True(t, floats.EqualApprox(Floats(want), Floats(got), tol), "want %v\ngot  %v", want, got)
}

// RandomFloat returns a random matrix on a random pattern with values in
// [-1, 1).
func RandomFloat(rng *rand.Rand, nrow, ncol int, density float64) *sparse.Matrix[scalar.Float] {
	sp := RandomPattern(rng, nrow, ncol, density)
	vals := make([]scalar.Float, sp.NNZ())
	for k := range vals {
		vals[k] = scalar.Float(2*rng.Float64() - 1)
	}
	m, err := sparse.New(sp, vals)
	if err != nil {
		panic(err)
	}

	return m
}

// RandomInt returns a random integer matrix with small values in [-5, 5].
func RandomInt(rng *rand.Rand, nrow, ncol int, density float64) *sparse.Matrix[scalar.Int] {
	sp := RandomPattern(rng, nrow, ncol, density)
	vals := make([]scalar.Int, sp.NNZ())
	for k := range vals {
		vals[k] = scalar.Int(rng.Intn(11) - 5)
	}
	m, err := sparse.New(sp, vals)
	if err != nil {
		panic(err)
	}

	return m
}

// WellConditioned returns a random n×n matrix made diagonally dominant so
// that it is safely invertible.
func WellConditioned(rng *rand.Rand, n int, density float64) *sparse.Matrix[scalar.Float] {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j && rng.Float64() < density {
				rows[i][j] = 2*rng.Float64() - 1
			}
		}
		rows[i][i] = float64(n) + rng.Float64()
	}
	m, err := sparse.FromValues[scalar.Float](rows, sparse.WithDropZeros())
	if err != nil {
		panic(err)
	}

	return m
}

// SPDX-License-Identifier: MIT

// Package testutil holds fixtures shared by the package tests: seeded
// random patterns and matrices, small named examples and tolerant
// comparators.
package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparsity"
)

// Rand returns a deterministic source for fixtures.
func Rand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// RandomMask returns an nrow×ncol boolean mask with roughly the given
// density of true entries.
func RandomMask(rng *rand.Rand, nrow, ncol int, density float64) [][]bool {
	mask := make([][]bool, nrow)
	for i := range mask {
		mask[i] = make([]bool, ncol)
		for j := range mask[i] {
			mask[i][j] = rng.Float64() < density
		}
	}

	return mask
}

// RandomPattern returns a random nrow×ncol pattern.
func RandomPattern(rng *rand.Rand, nrow, ncol int, density float64) *sparsity.Pattern {
	p, err := sparsity.FromMask(RandomMask(rng, nrow, ncol, density))
	if err != nil {
		panic(err)
	}

	return p
}

// MustMask builds a pattern from rows of '*' (nonzero) and '.' (zero),
// the same notation Pattern.String prints.
func MustMask(t testing.TB, rows ...string) *sparsity.Pattern {
	t.Helper()
	mask := make([][]bool, len(rows))
	for i, r := range rows {
		mask[i] = make([]bool, len(r))
		for j, ch := range r {
			mask[i][j] = ch == '*'
		}
	}
	p, err := sparsity.FromMask(mask)
	require.NoError(t, err)

	return p
}

// Positions lists the (row, col) pairs of a pattern in nonzero order.
func Positions(p *sparsity.Pattern) [][2]int {
	cols := p.ColIndices()
	out := make([][2]int, p.NNZ())
	for k := range out {
		out[k] = [2]int{p.RowAt(k), cols[k]}
	}

	return out
}

// IsPermutation reports whether perm is a permutation of 0..n-1.
func IsPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

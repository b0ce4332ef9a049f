// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/internal/testutil"
	"github.com/katalvlaran/lvsparse/sparse"
)

func BenchmarkMTimes(b *testing.B) {
	rng := testutil.Rand(1)
	x := testutil.RandomFloat(rng, 300, 300, 0.02)
	y := testutil.RandomFloat(rng, 300, 300, 0.02)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sparse.MTimes(x, y)
	}
}

func BenchmarkAdd(b *testing.B) {
	rng := testutil.Rand(2)
	x := testutil.RandomFloat(rng, 500, 500, 0.02)
	y := testutil.RandomFloat(rng, 500, 500, 0.02)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sparse.Add(x, y)
	}
}

func BenchmarkSetBlock(b *testing.B) {
	rng := testutil.Rand(3)
	src := testutil.RandomFloat(rng, 50, 50, 0.1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := sparse.Empty[F](200, 200)
		_ = m.SetBlock(sparse.Range(0, 200, 4), sparse.Range(50, 100, 1), src)
	}
}

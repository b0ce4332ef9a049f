// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

func TestIndex_Resolve(t *testing.T) {
	cases := []struct {
		name string
		ix   sparse.Index
		want []int
	}{
		{"all", sparse.All(), []int{0, 1, 2, 3, 4}},
		{"zero value", sparse.Index{}, []int{0, 1, 2, 3, 4}},
		{"range", sparse.Range(1, 4, 1), []int{1, 2, 3}},
		{"step", sparse.Range(0, sparse.End, 2), []int{0, 2, 4}},
		{"negative bounds", sparse.Range(-3, -1, 1), []int{2, 3}},
		{"reverse", sparse.Range(sparse.End, sparse.End, -1), []int{4, 3, 2, 1, 0}},
		{"reverse to bound", sparse.Range(3, 0, -2), []int{3, 1}},
		{"clipped", sparse.Range(-10, 10, 1), []int{0, 1, 2, 3, 4}},
		{"empty", sparse.Range(3, 1, 1), nil},
		{"list", sparse.Indices(4, 0, 0), []int{4, 0, 0}},
		{"negative list", sparse.Indices(-1, -5), []int{4, 0}},
		{"one based", sparse.Indices(1, 5).OneBased(), []int{0, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.ix.Resolve(5)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIndex_ResolveErrors(t *testing.T) {
	_, err := sparse.Range(0, 3, 0).Resolve(5)
	assert.ErrorIs(t, err, sparse.ErrBadIndex)

	for _, ix := range []sparse.Index{
		sparse.Indices(5),
		sparse.Indices(-6),
		sparse.Indices(0).OneBased(),
		sparse.Indices(-1).OneBased(),
	} {
		_, err = ix.Resolve(5)
		assert.ErrorIs(t, err, sparse.ErrOutOfRange)
	}
}

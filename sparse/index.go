// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsparse/scalar"
)

// End stands for an omitted Range bound: the first or last position in
// the direction of the step.
const End = math.MaxInt

type indexKind uint8

const (
	indexAll indexKind = iota
	indexRange
	indexList
)

// Index is an index expression resolved against a dimension: every
// position, a python-style range, or an explicit list. The zero value
// selects every position.
type Index struct {
	kind              indexKind
	start, stop, step int
	list              []int
	oneBased          bool
}

// All selects every position (":").
func All() Index { return Index{kind: indexAll} }

// Range selects start, start+step, ... up to but excluding stop, with
// python slice semantics: negative bounds count from the end, bounds are
// clipped to the extent and End stands for an omitted bound. A zero step
// is rejected at resolution.
func Range(start, stop, step int) Index {
	return Index{kind: indexRange, start: start, stop: stop, step: step}
}

// Indices selects an explicit list; repeats and any order are allowed.
// Negative entries count from the end (-1 is the last position).
func Indices(idx ...int) Index {
	return Index{kind: indexList, list: append([]int(nil), idx...)}
}

// OneBased switches an index list to the 1-based convention: entries must
// lie in [1, extent] and negative wrap-around is disabled.
func (ix Index) OneBased() Index {
	ix.oneBased = true

	return ix
}

// Resolve returns the concrete 0-based positions selected in a dimension of
// the given extent.
// Errors: ErrOutOfRange naming the index and extent, ErrBadIndex.
func (ix Index) Resolve(extent int) ([]int, error) {
	switch ix.kind {
	case indexRange:
		return ix.resolveRange(extent)
	case indexList:
		out := make([]int, len(ix.list))
		for t, i := range ix.list {
			j := i
			switch {
			case ix.oneBased:
				j = i - 1
			case i < 0:
				j = i + extent
			}
			if j < 0 || j >= extent {
				return nil, fmt.Errorf("%s: index %d for extent %d: %w", opIndex, i, extent, ErrOutOfRange)
			}
			out[t] = j
		}

		return out, nil
	}

	out := make([]int, extent)
	for i := range out {
		out[i] = i
	}

	return out, nil
}

func (ix Index) resolveRange(extent int) ([]int, error) {
	if ix.step == 0 {
		return nil, fmt.Errorf("%s: zero step: %w", opIndex, ErrBadIndex)
	}
	lower, upper := 0, extent
	if ix.step < 0 {
		lower, upper = -1, extent-1
	}
	bound := func(v, def int) int {
		switch {
		case v == End:
			return def
		case v < 0:
			v += extent
		}

		return scalar.Clamp(v, lower, upper)
	}
	start, stop := upper, lower
	if ix.step > 0 {
		start, stop = lower, upper
	}
	start = bound(ix.start, start)
	stop = bound(ix.stop, stop)

	var out []int
	if ix.step > 0 {
		for i := start; i < stop; i += ix.step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += ix.step {
			out = append(out, i)
		}
	}

	return out, nil
}

// isAll reports an expression that selects every position in order.
func (ix Index) isAll() bool { return ix.kind == indexAll }

// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Ring[T]]() T {
	var z T
	return z.Zero()
}

// One returns the multiplicative identity of T.
func One[T Ring[T]]() T {
	var z T
	return z.One()
}

// Of converts a Go number literal into T.
func Of[T Ring[T], N Number](v N) T {
	var z T
	return z.FromFloat(float64(v))
}

// Slice converts a slice of Go numbers into a slice of T.
func Slice[T Ring[T], N Number](vs ...N) []T {
	out := make([]T, len(vs))
	var z T
	for i, v := range vs {
		out[i] = z.FromFloat(float64(v))
	}

	return out
}

// Rows converts a nested slice of Go numbers into nested T rows.
func Rows[T Ring[T], N Number](rows ...[]N) [][]T {
	out := make([][]T, len(rows))
	for i, r := range rows {
		out[i] = Slice[T](r...)
	}

	return out
}

// IntOf converts a float64 to Int, truncating toward zero.
// NaN maps to 0 and out-of-range values saturate.
func IntOf(v float64) Int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}

	return Int(v)
}

// Sum folds xs with Add starting from zero.
func Sum[T Ring[T]](xs ...T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Clamp restricts v to [lo, hi] for any ordered Go type.
func Clamp[N constraints.Ordered](v, lo, hi N) N {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// SPDX-License-Identifier: MIT
// Package sparsity: sentinel error set.
// All exported functions return these sentinels wrapped with an operation
// tag and the offending dimensions; callers match them via errors.Is.

package sparsity

import (
	"errors"
	"fmt"
)

var (
	// ErrBadPattern is returned when colind/row arrays violate the
	// compressed-column invariants.
	ErrBadPattern = errors.New("sparsity: malformed pattern")

	// ErrBadShape indicates negative dimensions.
	ErrBadShape = errors.New("sparsity: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the shape.
	ErrOutOfRange = errors.New("sparsity: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("sparsity: dimension mismatch")

	// ErrNotSquare is returned by algorithms that need nrow == ncol.
	ErrNotSquare = errors.New("sparsity: pattern is not square")

	// ErrBadOffsets is returned when split offsets do not partition the
	// extent (must start at 0, end at the extent and never decrease).
	ErrBadOffsets = errors.New("sparsity: invalid split offsets")
)

// Operation tags used for error wrapping.
const (
	opNew       = "New"
	opTriplet   = "Triplet"
	opLookup    = "Lookup"
	opAddEntry  = "AddEntry"
	opCombine   = "Combine"
	opMTimes    = "MTimes"
	opSub       = "Sub"
	opErase     = "Erase"
	opEnlarge   = "Enlarge"
	opReshape   = "Reshape"
	opHorzcat   = "Horzcat"
	opHorzsplit = "Horzsplit"
	opSCC       = "StronglyConnectedComponents"
	opKron      = "Kron"
)

// sparsityErrorf wraps err with an operation tag, preserving it for errors.Is.
func sparsityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rangeError reports an index outside [0, extent).
func rangeError(tag, what string, idx, extent int) error {
	return fmt.Errorf("%s: %s %d not in [0,%d): %w", tag, what, idx, extent, ErrOutOfRange)
}

// shapeError reports two incompatible shapes.
func shapeError(tag string, r1, c1, r2, c2 int) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, r1, c1, r2, c2, ErrDimensionMismatch)
}

// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every exported function returns these sentinels wrapped with an operation
// tag (and, where useful, the offending shapes or indices). Callers match
// with errors.Is. Pattern-level failures also match the sparse sentinel of
// the same meaning. Panics are reserved for programmer errors in private
// helpers.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsparse/sparsity"
)

var (
	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates an index outside the shape, numel or nnz.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNNZMismatch is returned when a value slice does not match the
	// pattern's nonzero count.
	ErrNNZMismatch = errors.New("sparse: value count does not match pattern")

	// ErrNotSquare is returned by square-only operations (Trace, ...).
	ErrNotSquare = errors.New("sparse: matrix is not square")

	// ErrNotVector is returned by vector-only operations (Norm2, Diag).
	ErrNotVector = errors.New("sparse: matrix is not a vector")

	// ErrBadIndex indicates a malformed index expression (zero step, ...).
	ErrBadIndex = errors.New("sparse: invalid index expression")

	// ErrBadOffsets is returned when split offsets do not partition the
	// extent.
	ErrBadOffsets = errors.New("sparse: invalid split offsets")

	// ErrUnsupported marks an operation that is not defined for the
	// instantiated element type, e.g. symbol queries on numeric matrices.
	ErrUnsupported = errors.New("sparse: not defined for this element type")
)

// Operation tags used for error wrapping.
const (
	opNew       = "New"
	opFromDense = "FromDense"
	opTriplet   = "Triplet"
	opAt        = "At"
	opSet       = "Set"
	opGet       = "Get"
	opSetBlock  = "SetBlock"
	opErase     = "Erase"
	opBinary    = "Binary"
	opMTimes    = "MTimes"
	opMAC       = "MAC"
	opConcat    = "Concat"
	opSplit     = "Split"
	opReduce    = "Reduce"
	opReshape   = "Reshape"
	opExport    = "Export"
	opSymbols   = "Symbols"
	opIndex     = "Index"
)

// fromPattern lifts sparsity sentinels onto the sparse ones so callers can
// match either.
var fromPattern = [...]struct{ pattern, matrix error }{
	{sparsity.ErrOutOfRange, ErrOutOfRange},
	{sparsity.ErrDimensionMismatch, ErrDimensionMismatch},
	{sparsity.ErrNotSquare, ErrNotSquare},
	{sparsity.ErrBadOffsets, ErrBadOffsets},
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	for _, e := range fromPattern {
		if errors.Is(err, e.pattern) {
			return fmt.Errorf("%s: %w: %w", tag, e.matrix, err)
		}
	}

	return fmt.Errorf("%s: %w", tag, err)
}

// shapeError reports two incompatible shapes.
func shapeError(tag string, r1, c1, r2, c2 int) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, r1, c1, r2, c2, ErrDimensionMismatch)
}

// rangeError reports an index outside [0, extent).
func rangeError(tag, what string, idx, extent int) error {
	return fmt.Errorf("%s: %s %d not in [0,%d): %w", tag, what, idx, extent, ErrOutOfRange)
}

// validateNotNil rejects nil operands.
func validateNotNil[T any](tag string, ms ...*T) error {
	for _, m := range ms {
		if m == nil {
			return matrixErrorf(tag, ErrNilMatrix)
		}
	}

	return nil
}

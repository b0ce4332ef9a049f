// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparse"
)

var (
	// ErrShape indicates an input of the wrong aspect, e.g. QR of a wide
	// matrix or Nullspace of a tall one.
	ErrShape = errors.New("linalg: unsupported matrix shape")

	// ErrNotTriangular is returned by SolveTriangular for a matrix that is
	// neither lower nor upper triangular.
	ErrNotTriangular = errors.New("linalg: matrix is not triangular")

	// ErrTooLarge is returned when cofactor expansion would exceed the
	// configured maximum order.
	ErrTooLarge = errors.New("linalg: matrix too large for cofactor expansion")

	// ErrNegativePower is returned by Mpower for a negative exponent.
	ErrNegativePower = errors.New("linalg: negative matrix power")
)

// Operation tags used for error wrapping.
const (
	opDet       = "Det"
	opMinor     = "Minor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opQR        = "QR"
	opCholesky  = "Cholesky"
	opTriSolve  = "SolveTriangular"
	opSolve     = "Solve"
	opNullspace = "Nullspace"
	opPinv      = "Pinv"
	opMpower    = "Mpower"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkSquare rejects nil and non-square input.
func checkSquare[T scalar.Ring[T]](tag string, m *sparse.Matrix[T]) error {
	if m == nil {
		return linalgErrorf(tag, sparse.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return fmt.Errorf("%s: %dx%d: %w", tag, m.Rows(), m.Cols(), sparse.ErrNotSquare)
	}

	return nil
}

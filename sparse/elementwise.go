// SPDX-License-Identifier: MIT
// Package sparse: elementwise operators with structural-zero semantics.
//
// Purpose:
//   - Apply unary and binary operators to stored values only, deriving the
//     result pattern from the operator's zero classification.
//
// Rules (binary f, see scalar.Op):
//   - 1×1 ∘ matrix: the matrix pattern is kept; when f(s,0) ≠ 0 the result
//     is densified with that value. Nothing survives if FX0 holds and the
//     matrix is empty, or F0X holds and the scalar is structurally zero.
//   - matrix ∘ 1×1: symmetric, using F0X and f(0,s).
//   - matrix ∘ matrix: pattern = Combine(x, y, F0X, FX0); operands are
//     projected onto it; if !F00 the result is densified with f(0,0).
//   - unary f: pattern kept; if f(0) ≠ 0 the result is densified with f(0).
//
// Determinism & Performance:
//   - Same-pattern operands skip projection. O(nnz(x) + nnz(y) + ncol).

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
	"github.com/katalvlaran/lvsparse/sparsity"
)

// kernel is a binary function with its zero classification.
type kernel[T any] struct {
	f             func(a, b T) T
	f00, f0x, fx0 bool
}

func opKernel[T scalar.Ring[T]](op scalar.Op, f func(a, b T) T) kernel[T] {
	return kernel[T]{f: f, f00: op.F00(), f0x: op.F0X(), fx0: op.FX0()}
}

// densified returns the dense version of (sp, data) with fill at the
// structural zeros.
func densified[T scalar.Ring[T]](sp *sparsity.Pattern, data []T, fill T) *Matrix[T] {
	if sp.IsDense() {
		return wrap(sp, data)
	}
	nrow, ncol := sp.Shape()
	out := make([]T, nrow*ncol)
	for k := range out {
		out[k] = fill
	}
	cols := sp.ColIndices()
	for k, v := range data {
		out[cols[k]*nrow+sp.RowAt(k)] = v
	}

	return wrap(sparsity.Dense(nrow, ncol), out)
}

// Densify returns the dense matrix with fill at every structural zero.
// Densify of a dense matrix is a copy, so Densify is idempotent.
func (m *Matrix[T]) Densify(fill T) *Matrix[T] {
	return densified(m.sp, append([]T(nil), m.data...), fill)
}

// HasZeros reports a stored value that is exactly zero.
func (m *Matrix[T]) HasZeros() bool {
	for _, v := range m.data {
		if v.IsZero() {
			return true
		}
	}

	return false
}

// Sparsify returns m without the stored values that are exactly zero.
func (m *Matrix[T]) Sparsify() *Matrix[T] {
	return m.dropIf(func(v T) bool { return v.IsZero() })
}

// SparsifyTol drops stored values with |v| ≤ tol.
func SparsifyTol[T scalar.Numeric[T]](m *Matrix[T], tol T) *Matrix[T] {
	return m.dropIf(func(v T) bool { return v.Abs().Apply2(scalar.OpLe, tol).IsOne() })
}

func (m *Matrix[T]) dropIf(drop func(T) bool) *Matrix[T] {
	rows := make([]int, 0, len(m.data))
	cols := make([]int, 0, len(m.data))
	vals := make([]T, 0, len(m.data))
	cidx := m.sp.ColIndices()
	for k, v := range m.data {
		if drop(v) {
			continue
		}
		rows = append(rows, m.sp.RowAt(k))
		cols = append(cols, cidx[k])
		vals = append(vals, v)
	}
	if len(vals) == len(m.data) {
		return m.Clone()
	}
	sp, _, _ := sparsity.Triplet(m.Rows(), m.Cols(), rows, cols)

	return wrap(sp, vals)
}

// apply2 dispatches a binary kernel on the operand shapes.
func apply2[T scalar.Ring[T]](tag string, x, y *Matrix[T], k kernel[T]) (*Matrix[T], error) {
	if err := validateNotNil(tag, x, y); err != nil {
		return nil, err
	}
	switch {
	case x.IsScalar():
		return scalarMatrix(x, y, k), nil
	case y.IsScalar():
		return matrixScalar(x, y, k), nil
	}

	return matrixMatrix(tag, x, y, k)
}

func scalarMatrix[T scalar.Ring[T]](x, y *Matrix[T], k kernel[T]) *Matrix[T] {
	if (k.fx0 && y.NNZ() == 0) || (k.f0x && x.NNZ() == 0) {
		return Empty[T](y.Shape())
	}
	xv := x.scalarValue()
	out := make([]T, len(y.data))
	for i, v := range y.data {
		out[i] = k.f(xv, v)
	}
	if !y.IsDense() && !k.fx0 {
		if fill := k.f(xv, scalar.Zero[T]()); !fill.IsZero() {
			return densified(y.sp, out, fill)
		}
	}

	return wrap(y.sp, out)
}

func matrixScalar[T scalar.Ring[T]](x, y *Matrix[T], k kernel[T]) *Matrix[T] {
	if (k.f0x && x.NNZ() == 0) || (k.fx0 && y.NNZ() == 0) {
		return Empty[T](x.Shape())
	}
	yv := y.scalarValue()
	out := make([]T, len(x.data))
	for i, v := range x.data {
		out[i] = k.f(v, yv)
	}
	if !x.IsDense() && !k.f0x {
		if fill := k.f(scalar.Zero[T](), yv); !fill.IsZero() {
			return densified(x.sp, out, fill)
		}
	}

	return wrap(x.sp, out)
}

func matrixMatrix[T scalar.Ring[T]](tag string, x, y *Matrix[T], k kernel[T]) (*Matrix[T], error) {
	if x.Rows() != y.Rows() || x.Cols() != y.Cols() {
		return nil, shapeError(tag, x.Rows(), x.Cols(), y.Rows(), y.Cols())
	}
	rsp, err := x.sp.Combine(y.sp, k.f0x, k.fx0)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	xv, yv := x.data, y.data
	if rsp != x.sp && !rsp.Equal(x.sp) {
		xv = project(x, rsp)
	}
	if rsp != y.sp && !rsp.Equal(y.sp) {
		yv = project(y, rsp)
	}
	out := make([]T, rsp.NNZ())
	for i := range out {
		out[i] = k.f(xv[i], yv[i])
	}
	if !rsp.IsDense() && !k.f00 {
		zero := scalar.Zero[T]()
		return densified(rsp, out, k.f(zero, zero)), nil
	}

	return wrap(rsp, out), nil
}

// Binary applies a binary operator elementwise; either operand may be 1×1.
// Errors: ErrDimensionMismatch, ErrUnsupported for a non-binary op.
func Binary[T scalar.Scalar[T]](op scalar.Op, x, y *Matrix[T]) (*Matrix[T], error) {
	if op.Arity() != 2 {
		return nil, fmt.Errorf("%s: %v is not binary: %w", opBinary, op, ErrUnsupported)
	}

	return apply2(opBinary, x, y, opKernel(op, func(a, b T) T { return a.Apply2(op, b) }))
}

// Unary applies a unary operator to every element.
// Errors: ErrUnsupported for a non-unary op.
func Unary[T scalar.Scalar[T]](op scalar.Op, x *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil("Unary", x); err != nil {
		return nil, err
	}
	if op.Arity() != 1 {
		return nil, fmt.Errorf("Unary: %v is not unary: %w", op, ErrUnsupported)
	}
	out := make([]T, len(x.data))
	for i, v := range x.data {
		out[i] = v.Apply1(op)
	}
	if !x.IsDense() && !op.F00() {
		if fill := scalar.Zero[T]().Apply1(op); !fill.IsZero() {
			return densified(x.sp, out, fill), nil
		}
	}

	return wrap(x.sp, out), nil
}

// Add returns x + y.
func Add[T scalar.Ring[T]](x, y *Matrix[T]) (*Matrix[T], error) {
	return apply2("Add", x, y, opKernel(scalar.OpAdd, func(a, b T) T { return a.Add(b) }))
}

// Sub returns x - y.
func Sub[T scalar.Ring[T]](x, y *Matrix[T]) (*Matrix[T], error) {
	return apply2("Sub", x, y, opKernel(scalar.OpSub, func(a, b T) T { return a.Sub(b) }))
}

// Mul returns the elementwise product x .* y.
func Mul[T scalar.Ring[T]](x, y *Matrix[T]) (*Matrix[T], error) {
	return apply2("Mul", x, y, opKernel(scalar.OpMul, func(a, b T) T { return a.Mul(b) }))
}

// Div returns the elementwise quotient x ./ y. Division by a structural
// zero yields the element type's x/0 (±Inf or NaN for Float).
func Div[T scalar.Field[T]](x, y *Matrix[T]) (*Matrix[T], error) {
	return apply2("Div", x, y, opKernel(scalar.OpDiv, func(a, b T) T { return a.Div(b) }))
}

// Neg returns -x with x's pattern.
// Errors: ErrNilMatrix.
func Neg[T scalar.Ring[T]](x *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil("Neg", x); err != nil {
		return nil, err
	}

	return negated(x), nil
}

func negated[T scalar.Ring[T]](x *Matrix[T]) *Matrix[T] {
	out := make([]T, len(x.data))
	for i, v := range x.data {
		out[i] = v.Neg()
	}

	return wrap(x.sp, out)
}

// Scale returns s·x with x's pattern. A factor of -1 negates instead of
// multiplying.
// Errors: ErrNilMatrix.
func Scale[T scalar.Ring[T]](s T, x *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil("Scale", x); err != nil {
		return nil, err
	}
	if s.IsMinusOne() {
		return negated(x), nil
	}
	out := make([]T, len(x.data))
	for i, v := range x.data {
		out[i] = s.Mul(v)
	}

	return wrap(x.sp, out), nil
}

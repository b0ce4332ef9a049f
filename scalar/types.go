// SPDX-License-Identifier: MIT

package scalar

// Ring is the minimal capability set of a matrix element.
// T is the implementing type itself (F-bounded), e.g. Float implements
// Ring[Float].
//
// Zero and One ignore their receiver; they exist as methods so generic code
// can build constants from the zero value of T.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T

	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromFloat converts a numeric literal into T.
	FromFloat(float64) T

	// IsZero reports whether the value is known to be exactly zero.
	// Symbolic types answer false unless the value is the constant zero.
	IsZero() bool
	IsOne() bool
	IsMinusOne() bool

	// Equal reports exact (numeric) or structural (symbolic) identity.
	Equal(T) bool
}

// Field adds division to Ring.
type Field[T any] interface {
	Ring[T]
	Div(T) T
}

// Real is a Field with the square root and sign primitives needed by the
// orthogonal factorisations.
type Real[T any] interface {
	Field[T]
	Sqrt() T
	Abs() T
	// Copysign returns a value with the magnitude of the receiver and the
	// sign of s.
	Copysign(s T) T
	// IsFinite is false for NaN and ±Inf. Symbolic values that are not
	// constants report true.
	IsFinite() bool
}

// Scalar is a Ring that can evaluate every elementwise operator in Op.
type Scalar[T any] interface {
	Ring[T]
	// Apply1 evaluates a unary operator on the receiver.
	Apply1(op Op) T
	// Apply2 evaluates a binary operator with the receiver as left operand.
	Apply2(op Op, y T) T
}

// Symbolic is the optional capability of element types that model
// expression-graph nodes. Numeric types do not implement it; graph
// queries on such instantiations report an unsupported error.
type Symbolic interface {
	// IsConstant reports whether the node is a numeric constant.
	IsConstant() bool
	// FreeSymbols lists the names of the leaf symbols the node depends on,
	// in first-seen order.
	FreeSymbols() []string
}

// Numeric is the strongest element contract: a Real that also evaluates
// the full operator family. Float and symbolic expressions satisfy it;
// reductions that need a maximum (NormInf) require it.
type Numeric[T any] interface {
	Real[T]
	Scalar[T]
}

// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Float is the float64 element type. It implements Real[Float] and
// Scalar[Float]; numerical faults (division by zero, sqrt of a negative
// number) surface as NaN/±Inf, never as errors.
type Float float64

var (
	_ Real[Float]   = Float(0)
	_ Scalar[Float] = Float(0)
)

// Add returns x+y.
func (x Float) Add(y Float) Float { return x + y }

// Sub returns x-y.
func (x Float) Sub(y Float) Float { return x - y }

// Mul returns x·y.
func (x Float) Mul(y Float) Float { return x * y }

// Div returns x/y; a zero divisor gives ±Inf or NaN.
func (x Float) Div(y Float) Float { return x / y }

// Neg returns -x.
func (x Float) Neg() Float { return -x }

// Zero returns the additive identity.
func (Float) Zero() Float { return 0 }

// One returns the multiplicative identity.
func (Float) One() Float { return 1 }

// FromFloat converts v unchanged.
func (Float) FromFloat(v float64) Float { return Float(v) }

// IsZero reports x == 0; -0 counts as zero.
func (x Float) IsZero() bool { return x == 0 }

// IsOne reports x == 1.
func (x Float) IsOne() bool { return x == 1 }

// IsMinusOne reports x == -1.
func (x Float) IsMinusOne() bool { return x == -1 }

// Equal is numeric equality, so NaN is never equal to itself.
func (x Float) Equal(y Float) bool { return x == y }

// Sqrt returns the square root; negative x gives NaN.
func (x Float) Sqrt() Float { return Float(math.Sqrt(float64(x))) }

// Abs returns |x|.
func (x Float) Abs() Float { return Float(math.Abs(float64(x))) }

// Copysign returns |x| with the sign of s.
func (x Float) Copysign(s Float) Float { return Float(math.Copysign(float64(x), float64(s))) }

// IsFinite reports that x is neither NaN nor ±Inf.
func (x Float) IsFinite() bool { return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0) }

// Apply1 evaluates the unary operator op on x.
func (x Float) Apply1(op Op) Float { return Float(EvalFloat(op, float64(x), 0)) }

// Apply2 evaluates the binary operator op with x as the left operand.
func (x Float) Apply2(op Op, y Float) Float { return Float(EvalFloat(op, float64(x), float64(y))) }

// String formats with the shortest representation that round-trips.
func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Int is the int64 element type. It implements Field[Int] and Scalar[Int]
// but deliberately not Real[Int]: orthogonal factorisations and the general
// solve do not accept integer matrices.
//
// Integer semantics:
//   - Div truncates toward zero; division by zero saturates to
//     math.MaxInt64 / math.MinInt64 by the sign of the dividend (0/0 = 0).
//   - Apply1/Apply2 evaluate in float64 and convert back with IntOf, so
//     non-finite results saturate instead of being undefined.
type Int int64

var (
	_ Field[Int]  = Int(0)
	_ Scalar[Int] = Int(0)
)

// Add returns x+y, wrapping on overflow.
func (x Int) Add(y Int) Int { return x + y }

// Sub returns x-y, wrapping on overflow.
func (x Int) Sub(y Int) Int { return x - y }

// Mul returns x·y, wrapping on overflow.
func (x Int) Mul(y Int) Int { return x * y }

// Neg returns -x.
func (x Int) Neg() Int { return -x }

// Div truncates toward zero and saturates on a zero divisor.
func (x Int) Div(y Int) Int {
	if y == 0 {
		switch {
		case x > 0:
			return math.MaxInt64
		case x < 0:
			return math.MinInt64
		default:
			return 0
		}
	}

	return x / y
}

// Zero returns the additive identity.
func (Int) Zero() Int { return 0 }

// One returns the multiplicative identity.
func (Int) One() Int { return 1 }

// FromFloat truncates v toward zero, as IntOf does.
func (Int) FromFloat(v float64) Int { return IntOf(v) }

// IsZero reports x == 0.
func (x Int) IsZero() bool { return x == 0 }

// IsOne reports x == 1.
func (x Int) IsOne() bool { return x == 1 }

// IsMinusOne reports x == -1.
func (x Int) IsMinusOne() bool { return x == -1 }

// Equal reports x == y.
func (x Int) Equal(y Int) bool { return x == y }

// Apply1 evaluates a unary operator through float64.
func (x Int) Apply1(op Op) Int { return IntOf(EvalFloat(op, float64(x), 0)) }

// Apply2 evaluates a binary operator; OpDiv keeps integer truncation.
func (x Int) Apply2(op Op, y Int) Int {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x.Div(y)
	}

	return IntOf(EvalFloat(op, float64(x), float64(y)))
}

// String formats x in base 10.
func (x Int) String() string { return strconv.FormatInt(int64(x), 10) }

// SPDX-License-Identifier: MIT
// Package scalar: elementwise operator enum and its zero-absorption table.
//
// Purpose:
//   - Name every elementwise operator the sparse container supports.
//   - Record, per operator, whether structural zeros survive the operation.
//
// Table semantics (binary f(x, y)):
//   - F00: f(0, 0) == 0.
//   - F0X: f(0, y) == 0 for every y (zero on the LEFT absorbs).
//   - FX0: f(x, 0) == 0 for every x (zero on the RIGHT absorbs).
//
// Unary operators only use F00, read as f(0) == 0.
// The flags are conservative: a flag is true only if it holds for ALL
// operands. Getting one wrong silently corrupts sparse results, so every
// row is checked numerically in op_test.go.

package scalar

import (
	"fmt"
	"math"
)

// Op identifies an elementwise operator.
type Op int

// Binary operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpFmin
	OpFmax
	OpAtan2
	OpEq
	OpNe
	OpLt
	OpLe
	OpAnd
	OpOr
	OpCopysign

	// Unary operators.
	OpNeg
	OpSqrt
	OpSq
	OpTwice
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpExp
	OpLog
	OpAbs
	OpSign
	OpFloor
	OpCeil
	OpErf
	OpInv
	OpNot

	opCount
)

// opTraits is one row of the classification table.
type opTraits struct {
	name  string
	arity int
	f00   bool
	f0x   bool
	fx0   bool
}

var opTable = [opCount]opTraits{
	OpAdd:      {"add", 2, true, false, false},
	OpSub:      {"sub", 2, true, false, false},
	OpMul:      {"mul", 2, true, true, true},
	OpDiv:      {"div", 2, true, true, false},   // 0/0 counts as a structural zero
	OpPow:      {"pow", 2, false, false, false}, // 0^0 = 1
	OpFmin:     {"fmin", 2, true, false, false},
	OpFmax:     {"fmax", 2, true, false, false},
	OpAtan2:    {"atan2", 2, true, false, false}, // atan2(0, -1) = π
	OpEq:       {"eq", 2, false, false, false},
	OpNe:       {"ne", 2, true, false, false},
	OpLt:       {"lt", 2, true, false, false},
	OpLe:       {"le", 2, false, false, false},
	OpAnd:      {"and", 2, true, true, true},
	OpOr:       {"or", 2, true, false, false},
	OpCopysign: {"copysign", 2, true, true, false},

	OpNeg:   {"neg", 1, true, false, false},
	OpSqrt:  {"sqrt", 1, true, false, false},
	OpSq:    {"sq", 1, true, false, false},
	OpTwice: {"twice", 1, true, false, false},
	OpSin:   {"sin", 1, true, false, false},
	OpCos:   {"cos", 1, false, false, false},
	OpTan:   {"tan", 1, true, false, false},
	OpAsin:  {"asin", 1, true, false, false},
	OpAcos:  {"acos", 1, false, false, false},
	OpAtan:  {"atan", 1, true, false, false},
	OpSinh:  {"sinh", 1, true, false, false},
	OpCosh:  {"cosh", 1, false, false, false},
	OpTanh:  {"tanh", 1, true, false, false},
	OpExp:   {"exp", 1, false, false, false},
	OpLog:   {"log", 1, false, false, false},
	OpAbs:   {"fabs", 1, true, false, false},
	OpSign:  {"sign", 1, true, false, false},
	OpFloor: {"floor", 1, true, false, false},
	OpCeil:  {"ceil", 1, true, false, false},
	OpErf:   {"erf", 1, true, false, false},
	OpInv:   {"inv", 1, false, false, false},
	OpNot:   {"not", 1, false, false, false},
}

// Valid reports whether op is a known operator.
func (op Op) Valid() bool { return op >= 0 && op < opCount }

// String returns the operator's short name.
func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", int(op))
	}

	return opTable[op].name
}

// Arity returns 1 or 2 (0 for an unknown operator).
func (op Op) Arity() int {
	if !op.Valid() {
		return 0
	}

	return opTable[op].arity
}

// F00 reports f(0,0) == 0 (binary) or f(0) == 0 (unary). A binary op
// absorbing zeros on one side (F0X or FX0) is F00 as well, even when the
// numeric value is undefined (0/0).
func (op Op) F00() bool { return op.Valid() && opTable[op].f00 }

// F0X reports f(0,y) == 0 for all y.
func (op Op) F0X() bool { return op.Valid() && opTable[op].f0x }

// FX0 reports f(x,0) == 0 for all x.
func (op Op) FX0() bool { return op.Valid() && opTable[op].fx0 }

// Ops returns every operator of the given arity in declaration order.
func Ops(arity int) []Op {
	out := make([]Op, 0, opCount)
	for op := Op(0); op < opCount; op++ {
		if opTable[op].arity == arity {
			out = append(out, op)
		}
	}

	return out
}

// bool01 maps a predicate to 1 or 0.
func bool01(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// EvalFloat evaluates op on float64 operands; y is ignored for unary ops.
// It is the single numeric definition shared by Float, Int and constant
// folding in symbolic types. Unknown operators yield NaN.
func EvalFloat(op Op, x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpPow:
		return math.Pow(x, y)
	case OpFmin:
		return math.Min(x, y)
	case OpFmax:
		return math.Max(x, y)
	case OpAtan2:
		return math.Atan2(x, y)
	case OpEq:
		return bool01(x == y)
	case OpNe:
		return bool01(x != y)
	case OpLt:
		return bool01(x < y)
	case OpLe:
		return bool01(x <= y)
	case OpAnd:
		return bool01(x != 0 && y != 0)
	case OpOr:
		return bool01(x != 0 || y != 0)
	case OpCopysign:
		return math.Copysign(x, y)
	case OpNeg:
		return -x
	case OpSqrt:
		return math.Sqrt(x)
	case OpSq:
		return x * x
	case OpTwice:
		return 2 * x
	case OpSin:
		return math.Sin(x)
	case OpCos:
		return math.Cos(x)
	case OpTan:
		return math.Tan(x)
	case OpAsin:
		return math.Asin(x)
	case OpAcos:
		return math.Acos(x)
	case OpAtan:
		return math.Atan(x)
	case OpSinh:
		return math.Sinh(x)
	case OpCosh:
		return math.Cosh(x)
	case OpTanh:
		return math.Tanh(x)
	case OpExp:
		return math.Exp(x)
	case OpLog:
		return math.Log(x)
	case OpAbs:
		return math.Abs(x)
	case OpSign:
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	case OpFloor:
		return math.Floor(x)
	case OpCeil:
		return math.Ceil(x)
	case OpErf:
		return math.Erf(x)
	case OpInv:
		return 1 / x
	case OpNot:
		return bool01(x == 0)
	}

	return math.NaN()
}

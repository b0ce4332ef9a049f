// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/scalar"
)

type kind uint8

const (
	kindConst kind = iota
	kindSymbol
	kindUnary
	kindBinary
)

// node is one vertex of an expression graph. Nodes are never mutated after
// construction and may be shared between many expressions; every walk over
// the graph visits a node once.
type node struct {
	kind kind
	op   scalar.Op
	val  float64 // kindConst
	name string  // kindSymbol
	a, b *node   // operands
}

var zeroNode = &node{kind: kindConst}

// Expr is an immutable symbolic expression. The zero value is the constant 0.
type Expr struct {
	n *node
}

var (
	_ scalar.Real[Expr]   = Expr{}
	_ scalar.Scalar[Expr] = Expr{}
	_ scalar.Symbolic     = Expr{}
)

func (x Expr) node() *node {
	if x.n == nil {
		return zeroNode
	}

	return x.n
}

// Const returns the constant expression v.
func Const(v float64) Expr {
	if v == 0 && !math.Signbit(v) {
		return Expr{}
	}

	return Expr{n: &node{kind: kindConst, val: v}}
}

// Symbol returns a leaf symbol. It panics on an empty name; use NewSymbol
// for untrusted input.
func Symbol(name string) Expr {
	x, err := NewSymbol(name)
	if err != nil {
		panic(err)
	}

	return x
}

// NewSymbol returns a leaf symbol or ErrEmptyName.
func NewSymbol(name string) (Expr, error) {
	if name == "" {
		return Expr{}, ErrEmptyName
	}

	return Expr{n: &node{kind: kindSymbol, name: name}}, nil
}

// Symbols returns n symbols named prefix_0 … prefix_{n-1}.
func Symbols(prefix string, n int) []Expr {
	out := make([]Expr, n)
	for i := range out {
		out[i] = Symbol(prefix + "_" + strconv.Itoa(i))
	}

	return out
}

// Value returns the numeric value of a constant expression.
func (x Expr) Value() (float64, bool) {
	n := x.node()
	if n.kind != kindConst {
		return 0, false
	}

	return n.val, true
}

// IsConstant reports a constant node.
func (x Expr) IsConstant() bool { return x.node().kind == kindConst }

// IsSymbol reports a leaf symbol.
func (x Expr) IsSymbol() bool { return x.node().kind == kindSymbol }

// Name returns the symbol name, or "" for other nodes.
func (x Expr) Name() string { return x.node().name }

// Op returns the operator of an operator node; ok is false for leaves.
func (x Expr) Op() (op scalar.Op, ok bool) {
	n := x.node()
	if n.kind == kindUnary || n.kind == kindBinary {
		return n.op, true
	}

	return 0, false
}

func (x Expr) isConst(v float64) bool {
	n := x.node()
	return n.kind == kindConst && n.val == v
}

// unary builds op(x) with constant folding and the −(−x) identity.
func unary(op scalar.Op, x Expr) Expr {
	n := x.node()
	if n.kind == kindConst {
		return Const(scalar.EvalFloat(op, n.val, 0))
	}
	if op == scalar.OpNeg && n.kind == kindUnary && n.op == scalar.OpNeg {
		return Expr{n: n.a}
	}

	return Expr{n: &node{kind: kindUnary, op: op, a: n}}
}

// binary builds op(x, y) with constant folding and the additive and
// multiplicative identities.
func binary(op scalar.Op, x, y Expr) Expr {
	a, b := x.node(), y.node()
	if a.kind == kindConst && b.kind == kindConst {
		return Const(scalar.EvalFloat(op, a.val, b.val))
	}
	switch op {
	case scalar.OpAdd:
		if x.IsZero() {
			return y
		}
		if y.IsZero() {
			return x
		}
	case scalar.OpSub:
		if y.IsZero() {
			return x
		}
		if x.IsZero() {
			return unary(scalar.OpNeg, y)
		}
		if equalNodes(a, b, nil, foldDepth) {
			return Expr{}
		}
	case scalar.OpMul:
		if x.IsZero() || y.IsZero() {
			return Expr{}
		}
		if x.IsOne() {
			return y
		}
		if y.IsOne() {
			return x
		}
		if x.IsMinusOne() {
			return unary(scalar.OpNeg, y)
		}
		if y.IsMinusOne() {
			return unary(scalar.OpNeg, x)
		}
	case scalar.OpDiv:
		if y.IsOne() {
			return x
		}
		if x.IsZero() {
			return Expr{}
		}
	}

	return Expr{n: &node{kind: kindBinary, op: op, a: a, b: b}}
}

func (x Expr) Add(y Expr) Expr { return binary(scalar.OpAdd, x, y) }
func (x Expr) Sub(y Expr) Expr { return binary(scalar.OpSub, x, y) }
func (x Expr) Mul(y Expr) Expr { return binary(scalar.OpMul, x, y) }
func (x Expr) Div(y Expr) Expr { return binary(scalar.OpDiv, x, y) }
func (x Expr) Neg() Expr       { return unary(scalar.OpNeg, x) }

func (Expr) Zero() Expr                 { return Expr{} }
func (Expr) One() Expr                  { return Const(1) }
func (Expr) FromFloat(v float64) Expr   { return Const(v) }
func (x Expr) IsZero() bool             { return x.isConst(0) }
func (x Expr) IsOne() bool              { return x.isConst(1) }
func (x Expr) IsMinusOne() bool         { return x.isConst(-1) }
func (x Expr) Sqrt() Expr               { return unary(scalar.OpSqrt, x) }
func (x Expr) Abs() Expr                { return unary(scalar.OpAbs, x) }
func (x Expr) Copysign(s Expr) Expr     { return binary(scalar.OpCopysign, x, s) }
func (x Expr) Apply1(op scalar.Op) Expr { return unary(op, x) }

// Apply2 evaluates a binary operator with x as the left operand.
func (x Expr) Apply2(op scalar.Op, y Expr) Expr { return binary(op, x, y) }

// IsFinite is false only for non-finite constants.
func (x Expr) IsFinite() bool {
	n := x.node()
	if n.kind != kindConst {
		return true
	}

	return !math.IsNaN(n.val) && !math.IsInf(n.val, 0)
}

// Equal reports structural identity of the two graphs. Each pair of
// shared nodes is compared once.
func (x Expr) Equal(y Expr) bool {
	return equalNodes(x.node(), y.node(), make(map[[2]*node]bool), -1)
}

// foldDepth bounds the structural comparison binary runs to fold x-x.
const foldDepth = 1

// equalNodes compares a and b through at most depth operator levels below
// them; depth < 0 is unbounded. memo, when non-nil, records decided pairs.
func equalNodes(a, b *node, memo map[[2]*node]bool, depth int) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case kindConst:
		return a.val == b.val
	case kindSymbol:
		return a.name == b.name
	}
	if a.op != b.op || depth == 0 {
		return false
	}
	key := [2]*node{a, b}
	if eq, ok := memo[key]; ok {
		return eq
	}
	eq := equalNodes(a.a, b.a, memo, depth-1) &&
		(a.kind == kindUnary || equalNodes(a.b, b.b, memo, depth-1))
	if memo != nil {
		memo[key] = eq
	}

	return eq
}

// FreeSymbols lists the symbol names x depends on in first-seen order.
func (x Expr) FreeSymbols() []string {
	visited := make(map[*node]bool)
	names := make(map[string]bool)
	var out []string
	var walk func(n *node)
	walk = func(n *node) {
		if visited[n] {
			return
		}
		visited[n] = true
		switch n.kind {
		case kindSymbol:
			if !names[n.name] {
				names[n.name] = true
				out = append(out, n.name)
			}
		case kindUnary:
			walk(n.a)
		case kindBinary:
			walk(n.a)
			walk(n.b)
		}
	}
	walk(x.node())

	return out
}

// infix holds the operators printed between their operands.
var infix = map[scalar.Op]string{
	scalar.OpAdd: "+",
	scalar.OpSub: "-",
	scalar.OpMul: "*",
	scalar.OpDiv: "/",
	scalar.OpEq:  "==",
	scalar.OpNe:  "!=",
	scalar.OpLt:  "<",
	scalar.OpLe:  "<=",
	scalar.OpAnd: "&&",
	scalar.OpOr:  "||",
}

// String renders the expression, fully parenthesising binary operators.
// Operator nodes used more than once are printed once as a definition
// "@k=..." ahead of the expression and referenced as @k afterwards:
//
//	@1=(x*x), @2=(@1*@1), (@2*@2)
func (x Expr) String() string {
	var sb strings.Builder
	root := x.node()
	p := printer{sb: &sb, names: make(map[*node]string)}
	if shared := sharedNodes(root); len(shared) > 0 {
		p.define(root, shared, make(map[*node]bool))
	}
	p.write(root)

	return sb.String()
}

// sharedNodes returns the operator nodes reachable from root through more
// than one edge.
func sharedNodes(root *node) map[*node]bool {
	refs := make(map[*node]int)
	var walk func(n *node)
	walk = func(n *node) {
		if n.kind == kindConst || n.kind == kindSymbol {
			return
		}
		refs[n]++
		if refs[n] > 1 {
			return
		}
		walk(n.a)
		if n.kind == kindBinary {
			walk(n.b)
		}
	}
	walk(root)

	shared := make(map[*node]bool)
	for n, c := range refs {
		if c > 1 {
			shared[n] = true
		}
	}

	return shared
}

type printer struct {
	sb    *strings.Builder
	names map[*node]string
}

// define emits the shared nodes below n in post-order, so every
// definition only refers to earlier ones.
func (p *printer) define(n *node, shared, visited map[*node]bool) {
	if visited[n] || n.kind == kindConst || n.kind == kindSymbol {
		return
	}
	visited[n] = true
	p.define(n.a, shared, visited)
	if n.kind == kindBinary {
		p.define(n.b, shared, visited)
	}
	if !shared[n] {
		return
	}
	name := "@" + strconv.Itoa(len(p.names)+1)
	p.sb.WriteString(name)
	p.sb.WriteByte('=')
	p.write(n)
	p.sb.WriteString(", ")
	p.names[n] = name
}

func (p *printer) write(n *node) {
	if name, ok := p.names[n]; ok {
		p.sb.WriteString(name)
		return
	}
	sb := p.sb
	switch n.kind {
	case kindConst:
		sb.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case kindSymbol:
		sb.WriteString(n.name)
	case kindUnary:
		if n.op == scalar.OpNeg {
			sb.WriteString("(-")
			p.write(n.a)
			sb.WriteByte(')')
			return
		}
		sb.WriteString(n.op.String())
		sb.WriteByte('(')
		p.write(n.a)
		sb.WriteByte(')')
	case kindBinary:
		if s, ok := infix[n.op]; ok {
			sb.WriteByte('(')
			p.write(n.a)
			sb.WriteString(s)
			p.write(n.b)
			sb.WriteByte(')')
			return
		}
		fmt.Fprintf(sb, "%s(", n.op)
		p.write(n.a)
		sb.WriteString(", ")
		p.write(n.b)
		sb.WriteByte(')')
	}
}

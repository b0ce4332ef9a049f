// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/scalar"
)

// Env binds symbol names to numeric values.
type Env map[string]float64

// Eval computes the numeric value of x under env. Shared subtrees are
// evaluated once.
// Errors: ErrUnboundSymbol naming the first missing symbol.
func (x Expr) Eval(env Env) (float64, error) {
	memo := make(map[*node]float64)

	return evalNode(x.node(), env, memo)
}

func evalNode(n *node, env Env, memo map[*node]float64) (float64, error) {
	if v, ok := memo[n]; ok {
		return v, nil
	}
	var (
		v, a, b float64
		err     error
	)
	switch n.kind {
	case kindConst:
		return n.val, nil
	case kindSymbol:
		var ok bool
		if v, ok = env[n.name]; !ok {
			return 0, fmt.Errorf("Eval: %q: %w", n.name, ErrUnboundSymbol)
		}
	case kindUnary:
		if a, err = evalNode(n.a, env, memo); err != nil {
			return 0, err
		}
		v = scalar.EvalFloat(n.op, a, 0)
	case kindBinary:
		if a, err = evalNode(n.a, env, memo); err != nil {
			return 0, err
		}
		if b, err = evalNode(n.b, env, memo); err != nil {
			return 0, err
		}
		v = scalar.EvalFloat(n.op, a, b)
	}
	memo[n] = v

	return v, nil
}

// Substitute replaces every symbol bound in repl by its expression and
// rebuilds the tree, folding constants on the way.
func (x Expr) Substitute(repl map[string]Expr) Expr {
	memo := make(map[*node]Expr)

	return substNode(x.node(), repl, memo)
}

func substNode(n *node, repl map[string]Expr, memo map[*node]Expr) Expr {
	if e, ok := memo[n]; ok {
		return e
	}
	var out Expr
	switch n.kind {
	case kindConst:
		return Expr{n: n}
	case kindSymbol:
		e, ok := repl[n.name]
		if !ok {
			e = Expr{n: n}
		}
		out = e
	case kindUnary:
		out = unary(n.op, substNode(n.a, repl, memo))
	case kindBinary:
		out = binary(n.op, substNode(n.a, repl, memo), substNode(n.b, repl, memo))
	}
	memo[n] = out

	return out
}

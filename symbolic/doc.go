// SPDX-License-Identifier: MIT

// Package symbolic provides Expr, a small expression-node element type
// that lets every sparse and linalg algorithm run on symbols as well as
// numbers.
//
// An Expr is an immutable graph of constants, named symbols and operator
// nodes. Subexpressions are shared rather than copied, and Eval,
// Substitute, Equal, FreeSymbols and String visit each shared node once.
// Building a node folds constants (via scalar.EvalFloat) and applies the
// identities x+0, x·1, x·0, x−x and −(−x), so structural zeros produced by
// sparse algorithms stay recognisable as zeros. Eval substitutes numeric
// values for symbols; EvalMatrix does so for a whole sparse matrix.
//
// String prints an operator node that is used more than once as a
// definition @k=... ahead of the expression, then refers to it as @k.
//
// Expr implements scalar.Real, scalar.Scalar and scalar.Symbolic. The zero
// value is the constant 0.
package symbolic

// Package lvsparse is a generic sparse matrix algebra engine: one set of
// algorithms that runs unchanged on float64, int64 and symbolic expression
// elements.
//
// 🚀 What is lvsparse?
//
//	A compressed-column sparse library that brings together:
//		• Patterns: immutable, shareable sparsity structure with slicing,
//		  concatenation, products and structural queries
//		• Graph algorithms on patterns: elimination tree, DFS reach,
//		  strongly connected components, maximum transversal,
//		  Dulmage–Mendelsohn / block triangular form
//		• Matrices: Matrix[T] with python-style indexing, copy-on-structural-
//		  change writes, elementwise operators with exact zero-absorption
//		  rules, products, reductions and gonum interop
//		• Kernels: determinant, adjugate, inverse, QR, Cholesky, triangular
//		  and block triangular solve, nullspace, pseudo-inverse
//		• Symbols: a small expression type so the same kernels build
//		  expression graphs instead of numbers
//
// ✨ Why lvsparse?
//
//   - Generic – capabilities are constraints; QR on integers does not compile
//   - Structure first – the kernels never branch on values, so numeric and
//     symbolic runs take identical paths
//   - Silent by default – opt-in slog tracing of solver dispatch
//
// Packages:
//
//	scalar/     element contracts (Ring, Field, Real, Scalar), Float, Int, Op
//	sparsity/   Pattern and the structural graph algorithms
//	sparse/     Matrix[T] container and operators
//	linalg/     dense-in-sparse kernels and the general solve
//	symbolic/   Expr, the symbolic element type
//	examples/   runnable scenarios
//
// Quick ASCII example:
//
//	[[1, 00],
//	 [00, 2]]
//
//	is a 2×2 matrix with two stored nonzeros; 00 marks a structural zero.
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse

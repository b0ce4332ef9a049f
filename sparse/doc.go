// SPDX-License-Identifier: MIT

// Package sparse implements Matrix[T], a compressed-column sparse matrix
// generic over its element type.
//
// What:
//
//   - A Matrix pairs an immutable *sparsity.Pattern with an owned slice of
//     nonzero values in pattern order. Many matrices may share one pattern.
//   - Construction from dense rows, triplets, a pattern plus values or a
//     scalar broadcast; element and block access with python-style index
//     expressions; elementwise operators with explicit structural-zero
//     semantics; products; concatenation and splitting; reductions; dense
//     and compressed exports for solver adapters; a gonum bridge.
//
// Element types:
//
//	Every function carries the weakest constraint it needs. Matrix itself
//	only needs scalar.Ring; Div needs scalar.Field; norms need scalar.Real;
//	Unary/Binary need scalar.Scalar. Calling an operation the element type
//	cannot support fails to compile instead of failing at run time. Queries
//	that only make sense for expression graphs (IsSymbolic, Symbols) return
//	ErrUnsupported on numeric instantiations.
//
// Structural zeros:
//
//	An operator f is applied to stored values only. Whether positions that
//	are structurally zero on one or both sides stay zero is read from the
//	operator's classification (scalar.Op F00/F0X/FX0). When f(0,0) ≠ 0 the
//	result is densified with the value f(0,0) (cos(0) = 1, 0 == 0 → 1, ...).
//
// Mutation:
//
//	Set, SetBlock and friends that introduce a new structural nonzero rebind
//	the matrix to a new pattern; a pattern is never modified in place, so
//	other matrices sharing it are unaffected.
//
// Errors:
//
//   - ErrDimensionMismatch  incompatible shapes (message names both)
//   - ErrOutOfRange         index outside the shape, numel or nnz
//   - ErrNNZMismatch        value count differs from the pattern's nnz
//   - ErrNotSquare, ErrNotVector, ErrBadIndex, ErrBadOffsets
//   - ErrUnsupported        operation not defined for the element type
package sparse

// SPDX-License-Identifier: MIT

// Package linalg implements dense-in-sparse linear algebra kernels on
// sparse.Matrix: determinant by cofactor expansion, adjugate and inverse,
// modified Gram-Schmidt QR, Cholesky, triangular solves driven by the
// pattern's reach, a general solver that goes through a block triangular
// permutation, Householder nullspace and the pseudo-inverse.
//
// Every kernel is a generic function whose type parameter carries the
// weakest element capability it needs:
//
//	Det, Minor, Cofactor, Adjugate, Mpower   scalar.Ring
//	Inverse, SolveTriangular                 scalar.Field
//	QR, Cholesky, Solve, Nullspace, Pinv     scalar.Real
//
// so the same code runs on scalar.Float, scalar.Int (where the capability
// allows) and symbolic.Expr. No kernel pivots on numeric values: the
// operation sequence depends only on the sparsity pattern, which is what
// makes the symbolic instantiation meaningful.
//
// Failure semantics: shape problems return errors wrapping the sparse
// sentinels (sparse.ErrNotSquare, sparse.ErrDimensionMismatch) or ErrShape
// and ErrNotTriangular from this package. Numerical singularity is not an
// error: it surfaces as non-finite values (±Inf, NaN) in the result.
//
// The package is silent by default; pass WithLogger to trace the path
// Solve takes at Debug level.
package linalg

// SPDX-License-Identifier: MIT

// Package scalar defines the element-type contract every sparse container
// and kernel in lvsparse is generic over, plus the numeric instantiations.
//
// What:
//
//   - Ring[T]:   +, -, *, negation, zero/one constructors and predicates,
//     exact equality. Enough for storage, products and determinants.
//   - Field[T]:  Ring + division (inverse, triangular solve).
//   - Real[T]:   Field + Sqrt/Abs/Copysign/IsFinite (QR, Cholesky, solve,
//     nullspace, norms).
//   - Scalar[T]: Ring + the full elementwise operator family (Apply1/Apply2)
//     keyed by Op.
//   - Float (float64) and Int (int64) numeric instantiations.
//   - Op: the elementwise operator enum with its zero-absorption table.
//
// Why:
//
//	The same sparse algorithms must run on numbers and on symbolic
//	expression nodes. Each algorithm states the weakest constraint it needs,
//	so asking for e.g. a QR factorisation of an integer matrix is a
//	compile-time constraint failure rather than a runtime surprise.
//
// Zero absorption:
//
//	Sparse elementwise results keep structural zeros only when the operator
//	maps zero operands to zero. Op.F00, Op.F0X and Op.FX0 answer this per
//	operator; the table lives in op.go and is verified numerically in tests.
package scalar

// Package matrix is the dense float64 matrix engine of lvmath.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set and a canonical
//     empty value (0×0) standing for "no matrix".
//   - Algebra kernels: Add, Sub, Scale, DivScalar, Transpose, Mul, MulVec,
//     Augment and the chained products MultiplyLeft / MultiplyRight.
//   - A cofactor engine on Dense: Determinant, Minor, Cofactor, Rank,
//     Adjoint and Invert, plus SolveLinearEquation.
//   - Row/column extraction into tagged vectors (package vector).
//   - Column statistics: ColumnMeans, CenterColumns, Covariance.
//
// Two failure channels are used on purpose:
//
//	structural misuse   → error (ErrDimensionMismatch, ErrNonSquare, ErrOverflow, …)
//	numeric degeneracy  → sentinel value (NaN determinant, empty inverse)
//
// Callers must check IsNullOrEmpty after Invert/Adjoint.
//
// Cofactor expansion is exact and simple but grows as O(n!); it targets the
// small homogeneous matrices of affine work. See matrix/ops for LU-based
// kernels on larger inputs.
package matrix

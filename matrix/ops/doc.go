// SPDX-License-Identifier: MIT

// Package ops provides O(n³) reference kernels over matrix.Matrix:
// LU factorization with partial pivoting, LU determinant, inverse and solve,
// tolerance-based rank by Gaussian elimination, Householder QR and the
// Jacobi eigen decomposition of symmetric matrices.
//
// Unlike the cofactor engine on matrix.Dense, these kernels fail loudly:
// singular input yields ErrSingular rather than an empty matrix.
//
// All results are fresh *matrix.Dense values; inputs are never mutated.
package ops

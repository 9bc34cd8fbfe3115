// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON FAMILIES
// ----------------
// Shape and invertibility failures form the arithmetic family: each of them
// wraps ErrArithmetic, so errors.Is(err, ErrArithmetic) matches any of them
// while errors.Is(err, ErrNonSquare) still picks the precise cause.
//
// Numerical degeneracy is NOT an error: Invert/Adjoint return the canonical
// empty matrix instead. Only structural misuse is reported through this set.

var (
	// ErrArithmetic is the root of the arithmetic family (shape mismatch,
	// non-square input, singular input, empty operand list).
	ErrArithmetic = errors.New("matrix: arithmetic error")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrArithmetic)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrArithmetic)

	// ErrSingular is returned where invertibility is required (SolveLinearEquation)
	// and the determinant is zero or not finite.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrArithmetic)

	// ErrNoOperands is returned by MultiplyLeft/MultiplyRight on an empty list.
	ErrNoOperands = fmt.Errorf("%w: empty operand list", ErrArithmetic)

	// ErrOverflow is returned when a requested shape is negative or holds more
	// than MaxElements elements. Allocation never starts in that case.
	ErrOverflow = errors.New("matrix: element count overflow")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix that
	// enforces the finite-only policy (WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// BACKWARD-COMPATIBILITY ALIASES.

// ErrInvalidDimensions historically named the negative-shape condition.
var ErrInvalidDimensions = ErrOverflow // Deprecated: use ErrOverflow.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

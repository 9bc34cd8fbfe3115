// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All fallible operations return these sentinels, optionally wrapped with
// an operation tag; tests match them via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNonVector indicates the NonVector sentinel was used where a row or
	// column vector is required.
	ErrNonVector = errors.New("vector: non-vector operand")
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

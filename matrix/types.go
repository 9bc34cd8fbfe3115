// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels accept any Matrix and return a concrete *Dense; *Dense operands
// skip the conversion copy.
package matrix

// MaxElements caps rows*cols for any allocation (2^31−1 elements).
const MaxElements = 1<<31 - 1

// Matrix represents a two-dimensional mutable array of float64 values.
// Height is Rows(), width is Cols(); elements are addressed as (row, col).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows (height).
	Rows() int

	// Cols returns the number of columns (width).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparison predicates.
//
// Two exact predicates exist on purpose and disagree on one case:
//
//	Equal(empty, empty)       == true   (value equality after size match)
//	StrictEqual(empty, empty) == false  (an empty matrix never equals anything)
//
// Code that treats "no matrix" as a failure marker wants StrictEqual;
// structural comparisons (tests, caches) want Equal.

package matrix

import "math"

const opAllClose = "AllClose"

// Equal reports value equality: same shape and identical elements.
// Two nil matrices are equal; nil and non-nil are not. Two empty matrices
// are equal. NaN elements never compare equal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	na, nb := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if na || nb {
		return na && nb
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	da, err := toDense(a)
	if err != nil {
		return false
	}
	db, err := toDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if da.data[idx] != db.data[idx] {
			return false
		}
	}

	return true
}

// StrictEqual is Equal with the empty matrix excluded: if either side is nil
// or empty the result is false, even for two empty matrices.
func StrictEqual(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() == 0 || a.Cols() == 0 || b.Rows() == 0 || b.Cols() == 0 {
		return false
	}

	return Equal(a, b)
}

// AllClose checks element-wise |a−b| ≤ eps·(1 + |b|) for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Options:
//   - WithEpsilon(eps) (default DefaultEpsilon).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1). Early exit on the first violation.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := gatherOptions(opts...).eps
	var diff float64
	for idx := range da.data {
		diff = math.Abs(da.data[idx] - db.data[idx])
		if !(diff <= eps*(1+math.Abs(db.data[idx]))) { // NaN fails too
			return false, nil
		}
	}

	return true, nil
}

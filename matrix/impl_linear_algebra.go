// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, augmentation and chained products. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Operands are converted once through toDense (no copy for *Dense inputs),
//     then every kernel runs on flat row-major slices.
//   - Inputs are never mutated; each kernel allocates exactly one result.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opMulVec        = "MulVec"
	opTranspose     = "Transpose"
	opScale         = "Scale"
	opDivScalar     = "DivScalar"
	opAugment       = "Augment"
	opMultiplyLeft  = "MultiplyLeft"
	opMultiplyRight = "MultiplyRight"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newSameShape(da, da.r, da.c)
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: pick the outer loop by the larger output dimension:
//     rows ≥ cols → i→k→j (row-outer), otherwise j→k→i (column-outer).
//
// Behavior highlights:
//   - The two orders are a cache-locality choice only. Each C[i,j] is
//     accumulated over k ascending in both, so results are bitwise identical.
//   - No zero-skipping: 0·Inf must yield NaN exactly as the naive product does.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch), ErrOverflow.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if res.IsEmpty() {
		return res, nil
	}
	res.validateNaNInf = da.validateNaNInf

	var i, j, k int
	var av, bv float64
	if rows >= cols {
		// Row-outer: stream rows of B into row i of C.
		var rowA, rowB, rowC int
		for i = 0; i < rows; i++ {
			rowA = i * inner
			rowC = i * cols
			for k = 0; k < inner; k++ {
				av = da.data[rowA+k]
				rowB = k * cols
				for j = 0; j < cols; j++ {
					res.data[rowC+j] += av * db.data[rowB+j]
				}
			}
		}

		return res, nil
	}

	// Column-outer: walk column j of B and scatter into column j of C.
	for j = 0; j < cols; j++ {
		for k = 0; k < inner; k++ {
			bv = db.data[k*cols+j]
			for i = 0; i < rows; i++ {
				res.data[i*cols+j] += da.data[i*inner+k] * bv
			}
		}
	}

	return res, nil
}

// MulVec computes y = m * x for a plain column slice x.
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MulVec(m Matrix, x []float64) ([]float64, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err = ValidateVecLen(x, d.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newSameShape(d, d.c, d.r)
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[base+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return d.scaled(alpha), nil
}

// DivScalar returns a new matrix whose elements are m[i,j] / alpha.
// Division by zero follows IEEE-754 (±Inf or NaN); callers that need a
// finite result must check the divisor first.
// Errors: ErrNilMatrix.
func DivScalar(m Matrix, alpha float64) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	res := newSameShape(d, d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = v / alpha
	}

	return res, nil
}

// Negate returns -m. Equivalent to Scale(m, -1).
func Negate(m Matrix) (*Dense, error) { return Scale(m, -1) }

// scaled is the allocation-only core of Scale on a known *Dense.
func (m *Dense) scaled(alpha float64) *Dense {
	res := newSameShape(m, m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res
}

// Augment concatenates b to the right of a: [a | b].
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ), ErrOverflow.
// Complexity: Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	res, err := NewDense(da.r, da.c+db.c)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	for i := 0; i < res.r; i++ {
		copy(res.data[i*res.c:], da.data[i*da.c:(i+1)*da.c])
		copy(res.data[i*res.c+da.c:], db.data[i*db.c:(i+1)*db.c])
	}

	return res, nil
}

// MultiplyLeft folds ms as successive left-multiplications onto an
// accumulator seeded with ms[0]: acc = ms[i]·acc, giving ms[n]·…·ms[1]·ms[0].
// MAIN DESCRIPTION:
//   - Under the column-vector convention a chain of transforms applied in
//     list order is exactly this product.
//
// Errors:
//   - ErrNoOperands (empty list), ErrNilMatrix, ErrDimensionMismatch (with the
//     index of the offending factor in the message).
//
// Complexity:
//   - Time O(len(ms)·n³) for n×n factors.
func MultiplyLeft[M Matrix](ms []M) (*Dense, error) {
	return fold(ms, opMultiplyLeft, func(acc *Dense, next Matrix) (*Dense, error) {
		return Mul(next, acc)
	})
}

// MultiplyRight folds ms as successive right-multiplications onto an
// accumulator seeded with ms[0]: acc = acc·ms[i], giving ms[0]·ms[1]·…·ms[n].
// Under the row-vector convention a chain applied in list order is this product.
// Errors: as MultiplyLeft.
func MultiplyRight[M Matrix](ms []M) (*Dense, error) {
	return fold(ms, opMultiplyRight, func(acc *Dense, next Matrix) (*Dense, error) {
		return Mul(acc, next)
	})
}

// fold drives MultiplyLeft/MultiplyRight. The seed is copied so a
// single-element list never aliases the caller's matrix.
func fold[M Matrix](ms []M, tag string, step func(acc *Dense, next Matrix) (*Dense, error)) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(tag, ErrNoOperands)
	}
	seed, err := toDense(ms[0])
	if err != nil {
		return nil, matrixErrorf(tag, fmt.Errorf("factor 0: %w", err))
	}
	acc := seed.Copy()
	for i := 1; i < len(ms); i++ {
		if acc, err = step(acc, ms[i]); err != nil {
			return nil, matrixErrorf(tag, fmt.Errorf("factor %d: %w", i, err))
		}
	}

	return acc, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - cofactor engine: determinant, minors, rank, adjoint, inverse.
//
// Purpose:
//   - Exact textbook algorithms by cofactor expansion, intended for the small
//     (homogeneous 3×3/4×4) matrices of affine work.
//   - Derived values are recomputed on every call; cache them yourself if reused.
//
// Contract split:
//   - Numerical degeneracy is silent: Determinant yields NaN, Adjoint/Invert
//     yield the canonical empty matrix. Check IsNullOrEmpty after inversion.
//   - Structural misuse is loud: SolveLinearEquation returns ErrNonSquare,
//     ErrSingular or ErrDimensionMismatch.
//
// Complexity quicksheet:
//   - Determinant: O(n!) by expansion (closed form for n ≤ 2).
//   - Rank: O(Σ C(r,k)·C(c,k)·k!) in the worst case.
//   - For large n prefer matrix/ops (LU based).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/vector"
)

const (
	opMinor    = "Minor"
	opCofactor = "Cofactor"
	opSolve    = "SolveLinearEquation"
)

// Determinant returns det(m) by cofactor expansion along the first column.
// MAIN DESCRIPTION:
//   - order 0 → 0; order 1 → the element; order 2 → a·d − b·c;
//     order ≥ 3 → Σ (−1)^i · m[i,0] · det(minor(i,0)).
//
// Behavior highlights:
//   - Non-square input yields NaN.
//   - Any minor whose determinant is NaN or ±Inf makes the whole result NaN.
//
// Complexity:
//   - Time O(n!), Space O(n²) of scratch per recursion level.
func (m *Dense) Determinant() float64 {
	if !m.IsSquare() {
		return math.NaN()
	}

	return cofactorDet(m.data, m.r)
}

// cofactorDet evaluates the determinant of the n×n row-major block a.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 0:
		return 0
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	minor := make([]float64, (n-1)*(n-1))
	var det, md float64
	sign := 1.0
	for i := 0; i < n; i++ {
		extractMinor(a, n, i, 0, minor)
		md = cofactorDet(minor, n-1)
		if isNonFinite(md) {
			return math.NaN()
		}
		det += sign * a[i*n] * md
		sign = -sign
	}

	return det
}

// extractMinor copies a without row skipRow and column skipCol into dst.
// dst must hold (n-1)*(n-1) elements.
func extractMinor(a []float64, n, skipRow, skipCol int, dst []float64) {
	k := 0
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		for j := 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			dst[k] = a[i*n+j]
			k++
		}
	}
}

// Minor returns the submatrix of a square m without row and col.
// Errors: ErrNonSquare, ErrOutOfRange.
// Complexity: O(n²).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if !m.IsSquare() {
		return nil, matrixErrorf(opMinor, ErrNonSquare)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, denseErrorf(opMinor, row, col, err)
	}
	res := newSameShape(m, m.r-1, m.c-1)
	if !res.IsEmpty() {
		extractMinor(m.data, m.r, row, col, res.data)
	}

	return res, nil
}

// Cofactor returns (−1)^(row+col) · det(Minor(row, col)).
// The minor of a 1×1 matrix is order 0; its cofactor is defined as 1.
// Errors: as Minor.
func (m *Dense) Cofactor(row, col int) (float64, error) {
	minor, err := m.Minor(row, col)
	if err != nil {
		return math.NaN(), matrixErrorf(opCofactor, err)
	}

	return cofactorSign(row, col) * minorDet(minor), nil
}

// minorDet is Determinant with the order-0 minor counted as 1, which keeps
// the 1×1 adjoint equal to [1].
func minorDet(minor *Dense) float64 {
	if minor.IsEmpty() {
		return 1
	}

	return minor.Determinant()
}

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Rank returns the rank found by an ascending search over minor orders.
// MAIN DESCRIPTION:
//   - For k = 1, 2, … min(r,c): if any k×k submatrix (any choice of k rows and
//     k columns) has a finite non-zero determinant, the rank is at least k.
//   - The search stops at the first order without such a submatrix; the last
//     successful order is the result. An all-zero or empty matrix has rank 0.
//
// Notes:
//   - Exact-zero test: near-singular minors count as non-singular. Compare with
//     ops.Rank, which uses a tolerance, when inputs come from noisy arithmetic.
//
// Complexity:
//   - Exponential in min(r,c); intended for small matrices.
func (m *Dense) Rank() int {
	limit := m.r
	if m.c < limit {
		limit = m.c
	}
	rank := 0
	for order := 1; order <= limit; order++ {
		if !m.hasRegularMinor(order) {
			break
		}
		rank = order
	}

	return rank
}

// hasRegularMinor reports whether some order×order submatrix is non-singular.
// Row and column index sets are enumerated in lexicographic order.
func (m *Dense) hasRegularMinor(order int) bool {
	rows := firstCombination(order)
	cols := make([]int, order)
	sub := make([]float64, order*order)
	var det float64
	for {
		resetCombination(cols)
		for {
			gather(m, rows, cols, sub)
			det = cofactorDet(sub, order)
			if det != 0 && !isNonFinite(det) {
				return true
			}
			if !nextCombination(cols, m.c) {
				break
			}
		}
		if !nextCombination(rows, m.r) {
			return false
		}
	}
}

// gather copies m[rows[i], cols[j]] into the row-major block dst.
func gather(m *Dense, rows, cols []int, dst []float64) {
	k := len(cols)
	for i, r := range rows {
		for j, c := range cols {
			dst[i*k+j] = m.data[r*m.c+c]
		}
	}
}

// firstCombination returns [0, 1, …, k-1].
func firstCombination(k int) []int {
	idx := make([]int, k)
	resetCombination(idx)

	return idx
}

// resetCombination rewinds idx to [0, 1, …, k-1].
func resetCombination(idx []int) {
	for i := range idx {
		idx[i] = i
	}
}

// nextCombination advances idx to the next k-subset of [0,n) in lexicographic
// order and reports false when idx was the last one.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}

	return true
}

// Adjoint returns the adjugate: result[i,j] = (−1)^(i+j) · det(minor(j,i)).
// MAIN DESCRIPTION:
//   - The cofactor matrix, placed transposed.
//
// Behavior highlights:
//   - Non-square or empty input yields the canonical empty matrix.
//   - 1×1 input yields [1].
//
// Complexity:
//   - Time O(n² · cost(det(n−1))), Space O(n²).
func (m *Dense) Adjoint() *Dense {
	if !m.IsSquare() || m.IsEmpty() {
		return Empty()
	}
	n := m.r
	res := newSameShape(m, n, n)
	if n == 1 {
		res.data[0] = 1

		return res
	}
	minor := make([]float64, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			extractMinor(m.data, n, j, i, minor)
			res.data[i*n+j] = cofactorSign(i, j) * cofactorDet(minor, n-1)
		}
	}

	return res
}

// Invert returns m⁻¹ = Adjoint / Determinant.
// MAIN DESCRIPTION:
//   - Fail-soft inversion: degenerate input yields the canonical empty matrix.
//
// Behavior highlights:
//   - Empty when m is non-square or empty, when det is 0, NaN or ±Inf, or
//     when any resulting element is NaN or ±Inf.
//
// Complexity:
//   - Dominated by Adjoint.
func (m *Dense) Invert() *Dense {
	det := m.Determinant()
	if det == 0 || isNonFinite(det) {
		return Empty()
	}
	res := m.Adjoint()
	if res.IsEmpty() {
		return res
	}
	for idx, v := range res.data {
		v /= det
		if isNonFinite(v) {
			return Empty()
		}
		res.data[idx] = v
	}

	return res
}

// SolveLinearEquation solves m·x = v by computing m⁻¹·v and extracting the
// single resulting column.
// MAIN DESCRIPTION:
//   - v may be a row or column vector; the solution is a column vector.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(v) != order or
//     NonVector), ErrSingular (inverse is empty).
//
// Complexity:
//   - Dominated by Invert.
func SolveLinearEquation(m Matrix, v vector.Vector) (vector.Vector, error) {
	if err := ValidateSquare(m); err != nil {
		return vector.Vector{}, matrixErrorf(opSolve, err)
	}
	if v.IsNonVector() || v.Len() != m.Rows() {
		return vector.Vector{}, matrixErrorf(opSolve, fmt.Errorf("len(v)=%d: %w", v.Len(), ErrDimensionMismatch))
	}
	d, err := toDense(m)
	if err != nil {
		return vector.Vector{}, matrixErrorf(opSolve, err)
	}
	inv := d.Invert()
	if inv.IsEmpty() {
		return vector.Vector{}, matrixErrorf(opSolve, ErrSingular)
	}
	col := v
	if col.Kind() == vector.RowVector {
		col = col.Transport()
	}
	rhs, err := FromVector(col)
	if err != nil {
		return vector.Vector{}, matrixErrorf(opSolve, err)
	}
	x, err := Mul(inv, rhs)
	if err != nil {
		return vector.Vector{}, matrixErrorf(opSolve, err)
	}

	return x.GetColumn(0)
}

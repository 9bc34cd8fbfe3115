// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
)

const (
	opLU          = "LU"
	opDeterminant = "Determinant"
	opSolve       = "Solve"
)

// ZeroPivot marks an exactly singular elimination step.
const ZeroPivot = 0.0

// LUFactors holds P·A = L·U.
//   - L is unit lower triangular, U is upper triangular.
//   - Perm[i] is the row of A that ended up in row i of P·A.
//   - Sign is det(P): +1 or -1.
type LUFactors struct {
	L, U *matrix.Dense
	Perm []int
	Sign float64
}

// LU performs Doolittle LU decomposition with partial pivoting on a square m.
// Implementation:
//   - Stage 1: validate m is square and copy its rows into a scratch buffer.
//   - Stage 2: for each column k pick the row with the largest |a[i][k]|,
//     swap it into place, then eliminate below the pivot.
//   - Stage 3: split the scratch buffer into L (strict lower + unit diagonal) and U.
//
// A zero pivot column is skipped, so singular input still factors; Solve and
// Inverse detect it through U's diagonal.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: Time O(n³), Space O(n²).
func LU(m matrix.Matrix) (*LUFactors, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opLU, err)
	}
	n := m.Rows()
	a, err := rowsOf(m)
	if err != nil {
		return nil, opsErrorf(opLU, err)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var i, j, k, p int
	var best, v, f float64
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a[k][k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i][k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			continue
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			f = a[i][k] / a[k][k]
			a[i][k] = f
			for j = k + 1; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
		}
	}

	L, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, opsErrorf(opLU, err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, opsErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				_ = L.Set(i, j, a[i][j]) // in range by construction
			} else {
				_ = U.Set(i, j, a[i][j])
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Determinant returns Sign · Π U[i,i].
func (f *LUFactors) Determinant() float64 {
	det := f.Sign
	for i := 0; i < f.U.Rows(); i++ {
		u, _ := f.U.At(i, i)
		det *= u
	}

	return det
}

// Solve returns x with A·x = b using forward then backward substitution.
// Errors: matrix.ErrDimensionMismatch, ErrSingular.
// Complexity: O(n²).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.U.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	// L·y = P·b
	y := make([]float64, n)
	var i, k int
	var sum, lv, uv float64
	for i = 0; i < n; i++ {
		sum = b[f.Perm[i]]
		for k = 0; k < i; k++ {
			lv, _ = f.L.At(i, k)
			sum -= lv * y[k]
		}
		y[i] = sum
	}

	// U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			uv, _ = f.U.At(i, k)
			sum -= uv * x[k]
		}
		uv, _ = f.U.At(i, i)
		if uv == ZeroPivot {
			return nil, opsErrorf(opSolve, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		x[i] = sum / uv
	}

	return x, nil
}

// Determinant returns det(m) through LU, in O(n³).
// The empty matrix has determinant 0, matching (*matrix.Dense).Determinant.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Determinant(m matrix.Matrix) (float64, error) {
	f, err := LU(m)
	if err != nil {
		return math.NaN(), opsErrorf(opDeterminant, err)
	}
	if f.U.IsEmpty() {
		return 0, nil
	}

	return f.Determinant(), nil
}

// Solve returns x with m·x = b.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch, ErrSingular.
func Solve(m matrix.Matrix, b []float64) ([]float64, error) {
	f, err := LU(m)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// rowsOf copies m into a [][]float64 scratch buffer (one slice per row).
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	a := make([][]float64, rows)
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		a[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			if a[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
)

const opRank = "Rank"

// Rank returns the number of pivots whose magnitude exceeds tol after
// Gaussian elimination with partial pivoting. Works on any r×c shape.
// With tol == 0 the result matches the exact search of (*matrix.Dense).Rank
// on inputs that eliminate without rounding.
// Errors: matrix.ErrNilMatrix, ErrInvalidTolerance.
// Complexity: O(r·c·min(r,c)).
func Rank(m matrix.Matrix, tol float64) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, opsErrorf(opRank, err)
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, opsErrorf(opRank, fmt.Errorf("tol=%v: %w", tol, ErrInvalidTolerance))
	}
	a, err := rowsOf(m)
	if err != nil {
		return 0, opsErrorf(opRank, err)
	}
	rows, cols := m.Rows(), m.Cols()

	rank := 0
	var i, j, p int
	var best, v, f float64
	for col := 0; col < cols && rank < rows; col++ {
		p, best = rank, math.Abs(a[rank][col])
		for i = rank + 1; i < rows; i++ {
			if v = math.Abs(a[i][col]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			continue
		}
		a[p], a[rank] = a[rank], a[p]
		for i = rank + 1; i < rows; i++ {
			f = a[i][col] / a[rank][col]
			for j = col; j < cols; j++ {
				a[i][j] -= f * a[rank][j]
			}
		}
		rank++
	}

	return rank, nil
}

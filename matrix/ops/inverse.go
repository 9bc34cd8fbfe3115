// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/lvmath/matrix"
)

const opInverse = "Inverse"

// Inverse returns the inverse of the square matrix m, or an error if m is not square or singular.
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U with partial pivoting.
//	Stage 2 (Execute): for each identity column eᵢ, solve A·x = eᵢ.
//	Stage 3 (Finalize): assemble the columns into the inverse.
//
// The empty matrix inverts to the empty matrix.
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m matrix.Matrix) (*matrix.Dense, error) {
	f, err := LU(m)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	n := f.U.Rows()
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var col, i int
	var x []float64
	for col = 0; col < n; col++ {
		e[col] = 1
		if x, err = f.Solve(e); err != nil {
			return nil, opsErrorf(opInverse, err)
		}
		e[col] = 0
		for i = 0; i < n; i++ {
			_ = inv.Set(i, col, x[i])
		}
	}

	return inv, nil
}

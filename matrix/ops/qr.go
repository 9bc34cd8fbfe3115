// SPDX-License-Identifier: MIT

package ops

import (
	"math"

	"github.com/katalvlaran/lvmath/matrix"
)

const opQR = "QR"

// NormZero marks a column that needs no reflection.
const NormZero = 0.0

// QR returns Q (orthogonal) and R (upper triangular) with m = Q·R, using
// Householder reflections on a square m.
// Implementation:
//   - Stage 1: validate and copy m into a scratch buffer that becomes R.
//   - Stage 2: for each column k reflect A[k:n][k] onto ±‖·‖·e_k and apply
//     the same reflection to an accumulator that starts as I.
//   - Stage 3: the accumulator holds Qᵀ; transpose it.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n³) time, O(n²) memory where n = m.Rows().
func QR(m matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	n := m.Rows()
	a, err := rowsOf(m)
	if err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	qt := make([][]float64, n)
	for i := range qt {
		qt[i] = make([]float64, n)
		qt[i][i] = 1
	}
	v := make([]float64, n)

	var (
		k, i, j    int
		alpha, tau float64
		norm, beta float64
	)
	for k = 0; k < n; k++ {
		norm = NormZero
		for i = k; i < n; i++ {
			norm += a[i][k] * a[i][k]
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue
		}
		// alpha = -sign(a[k][k])·norm avoids cancellation in v[k].
		alpha = -math.Copysign(norm, a[k][k])
		beta = NormZero
		for i = k; i < n; i++ {
			v[i] = a[i][k]
		}
		v[k] -= alpha
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		tau = 2.0 / beta

		reflect(a, v, k, tau, k)
		reflect(qt, v, k, tau, 0)
	}

	Q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	R, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = Q.Set(i, j, qt[j][i])
			if j >= i {
				_ = R.Set(i, j, a[i][j])
			}
		}
	}

	return Q, R, nil
}

// reflect applies H = I - tau·v·vᵀ (v supported on rows k..n-1) to columns
// from..n-1 of a, in place.
func reflect(a [][]float64, v []float64, k int, tau float64, from int) {
	n := len(a)
	var i, j int
	var sum float64
	for j = from; j < n; j++ {
		sum = NormZero
		for i = k; i < n; i++ {
			sum += v[i] * a[i][j]
		}
		for i = k; i < n; i++ {
			a[i][j] -= tau * v[i] * sum
		}
	}
}

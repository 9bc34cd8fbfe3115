// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmath/matrix"
)

const opEigen = "Eigen"

// DefaultEigenSweeps caps Jacobi rotations when Eigen receives maxIter <= 0.
const DefaultEigenSweeps = 1000

var (
	// ErrNotSymmetric is returned when |m[i][j] - m[j][i]| exceeds the tolerance.
	ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

	// ErrEigenFailed is returned when the off-diagonal mass does not drop
	// below the tolerance within maxIter rotations.
	ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")
)

// Eigen decomposes a real symmetric matrix with classical Jacobi rotations.
// It returns the eigenvalues in descending order and Q whose column k is the
// unit eigenvector of values[k], so that m·Q = Q·diag(values).
// Implementation:
//   - Stage 1: validate square, symmetric within tol.
//   - Stage 2: repeatedly zero the largest |a[p][q]| with a plane rotation,
//     accumulating the rotations into Q.
//   - Stage 3: sort eigenpairs by value, largest first.
//
// maxIter <= 0 means DefaultEigenSweeps.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrInvalidTolerance,
// ErrNotSymmetric, ErrEigenFailed.
// Complexity: O(n²) per rotation (pivot search dominates), O(maxIter·n²) worst case.
func Eigen(m matrix.Matrix, tol float64, maxIter int) ([]float64, *matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, opsErrorf(opEigen, err)
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, nil, opsErrorf(opEigen, ErrInvalidTolerance)
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenSweeps
	}
	n := m.Rows()
	a, err := rowsOf(m)
	if err != nil {
		return nil, nil, opsErrorf(opEigen, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol {
				return nil, nil, opsErrorf(opEigen, fmt.Errorf("a[%d][%d]: %w", i, j, ErrNotSymmetric))
			}
		}
	}

	q := make([][]float64, n)
	for i = range q {
		q[i] = make([]float64, n)
		q[i][i] = 1
	}

	var iter, p, r int
	var maxOff, theta, t, c, s, apq, arp, arq float64
	for iter = 0; ; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if v := math.Abs(a[i][j]); v > maxOff {
					maxOff, p, r = v, i, j
				}
			}
		}
		if maxOff <= tol {
			break
		}
		if iter == maxIter {
			return nil, nil, opsErrorf(opEigen, fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrEigenFailed))
		}

		apq = a[p][r]
		theta = (a[r][r] - a[p][p]) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			arp, arq = a[i][p], a[i][r]
			a[i][p] = c*arp - s*arq
			a[p][i] = a[i][p]
			a[i][r] = s*arp + c*arq
			a[r][i] = a[i][r]
		}
		a[p][p] -= t * apq
		a[r][r] += t * apq
		a[p][r], a[r][p] = 0, 0

		for i = 0; i < n; i++ {
			arp, arq = q[i][p], q[i][r]
			q[i][p] = c*arp - s*arq
			q[i][r] = s*arp + c*arq
		}
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return a[order[x]][order[x]] > a[order[y]][order[y]] })

	values := make([]float64, n)
	vectors, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, opsErrorf(opEigen, err)
	}
	for k, col := range order {
		values[k] = a[col][col]
		for i = 0; i < n; i++ {
			_ = vectors.Set(i, k, q[i][col])
		}
	}

	return values, vectors, nil
}

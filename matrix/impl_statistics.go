// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over sample matrices (one sample per row): means,
//     centering and the sample covariance used for principal-axis fitting.
//
// Determinism & Performance:
//   - Fixed i→j traversal over the row-major buffer.
//   - Zero-size inputs are no-ops that still return correctly sized means.

package matrix

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// A matrix with no rows yields c zeros.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) {
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	means := make([]float64, d.c)
	if d.r == 0 {
		return means, nil
	}

	var i, j int
	for i = 0; i < d.r; i++ {
		base := i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(d.r)
	for j = range means {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: ColumnMeans(X).
//   - Stage 2: broadcast-subtract the means into a fresh copy.
//
// Returns the centered copy and the means, so callers can un-center later.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, _ := toDense(X)
	out := d.Copy()

	var i, j int
	for i = 0; i < out.r; i++ {
		base := i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] -= means[j]
		}
	}

	return out, means, nil
}

// Covariance returns the c×c sample covariance of the columns of X,
// (Xcᵀ·Xc)/(r-1), together with the column means.
// MAIN DESCRIPTION:
//   - The result is exactly symmetric: only the upper triangle is
//     accumulated and mirrored.
//   - r < 2 has no sample covariance and yields a c×c zero matrix.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c²).
func Covariance(X Matrix) (*Dense, []float64, error) {
	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := xc.r, xc.c
	cov, err := NewDense(c, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if r < 2 {
		return cov, means, nil
	}

	inv := 1.0 / float64(r-1)
	var i, j, k int
	var sum float64
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			sum = 0
			for i = 0; i < r; i++ {
				sum += xc.data[i*c+j] * xc.data[i*c+k]
			}
			cov.data[j*c+k] = sum * inv
			cov.data[k*c+j] = sum * inv
		}
	}

	return cov, means, nil
}

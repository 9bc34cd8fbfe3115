// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/affine"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/matrix/ops"
)

// eigenTol bounds the off-diagonal residue of the 2×2 covariance.
const eigenTol = 1e-12

// Centroid returns the mean of pts.
// Errors: ErrTooFewPoints on an empty slice.
func Centroid(pts []Point2) (Point2, error) {
	if len(pts) == 0 {
		return Point2{}, fmt.Errorf("geom: Centroid: %w", ErrTooFewPoints)
	}
	means, err := matrix.ColumnMeans(samples(pts))
	if err != nil {
		return Point2{}, fmt.Errorf("geom: Centroid: %w", err)
	}

	return Point2{X: means[0], Y: means[1]}, nil
}

// PrincipalFrame returns the chain that moves the centroid of pts to the
// origin and then turns the major principal axis onto +x or -x.
// Implementation:
//   - Stage 1: sample covariance of the cloud (matrix.Covariance).
//   - Stage 2: Jacobi eigenpairs (ops.Eigen); column 0 is the major axis.
//   - Stage 3: Offset(0,-cx) → Offset(1,-cy) → Rotate(0,1,-φ), φ = atan2 of the axis.
//
// The second return value is the eigenvalue pair (major, minor): the
// variance along each principal axis.
//
// Errors: ErrTooFewPoints for fewer than 2 points.
func PrincipalFrame(pts []Point2) (*affine.Transformation, [2]float64, error) {
	var spread [2]float64
	if len(pts) < 2 {
		return nil, spread, fmt.Errorf("geom: PrincipalFrame: %w", ErrTooFewPoints)
	}
	cov, means, err := matrix.Covariance(samples(pts))
	if err != nil {
		return nil, spread, fmt.Errorf("geom: PrincipalFrame: %w", err)
	}
	values, axes, err := ops.Eigen(cov, eigenTol, 0)
	if err != nil {
		return nil, spread, fmt.Errorf("geom: PrincipalFrame: %w", err)
	}
	ax, _ := axes.At(0, 0)
	ay, _ := axes.At(1, 0)
	spread[0], spread[1] = values[0], values[1]

	t := affine.Empty().
		Offset(0, -means[0]).
		Offset(1, -means[1]).
		Rotate(0, 1, -math.Atan2(ay, ax))

	return t, spread, nil
}

// samples packs pts as an n×2 matrix, one point per row.
func samples(pts []Point2) *matrix.Dense {
	m, _ := matrix.NewDense(len(pts), dim2)
	for i, p := range pts {
		_ = m.Set(i, 0, p.X)
		_ = m.Set(i, 1, p.Y)
	}

	return m
}

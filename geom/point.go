// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/affine"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

const (
	dim2 = 2
	dim3 = 3
)

// Point2 is a point in the plane.
type Point2 struct{ X, Y float64 }

// Point3 is a point in space.
type Point3 struct{ X, Y, Z float64 }

// Pt2 is shorthand for Point2{x, y}.
func Pt2(x, y float64) Point2 { return Point2{X: x, Y: y} }

// Pt3 is shorthand for Point3{x, y, z}.
func Pt3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

func (p Point2) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }
func (p Point3) String() string { return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z) }

// Vector returns p as a vector of the given kind.
func (p Point2) Vector(kind vector.Kind) vector.Vector { return vector.FromSlice(kind, p.X, p.Y) }

// Vector returns p as a vector of the given kind.
func (p Point3) Vector(kind vector.Kind) vector.Vector {
	return vector.FromSlice(kind, p.X, p.Y, p.Z)
}

// AffineTransform moves p by t in place.
// Errors: ErrNilTransformation, and any affine.Transformation.Apply error.
func (p *Point2) AffineTransform(t *affine.Transformation) error {
	q, err := p.AffineTransformCopy(t)
	if err != nil {
		return err
	}
	*p = q

	return nil
}

// AffineTransformCopy returns p moved by t.
func (p Point2) AffineTransformCopy(t *affine.Transformation) (Point2, error) {
	if t == nil {
		return p, ErrNilTransformation
	}
	v, err := t.Apply(p.Vector(vector.ColumnVector))
	if err != nil {
		return p, fmt.Errorf("geom: Point2.AffineTransform: %w", err)
	}

	return Point2{X: v.At(0), Y: v.At(1)}, nil
}

// AffineTransform moves p by t in place.
func (p *Point3) AffineTransform(t *affine.Transformation) error {
	q, err := p.AffineTransformCopy(t)
	if err != nil {
		return err
	}
	*p = q

	return nil
}

// AffineTransformCopy returns p moved by t.
func (p Point3) AffineTransformCopy(t *affine.Transformation) (Point3, error) {
	if t == nil {
		return p, ErrNilTransformation
	}
	v, err := t.Apply(p.Vector(vector.ColumnVector))
	if err != nil {
		return p, fmt.Errorf("geom: Point3.AffineTransform: %w", err)
	}

	return Point3{X: v.At(0), Y: v.At(1), Z: v.At(2)}, nil
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point2) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// Distance3 returns the Euclidean distance between a and b.
func Distance3(a, b Point3) float64 {
	d, _ := vector.Sub(b.Vector(vector.ColumnVector), a.Vector(vector.ColumnVector))
	return d.Module()
}

// Lerp returns a + t·(b − a).
func Lerp(a, b Point2, t float64) Point2 {
	return Point2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// Lerp3 returns a + t·(b − a).
func Lerp3(a, b Point3, t float64) Point3 {
	return Point3{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y), Z: a.Z + t*(b.Z-a.Z)}
}

// ---------- batch transforms ----------

// TransformPoints2 folds ms (3×3 homogeneous, applied first to last) into one
// matrix and maps every point through it. Inputs are not modified.
// Errors: matrix.ErrNoOperands, matrix.ErrDimensionMismatch.
// Complexity: O(len(ms) + len(pts)).
func TransformPoints2(ms []*matrix.Dense, pts []Point2) ([]Point2, error) {
	m, err := foldChain(ms, dim2)
	if err != nil {
		return nil, fmt.Errorf("geom: TransformPoints2: %w", err)
	}
	out := make([]Point2, len(pts))
	var y []float64
	for i, p := range pts {
		if y, err = matrix.MulVec(m, []float64{p.X, p.Y, 1}); err != nil {
			return nil, fmt.Errorf("geom: TransformPoints2: %w", err)
		}
		out[i] = Point2{X: y[0], Y: y[1]}
	}

	return out, nil
}

// TransformPoints3 is TransformPoints2 for 4×4 matrices and 3-D points.
func TransformPoints3(ms []*matrix.Dense, pts []Point3) ([]Point3, error) {
	m, err := foldChain(ms, dim3)
	if err != nil {
		return nil, fmt.Errorf("geom: TransformPoints3: %w", err)
	}
	out := make([]Point3, len(pts))
	var y []float64
	for i, p := range pts {
		if y, err = matrix.MulVec(m, []float64{p.X, p.Y, p.Z, 1}); err != nil {
			return nil, fmt.Errorf("geom: TransformPoints3: %w", err)
		}
		out[i] = Point3{X: y[0], Y: y[1], Z: y[2]}
	}

	return out, nil
}

// foldChain returns MultiplyLeft(ms) after checking it is (dim+1)×(dim+1).
func foldChain(ms []*matrix.Dense, dim int) (*matrix.Dense, error) {
	m, err := matrix.MultiplyLeft(ms)
	if err != nil {
		return nil, err
	}
	if m.Rows() != dim+1 || m.Cols() != dim+1 {
		return nil, fmt.Errorf("want %dx%d, got %dx%d: %w", dim+1, dim+1, m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}

	return m, nil
}

// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/lvmath/affine"
	"github.com/katalvlaran/lvmath/geom"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/matrix/ops"
	"github.com/katalvlaran/lvmath/vector"
)

const planarDim = 2

// planarMatrix materializes t as a 3×3 column-convention matrix with an
// affine bottom row.
func planarMatrix(t *affine.Transformation) (*matrix.Dense, error) {
	if t == nil {
		return nil, affine.ErrNilArgument
	}
	m, err := t.ToMatrix(vector.ColumnVector, planarDim)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPlanar, err)
	}
	row, _ := m.GetRow(planarDim)
	if !vector.Equal(row, vector.FromSlice(vector.RowVector, 0, 0, 1)) {
		return nil, fmt.Errorf("bottom row %v: %w", row, ErrNotPlanar)
	}

	return m, nil
}

// ToAff3 returns the f64.Aff3 form of t.
// Errors: affine.ErrNilArgument, ErrNotPlanar (wrapping the ToMatrix cause).
func ToAff3(t *affine.Transformation) (f64.Aff3, error) {
	m, err := planarMatrix(t)
	if err != nil {
		return f64.Aff3{}, fmt.Errorf("raster: ToAff3: %w", err)
	}

	return aff3Of(m), nil
}

func aff3Of(m *matrix.Dense) f64.Aff3 {
	var a f64.Aff3
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			a[i*3+j], _ = m.At(i, j)
		}
	}

	return a
}

// FromAff3 wraps a as a MatrixOp step.
func FromAff3(a f64.Aff3) (affine.MatrixOp, error) {
	m, err := matrix.NewFromRows([][]float64{
		{a[0], a[1], a[2]},
		{a[3], a[4], a[5]},
		{0, 0, 1},
	})
	if err != nil {
		return affine.MatrixOp{}, fmt.Errorf("raster: FromAff3: %w", err)
	}

	return affine.NewMatrix(m)
}

// Warp draws src into dst, moving every source point p to t(p).
// Implementation:
//   - Stage 1: materialize t in the plane and reject singular maps.
//   - Stage 2: hand the Aff3 to the configured draw.Transformer.
//
// Only the destination pixels covered by the transformed source rectangle
// are touched.
//
// Errors: ErrNilImage, ErrNotPlanar, ops.ErrSingular.
func Warp(dst draw.Image, src image.Image, t *affine.Transformation, opts ...Option) error {
	if dst == nil || src == nil {
		return fmt.Errorf("raster: Warp: %w", ErrNilImage)
	}
	o := gatherOptions(opts...)
	m, err := planarMatrix(t)
	if err != nil {
		return fmt.Errorf("raster: Warp: %w", err)
	}
	if _, err = ops.Inverse(m); err != nil {
		return fmt.Errorf("raster: Warp: %w", err)
	}
	sr := src.Bounds()
	if o.srcSet {
		sr = o.src.Intersect(sr)
	}
	o.interp.Transform(dst, aff3Of(m), src, sr, o.op, nil)

	return nil
}

// Unproject maps a destination point back to source space: t⁻¹(p).
// Errors: ErrNotPlanar, ops.ErrSingular.
func Unproject(t *affine.Transformation, p geom.Point2) (geom.Point2, error) {
	m, err := planarMatrix(t)
	if err != nil {
		return p, fmt.Errorf("raster: Unproject: %w", err)
	}
	inv, err := ops.Inverse(m)
	if err != nil {
		return p, fmt.Errorf("raster: Unproject: %w", err)
	}
	out, err := geom.TransformPoints2([]*matrix.Dense{inv}, []geom.Point2{p})
	if err != nil {
		return p, fmt.Errorf("raster: Unproject: %w", err)
	}

	return out[0], nil
}

// Bounds returns the smallest integer rectangle holding t applied to the
// four corners of r.
// Errors: ErrNotPlanar.
func Bounds(t *affine.Transformation, r image.Rectangle) (image.Rectangle, error) {
	m, err := planarMatrix(t)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("raster: Bounds: %w", err)
	}
	corners := []geom.Point2{
		geom.Pt2(float64(r.Min.X), float64(r.Min.Y)),
		geom.Pt2(float64(r.Max.X), float64(r.Min.Y)),
		geom.Pt2(float64(r.Min.X), float64(r.Max.Y)),
		geom.Pt2(float64(r.Max.X), float64(r.Max.Y)),
	}
	pts, err := geom.TransformPoints2([]*matrix.Dense{m}, corners)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("raster: Bounds: %w", err)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY))), nil
}

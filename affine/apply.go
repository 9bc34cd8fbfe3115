// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

const (
	opApply    = "Apply"
	opApplyAll = "ApplyAll"
)

// Apply transforms point p. The convention is p.Kind() and the dimension is
// p.Len(); the result has the same kind and length as p.
// A homogeneous weight other than 0 or 1 (possible only through a MatrixOp)
// is divided out.
// Errors: ErrConvention (NonVector p), and ToMatrix errors.
func (t *Transformation) Apply(p vector.Vector) (vector.Vector, error) {
	if p.IsNonVector() {
		return vector.Vector{}, affineErrorf(opApply, ErrConvention)
	}
	m, err := t.ToMatrix(p.Kind(), p.Len())
	if err != nil {
		return vector.Vector{}, affineErrorf(opApply, err)
	}
	out, err := applyMatrix(m, p)
	if err != nil {
		return vector.Vector{}, affineErrorf(opApply, err)
	}

	return out, nil
}

// ApplyAll materializes t once and transforms every point. All points must
// share the kind and length of points[0].
// Errors: as Apply, plus vector.ErrDimensionMismatch with the offending index.
func (t *Transformation) ApplyAll(points []vector.Vector) ([]vector.Vector, error) {
	if len(points) == 0 {
		return nil, nil
	}
	kind, dim := points[0].Kind(), points[0].Len()
	if kind == vector.NonVector {
		return nil, affineErrorf(opApplyAll, ErrConvention)
	}
	m, err := t.ToMatrix(kind, dim)
	if err != nil {
		return nil, affineErrorf(opApplyAll, err)
	}

	out := make([]vector.Vector, len(points))
	for i, p := range points {
		if p.Kind() != kind || p.Len() != dim {
			return nil, affineErrorf(opApplyAll, fmt.Errorf("point %d: %w", i, vector.ErrDimensionMismatch))
		}
		if out[i], err = applyMatrix(m, p); err != nil {
			return nil, affineErrorf(opApplyAll, fmt.Errorf("point %d: %w", i, err))
		}
	}

	return out, nil
}

// applyMatrix lifts p to homogeneous coordinates, multiplies on the side
// given by its kind and projects back.
func applyMatrix(m *matrix.Dense, p vector.Vector) (vector.Vector, error) {
	n := p.Len()
	h := vector.New(p.Kind(), n+1)
	for i := 0; i < n; i++ {
		_ = h.Set(i, p.At(i))
	}
	_ = h.Set(n, 1)

	hm, err := matrix.FromVector(h)
	if err != nil {
		return vector.Vector{}, err
	}
	var r *matrix.Dense
	var img vector.Vector
	if p.Kind() == vector.RowVector {
		if r, err = matrix.Mul(hm, m); err != nil {
			return vector.Vector{}, err
		}
		img, err = r.GetRow(0)
	} else {
		if r, err = matrix.Mul(m, hm); err != nil {
			return vector.Vector{}, err
		}
		img, err = r.GetColumn(0)
	}
	if err != nil {
		return vector.Vector{}, err
	}

	w := img.At(n)
	out := vector.New(p.Kind(), n)
	for i := 0; i < n; i++ {
		v := img.At(i)
		if w != 0 && w != 1 {
			v /= w
		}
		_ = out.Set(i, v)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package affine

import (
	"math"

	"github.com/katalvlaran/lvmath/vector"
)

const opCompress = "Compress"

// CompressTolerance is the distance from the neutral value (0 for offsets,
// shears and rotations, 1 for scales) under which a folded step is dropped.
const CompressTolerance = 1e-12

// Compress rewrites the chain into an equivalent one with at most one step.
// MAIN DESCRIPTION:
//   - 0 or 1 step: unchanged.
//   - Homogeneous chain (same tag, same axes, no MatrixOp): folded analytically.
//     Offsets add, scales multiply, shear tangents add, rotation angles add;
//     inverted steps contribute the opposite. A reflection survives only for an
//     odd count. A fold that lands on the neutral value leaves the chain empty.
//   - Anything else collapses to one MatrixOp built by ToMatrix(kind, dim).
//
// kind and dim are only consulted on the MatrixOp path; the result is then
// specific to that convention and dimension.
//
// Errors:
//   - Only from ToMatrix on the MatrixOp path.
//
// Complexity:
//   - O(len) on the analytic path, as ToMatrix otherwise.
func (t *Transformation) Compress(kind vector.Kind, dim int) error {
	if len(t.ops) < 2 {
		return nil
	}
	if folded, ok := foldHomogeneous(t.ops); ok {
		t.ops = folded
		return nil
	}
	m, err := t.ToMatrix(kind, dim)
	if err != nil {
		return affineErrorf(opCompress, err)
	}
	t.ops = []Atomic{MatrixOp{m: m}}

	return nil
}

// CompressCopy returns the compressed chain and leaves t unchanged.
func (t *Transformation) CompressCopy(kind vector.Kind, dim int) (*Transformation, error) {
	c := t.Clone()
	if err := c.Compress(kind, dim); err != nil {
		return nil, err
	}

	return c, nil
}

// foldHomogeneous folds ops analytically when every step shares the tag and
// axes of ops[0]. ok is false when the chain must go through a matrix.
func foldHomogeneous(ops []Atomic) (folded []Atomic, ok bool) {
	first := ops[0]
	if first.Tag() == TagMatrix {
		return nil, false
	}
	for _, op := range ops[1:] {
		if !sameAxes(first, op) {
			return nil, false
		}
	}

	switch head := first.(type) {
	case Offset:
		var sum float64
		for _, op := range ops {
			o := op.(Offset)
			sum += signed(o.Value, o.Inverse)
		}
		return keepUnless(nearZero(sum), Offset{Axis: head.Axis, Value: sum}), true

	case OffsetAll:
		var sum float64
		for _, op := range ops {
			o := op.(OffsetAll)
			sum += signed(o.Value, o.Inverse)
		}
		return keepUnless(nearZero(sum), OffsetAll{Value: sum}), true

	case Scale:
		prod := 1.0
		for _, op := range ops {
			s := op.(Scale)
			prod = scaleStep(prod, s.Factor, s.Inverse)
		}
		return keepUnless(nearOne(prod), Scale{Axis: head.Axis, Factor: prod}), true

	case ScaleAll:
		prod := 1.0
		for _, op := range ops {
			s := op.(ScaleAll)
			prod = scaleStep(prod, s.Factor, s.Inverse)
		}
		return keepUnless(nearOne(prod), ScaleAll{Factor: prod}), true

	case Reflect:
		return keepUnless(len(ops)%2 == 0, Reflect{Axis: head.Axis}), true

	case Shear:
		var sum float64
		for _, op := range ops {
			s := op.(Shear)
			sum += math.Tan(signed(s.Angle, s.Inverse))
		}
		return keepUnless(nearZero(sum), Shear{From: head.From, To: head.To, Angle: math.Atan(sum)}), true

	case Rotate:
		var sum float64
		for _, op := range ops {
			r := op.(Rotate)
			sum += signed(r.Angle, r.Inverse)
		}
		return keepUnless(nearZero(sum), Rotate{From: head.From, To: head.To, Angle: sum}), true
	}

	return nil, false
}

// sameAxes reports whether b has the concrete type and axis parameters of a.
func sameAxes(a, b Atomic) bool {
	switch x := a.(type) {
	case Offset:
		y, ok := b.(Offset)
		return ok && x.Axis == y.Axis
	case OffsetAll:
		_, ok := b.(OffsetAll)
		return ok
	case Scale:
		y, ok := b.(Scale)
		return ok && x.Axis == y.Axis
	case ScaleAll:
		_, ok := b.(ScaleAll)
		return ok
	case Reflect:
		y, ok := b.(Reflect)
		return ok && x.Axis == y.Axis
	case Shear:
		y, ok := b.(Shear)
		return ok && x.From == y.From && x.To == y.To
	case Rotate:
		y, ok := b.(Rotate)
		return ok && x.From == y.From && x.To == y.To
	}

	return false
}

func scaleStep(acc, factor float64, inverse bool) float64 {
	if inverse {
		return acc / factor
	}

	return acc * factor
}

func keepUnless(drop bool, op Atomic) []Atomic {
	if drop {
		return nil
	}

	return []Atomic{op}
}

func nearZero(v float64) bool { return math.Abs(v) <= CompressTolerance }
func nearOne(v float64) bool { return math.Abs(v-1) <= CompressTolerance }

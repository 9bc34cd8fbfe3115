// SPDX-License-Identifier: MIT

// Package affine - Transformation: an ordered chain of atomic steps.
//
// Purpose:
//   - Build chains fluently: mutating appends return the receiver, *Copy
//     variants leave the receiver untouched and return a new chain.
//   - Materialize a chain once (ToMatrix) and reuse the matrix for batches.
//
// A Transformation is not safe for concurrent mutation; share it read-only
// or hand each goroutine its own Clone.

package affine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

const (
	opMatrixTransform = "MatrixTransform"
	opAffineTransform = "AffineTransform"
	opToMatrix        = "ToMatrix"
)

// Transformation is an ordered list of atomic steps, applied first to last.
// The zero value is the empty (identity) transformation.
type Transformation struct {
	ops []Atomic
}

// Empty returns a transformation with no steps.
func Empty() *Transformation { return &Transformation{} }

// New returns a transformation holding ops in order.
func New(ops ...Atomic) *Transformation {
	return &Transformation{ops: append([]Atomic(nil), ops...)}
}

func (t *Transformation) Len() int         { return len(t.ops) }
func (t *Transformation) IsEmpty() bool    { return len(t.ops) == 0 }
func (t *Transformation) IsSingle() bool   { return len(t.ops) == 1 }
func (t *Transformation) IsMultiple() bool { return len(t.ops) > 1 }

// Atomics returns a copy of the step list.
func (t *Transformation) Atomics() []Atomic { return append([]Atomic(nil), t.ops...) }

// At returns step i, or nil when i is out of range.
func (t *Transformation) At(i int) Atomic {
	if i < 0 || i >= len(t.ops) {
		return nil
	}

	return t.ops[i]
}

// Clone returns an independent copy. Atomics are values; MatrixOp storage is
// never mutated, so sharing it is safe.
func (t *Transformation) Clone() *Transformation { return New(t.ops...) }

// Equal reports step-by-step equality.
func (t *Transformation) Equal(o *Transformation) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.ops) != len(o.ops) {
		return false
	}
	for i := range t.ops {
		if !t.ops[i].Equal(o.ops[i]) {
			return false
		}
	}

	return true
}

// String renders the chain as "[step; step; …]".
func (t *Transformation) String() string {
	parts := make([]string, len(t.ops))
	for i, op := range t.ops {
		parts[i] = op.String()
	}

	return "[" + strings.Join(parts, "; ") + "]"
}

// ---------- mutating appends ----------

// Append adds ops to the end of the chain.
func (t *Transformation) Append(ops ...Atomic) *Transformation {
	t.ops = append(t.ops, ops...)
	return t
}

func (t *Transformation) Offset(axis int, d float64) *Transformation {
	return t.Append(NewOffset(axis, d))
}

func (t *Transformation) OffsetAll(d float64) *Transformation {
	return t.Append(NewOffsetAll(d))
}

func (t *Transformation) Scale(axis int, s float64) *Transformation {
	return t.Append(NewScale(axis, s))
}

func (t *Transformation) ScaleAll(s float64) *Transformation {
	return t.Append(NewScaleAll(s))
}

func (t *Transformation) Reflect(axis int) *Transformation {
	return t.Append(NewReflect(axis))
}

func (t *Transformation) Shear(from, to int, angle float64) *Transformation {
	return t.Append(NewShear(from, to, angle))
}

func (t *Transformation) Rotate(from, to int, angle float64) *Transformation {
	return t.Append(NewRotate(from, to, angle))
}

// MatrixTransform appends a MatrixOp holding a copy of m.
// Errors: ErrNilArgument.
func (t *Transformation) MatrixTransform(m *matrix.Dense) (*Transformation, error) {
	op, err := NewMatrix(m)
	if err != nil {
		return t, affineErrorf(opMatrixTransform, err)
	}

	return t.Append(op), nil
}

// AffineTransform appends every step of other; composing t then other.
// Errors: ErrNilArgument.
func (t *Transformation) AffineTransform(other *Transformation) (*Transformation, error) {
	if other == nil {
		return t, affineErrorf(opAffineTransform, ErrNilArgument)
	}

	return t.Append(other.ops...), nil
}

// InverseTransform reverses the chain and inverts every step in place,
// since (f∘g)⁻¹ = g⁻¹∘f⁻¹.
func (t *Transformation) InverseTransform() *Transformation {
	n := len(t.ops)
	for i := 0; i < n/2; i++ {
		t.ops[i], t.ops[n-1-i] = t.ops[n-1-i], t.ops[i]
	}
	for i, op := range t.ops {
		t.ops[i] = op.Invert()
	}

	return t
}

// ---------- pure variants ----------

func (t *Transformation) OffsetCopy(axis int, d float64) *Transformation {
	return t.Clone().Offset(axis, d)
}

func (t *Transformation) OffsetAllCopy(d float64) *Transformation {
	return t.Clone().OffsetAll(d)
}

func (t *Transformation) ScaleCopy(axis int, s float64) *Transformation {
	return t.Clone().Scale(axis, s)
}

func (t *Transformation) ScaleAllCopy(s float64) *Transformation {
	return t.Clone().ScaleAll(s)
}

func (t *Transformation) ReflectCopy(axis int) *Transformation {
	return t.Clone().Reflect(axis)
}

func (t *Transformation) ShearCopy(from, to int, angle float64) *Transformation {
	return t.Clone().Shear(from, to, angle)
}

func (t *Transformation) RotateCopy(from, to int, angle float64) *Transformation {
	return t.Clone().Rotate(from, to, angle)
}

// MatrixTransformCopy is MatrixTransform on a clone.
func (t *Transformation) MatrixTransformCopy(m *matrix.Dense) (*Transformation, error) {
	c, err := t.Clone().MatrixTransform(m)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// AffineTransformCopy is AffineTransform on a clone.
func (t *Transformation) AffineTransformCopy(other *Transformation) (*Transformation, error) {
	c, err := t.Clone().AffineTransform(other)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// InverseTransformCopy returns the inverse chain; t is unchanged.
func (t *Transformation) InverseTransformCopy() *Transformation {
	return t.Clone().InverseTransform()
}

// Split returns one single-step transformation per step, in order.
func (t *Transformation) Split() []*Transformation {
	out := make([]*Transformation, len(t.ops))
	for i, op := range t.ops {
		out[i] = New(op)
	}

	return out
}

// ---------- materialization ----------

// ToMatrix materializes the chain as one (dim+1)×(dim+1) homogeneous matrix.
// MAIN DESCRIPTION:
//   - empty chain  → I of order dim+1.
//   - single step  → that step's matrix.
//   - longer chain → every step materialized, then folded with
//     matrix.MultiplyLeft (column convention) or matrix.MultiplyRight
//     (row convention), so the first step is applied first.
//
// Behavior highlights:
//   - Forward MatrixOp steps feed their stored matrix to the fold without a
//     copy; the fold never writes to its inputs.
//
// Errors:
//   - ErrConvention, ErrInvalidDimension, and any step error (ErrAxisOutOfRange,
//     ErrDegeneratePlane, matrix.ErrDimensionMismatch, matrix.ErrSingular),
//     prefixed with the index of the failing step.
//
// Complexity:
//   - Time O(len·dim³), Space O(len·dim²).
func (t *Transformation) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	switch len(t.ops) {
	case 0:
		m, err := homogeneousIdentity(kind, dim)
		if err != nil {
			return nil, affineErrorf(opToMatrix, err)
		}

		return m, nil
	case 1:
		m, err := t.ops[0].ToMatrix(kind, dim)
		if err != nil {
			return nil, affineErrorf(opToMatrix, err)
		}

		return m, nil
	}

	mats := make([]*matrix.Dense, len(t.ops))
	var err error
	for i, op := range t.ops {
		if mo, ok := op.(MatrixOp); ok && !mo.Inverse {
			mats[i], err = mo.raw(kind, dim)
		} else {
			mats[i], err = op.ToMatrix(kind, dim)
		}
		if err != nil {
			return nil, affineErrorf(opToMatrix, fmt.Errorf("step %d: %w", i, err))
		}
	}

	var m *matrix.Dense
	if kind == vector.RowVector {
		m, err = matrix.MultiplyRight(mats)
	} else {
		m, err = matrix.MultiplyLeft(mats)
	}
	if err != nil {
		return nil, affineErrorf(opToMatrix, err)
	}

	return m, nil
}

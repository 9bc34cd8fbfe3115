// SPDX-License-Identifier: MIT

// Package affine - atomic steps (sealed sum type).
//
// Purpose:
//   - One concrete type per step kind, each with only the fields it needs.
//   - The unexported sealed() method closes the set: no foreign variants.
//   - Variants are small values; Invert and Equal never allocate matrices.

package affine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// Tag identifies the variant of an Atomic.
type Tag int

const (
	TagOffset Tag = iota
	TagOffsetAll
	TagScale
	TagScaleAll
	TagReflect
	TagShear
	TagRotate
	TagMatrix
)

var tagNames = [...]string{
	TagOffset:    "Offset",
	TagOffsetAll: "OffsetAll",
	TagScale:     "Scale",
	TagScaleAll:  "ScaleAll",
	TagReflect:   "Reflect",
	TagShear:     "Shear",
	TagRotate:    "Rotate",
	TagMatrix:    "Matrix",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}

	return tagNames[t]
}

// Atomic is one indivisible affine step.
//
// ToMatrix materializes the step as a (dim+1)×(dim+1) homogeneous matrix for
// the given convention. Axis indices are checked here, not at construction.
type Atomic interface {
	Tag() Tag
	IsInverse() bool
	// Invert returns the same step with the inverse flag toggled.
	Invert() Atomic
	Equal(other Atomic) bool
	ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error)
	String() string

	sealed()
}

// Compile-time checks.
var (
	_ Atomic = Offset{}
	_ Atomic = OffsetAll{}
	_ Atomic = Scale{}
	_ Atomic = ScaleAll{}
	_ Atomic = Reflect{}
	_ Atomic = Shear{}
	_ Atomic = Rotate{}
	_ Atomic = MatrixOp{}
)

// inverseSuffix marks inverted steps in String output.
const inverseSuffix = "⁻¹"

func suffix(inverse bool) string {
	if inverse {
		return inverseSuffix
	}

	return ""
}

// signed returns -v for inverted steps.
func signed(v float64, inverse bool) float64 {
	if inverse {
		return -v
	}

	return v
}

// ---------- Offset ----------

// Offset translates along one axis by Value.
type Offset struct {
	Axis    int
	Value   float64
	Inverse bool
}

// NewOffset returns a forward translation of d along axis.
func NewOffset(axis int, d float64) Offset { return Offset{Axis: axis, Value: d} }

func (Offset) Tag() Tag { return TagOffset }
func (o Offset) IsInverse() bool { return o.Inverse }
func (o Offset) Invert() Atomic {
	o.Inverse = !o.Inverse
	return o
}

func (Offset) sealed() {}
func (o Offset) String() string { return fmt.Sprintf("Offset(%d, %g)%s", o.Axis, o.Value, suffix(o.Inverse)) }
func (o Offset) Equal(x Atomic) bool {
	p, ok := x.(Offset)
	return ok && p == o
}

// ToMatrix places ±Value in the translation slot of Axis.
func (o Offset) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	m, err := homogeneousIdentity(kind, dim)
	if err != nil {
		return nil, affineErrorf(o.String(), err)
	}
	if err = checkAxis(o.Axis, dim); err != nil {
		return nil, affineErrorf(o.String(), err)
	}
	put(m, kind, o.Axis, dim, signed(o.Value, o.Inverse))

	return m, nil
}

// ---------- OffsetAll ----------

// OffsetAll translates every axis by the same Value.
type OffsetAll struct {
	Value   float64
	Inverse bool
}

// NewOffsetAll returns a forward translation of d along every axis.
func NewOffsetAll(d float64) OffsetAll { return OffsetAll{Value: d} }

func (OffsetAll) Tag() Tag { return TagOffsetAll }
func (o OffsetAll) IsInverse() bool { return o.Inverse }
func (o OffsetAll) Invert() Atomic {
	o.Inverse = !o.Inverse
	return o
}

func (OffsetAll) sealed() {}
func (o OffsetAll) String() string { return fmt.Sprintf("OffsetAll(%g)%s", o.Value, suffix(o.Inverse)) }
func (o OffsetAll) Equal(x Atomic) bool {
	p, ok := x.(OffsetAll)
	return ok && p == o
}

func (o OffsetAll) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	m, err := homogeneousIdentity(kind, dim)
	if err != nil {
		return nil, affineErrorf(o.String(), err)
	}
	d := signed(o.Value, o.Inverse)
	for axis := 0; axis < dim; axis++ {
		put(m, kind, axis, dim, d)
	}

	return m, nil
}

// ---------- Scale ----------

// Scale multiplies one axis by Factor. The inverse uses 1/Factor.
type Scale struct {
	Axis    int
	Factor  float64
	Inverse bool
}

// NewScale returns a forward scale of s along axis.
func NewScale(axis int, s float64) Scale { return Scale{Axis: axis, Factor: s} }

func (Scale) Tag() Tag { return TagScale }
func (s Scale) IsInverse() bool { return s.Inverse }
func (s Scale) Invert() Atomic {
	s.Inverse = !s.Inverse
	return s
}

func (Scale) sealed() {}
func (s Scale) String() string { return fmt.Sprintf("Scale(%d, %g)%s", s.Axis, s.Factor, suffix(s.Inverse)) }
func (s Scale) Equal(x Atomic) bool {
	p, ok := x.(Scale)
	return ok && p == s
}

func (s Scale) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	m, err := homogeneousIdentity(kind, dim)
	if err != nil {
		return nil, affineErrorf(s.String(), err)
	}
	if err = checkAxis(s.Axis, dim); err != nil {
		return nil, affineErrorf(s.String(), err)
	}
	put(m, kind, s.Axis, s.Axis, reciprocal(s.Factor, s.Inverse))

	return m, nil
}

// reciprocal returns 1/v for inverted steps. A zero factor inverts to ±Inf.
func reciprocal(v float64, inverse bool) float64 {
	if inverse {
		return 1 / v
	}

	return v
}

// ---------- ScaleAll ----------

// ScaleAll multiplies every axis by the same Factor.
type ScaleAll struct {
	Factor  float64
	Inverse bool
}

// NewScaleAll returns a forward uniform scale of s.
func NewScaleAll(s float64) ScaleAll { return ScaleAll{Factor: s} }

func (ScaleAll) Tag() Tag { return TagScaleAll }
func (s ScaleAll) IsInverse() bool { return s.Inverse }
func (s ScaleAll) Invert() Atomic {
	s.Inverse = !s.Inverse
	return s
}

func (ScaleAll) sealed() {}
func (s ScaleAll) String() string { return fmt.Sprintf("ScaleAll(%g)%s", s.Factor, suffix(s.Inverse)) }
func (s ScaleAll) Equal(x Atomic) bool {
	p, ok := x.(ScaleAll)
	return ok && p == s
}

func (s ScaleAll) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	m, err := homogeneousIdentity(kind, dim)
	if err != nil {
		return nil, affineErrorf(s.String(), err)
	}
	f := reciprocal(s.Factor, s.Inverse)
	for axis := 0; axis < dim; axis++ {
		put(m, kind, axis, axis, f)
	}

	return m, nil
}

// ---------- Reflect ----------

// Reflect mirrors one axis. It is its own inverse: the flag is kept for
// structure only and does not change the matrix.
type Reflect struct {
	Axis    int
	Inverse bool
}

// NewReflect returns a reflection of axis.
func NewReflect(axis int) Reflect { return Reflect{Axis: axis} }

func (Reflect) Tag() Tag { return TagReflect }
func (r Reflect) IsInverse() bool { return r.Inverse }
func (r Reflect) Invert() Atomic {
	r.Inverse = !r.Inverse
	return r
}

func (Reflect) sealed() {}
func (r Reflect) String() string { return fmt.Sprintf("Reflect(%d)%s", r.Axis, suffix(r.Inverse)) }
func (r Reflect) Equal(x Atomic) bool {
	p, ok := x.(Reflect)
	return ok && p == r
}

func (r Reflect) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	m, err := homogeneousIdentity(kind, dim)
	if err != nil {
		return nil, affineErrorf(r.String(), err)
	}
	if err = checkAxis(r.Axis, dim); err != nil {
		return nil, affineErrorf(r.String(), err)
	}
	put(m, kind, r.Axis, r.Axis, -1)

	return m, nil
}

// ---------- Shear ----------

// Shear adds tan(Angle)·x[To] to x[From]. Two shears on the same axes
// compose by adding tangents, not angles.
type Shear struct {
	From, To int
	Angle    float64
	Inverse  bool
}

// NewShear returns a forward shear of x[from] along x[to] by angle radians.
func NewShear(from, to int, angle float64) Shear { return Shear{From: from, To: to, Angle: angle} }

func (Shear) Tag() Tag { return TagShear }
func (s Shear) IsInverse() bool { return s.Inverse }
func (s Shear) Invert() Atomic {
	s.Inverse = !s.Inverse
	return s
}

func (Shear) sealed() {}
func (s Shear) String() string {
	return fmt.Sprintf("Shear(%d, %d, %g)%s", s.From, s.To, s.Angle, suffix(s.Inverse))
}
func (s Shear) Equal(x Atomic) bool {
	p, ok := x.(Shear)
	return ok && p == s
}

func (s Shear) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	m, err := homogeneousIdentity(kind, dim)
	if err != nil {
		return nil, affineErrorf(s.String(), err)
	}
	if err = checkPlane(s.From, s.To, dim); err != nil {
		return nil, affineErrorf(s.String(), err)
	}
	put(m, kind, s.From, s.To, math.Tan(signed(s.Angle, s.Inverse)))

	return m, nil
}

// ---------- Rotate ----------

// Rotate turns the (From, To) plane by Angle radians. Angle 0 is aligned
// with axis From; a positive angle moves From toward To.
type Rotate struct {
	From, To int
	Angle    float64
	Inverse  bool
}

// NewRotate returns a forward rotation in the (from, to) plane.
func NewRotate(from, to int, angle float64) Rotate { return Rotate{From: from, To: to, Angle: angle} }

func (Rotate) Tag() Tag { return TagRotate }
func (r Rotate) IsInverse() bool { return r.Inverse }
func (r Rotate) Invert() Atomic {
	r.Inverse = !r.Inverse
	return r
}

func (Rotate) sealed() {}
func (r Rotate) String() string {
	return fmt.Sprintf("Rotate(%d, %d, %g)%s", r.From, r.To, r.Angle, suffix(r.Inverse))
}
func (r Rotate) Equal(x Atomic) bool {
	p, ok := x.(Rotate)
	return ok && p == r
}

// ToMatrix writes the Givens block
//
//	[ c  -s ]   rows/cols (From, To), column convention
//	[ s   c ]
func (r Rotate) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	m, err := homogeneousIdentity(kind, dim)
	if err != nil {
		return nil, affineErrorf(r.String(), err)
	}
	if err = checkPlane(r.From, r.To, dim); err != nil {
		return nil, affineErrorf(r.String(), err)
	}
	s, c := math.Sincos(signed(r.Angle, r.Inverse))
	put(m, kind, r.From, r.From, c)
	put(m, kind, r.To, r.From, s)
	put(m, kind, r.From, r.To, -s)
	put(m, kind, r.To, r.To, c)

	return m, nil
}

// ---------- MatrixOp ----------

// MatrixOp is a raw homogeneous matrix step. It owns a private copy of its
// matrix, so later changes to the caller's matrix never leak in.
//
// The matrix is used as given for both conventions: the caller supplies it
// in the convention it will be materialized with.
type MatrixOp struct {
	m       *matrix.Dense
	Inverse bool
}

// NewMatrix returns a MatrixOp holding a copy of m.
// Errors: ErrNilArgument.
func NewMatrix(m *matrix.Dense) (MatrixOp, error) {
	if m == nil {
		return MatrixOp{}, affineErrorf("NewMatrix", ErrNilArgument)
	}

	return MatrixOp{m: m.Copy()}, nil
}

// Matrix returns a copy of the stored (forward) matrix, or nil for the zero MatrixOp.
func (o MatrixOp) Matrix() *matrix.Dense {
	if o.m == nil {
		return nil
	}

	return o.m.Copy()
}

func (MatrixOp) Tag() Tag { return TagMatrix }
func (o MatrixOp) IsInverse() bool { return o.Inverse }
func (o MatrixOp) Invert() Atomic {
	o.Inverse = !o.Inverse
	return o
}

func (MatrixOp) sealed() {}

func (o MatrixOp) String() string {
	if o.m == nil {
		return "Matrix(<nil>)" + suffix(o.Inverse)
	}

	return fmt.Sprintf("Matrix(%dx%d)%s", o.m.Rows(), o.m.Cols(), suffix(o.Inverse))
}

// Equal compares the inverse flag and the stored matrices by value.
func (o MatrixOp) Equal(x Atomic) bool {
	p, ok := x.(MatrixOp)
	if !ok || p.Inverse != o.Inverse {
		return false
	}
	if o.m == nil || p.m == nil {
		return o.m == nil && p.m == nil
	}

	return matrix.Equal(o.m, p.m)
}

// ToMatrix returns a copy of the stored matrix, or its inverse when the flag is set.
// Errors: ErrNilArgument (zero MatrixOp), ErrConvention, ErrInvalidDimension,
// matrix.ErrDimensionMismatch (not (dim+1)×(dim+1)), matrix.ErrSingular.
func (o MatrixOp) ToMatrix(kind vector.Kind, dim int) (*matrix.Dense, error) {
	raw, err := o.raw(kind, dim)
	if err != nil {
		return nil, err
	}
	if !o.Inverse {
		return raw.Copy(), nil
	}
	inv := raw.Invert()
	if matrix.IsNullOrEmpty(inv) {
		return nil, affineErrorf(o.String(), matrix.ErrSingular)
	}

	return inv, nil
}

// raw validates the request and returns the stored matrix without copying.
func (o MatrixOp) raw(kind vector.Kind, dim int) (*matrix.Dense, error) {
	if o.m == nil {
		return nil, affineErrorf(o.String(), ErrNilArgument)
	}
	if err := checkConvention(kind, dim); err != nil {
		return nil, affineErrorf(o.String(), err)
	}
	if o.m.Rows() != dim+1 || o.m.Cols() != dim+1 {
		return nil, affineErrorf(o.String(),
			fmt.Errorf("want %dx%d: %w", dim+1, dim+1, matrix.ErrDimensionMismatch))
	}

	return o.m, nil
}

// ---------- helpers ----------

// checkConvention rejects NonVector and dim < 1.
func checkConvention(kind vector.Kind, dim int) error {
	if kind != vector.ColumnVector && kind != vector.RowVector {
		return ErrConvention
	}
	if dim < 1 {
		return fmt.Errorf("dim=%d: %w", dim, ErrInvalidDimension)
	}

	return nil
}

// homogeneousIdentity returns I of order dim+1 after checkConvention.
func homogeneousIdentity(kind vector.Kind, dim int) (*matrix.Dense, error) {
	if err := checkConvention(kind, dim); err != nil {
		return nil, err
	}

	return matrix.NewIdentity(dim + 1)
}

func checkAxis(axis, dim int) error {
	if axis < 0 || axis >= dim {
		return fmt.Errorf("axis %d not in [0,%d): %w", axis, dim, ErrAxisOutOfRange)
	}

	return nil
}

func checkPlane(from, to, dim int) error {
	if err := checkAxis(from, dim); err != nil {
		return err
	}
	if err := checkAxis(to, dim); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("axis %d: %w", from, ErrDegeneratePlane)
	}

	return nil
}

// put writes v at (i, j) in column convention and at (j, i) in row
// convention, so every builder is written once in column form.
// Indices are valid by construction.
func put(m *matrix.Dense, kind vector.Kind, i, j int, v float64) {
	if kind == vector.RowVector {
		i, j = j, i
	}
	_ = m.Set(i, j, v)
}

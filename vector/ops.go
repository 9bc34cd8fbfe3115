// SPDX-License-Identifier: MIT

// Package vector - arithmetic, norms and products.
//
// Determinism:
//   - All loops run in index order 0..n-1; results are reproducible bit for bit.

package vector

import "math"

// Operation tags used in error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opDot   = "Dot"
	opCross = "Cross"
)

// validateBinary checks that both operands are real vectors of the same length.
func validateBinary(tag string, a, b Vector) error {
	if a.kind == NonVector || b.kind == NonVector {
		return vectorErrorf(tag, ErrNonVector)
	}
	if len(a.data) != len(b.data) {
		return vectorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// ModuleSquared returns the sum of squared components.
// Complexity: O(n).
func (v Vector) ModuleSquared() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}

	return sum
}

// Module returns the Euclidean norm.
// Implementation:
//   - Stage 1: find the largest absolute component.
//   - Stage 2: sum squares of components divided by it and rescale.
//
// Behavior highlights:
//   - Overflow-safe: components near math.MaxFloat64 do not turn the result into +Inf.
//   - NaN components propagate.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v Vector) Module() float64 {
	var peak float64
	for _, x := range v.data {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}
	if peak == 0 || math.IsInf(peak, 1) {
		return peak
	}
	var sum, r float64
	for _, x := range v.data {
		r = x / peak
		sum += r * r
	}

	return peak * math.Sqrt(sum)
}

// Normalize returns v divided by its module.
// A zero-module vector (or the NonVector sentinel) yields the NonVector sentinel.
func (v Vector) Normalize() Vector {
	if v.kind == NonVector {
		return v
	}
	m := v.Module()
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Vector{}
	}

	return v.Scale(1 / m)
}

// Scale returns alpha·v with the same kind.
func (v Vector) Scale(alpha float64) Vector {
	out := Vector{kind: v.kind, data: make([]float64, len(v.data))}
	for i, x := range v.data {
		out.data[i] = x * alpha
	}

	return out
}

// Add returns a+b. The result takes the kind of a.
// Errors: ErrNonVector, ErrDimensionMismatch.
func Add(a, b Vector) (Vector, error) {
	if err := validateBinary(opAdd, a, b); err != nil {
		return Vector{}, err
	}
	out := New(a.kind, len(a.data))
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out, nil
}

// Sub returns a-b. The result takes the kind of a.
// Errors: ErrNonVector, ErrDimensionMismatch.
func Sub(a, b Vector) (Vector, error) {
	if err := validateBinary(opSub, a, b); err != nil {
		return Vector{}, err
	}
	out := New(a.kind, len(a.data))
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return out, nil
}

// Dot returns the scalar product Σ a_i·b_i. Orientation is ignored.
// Errors: ErrNonVector, ErrDimensionMismatch.
func Dot(a, b Vector) (float64, error) {
	if err := validateBinary(opDot, a, b); err != nil {
		return math.NaN(), err
	}
	var sum float64
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}

// Cross returns the exterior (wedge) product of a and b.
// MAIN DESCRIPTION:
//   - For n=3 the classical cross product (a×b) is returned.
//   - For any other n the result has C(n,2) components e_ij (i<j, lexicographic),
//     e_ij = a_i·b_j − a_j·b_i. For n=2 that is the single signed area term.
//
// Errors:
//   - ErrNonVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Cross(a, b Vector) (Vector, error) {
	if err := validateBinary(opCross, a, b); err != nil {
		return Vector{}, err
	}
	n := len(a.data)
	x, y := a.data, b.data
	if n == 3 {
		return FromSlice(a.kind,
			x[1]*y[2]-x[2]*y[1],
			x[2]*y[0]-x[0]*y[2],
			x[0]*y[1]-x[1]*y[0],
		), nil
	}
	out := New(a.kind, n*(n-1)/2)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out.data[k] = x[i]*y[j] - x[j]*y[i]
			k++
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

// Package vector - tagged float64 vector & safe accessors.
//
// Purpose:
//   - Keep a flat []float64 with an explicit Kind tag (row, column, non-vector).
//   - Reads never panic: At returns NaN outside the valid range.
//   - Writes are bounds-checked and return ErrOutOfRange.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); At/Set/Len/Kind: O(1).

package vector

import (
	"fmt"
	"math"
	"strings"
)

// Kind tags a Vector as a column vector, a row vector or the NonVector sentinel.
// It doubles as the multiplication convention for matrix-producing calls.
type Kind int

const (
	// NonVector marks the "no vector" sentinel (e.g. Normalize of a zero vector).
	NonVector Kind = iota
	// ColumnVector is an n×1 vector, transformed as M·v.
	ColumnVector
	// RowVector is a 1×n vector, transformed as v·M.
	RowVector
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case ColumnVector:
		return "column"
	case RowVector:
		return "row"
	default:
		return "non-vector"
	}
}

// Transport returns the opposite orientation; NonVector maps to itself.
func (k Kind) Transport() Kind {
	switch k {
	case ColumnVector:
		return RowVector
	case RowVector:
		return ColumnVector
	default:
		return NonVector
	}
}

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
)

// Vector is a fixed-length ordered list of float64 values with a Kind tag.
// The zero value is the NonVector sentinel.
//
// Set writes into the backing slice, which is shared between copies of the
// same Vector value; use Clone for an independent copy.
type Vector struct {
	kind Kind      // orientation tag
	data []float64 // backing storage, len fixed at construction
}

// New allocates a zero vector of length n with the given kind.
// A negative n is treated as zero. A NonVector kind always yields the sentinel.
// Complexity: O(n).
func New(kind Kind, n int) Vector {
	if kind == NonVector {
		return Vector{}
	}
	if n < 0 {
		n = 0
	}

	return Vector{kind: kind, data: make([]float64, n)}
}

// FromSlice builds a vector from values (copied).
// Complexity: O(n).
func FromSlice(kind Kind, values ...float64) Vector {
	v := New(kind, len(values))
	copy(v.data, values)

	return v
}

// NonVectorValue returns the NonVector sentinel.
func NonVectorValue() Vector { return Vector{} }

// Kind returns the orientation tag.
func (v Vector) Kind() Kind { return v.kind }

// Len returns the number of components.
func (v Vector) Len() int { return len(v.data) }

// IsNonVector reports whether v is the NonVector sentinel.
func (v Vector) IsNonVector() bool { return v.kind == NonVector }

// At returns component i, or NaN when i is outside [0, Len).
// Reading out of range is not an error by contract; callers that need a
// strict check should compare i against Len first.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v.data) {
		return math.NaN()
	}

	return v.data[i]
}

// Set stores x at component i.
// Errors: ErrOutOfRange when i is outside [0, Len).
func (v Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(fmt.Sprintf("Vector.Set(%d)", i), ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the components.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy with the same kind.
func (v Vector) Clone() Vector {
	return Vector{kind: v.kind, data: v.Values()}
}

// Transport toggles row↔column orientation, returning a new vector.
// The NonVector sentinel is returned unchanged.
func (v Vector) Transport() Vector {
	if v.kind == NonVector {
		return v
	}

	return Vector{kind: v.kind.Transport(), data: v.Values()}
}

// Equal reports whether a and b have the same kind, length and components.
func Equal(a, b Vector) bool {
	if a.kind != b.kind || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[x0 x1 ...]" followed by a T for row vectors.
func (v Vector) String() string {
	if v.kind == NonVector {
		return "<non-vector>"
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtClose)
	if v.kind == RowVector {
		b.WriteString("ᵀ")
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Represent "no matrix" by the canonical empty value (0×0), never by nil.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "NewDense" // ctor tag
	ctxAt  = "At"       // method tag used in error wrappers
	ctxSet = "Set"      // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtEmpty    = "[]\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows = height, cols = width).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//
// Dense is a value-like type by convention: every algebra kernel returns a
// fresh instance. Set exists for construction convenience.
type Dense struct {
	r, c           int       // row and column counts; both 0 for the canonical empty matrix
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with overflow-safe shape validation.
//
// Implementation:
//   - Stage 1: reject negative dimensions and rows*cols > MaxElements (ErrOverflow).
//   - Stage 2: map any zero dimension to the canonical empty matrix.
//   - Stage 3: allocate the zero-filled buffer and apply options.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The product check is done by division, so huge inputs never overflow int.
//
// Inputs:
//   - rows: number of rows (height), ≥ 0.
//   - cols: number of columns (width), ≥ 0.
//   - opts: WithValidateNaNInf / WithNoValidateNaNInf.
//
// Returns:
//   - *Dense: newly allocated matrix (0×0 when either dimension is zero).
//
// Errors:
//   - ErrOverflow (negative dimension or too many elements).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrOverflow)
	}
	o := gatherOptions(opts...)
	if rows == 0 || cols == 0 {
		return &Dense{validateNaNInf: o.validateNaNInf}, nil
	}
	if rows > MaxElements/cols {
		return nil, denseErrorf(ctxNew, rows, cols, ErrOverflow)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Empty returns the canonical empty matrix (0×0).
// Each call returns a fresh value; compare with IsEmpty, not by pointer.
func Empty() *Dense { return &Dense{} }

// newSameShape allocates a zero matrix with the shape and policy of m.
// The shape is already known to be valid, so no error path exists.
func newSameShape(m *Dense, rows, cols int) *Dense {
	if rows == 0 || cols == 0 {
		return &Dense{validateNaNInf: m.validateNaNInf}
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: m.validateNaNInf}
}

// Rows returns the row count (height). No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (width). No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is the canonical empty matrix.
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// IsSquare reports whether Rows()==Cols(). The empty matrix is square (order 0).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsNullOrEmpty reports whether m is nil or the canonical empty matrix.
// Use it after Invert/Adjoint, which signal degeneracy by returning empty.
func IsNullOrEmpty(m *Dense) bool { return m == nil || m.IsEmpty() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values when the
//     finite-only policy is enabled.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy is the typed form of Clone.
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RawRow returns a copy of row i as a plain slice, or ErrOutOfRange.
func (m *Dense) RawRow(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.RawRow(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging, not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m.IsEmpty() {
		return _fmtEmpty
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// toDense returns m itself when it is a *Dense, otherwise a *Dense copy read
// through the interface. The result must be treated as read-only.
// Errors: ErrNilMatrix, or any error surfaced by m.At.
func toDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

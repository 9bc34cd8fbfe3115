// SPDX-License-Identifier: MIT

// Package matrix - conversions between Dense and the vector package.
//
// Purpose:
//   - Row/column extraction produces tagged vectors (RowVector/ColumnVector).
//   - FromVector produces the 1×n or n×1 matrix matching the vector's tag.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

const (
	ctxGetRow     = "GetRow"
	ctxGetColumn  = "GetColumn"
	opFromVector  = "FromVector"
	opFromRows    = "NewFromRows"
	opNewFilled   = "NewFilled"
	opNewIdentity = "NewIdentity"
)

// GetRow returns row i as a RowVector.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) GetRow(i int) (vector.Vector, error) {
	if i < 0 || i >= m.r {
		return vector.Vector{}, fmt.Errorf("Dense.%s(%d): %w", ctxGetRow, i, ErrOutOfRange)
	}

	return vector.FromSlice(vector.RowVector, m.data[i*m.c:(i+1)*m.c]...), nil
}

// GetColumn returns column j as a ColumnVector.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) GetColumn(j int) (vector.Vector, error) {
	if j < 0 || j >= m.c {
		return vector.Vector{}, fmt.Errorf("Dense.%s(%d): %w", ctxGetColumn, j, ErrOutOfRange)
	}
	out := vector.New(vector.ColumnVector, m.r)
	for i := 0; i < m.r; i++ {
		_ = out.Set(i, m.data[i*m.c+j]) // index is in range by construction
	}

	return out, nil
}

// FromVector converts v into a single-row (RowVector) or single-column
// (ColumnVector) matrix. A zero-length vector yields the empty matrix.
// Errors: vector.ErrNonVector for the NonVector sentinel.
// Complexity: O(n).
func FromVector(v vector.Vector) (*Dense, error) {
	if v.IsNonVector() {
		return nil, matrixErrorf(opFromVector, vector.ErrNonVector)
	}
	n := v.Len()
	rows, cols := n, 1
	if v.Kind() == vector.RowVector {
		rows, cols = 1, n
	}
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromVector, err)
	}
	copy(res.data, v.Values())

	return res, nil
}

// NewFromRows builds a matrix from a rectangular [][]float64 (copied).
// Errors: ErrDimensionMismatch for ragged input; ErrOverflow.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	res, err := NewDense(len(rows), cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		for j, v := range row {
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return res, nil
}

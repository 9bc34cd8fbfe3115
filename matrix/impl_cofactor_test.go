// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		require.Equal(t, 1.0, MustIdentity(t, n).Determinant(), "det(I_%d)", n)
	}
}

func TestDeterminant_Known(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-4}}, -4},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"zero row", [][]float64{{1, 2, 3}, {0, 0, 0}, {7, 8, 9}}, 0},
		{"upper triangular", [][]float64{{2, 5, 1, 3}, {0, 3, 4, 1}, {0, 0, -1, 2}, {0, 0, 0, 0.5}}, -3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MustRows(t, tc.rows...).Determinant())
		})
	}
}

func TestDeterminant_Degenerate(t *testing.T) {
	assert.True(t, math.IsNaN(MustDense(t, 2, 3).Determinant()), "non-square yields NaN")
	assert.Equal(t, 0.0, matrix.Empty().Determinant())

	m := MustRows(t, []float64{1, math.NaN(), 0}, []float64{0, 1, 0}, []float64{0, 0, 1})
	assert.True(t, math.IsNaN(m.Determinant()), "a non-finite minor poisons the result")
}

func TestMinorCofactor(t *testing.T) {
	m := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 10})

	minor, err := m.Minor(1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {7, 10}}, minor)

	c, err := m.Cofactor(0, 1)
	require.NoError(t, err)
	require.Equal(t, -(4*10 - 6*7.0), c)

	_, err = m.Minor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = MustDense(t, 2, 3).Cofactor(0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	one := MustRows(t, []float64{5})
	c, err = one.Cofactor(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, c, "cofactor of a 1×1 matrix")
}

func TestAdjoint(t *testing.T) {
	m := MustRows(t, []float64{1, 2}, []float64{3, 4})
	CompareExact(t, [][]float64{{4, -2}, {-3, 1}}, m.Adjoint())

	CompareExact(t, [][]float64{{1}}, MustRows(t, []float64{9}).Adjoint())
	require.True(t, MustDense(t, 2, 3).Adjoint().IsEmpty())
	require.True(t, matrix.Empty().Adjoint().IsEmpty())

	// A·adj(A) = det(A)·I
	a := MustRows(t, []float64{6, 1, 1}, []float64{4, -2, 5}, []float64{2, 8, 7})
	prod, err := matrix.Mul(a, a.Adjoint())
	require.NoError(t, err)
	want, err := matrix.Scale(MustIdentity(t, 3), a.Determinant())
	require.NoError(t, err)
	CompareClose(t, want, prod)
}

func TestInvert_Known(t *testing.T) {
	m := MustRows(t, []float64{4, 7}, []float64{2, 6})
	CompareClose(t, MustRows(t, []float64{0.6, -0.7}, []float64{-0.2, 0.4}), m.Invert())

	CompareExact(t, [][]float64{{0.25}}, MustRows(t, []float64{4}).Invert())
}

func TestInvert_FailSoft(t *testing.T) {
	tests := []struct {
		name string
		m    *matrix.Dense
	}{
		{"singular", MustRows(t, []float64{1, 2}, []float64{2, 4})},
		{"non-square", MustDense(t, 2, 3)},
		{"empty", matrix.Empty()},
		{"NaN element", MustRows(t, []float64{math.NaN(), 0}, []float64{0, 1})},
		{"Inf element", MustRows(t, []float64{math.Inf(1), 0}, []float64{0, 1})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := tc.m.Invert()
			require.NotNil(t, inv)
			require.True(t, matrix.IsNullOrEmpty(inv))
		})
	}
}

// TestInvert_RoundTrip checks A·A⁻¹ ≈ I and (A⁻¹)⁻¹ ≈ A on well-conditioned inputs.
func TestInvert_RoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandInvertible(t, n, int64(n))
			inv := a.Invert()
			require.False(t, inv.IsEmpty())

			prod, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			CompareClose(t, MustIdentity(t, n), prod)

			CompareClose(t, a, inv.Invert())
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		m    *matrix.Dense
		want int
	}{
		{"empty", matrix.Empty(), 0},
		{"zero 3x3", MustDense(t, 3, 3), 0},
		{"identity", MustIdentity(t, 4), 4},
		{"dependent rows", MustRows(t, []float64{1, 2}, []float64{2, 4}), 1},
		{"wide rank one", MustRows(t, []float64{1, 2, 3}, []float64{2, 4, 6}), 1},
		{"wide full", MustRows(t, []float64{1, 0, 0}, []float64{0, 0, 1}), 2},
		{"hole in the middle", MustRows(t, []float64{1, 0, 0}, []float64{0, 0, 0}, []float64{0, 0, 1}), 2},
		{"tall", MustRows(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6}), 2},
		{"single non-zero", MustRows(t, []float64{0, 0}, []float64{0, 7}), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.m.Rank())
		})
	}
}

func TestSolveLinearEquation(t *testing.T) {
	m := MustRows(t, []float64{2, 1}, []float64{1, 3})

	for _, kind := range []vector.Kind{vector.ColumnVector, vector.RowVector} {
		t.Run(kind.String(), func(t *testing.T) {
			x, err := matrix.SolveLinearEquation(m, vector.FromSlice(kind, 3, 5))
			require.NoError(t, err)
			require.Equal(t, vector.ColumnVector, x.Kind())
			require.Equal(t, 2, x.Len())
			assert.InDelta(t, 0.8, x.At(0), tol)
			assert.InDelta(t, 1.4, x.At(1), tol)
		})
	}
}

func TestSolveLinearEquation_Errors(t *testing.T) {
	_, err := matrix.SolveLinearEquation(MustDense(t, 2, 3), vector.FromSlice(vector.ColumnVector, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	m := MustIdentity(t, 2)
	_, err = matrix.SolveLinearEquation(m, vector.FromSlice(vector.ColumnVector, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SolveLinearEquation(m, vector.NonVectorValue())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	singular := MustRows(t, []float64{1, 2}, []float64{2, 4})
	_, err = matrix.SolveLinearEquation(singular, vector.FromSlice(vector.ColumnVector, 1, 2))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.ErrorIs(t, err, matrix.ErrArithmetic)

	_, err = matrix.SolveLinearEquation(nil, vector.FromSlice(vector.ColumnVector, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
)

func TestColumnMeans(t *testing.T) {
	X := MustRows(t, []float64{1, 10}, []float64{3, 20}, []float64{5, 60}, []float64{7, 70})
	means, err := matrix.ColumnMeans(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 40}, means, tol)

	empty, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	means, err = matrix.ColumnMeans(empty)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, means)

	_, err = matrix.ColumnMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCenterColumns(t *testing.T) {
	X := MustRows(t, []float64{1, 10}, []float64{3, 20}, []float64{5, 60}, []float64{7, 70})
	xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 40}, means, tol)
	CompareExact(t, [][]float64{{-3, -30}, {-1, -20}, {1, 20}, {3, 30}}, xc)
	assert.Equal(t, 1.0, MustAt(t, X, 0, 0), "input untouched")

	// Interface inputs go through the same path.
	xc, _, err = matrix.CenterColumns(hide{X})
	require.NoError(t, err)
	assert.Equal(t, -3.0, MustAt(t, xc, 0, 0))
}

func TestCovariance(t *testing.T) {
	// y = 2x exactly: var(x) = 1, var(y) = 4, cov = 2.
	X := MustRows(t, []float64{-1, -2}, []float64{0, 0}, []float64{1, 2})
	cov, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0}, means, tol)
	CompareExact(t, [][]float64{{1, 2}, {2, 4}}, cov)

	one := MustRows(t, []float64{4, 5, 6})
	cov, _, err = matrix.Covariance(one)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, cov)

	X = RandFilledDense(t, 40, 4, 11)
	cov, _, err = matrix.Covariance(X)
	require.NoError(t, err)
	covT, err := matrix.Transpose(cov)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(cov, covT), "covariance is exactly symmetric")

	_, _, err = matrix.Covariance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

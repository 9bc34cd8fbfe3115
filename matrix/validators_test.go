// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
)

func TestValidators(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)
	var typedNil *matrix.Dense

	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, a))

	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(MustIdentity(t, 2)))

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateSameRows(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

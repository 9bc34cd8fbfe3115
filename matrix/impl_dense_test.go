// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
)

// TestNewDense_Overflow ensures NewDense rejects negative and oversized shapes.
func TestNewDense_Overflow(t *testing.T) {
	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"negative rows", -1, 3},
		{"negative cols", 3, -1},
		{"too many elements", 1 << 16, 1 << 16},
		{"just over the cap", matrix.MaxElements, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrOverflow)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "deprecated alias must still match")
		})
	}
}

// TestNewDense_ZeroDimensionIsEmpty ensures any zero dimension yields the canonical empty matrix.
func TestNewDense_ZeroDimensionIsEmpty(t *testing.T) {
	for _, shape := range [][2]int{{0, 5}, {5, 0}, {0, 0}} {
		m, err := matrix.NewDense(shape[0], shape[1])
		require.NoError(t, err)
		assert.True(t, m.IsEmpty())
		assert.Equal(t, 0, m.Rows())
		assert.Equal(t, 0, m.Cols())
	}
	assert.True(t, matrix.IsNullOrEmpty(nil))
	assert.True(t, matrix.IsNullOrEmpty(matrix.Empty()))
	assert.False(t, matrix.IsNullOrEmpty(MustIdentity(t, 1)))
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.False(t, m.IsSquare())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Empty().At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestNaNPolicy checks the opt-in finite-only policy.
func TestNaNPolicy(t *testing.T) {
	loose := MustDense(t, 1, 1)
	require.NoError(t, loose.Set(0, 0, math.NaN()), "default policy accepts NaN")

	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	clone := strict.Clone()
	require.ErrorIs(t, clone.Set(0, 0, math.NaN()), matrix.ErrNaNInf, "Clone keeps the policy")

	relaxed, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.NaN()), "later options win")
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, []float64{1, 0}, []float64{0, 2})

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

func TestNewFromRows(t *testing.T) {
	m := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.NewFromRows(nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

func TestNewFilledAndIdentity(t *testing.T) {
	f, err := matrix.NewFilled(2, 2, 7)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{7, 7}, {7, 7}}, f)

	_, err = matrix.NewFilled(1, 1, math.NaN(), matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, MustIdentity(t, 3))
	require.True(t, MustIdentity(t, 0).IsEmpty())

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRawRowAndDo(t *testing.T) {
	m := MustRows(t, []float64{1, 2}, []float64{3, 4})

	row, err := m.RawRow(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	_, err = m.RawRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var sum float64
	visited := 0
	m.Do(func(_, _ int, v float64) bool {
		sum += v
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited, "Do must stop when f returns false")
	require.Equal(t, 6.0, sum)
}

func TestString(t *testing.T) {
	m := MustRows(t, []float64{1, 2.5}, []float64{-3, 0})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
	require.True(t, strings.HasPrefix(matrix.Empty().String(), "[]"))
}

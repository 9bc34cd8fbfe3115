// SPDX-License-Identifier: MIT
package ops_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/matrix/ops"
)

const tol = 1e-9

func mustRows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randInvertible returns a diagonally dominant n×n matrix.
func randInvertible(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) + 1
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func requireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, matrix.WithEpsilon(tol))
	require.NoError(t, err)
	require.True(t, ok, "got:\n%v\nwant:\n%v", got, want)
}

func TestLU_Reconstructs(t *testing.T) {
	a := mustRows(t, []float64{0, 2, 1}, []float64{1, 1, 0}, []float64{3, 0, 4})
	f, err := ops.LU(a)
	require.NoError(t, err)

	// P·A = L·U
	pa, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for i, src := range f.Perm {
		for j := 0; j < 3; j++ {
			v, _ := a.At(src, j)
			require.NoError(t, pa.Set(i, j, v))
		}
	}
	lu, err := matrix.Mul(f.L, f.U)
	require.NoError(t, err)
	requireClose(t, pa, lu)

	for i := 0; i < 3; i++ {
		d, _ := f.L.At(i, i)
		assert.Equal(t, 1.0, d, "unit diagonal")
		for j := 0; j < i; j++ {
			u, _ := f.U.At(i, j)
			assert.Equal(t, 0.0, u, "U is upper triangular")
		}
	}
}

// TestDeterminant_MatchesCofactor cross-checks the two determinant engines.
func TestDeterminant_MatchesCofactor(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randInvertible(t, n, int64(n*7))
			got, err := ops.Determinant(a)
			require.NoError(t, err)
			want := a.Determinant()
			assert.InDelta(t, want, got, tol*(1+math.Abs(want)))
		})
	}

	got, err := ops.Determinant(mustRows(t, []float64{1, 2}, []float64{2, 4}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = ops.Determinant(matrix.Empty())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = ops.Determinant(mustRows(t, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_MatchesCofactor(t *testing.T) {
	for n := 1; n <= 5; n++ {
		a := randInvertible(t, n, int64(n))
		inv, err := ops.Inverse(a)
		require.NoError(t, err)
		requireClose(t, a.Invert(), inv)
	}

	_, err := ops.Inverse(mustRows(t, []float64{1, 2}, []float64{2, 4}))
	require.ErrorIs(t, err, ops.ErrSingular)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.ErrorIs(t, err, matrix.ErrArithmetic)

	_, err = ops.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolve(t *testing.T) {
	a := mustRows(t, []float64{2, 1}, []float64{1, 3})
	x, err := ops.Solve(a, []float64{3, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, x[0], tol)
	assert.InDelta(t, 1.4, x[1], tol)

	_, err = ops.Solve(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRank_MatchesCofactor checks the elimination rank against the exact
// minor search on integer fixtures.
func TestRank_MatchesCofactor(t *testing.T) {
	fixtures := []*matrix.Dense{
		mustRows(t, []float64{0, 0}, []float64{0, 0}),
		mustRows(t, []float64{1, 2}, []float64{2, 4}),
		mustRows(t, []float64{1, 2, 3}, []float64{2, 4, 6}),
		mustRows(t, []float64{1, 0, 0}, []float64{0, 0, 0}, []float64{0, 0, 1}),
		mustRows(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6}),
		mustRows(t, []float64{0, 1, 0}, []float64{0, 0, 1}),
		matrix.Empty(),
	}
	for i, m := range fixtures {
		got, err := ops.Rank(m, 0)
		require.NoError(t, err)
		assert.Equal(t, m.Rank(), got, "fixture %d", i)
	}

	near := mustRows(t, []float64{1, 1}, []float64{1, 1 + 1e-13})
	r, err := ops.Rank(near, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 1, r, "tolerance absorbs the tiny pivot")
	assert.Equal(t, 2, near.Rank(), "exact search does not")

	_, err = ops.Rank(near, -1)
	require.ErrorIs(t, err, ops.ErrInvalidTolerance)
}

func TestQR(t *testing.T) {
	a := mustRows(t, []float64{12, -51, 4}, []float64{6, 167, -68}, []float64{-4, 24, -41})
	Q, R, err := ops.QR(a)
	require.NoError(t, err)

	qr, err := matrix.Mul(Q, R)
	require.NoError(t, err)
	requireClose(t, a, qr)

	qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, Q)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireClose(t, I, qtq)

	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			v, _ := R.At(i, j)
			assert.Equal(t, 0.0, v)
		}
	}

	_, _, err = ops.QR(mustRows(t, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// ExampleDense_Invert shows the fail-soft inverse: singular input yields the
// empty matrix instead of an error.
func ExampleDense_Invert() {
	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
	fmt.Print(a.Invert())

	s, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	fmt.Println(matrix.IsNullOrEmpty(s.Invert()))
	// Output:
	// [0.6, -0.7]
	// [-0.2, 0.4]
	// true
}

// ExampleMultiplyLeft composes "scale x by 2, then translate x by 3" in
// homogeneous 2D column form.
func ExampleMultiplyLeft() {
	scale, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 1}})
	shift, _ := matrix.NewFromRows([][]float64{{1, 3}, {0, 1}})
	m, _ := matrix.MultiplyLeft([]*matrix.Dense{scale, shift})
	fmt.Print(m)
	// Output:
	// [2, 3]
	// [0, 1]
}

func ExampleSolveLinearEquation() {
	m, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 4}})
	x, _ := matrix.SolveLinearEquation(m, vector.FromSlice(vector.ColumnVector, 2, 2))
	fmt.Println(x)
	// Output: [1 0.5]
}

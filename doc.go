// Package lvmath is a small dense linear-algebra toolkit built around affine
// transformation chains.
//
// What is inside?
//
//	vector/      - typed vectors (row, column, non-vector) with norms, dot and
//	               cross products, spherical coordinates
//	matrix/      - dense float64 matrices: arithmetic, chained products,
//	               cofactor determinant, adjoint, inverse, rank and solving
//	matrix/ops/  - numeric kernels for larger systems: LU, QR, Jacobi eigen, tolerant rank
//	affine/      - atomic affine steps (offset, scale, reflect, shear, rotate,
//	               raw matrix) composed into invertible, compressible chains
//	geom/        - 2-D and 3-D points moved by chains or matrix lists
//	raster/      - golang.org/x/image bridge: f64.Aff3 conversion and warping
//
// Conventions:
//
//   - Dimensions are counted from 0; a chain applied in d dimensions
//     materializes to a (d+1)×(d+1) homogeneous matrix.
//   - Column vectors multiply on the right of a matrix (M·v), row vectors on
//     the left (v·M); the two materializations are transposes of each other.
//   - Numeric failures that have a natural sentinel (NaN determinant, empty
//     inverse) are reported softly; structural misuse returns an error.
//
// Quick example:
//
//	t := affine.Empty().Rotate(0, 1, math.Pi/2).ScaleAll(2)
//	p, _ := t.Apply(vector.FromSlice(vector.ColumnVector, 1, 0)) // (0, 2)
//
//	go get github.com/katalvlaran/lvmath
package lvmath

// Package vector provides a fixed-length ordered list of float64 values
// tagged as a row vector, a column vector or a non-vector sentinel.
//
// 🚀 What is a tagged vector?
//
//	The tag (Kind) is the convention parameter shared by the matrix and
//	affine packages. A ColumnVector is multiplied from the left (M·v), a
//	RowVector from the right (v·M). Callers must stay consistent about it,
//	otherwise chained transforms combine in the wrong order.
//
// ✨ Key features:
//   - bounds-safe reads: At returns NaN instead of panicking
//   - Euclidean module (overflow-safe) and squared module
//   - Transport (row↔column), Normalize, Dot and Cross (bivector) products
//   - N-dimensional hyperspherical ↔ Cartesian conversion
//
// ⚙️ Usage:
//
//	v := vector.FromSlice(vector.ColumnVector, 3, 4)
//	fmt.Println(v.Module()) // 5
//	u := v.Normalize()      // [0.6 0.8]
//
// The package has no dependency on matrix; matrix builds its row/column
// extraction on top of this type.
package vector

// SPDX-License-Identifier: MIT

// Package geom provides 2-D and 3-D point types that move under
// affine.Transformation chains or pre-materialized matrix lists.
//
// Points use the column-vector convention: a chain is applied first step
// first, and matrix lists are folded with matrix.MultiplyLeft.
package geom

// SPDX-License-Identifier: MIT

// Package raster connects 2-D affine transformations to golang.org/x/image:
// conversion to and from f64.Aff3, image warping through an x/image/draw
// interpolator, and the pixel-space helpers a renderer needs around it.
//
// All functions use the column-vector convention; f64.Aff3 stores the top
// two rows of the 3×3 homogeneous matrix.
package raster

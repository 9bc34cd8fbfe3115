// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrNotPlanar is returned when a transformation has no 2-D affine form:
	// a step addresses an axis beyond 1, or the bottom row is not [0 0 1].
	ErrNotPlanar = errors.New("raster: transformation is not a planar affine map")

	// ErrNilImage is returned when Warp receives a nil source or destination.
	ErrNilImage = errors.New("raster: nil image")
)

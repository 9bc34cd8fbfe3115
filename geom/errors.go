// SPDX-License-Identifier: MIT

package geom

import "errors"

// ErrNilTransformation is returned when a nil transformation is applied.
var ErrNilTransformation = errors.New("geom: nil transformation")

// ErrTooFewPoints is returned when a fit needs more points than given.
var ErrTooFewPoints = errors.New("geom: too few points")

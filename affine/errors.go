// SPDX-License-Identifier: MIT

package affine

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument is returned when a required matrix or transformation is nil.
	ErrNilArgument = errors.New("affine: nil argument")

	// ErrAxisOutOfRange indicates an axis index outside [0, dim).
	ErrAxisOutOfRange = errors.New("affine: axis out of range")

	// ErrDegeneratePlane indicates a shear or rotation whose two axes coincide.
	ErrDegeneratePlane = errors.New("affine: plane axes must differ")

	// ErrInvalidDimension indicates a materialization dimension below 1.
	ErrInvalidDimension = errors.New("affine: dimension must be at least 1")

	// ErrConvention indicates vector.NonVector where a row or column convention is required.
	ErrConvention = errors.New("affine: convention must be row or column vector")
)

// affineErrorf tags err with an operation name, keeping the sentinel reachable.
func affineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

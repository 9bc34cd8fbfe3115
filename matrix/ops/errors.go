// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
)

var (
	// ErrSingular is returned when elimination meets a zero pivot.
	// It matches matrix.ErrSingular (and therefore matrix.ErrArithmetic).
	ErrSingular = fmt.Errorf("ops: %w", matrix.ErrSingular)

	// ErrInvalidTolerance is returned by Rank for a negative or non-finite tolerance.
	ErrInvalidTolerance = errors.New("ops: tolerance must be finite and non-negative")
)

// opsErrorf tags err with the kernel name, keeping the sentinel reachable.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

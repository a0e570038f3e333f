// SPDX-License-Identifier: MIT

package interp

import (
	"errors"

	"github.com/katalvlaran/wagerig/grid"
)

var (
	// ErrInvalidGrid is grid.ErrInvalidGrid re-exported so callers of this
	// package need not import grid to match it. Returned when the number of
	// values does not match the number of nodes.
	ErrInvalidGrid = grid.ErrInvalidGrid

	// ErrNonFinite is returned when a value is NaN or ±Inf.
	ErrNonFinite = errors.New("interp: value is NaN or Inf")

	// ErrGridMismatch is returned when two value functions that must share a
	// grid do not.
	ErrGridMismatch = errors.New("interp: value functions are on different grids")

	// ErrEmpty is returned by Mean when called without value functions.
	ErrEmpty = errors.New("interp: no value functions")
)

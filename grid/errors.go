// SPDX-License-Identifier: MIT

package grid

import "errors"

// ErrInvalidGrid is returned when a grid is shorter than two points, is not
// strictly increasing, or contains NaN/±Inf.
var ErrInvalidGrid = errors.New("grid: invalid grid")

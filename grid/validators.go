// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// minPoints is the smallest admissible grid length (one interval).
const minPoints = 2

// validatorErrorf tags a sentinel with the name of the failing check.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidatePoints checks the structural invariants of a grid:
// length ≥ 2, every point finite, and points strictly increasing.
//
// Returns a wrapped ErrInvalidGrid on the first violation.
// Complexity: O(n). Allocates nothing.
func ValidatePoints(points []float64) error {
	if len(points) < minPoints {
		return validatorErrorf(fmt.Sprintf("ValidatePoints: len=%d", len(points)), ErrInvalidGrid)
	}

	var i int
	for i = 0; i < len(points); i++ {
		if math.IsNaN(points[i]) || math.IsInf(points[i], 0) {
			return validatorErrorf(fmt.Sprintf("ValidatePoints: point %d not finite", i), ErrInvalidGrid)
		}
		// strict order; equal neighbours would make interpolation weights undefined
		if i > 0 && points[i] <= points[i-1] {
			return validatorErrorf(fmt.Sprintf("ValidatePoints: point %d not increasing", i), ErrInvalidGrid)
		}
	}

	return nil
}

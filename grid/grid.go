// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Grid is an immutable, strictly increasing sequence of wage levels.
// The zero value is not usable; construct with New or Linspace.
type Grid struct {
	points []float64
}

// New validates points and returns a Grid holding a private copy of them.
//
// Errors:
//   - ErrInvalidGrid (wrapped) if len(points) < 2, a point is not finite,
//     or the sequence is not strictly increasing.
//
// Complexity: O(n) time, O(n) space.
func New(points []float64) (Grid, error) {
	if err := ValidatePoints(points); err != nil {
		return Grid{}, fmt.Errorf("New: %w", err)
	}

	return Grid{points: slices.Clone(points)}, nil
}

// Linspace returns n evenly spaced points on [lo, hi], endpoints included.
//
// Errors:
//   - ErrInvalidGrid if n < 2, lo/hi are not finite, or lo >= hi.
func Linspace(lo, hi float64, n int) (Grid, error) {
	if n < minPoints {
		return Grid{}, fmt.Errorf("Linspace: n=%d: %w", n, ErrInvalidGrid)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return Grid{}, fmt.Errorf("Linspace: bounds [%g, %g]: %w", lo, hi, ErrInvalidGrid)
	}

	points := floats.Span(make([]float64, n), lo, hi)
	// pin the upper endpoint; lo + step*(n-1) can miss hi by an ulp
	points[n-1] = hi

	// an extremely narrow interval can still collapse interior points
	return New(points)
}

// Len returns the number of grid points.
func (g Grid) Len() int { return len(g.points) }

// Min returns the smallest grid point.
func (g Grid) Min() float64 { return g.points[0] }

// Max returns the largest grid point. It is the upper search bound of every
// continuation-wage optimization.
func (g Grid) Max() float64 { return g.points[len(g.points)-1] }

// At returns the i-th grid point. It panics if i is out of range, like a
// slice index.
func (g Grid) At(i int) float64 { return g.points[i] }

// Points returns a copy of the grid points.
func (g Grid) Points() []float64 { return slices.Clone(g.points) }

// Equal reports whether g and other hold identical points.
func (g Grid) Equal(other Grid) bool { return slices.Equal(g.points, other.points) }

// Bracket returns the index i of the interval [At(i), At(i+1)] containing x.
// Arguments at or below Min() map to 0 and arguments at or above Max() map to
// Len()-2, so the result is always a valid interval index.
//
// Complexity: O(log n).
func (g Grid) Bracket(x float64) int {
	n := len(g.points)
	// first index with points[i] > x, minus one
	i := sort.SearchFloat64s(g.points, x)
	if i < n && g.points[i] == x {
		i++
	}
	i--
	if i < 0 {
		return 0
	}
	if i > n-2 {
		return n - 2
	}
	return i
}

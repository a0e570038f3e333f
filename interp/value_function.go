// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/wagerig/grid"
)

// ValueFunction is a piecewise-linear function tabulated on a grid.
type ValueFunction struct {
	g      grid.Grid
	values []float64
}

// New returns a value function with nodes g and the given values.
// values is copied.
//
// Errors:
//   - ErrInvalidGrid if len(values) != g.Len() (this also catches a zero Grid).
//   - ErrNonFinite if any value is NaN or ±Inf.
func New(g grid.Grid, values []float64) (*ValueFunction, error) {
	if g.Len() == 0 || len(values) != g.Len() {
		return nil, fmt.Errorf("New: %d values for %d nodes: %w", len(values), g.Len(), ErrInvalidGrid)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("New: value %d at node %g: %w", i, g.At(i), ErrNonFinite)
		}
	}

	return &ValueFunction{g: g, values: slices.Clone(values)}, nil
}

// FromFunc tabulates f on every node of g, e.g. the initial guess w0(x) = 1/x.
func FromFunc(g grid.Grid, f func(x float64) float64) (*ValueFunction, error) {
	values := make([]float64, g.Len())
	for i := range values {
		values[i] = f(g.At(i))
	}

	return New(g, values)
}

// Evaluate returns v(x): linear interpolation inside [Min, Max], the nearest
// boundary value outside. At a node it returns the stored value exactly.
func (v *ValueFunction) Evaluate(x float64) float64 {
	n := len(v.values)
	switch {
	case x <= v.g.Min():
		return v.values[0]
	case x >= v.g.Max():
		return v.values[n-1]
	}

	i := v.g.Bracket(x)
	x0, x1 := v.g.At(i), v.g.At(i+1)
	if x == x0 {
		return v.values[i]
	}
	t := (x - x0) / (x1 - x0)

	return v.values[i] + t*(v.values[i+1]-v.values[i])
}

// Grid returns the nodes of v.
func (v *ValueFunction) Grid() grid.Grid { return v.g }

// Values returns a copy of the tabulated values, aligned with Grid().
func (v *ValueFunction) Values() []float64 { return slices.Clone(v.values) }

// At returns the value stored at node i.
func (v *ValueFunction) At(i int) float64 { return v.values[i] }

// SupDistance returns max_i |a(x_i) - b(x_i)| over the shared grid.
//
// For two piecewise-linear functions on the same nodes with flat
// extrapolation this equals the sup-norm distance over the whole real line.
func SupDistance(a, b *ValueFunction) (float64, error) {
	if !a.g.Equal(b.g) {
		return 0, fmt.Errorf("SupDistance: %w", ErrGridMismatch)
	}

	return floats.Distance(a.values, b.values, math.Inf(1)), nil
}

// Mean returns the node-wise average of vfs. All inputs must share a grid.
func Mean(vfs ...*ValueFunction) (*ValueFunction, error) {
	if len(vfs) == 0 {
		return nil, fmt.Errorf("Mean: %w", ErrEmpty)
	}

	g := vfs[0].g
	sum := make([]float64, g.Len())
	for k, vf := range vfs {
		if !vf.g.Equal(g) {
			return nil, fmt.Errorf("Mean: value function %d: %w", k, ErrGridMismatch)
		}
		floats.Add(sum, vf.values)
	}
	floats.Scale(1/float64(len(vfs)), sum)

	return &ValueFunction{g: g, values: sum}, nil
}

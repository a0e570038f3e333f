// SPDX-License-Identifier: MIT

package bellman

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
)

// Sweep is the complete output of one operator application.
//
// Points is row-major: Points[i*len(Shocks)+j] holds grid point i and
// shock j. A Sweep is never modified after Apply returns.
type Sweep struct {
	Grid   grid.Grid
	Shocks []float64
	Points []PolicyPoint
}

// At returns the row for grid point i and shock j.
func (s *Sweep) At(i, j int) PolicyPoint {
	return s.Points[i*len(s.Shocks)+j]
}

// Rows splits Points per grid point; Rows()[i] has one entry per shock.
// The inner slices alias Points.
func (s *Sweep) Rows() [][]PolicyPoint {
	k := len(s.Shocks)
	rows := make([][]PolicyPoint, s.Grid.Len())
	for i := range rows {
		rows[i] = s.Points[i*k : (i+1)*k : (i+1)*k]
	}
	return rows
}

// ByShock returns one value function per shock, each tabulated on Grid.
// This is the disaggregated result.
func (s *Sweep) ByShock() ([]*interp.ValueFunction, error) {
	out := make([]*interp.ValueFunction, len(s.Shocks))
	values := make([]float64, s.Grid.Len())
	for j := range s.Shocks {
		for i := range values {
			values[i] = s.At(i, j).Value
		}
		vf, err := interp.New(s.Grid, values)
		if err != nil {
			return nil, fmt.Errorf("ByShock: shock %g: %w", s.Shocks[j], err)
		}
		out[j] = vf
	}
	return out, nil
}

// Mean returns the shock-averaged value function, the iterate used by the
// next sweep.
func (s *Sweep) Mean() (*interp.ValueFunction, error) {
	vfs, err := s.ByShock()
	if err != nil {
		return nil, err
	}
	return interp.Mean(vfs...)
}

// ScheduleRow is one (wage, shock, continuation wage) triple of a policy
// table.
type ScheduleRow struct {
	Wage         float64 `json:"wage"`
	Shock        float64 `json:"shock"`
	Continuation float64 `json:"continuation"`
}

// UnrestrictedSchedule returns the flexible-reset wage as a piecewise-linear
// function of the shock. The unconstrained optimum does not depend on the
// current wage, so grid point 0 is read for every shock.
//
// Errors: wraps grid.ErrInvalidGrid when the shocks are not strictly
// increasing (repeated draws) or fewer than two.
func (s *Sweep) UnrestrictedSchedule() (*interp.ValueFunction, error) {
	g, err := grid.New(s.Shocks)
	if err != nil {
		return nil, fmt.Errorf("UnrestrictedSchedule: %w", err)
	}
	wages := make([]float64, len(s.Shocks))
	for j := range wages {
		wages[j] = s.At(0, j).Unconstrained.Wage
	}
	return interp.New(g, wages)
}

// RestrictedSchedule returns the constrained continuation wage for every
// (wage, shock) pair, ordered like Points.
func (s *Sweep) RestrictedSchedule() []ScheduleRow {
	out := make([]ScheduleRow, len(s.Points))
	for k, p := range s.Points {
		out[k] = ScheduleRow{Wage: p.Wage, Shock: p.Shock, Continuation: p.Constrained.Wage}
	}
	return out
}

// newSweep allocates an empty table for g × shocks.
func newSweep(g grid.Grid, shocks []float64) *Sweep {
	return &Sweep{
		Grid:   g,
		Shocks: slices.Clone(shocks),
		Points: make([]PolicyPoint, g.Len()*len(shocks)),
	}
}

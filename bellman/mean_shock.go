// SPDX-License-Identifier: MIT

package bellman

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
	"github.com/katalvlaran/wagerig/utility"
)

// MeanShockOperator optimizes once per grid point against the shock-averaged
// utility mean_z Ω(x, z), i.e. the wage is chosen before z is observed.
//
// Deprecated: the timing is wrong for this model, where the worker sees z
// before resetting the wage. Use Operator. Kept to reproduce and compare
// earlier results.
type MeanShockOperator struct {
	base
}

// NewMeanShock returns the expected-shock operator. Errors as New.
func NewMeanShock(g grid.Grid, shocks []float64, p Params, u utility.Func, opts Options) (*MeanShockOperator, error) {
	b, err := newBase(g, shocks, p, u, opts)
	if err != nil {
		return nil, fmt.Errorf("NewMeanShock: %w", err)
	}
	return &MeanShockOperator{base: b}, nil
}

// Apply runs one sweep against w. The returned Sweep has a single shock
// column holding the mean shock.
func (op *MeanShockOperator) Apply(ctx context.Context, w *interp.ValueFunction) (*Sweep, error) {
	if err := checkIterate(w); err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	start := time.Now()
	beta, deflator := op.params.Beta, 1+op.params.Pi
	h := func(x float64, _ ...float64) float64 {
		var sum float64
		for _, z := range op.shocks {
			u, err := op.u.Utility(x, z)
			if err != nil {
				return math.Inf(-1)
			}
			sum += u
		}
		return sum/float64(len(op.shocks)) + beta*w.Evaluate(x/deflator)
	}
	wmax := op.grid.Max()
	zbar := stat.Mean(op.shocks, nil)

	// the unconstrained search is the same for every y
	free, err := op.maximize(h, 0, wmax)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", &PointError{Wage: math.NaN(), Shock: zbar, Regime: Unconstrained, Err: err})
	}

	rigid := make([]Choice, op.grid.Len())
	err = forEach(ctx, len(rigid), op.opts.Workers, func(i int) error {
		y := op.grid.At(i)
		c, err := op.maximize(h, y, wmax)
		if err != nil {
			return &PointError{Wage: y, Shock: zbar, Regime: Constrained, Err: err}
		}
		rigid[i] = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	best := envelope(op.grid, free, rigid)
	s := newSweep(op.grid, []float64{zbar})
	for i, c := range rigid {
		s.Points[i] = PolicyPoint{
			Wage:          op.grid.At(i),
			Shock:         zbar,
			Value:         op.combine(best, c),
			Unconstrained: best,
			Constrained:   c,
		}
	}

	op.logSweep("mean-shock", s, start)
	return s, nil
}

// Step applies the operator and returns the new iterate.
func (op *MeanShockOperator) Step(ctx context.Context, w *interp.ValueFunction) (*interp.ValueFunction, error) {
	s, err := op.Apply(ctx, w)
	if err != nil {
		return nil, err
	}
	return s.Mean()
}

// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wagerig/bellman"
	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
	"github.com/katalvlaran/wagerig/iterate"
	"github.com/katalvlaran/wagerig/optimize"
	"github.com/katalvlaran/wagerig/shock"
	"github.com/katalvlaran/wagerig/utility"
)

// Operator is a Bellman operator that can report a full sweep as well as
// advance the iteration. Every bellman operator satisfies it.
type Operator interface {
	iterate.Stepper
	Apply(ctx context.Context, w *interp.ValueFunction) (*bellman.Sweep, error)
	Grid() grid.Grid
	Shocks() []float64
}

var (
	_ Operator = (*bellman.Operator)(nil)
	_ Operator = (*bellman.JointOperator)(nil)
	_ Operator = (*bellman.MeanShockOperator)(nil)
)

// BuildGrid returns the wage grid.
func (e *Experiment) BuildGrid() (grid.Grid, error) {
	return grid.Linspace(e.Grid.Min, e.Grid.Max, e.Grid.Points)
}

// Distribution returns the shock distribution.
func (e *Experiment) Distribution() shock.Distribution {
	return shock.Distribution{
		Location: e.Shocks.Location,
		Scale:    e.Shocks.Scale,
		Lower:    e.Shocks.Lower,
		Upper:    e.Shocks.Upper,
	}
}

// SampleShocks draws the configured shock panel. Equal (seed, panel) pairs
// give equal panels.
func (e *Experiment) SampleShocks() ([]float64, error) {
	rng := shock.Derive(e.Shocks.Seed, e.Shocks.Panel)
	return shock.NewSampler(rng).Sample(e.Shocks.Count, e.Distribution())
}

// Params returns the dynamic parameters.
func (e *Experiment) Params() bellman.Params {
	return bellman.Params{Lambda: e.Model.Lambda, Beta: e.Model.Beta, Pi: e.Model.Pi}
}

// UtilityParams returns the period-utility calibration.
func (e *Experiment) UtilityParams() utility.Params {
	return utility.Params{Eta: e.Model.Eta, Gamma: e.Model.Gamma, AggL: e.Model.AggL}
}

// Optimizer returns a Brent search with the configured tolerances.
func (e *Experiment) Optimizer() *optimize.Brent {
	return &optimize.Brent{XTol: e.Solver.XTol, MaxEval: e.Solver.MaxEval}
}

// DriverOptions returns the iteration options.
func (e *Experiment) DriverOptions(logger *zap.Logger) iterate.Options {
	opts := iterate.DefaultOptions()
	opts.Tol = e.Solver.Tol
	opts.MaxIter = e.Solver.MaxIter
	if logger != nil {
		opts.Logger = logger
	}
	return opts
}

// BuildOperator validates e and constructs the configured operator.
func (e *Experiment) BuildOperator(logger *zap.Logger) (Operator, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	g, err := e.BuildGrid()
	if err != nil {
		return nil, err
	}
	shocks, err := e.SampleShocks()
	if err != nil {
		return nil, fmt.Errorf("sampling shocks: %w", err)
	}
	u, err := utility.NewLabor(e.UtilityParams())
	if err != nil {
		return nil, err
	}

	opts := bellman.Options{Workers: e.Solver.Workers, Optimizer: e.Optimizer(), Logger: logger}
	p := e.Params()
	switch e.Solver.Operator {
	case OperatorJoint:
		return bellman.NewJoint(g, shocks, p, u, opts)
	case OperatorMeanShock:
		//lint:ignore SA1019 selectable for comparison runs
		return bellman.NewMeanShock(g, shocks, p, u, opts)
	default:
		return bellman.New(g, shocks, p, u, opts)
	}
}

// InitialGuess returns w0(x) = 1/x on the configured grid.
func (e *Experiment) InitialGuess() (*interp.ValueFunction, error) {
	g, err := e.BuildGrid()
	if err != nil {
		return nil, err
	}
	return interp.FromFunc(g, func(x float64) float64 { return 1 / x })
}

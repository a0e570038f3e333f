// SPDX-License-Identifier: MIT

package bellman

import (
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/wagerig/optimize"
)

// Params are the dynamic parameters of the operator.
type Params struct {
	Lambda float64 `json:"lambda" yaml:"lambda"` // rigidity probability, in [0,1]
	Beta   float64 `json:"beta" yaml:"beta"`     // discount factor, in (0,1)
	Pi     float64 `json:"pi" yaml:"pi"`         // steady-state inflation, > −1
}

// Default dynamic calibration.
const (
	DefaultLambda = 0.8
	DefaultBeta   = 0.96
	DefaultPi     = 2.0
)

// DefaultParams returns the default calibration.
func DefaultParams() Params {
	return Params{Lambda: DefaultLambda, Beta: DefaultBeta, Pi: DefaultPi}
}

// Validate checks λ ∈ [0,1], β ∈ (0,1) and π > −1.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.Lambda) || p.Lambda < 0 || p.Lambda > 1:
		return fmt.Errorf("Params: lambda=%g must be in [0,1]: %w", p.Lambda, ErrDomain)
	case math.IsNaN(p.Beta) || p.Beta <= 0 || p.Beta >= 1:
		return fmt.Errorf("Params: beta=%g must be in (0,1): %w", p.Beta, ErrDomain)
	case math.IsNaN(p.Pi) || math.IsInf(p.Pi, 0) || p.Pi <= -1:
		return fmt.Errorf("Params: pi=%g must be > -1: %w", p.Pi, ErrDomain)
	}
	return nil
}

// Options configures execution, not the model.
type Options struct {
	// Workers bounds concurrent searches per sweep; ≤ 0 means GOMAXPROCS.
	Workers int
	// Optimizer performs every search; nil means optimize.NewBrent().
	// It must be safe for concurrent use.
	Optimizer optimize.Optimizer
	// Logger receives per-sweep debug records; nil means zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns GOMAXPROCS workers, a default Brent search and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		Optimizer: optimize.NewBrent(),
		Logger:    zap.NewNop(),
	}
}

// normalize fills zero fields with defaults.
func (o Options) normalize() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Optimizer == nil {
		o.Optimizer = optimize.NewBrent()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Choice is one regime's optimum: the continuation wage and its value g.
type Choice struct {
	Wage  float64 `json:"wage"`
	Value float64 `json:"value"`
}

// PolicyPoint is one row of a sweep: the state (Wage, Shock), the combined
// continuation value, and the two regime optima it was combined from.
//
// For every operator Value = (1−λ)·Unconstrained.Value + λ·Constrained.Value.
// For JointOperator both regimes share one notional wage x:
// Unconstrained.Wage = x and Constrained.Wage = max(x, y).
type PolicyPoint struct {
	Wage          float64 `json:"wage"`
	Shock         float64 `json:"shock"`
	Value         float64 `json:"value"`
	Unconstrained Choice  `json:"unconstrained"`
	Constrained   Choice  `json:"constrained"`
}

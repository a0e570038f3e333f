// SPDX-License-Identifier: MIT

package bellman

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
	"github.com/katalvlaran/wagerig/utility"
)

// JointOperator applies the rigidity weights to utilities before a single
// maximization. The worker sets one notional wage x; with probability λ the
// rigidity binds and the realized wage is max(x, y):
//
//	V(y, z) = max_{x ∈ [0, w̄]} (1−λ)·g(x, z) + λ·g(max(x, y), z)
//
// Since the same x serves both regimes, V(y, z) never exceeds the value of
// Operator at the same point.
type JointOperator struct {
	base
}

// NewJoint returns the joint-choice operator. Errors as New.
func NewJoint(g grid.Grid, shocks []float64, p Params, u utility.Func, opts Options) (*JointOperator, error) {
	b, err := newBase(g, shocks, p, u, opts)
	if err != nil {
		return nil, fmt.Errorf("NewJoint: %w", err)
	}
	return &JointOperator{base: b}, nil
}

// Apply runs one sweep against w. Errors as Operator.Apply, with
// PointError.Regime == Joint.
func (op *JointOperator) Apply(ctx context.Context, w *interp.ValueFunction) (*Sweep, error) {
	if err := checkIterate(w); err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	start := time.Now()
	g := op.continuation(w)
	lambda := op.params.Lambda
	// args: z, y
	h := func(x float64, args ...float64) float64 {
		z, y := args[0], args[1]
		return (1-lambda)*g(x, z) + lambda*g(math.Max(x, y), z)
	}
	wmax := op.grid.Max()
	nz := len(op.shocks)

	s := newSweep(op.grid, op.shocks)
	err := forEach(ctx, len(s.Points), op.opts.Workers, func(k int) error {
		i, j := k/nz, k%nz
		y, z := op.grid.At(i), op.shocks[j]
		c, err := op.maximize(h, 0, wmax, z, y)
		if err != nil {
			return &PointError{Wage: y, Shock: z, Regime: Joint, Err: err}
		}
		realized := math.Max(c.Wage, y)
		s.Points[k] = PolicyPoint{
			Wage:          y,
			Shock:         z,
			Value:         c.Value,
			Unconstrained: Choice{Wage: c.Wage, Value: g(c.Wage, z)},
			Constrained:   Choice{Wage: realized, Value: g(realized, z)},
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	op.logSweep("joint", s, start)
	return s, nil
}

// Step applies the operator and returns the shock-averaged iterate.
func (op *JointOperator) Step(ctx context.Context, w *interp.ValueFunction) (*interp.ValueFunction, error) {
	s, err := op.Apply(ctx, w)
	if err != nil {
		return nil, err
	}
	return s.Mean()
}

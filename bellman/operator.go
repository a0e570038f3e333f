// SPDX-License-Identifier: MIT

package bellman

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
	"github.com/katalvlaran/wagerig/optimize"
	"github.com/katalvlaran/wagerig/utility"
)

// base holds what every operator variant shares. All fields are read-only
// after construction.
type base struct {
	grid   grid.Grid
	shocks []float64
	params Params
	u      utility.Func
	opts   Options
}

// newBase validates the configuration shared by all operators.
func newBase(g grid.Grid, shocks []float64, p Params, u utility.Func, opts Options) (base, error) {
	if err := grid.ValidatePoints(g.Points()); err != nil {
		return base{}, err
	}
	if !(g.Max() > 0) {
		return base{}, fmt.Errorf("grid max=%g must be > 0: %w", g.Max(), ErrDomain)
	}
	if err := p.Validate(); err != nil {
		return base{}, err
	}
	if u == nil {
		return base{}, fmt.Errorf("nil utility: %w", ErrDomain)
	}
	if len(shocks) == 0 {
		return base{}, fmt.Errorf("no shocks: %w", ErrDomain)
	}
	for j, z := range shocks {
		if !(z > 0) || math.IsInf(z, 0) {
			return base{}, fmt.Errorf("shock %d = %g must be positive and finite: %w", j, z, ErrDomain)
		}
	}

	return base{
		grid:   g,
		shocks: slices.Clone(shocks),
		params: p,
		u:      u,
		opts:   opts.normalize(),
	}, nil
}

// continuation returns g(x, z) = Ω(x, z) + β·v(x/(1+π)). Points outside
// the utility's domain are −Inf so no search ever selects them.
func (b *base) continuation(w *interp.ValueFunction) func(x, z float64) float64 {
	beta, deflator := b.params.Beta, 1+b.params.Pi
	return func(x, z float64) float64 {
		u, err := b.u.Utility(x, z)
		if err != nil {
			return math.Inf(-1)
		}
		return u + beta*w.Evaluate(x/deflator)
	}
}

// minimizer is satisfied by optimizers that return the argmin and the value
// from one search (optimize.Brent).
type minimizer interface {
	Minimize(f optimize.Objective, a, b float64, args ...float64) (optimize.Result, error)
}

// maximize returns the maximizer of h on [a, b] and h at it.
func (b *base) maximize(h optimize.Objective, lo, hi float64, args ...float64) (Choice, error) {
	neg := optimize.Negate(h)
	if m, ok := b.opts.Optimizer.(minimizer); ok {
		res, err := m.Minimize(neg, lo, hi, args...)
		if err != nil {
			return Choice{}, err
		}
		return Choice{Wage: res.X, Value: -res.F}, nil
	}

	x, err := b.opts.Optimizer.Argmin(neg, lo, hi, args...)
	if err != nil {
		return Choice{}, err
	}
	v := h(x, args...)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Choice{}, fmt.Errorf("value %g at x=%g: %w", v, x, optimize.ErrOptimizationFailure)
	}
	return Choice{Wage: x, Value: v}, nil
}

// envelope reconciles one shock column of local searches with the nesting
// of their intervals: [y', w̄] ⊆ [y, w̄] ⊆ [0, w̄] for y ≤ y'. Brent only
// finds a local optimum, so a narrower interval can return a better point
// than a wider one. rigid[i] (the search from grid point i) is replaced in
// place by the best choice found at or above g.At(i), free included when
// its wage is feasible there, and the best unconstrained choice is
// returned. Afterwards the constrained value is nonincreasing in y and never
// exceeds the unconstrained one.
func envelope(g grid.Grid, free Choice, rigid []Choice) Choice {
	best := Choice{Value: math.Inf(-1)}
	for i := len(rigid) - 1; i >= 0; i-- {
		c := rigid[i]
		if best.Value > c.Value {
			c = best
		}
		if free.Wage >= g.At(i) && free.Value > c.Value {
			c = free
		}
		rigid[i] = c
		best = c
	}
	if best.Value > free.Value {
		return best
	}
	return free
}

// combine applies the rigidity weights.
func (b *base) combine(unconstrained, constrained Choice) float64 {
	return (1-b.params.Lambda)*unconstrained.Value + b.params.Lambda*constrained.Value
}

// logSweep records one completed sweep.
func (b *base) logSweep(name string, s *Sweep, start time.Time) {
	b.opts.Logger.Debug("bellman sweep",
		zap.String("operator", name),
		zap.Int("grid", s.Grid.Len()),
		zap.Int("shocks", len(s.Shocks)),
		zap.Int("points", len(s.Points)),
		zap.Duration("elapsed", time.Since(start)))
}

// Grid returns the operator's grid; every output iterate is tabulated on it.
func (b *base) Grid() grid.Grid { return b.grid }

// Shocks returns a copy of the operator's shocks.
func (b *base) Shocks() []float64 { return slices.Clone(b.shocks) }

// Params returns the operator's dynamic parameters.
func (b *base) Params() Params { return b.params }

func checkIterate(w *interp.ValueFunction) error {
	if w == nil {
		return fmt.Errorf("nil value function: %w", ErrDomain)
	}
	return nil
}

// Operator is the per-shock Bellman operator with rigidity weights applied
// to the two optimized values:
//
//	V(y, z) = (1−λ)·max_{[0, w̄]} g(·, z) + λ·max_{[y, w̄]} g(·, z)
type Operator struct {
	base
}

// New returns the per-shock operator.
//
// Errors: ErrDomain (see its doc) or a wrapped grid.ErrInvalidGrid for a
// zero Grid.
func New(g grid.Grid, shocks []float64, p Params, u utility.Func, opts Options) (*Operator, error) {
	b, err := newBase(g, shocks, p, u, opts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return &Operator{base: b}, nil
}

// Apply runs one sweep against the previous iterate w.
//
// Stage 1 solves the unconstrained problem once per shock; it does not
// depend on the current wage y. Stage 2 solves the constrained problem for
// every (y, z). Both stages run in parallel. The results of each shock
// column are then reconciled by envelope.
//
// Errors: *PointError wrapping optimize.ErrOptimizationFailure; ErrDomain
// for a nil w.
func (op *Operator) Apply(ctx context.Context, w *interp.ValueFunction) (*Sweep, error) {
	if err := checkIterate(w); err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	start := time.Now()
	g := op.continuation(w)
	h := func(x float64, args ...float64) float64 { return g(x, args[0]) }
	wmax := op.grid.Max()
	nz := len(op.shocks)

	free := make([]Choice, nz)
	err := forEach(ctx, nz, op.opts.Workers, func(j int) error {
		z := op.shocks[j]
		c, err := op.maximize(h, 0, wmax, z)
		if err != nil {
			return &PointError{Wage: math.NaN(), Shock: z, Regime: Unconstrained, Err: err}
		}
		free[j] = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	n := op.grid.Len()
	rigid := make([]Choice, n*nz) // shock-major: rigid[j*n+i]
	err = forEach(ctx, len(rigid), op.opts.Workers, func(k int) error {
		j, i := k/n, k%n
		y, z := op.grid.At(i), op.shocks[j]
		c, err := op.maximize(h, y, wmax, z)
		if err != nil {
			return &PointError{Wage: y, Shock: z, Regime: Constrained, Err: err}
		}
		rigid[k] = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	s := newSweep(op.grid, op.shocks)
	for j, z := range op.shocks {
		column := rigid[j*n : (j+1)*n]
		best := envelope(op.grid, free[j], column)
		for i, c := range column {
			s.Points[i*nz+j] = PolicyPoint{
				Wage:          op.grid.At(i),
				Shock:         z,
				Value:         op.combine(best, c),
				Unconstrained: best,
				Constrained:   c,
			}
		}
	}

	op.logSweep("per-shock", s, start)
	return s, nil
}

// Step applies the operator and returns the shock-averaged iterate.
func (op *Operator) Step(ctx context.Context, w *interp.ValueFunction) (*interp.ValueFunction, error) {
	s, err := op.Apply(ctx, w)
	if err != nil {
		return nil, err
	}
	return s.Mean()
}

// Apply is the one-shot form of Operator.Apply with default Options:
// it builds the per-shock operator for (g, shocks, p, u) and runs one sweep
// against w.
func Apply(ctx context.Context, w *interp.ValueFunction, g grid.Grid, shocks []float64, p Params, u utility.Func) (*Sweep, error) {
	op, err := New(g, shocks, p, u, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return op.Apply(ctx, w)
}

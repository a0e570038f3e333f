// SPDX-License-Identifier: MIT

package iterate

import (
	"context"
	"fmt"
	"iter"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/wagerig/interp"
)

// Driver advances a value function by repeated application of a Stepper.
// A Driver is not safe for concurrent use.
type Driver struct {
	op      Stepper
	current *interp.ValueFunction
	opts    Options

	sweeps int
	err    float64
	state  State
}

// New returns a driver starting from w0.
//
// Errors: ErrBadInput for a nil op or w0, Tol ≤ 0 (or NaN), or MaxIter ≤ 0.
func New(op Stepper, w0 *interp.ValueFunction, opts Options) (*Driver, error) {
	switch {
	case op == nil:
		return nil, fmt.Errorf("New: nil operator: %w", ErrBadInput)
	case w0 == nil:
		return nil, fmt.Errorf("New: nil initial guess: %w", ErrBadInput)
	case !(opts.Tol > 0):
		return nil, fmt.Errorf("New: tol=%g must be > 0: %w", opts.Tol, ErrBadInput)
	case opts.MaxIter <= 0:
		return nil, fmt.Errorf("New: max_iter=%d must be > 0: %w", opts.MaxIter, ErrBadInput)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Driver{op: op, current: w0, opts: opts, err: math.Inf(1), state: Running}, nil
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

// Current returns the latest complete iterate (w0 before the first sweep).
func (d *Driver) Current() *interp.ValueFunction { return d.current }

// Distance returns the error of the last sweep, +Inf before the first.
func (d *Driver) Distance() float64 { return d.err }

// Sweeps returns the number of completed sweeps.
func (d *Driver) Sweeps() int { return d.sweeps }

// Next performs one sweep.
//
// Errors:
//   - ErrTerminal once the driver is Converged or Exhausted.
//   - ctx.Err() if ctx is done before the sweep starts.
//   - the operator's error, or an interp error if the new iterate is on a
//     different grid. The driver state is unchanged on any error.
func (d *Driver) Next(ctx context.Context) (Step, error) {
	if d.state.Terminal() {
		return Step{}, ErrTerminal
	}
	if err := ctx.Err(); err != nil {
		return Step{}, err
	}

	next, err := d.op.Step(ctx, d.current)
	if err != nil {
		return Step{}, fmt.Errorf("Next: sweep %d: %w", d.sweeps+1, err)
	}
	dist, err := interp.SupDistance(next, d.current)
	if err != nil {
		return Step{}, fmt.Errorf("Next: sweep %d: %w", d.sweeps+1, err)
	}

	d.sweeps++
	d.current = next
	d.err = dist
	switch {
	case dist < d.opts.Tol:
		d.state = Converged
	case d.sweeps >= d.opts.MaxIter:
		d.state = Exhausted
	}

	step := Step{Index: d.sweeps, Iterate: next, Error: dist, State: d.state}
	d.opts.Logger.Debug("sweep",
		zap.Int("sweep", step.Index),
		zap.Float64("error", step.Error),
		zap.Stringer("state", step.State))
	if d.opts.OnStep != nil {
		d.opts.OnStep(step)
	}

	return step, nil
}

// All returns a lazy sequence of sweeps. Iteration stops after the terminal
// step, after an error (yielded once with a zero Step), or when the
// consumer breaks out of the loop.
func (d *Driver) All(ctx context.Context) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		for !d.state.Terminal() {
			step, err := d.Next(ctx)
			if err != nil {
				yield(Step{}, err)
				return
			}
			if !yield(step, nil) {
				return
			}
		}
	}
}

// Run sweeps until the driver is Converged or Exhausted.
//
// Errors: those of Next. Non-convergence is not an error; inspect the
// Outcome (or call ExhaustedOutcome.Err).
func (d *Driver) Run(ctx context.Context) (Outcome, error) {
	for _, err := range d.All(ctx) {
		if err != nil {
			return nil, err
		}
	}

	return d.outcome(), nil
}

// outcome builds the terminal result and logs it.
func (d *Driver) outcome() Outcome {
	if d.state == Converged {
		d.opts.Logger.Info("converged",
			zap.Int("sweeps", d.sweeps),
			zap.Float64("error", d.err),
			zap.Float64("tol", d.opts.Tol))
		return ConvergedOutcome{Iterate: d.current, Error: d.err, Count: d.sweeps}
	}

	d.opts.Logger.Warn("iteration budget exhausted",
		zap.Int("sweeps", d.sweeps),
		zap.Float64("error", d.err),
		zap.Float64("tol", d.opts.Tol))
	return ExhaustedOutcome{Iterate: d.current, Error: d.err, Count: d.sweeps}
}

// Solve is New followed by Run.
func Solve(ctx context.Context, op Stepper, w0 *interp.ValueFunction, opts Options) (Outcome, error) {
	d, err := New(op, w0, opts)
	if err != nil {
		return nil, err
	}
	return d.Run(ctx)
}

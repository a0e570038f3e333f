// SPDX-License-Identifier: MIT

package iterate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wagerig/interp"
)

var (
	// ErrNonConvergence is reported by ExhaustedOutcome.Err.
	ErrNonConvergence = errors.New("iterate: iteration budget exhausted before tolerance was met")

	// ErrTerminal is returned by Next after the driver reached a terminal state.
	ErrTerminal = errors.New("iterate: driver already in a terminal state")

	// ErrBadInput is returned for a nil operator or initial guess, a
	// non-positive tolerance or a non-positive iteration budget.
	ErrBadInput = errors.New("iterate: invalid input")
)

// Stepper maps an iterate to the next one. All bellman operators satisfy it.
// The returned iterate must be tabulated on the same grid as its input.
type Stepper interface {
	Step(ctx context.Context, w *interp.ValueFunction) (*interp.ValueFunction, error)
}

// State is the driver's position in its state machine.
type State int

const (
	Running State = iota
	Converged
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further sweeps will run.
func (s State) Terminal() bool { return s != Running }

// Step is the structured result of one sweep.
type Step struct {
	// Index is the 1-based sweep number.
	Index int
	// Iterate is Tv, the value function produced by this sweep.
	Iterate *interp.ValueFunction
	// Error is the sup-norm distance between Iterate and the previous iterate.
	Error float64
	// State is the driver state after this sweep.
	State State
}

// Options configures the driver.
type Options struct {
	// Tol is the sup-norm convergence threshold; must be > 0.
	Tol float64
	// MaxIter is the sweep budget; must be > 0.
	MaxIter int
	// Logger receives one Debug record per sweep and an Info/Warn record at
	// the terminal state; nil means zap.NewNop().
	Logger *zap.Logger
	// OnStep, if set, is called synchronously after every sweep. Use it for
	// progress reporting or rendering.
	OnStep func(Step)
}

// Defaults.
const (
	DefaultTol     = 1e-4
	DefaultMaxIter = 1000
)

// DefaultOptions returns DefaultTol, DefaultMaxIter and a no-op logger.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter, Logger: zap.NewNop()}
}

// Outcome is the terminal result of Run: Converged or Exhausted.
type Outcome interface {
	// Final returns the last iterate.
	Final() *interp.ValueFunction
	// Distance returns the sup-norm error of the last sweep.
	Distance() float64
	// Sweeps returns the number of sweeps performed.
	Sweeps() int
	// State returns Converged or Exhausted.
	State() State

	outcome()
}

// ConvergedOutcome is reached when a sweep's error falls below Tol.
type ConvergedOutcome struct {
	Iterate *interp.ValueFunction
	Error   float64
	Count   int
}

func (c ConvergedOutcome) Final() *interp.ValueFunction { return c.Iterate }
func (c ConvergedOutcome) Distance() float64            { return c.Error }
func (c ConvergedOutcome) Sweeps() int                  { return c.Count }
func (ConvergedOutcome) State() State                   { return Converged }
func (ConvergedOutcome) outcome()                       {}

// ExhaustedOutcome is reached when MaxIter sweeps ran without meeting Tol.
type ExhaustedOutcome struct {
	Iterate *interp.ValueFunction
	Error   float64
	Count   int
}

func (e ExhaustedOutcome) Final() *interp.ValueFunction { return e.Iterate }
func (e ExhaustedOutcome) Distance() float64            { return e.Error }
func (e ExhaustedOutcome) Sweeps() int                  { return e.Count }
func (ExhaustedOutcome) State() State                   { return Exhausted }
func (ExhaustedOutcome) outcome()                       {}

// Err returns ErrNonConvergence annotated with the sweep count and error.
func (e ExhaustedOutcome) Err() error {
	return fmt.Errorf("after %d sweeps, error %g: %w", e.Count, e.Error, ErrNonConvergence)
}

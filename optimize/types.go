// SPDX-License-Identifier: MIT

package optimize

import "errors"

// ErrOptimizationFailure is returned when no finite minimum can be produced:
// the interval is empty or the objective is non-finite everywhere searched.
var ErrOptimizationFailure = errors.New("optimize: optimization failure")

// Objective is a scalar function of x, optionally parameterized by extra
// arguments supplied at search time.
type Objective func(x float64, args ...float64) float64

// Optimizer is bounded univariate optimization over a closed interval.
//
// Implementations must be safe for concurrent use: the Bellman operator
// shares one Optimizer across all workers of a sweep.
type Optimizer interface {
	Argmin(f Objective, a, b float64, args ...float64) (float64, error)
	MinValue(f Objective, a, b float64, args ...float64) (float64, error)
	Argmax(f Objective, a, b float64, args ...float64) (float64, error)
	MaxValue(f Objective, a, b float64, args ...float64) (float64, error)
}

// Result is the outcome of one bounded search.
type Result struct {
	// X is the best point found, a ≤ X ≤ b.
	X float64
	// F is the objective at X.
	F float64
	// Evals is the number of objective calls.
	Evals int
	// Converged is false when the evaluation budget ran out before the
	// bracket shrank below tolerance.
	Converged bool
}

// Defaults mirror scipy's fminbound.
const (
	// DefaultXTol is the absolute tolerance on the minimizer.
	DefaultXTol = 1e-5

	// DefaultMaxEval caps objective evaluations per search.
	DefaultMaxEval = 500
)

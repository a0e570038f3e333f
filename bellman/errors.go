// SPDX-License-Identifier: MIT

package bellman

import (
	"errors"
	"fmt"
)

// ErrDomain is returned for invalid operator configuration: rigidity weight
// outside [0,1], discount factor outside (0,1), π ≤ −1, grid maximum ≤ 0,
// empty or non-positive shocks, or a nil utility / value function.
var ErrDomain = errors.New("bellman: parameter outside domain")

// Regime names the search that failed.
type Regime string

const (
	Unconstrained Regime = "unconstrained" // x ∈ [0, w̄]
	Constrained   Regime = "constrained"   // x ∈ [y, w̄]
	Joint         Regime = "joint"         // JointOperator's single search
)

// PointError tags an optimization failure with the grid point and shock at
// which it happened. It unwraps to the optimizer's error, so
// errors.Is(err, optimize.ErrOptimizationFailure) holds.
type PointError struct {
	// Wage is the current wage y of the failed search. The unconstrained
	// search does not depend on y, so Wage is NaN for Regime Unconstrained.
	Wage   float64
	Shock  float64
	Regime Regime
	Err    error
}

func (e *PointError) Error() string {
	if e.Regime == Unconstrained {
		return fmt.Sprintf("bellman: %s search at z=%g: %v", e.Regime, e.Shock, e.Err)
	}
	return fmt.Sprintf("bellman: %s search at (y=%g, z=%g): %v", e.Regime, e.Wage, e.Shock, e.Err)
}

func (e *PointError) Unwrap() error { return e.Err }

// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var operators = map[string]bool{OperatorPerShock: true, OperatorJoint: true, OperatorMeanShock: true}

// Validate checks every section. The returned error wraps ErrInvalid and,
// where a core package rejected the value, that package's sentinel too.
func (e *Experiment) Validate() error {
	if _, err := e.BuildGrid(); err != nil {
		return invalid("grid", err)
	}
	if !(e.Grid.Max > 0) {
		return invalid("grid", fmt.Errorf("max=%g must be > 0", e.Grid.Max))
	}
	if e.Shocks.Count < 1 {
		return invalid("shocks", fmt.Errorf("count=%d must be ≥ 1", e.Shocks.Count))
	}
	if err := e.Distribution().Validate(); err != nil {
		return invalid("shocks", err)
	}
	if err := e.Params().Validate(); err != nil {
		return invalid("model", err)
	}
	if err := e.UtilityParams().Validate(); err != nil {
		return invalid("model", err)
	}

	s := e.Solver
	switch {
	case !(s.Tol > 0) || math.IsInf(s.Tol, 0):
		return invalid("solver", fmt.Errorf("tol=%g must be > 0", s.Tol))
	case s.MaxIter <= 0:
		return invalid("solver", fmt.Errorf("max_iter=%d must be > 0", s.MaxIter))
	case s.Workers < 0:
		return invalid("solver", fmt.Errorf("workers=%d must be ≥ 0", s.Workers))
	case !(s.XTol > 0) || math.IsInf(s.XTol, 0):
		return invalid("solver", fmt.Errorf("xtol=%g must be > 0", s.XTol))
	case s.MaxEval <= 0:
		return invalid("solver", fmt.Errorf("max_eval=%d must be > 0", s.MaxEval))
	case !operators[s.Operator]:
		return invalid("solver", fmt.Errorf("unknown operator %q (valid: per-shock, joint, mean-shock)", s.Operator))
	}

	if !logLevels[e.Logging.Level] {
		return invalid("logging", fmt.Errorf("unknown level %q (valid: debug, info, warn, error)", e.Logging.Level))
	}
	return nil
}

func invalid(section string, err error) error {
	return fmt.Errorf("%s: %w: %w", section, ErrInvalid, err)
}

// SPDX-License-Identifier: MIT

// Package utility defines the worker's period utility Ω(w, z): wage income
// net of the disutility of the labor hours demanded at that wage.
//
//	Ω(w, z) = w^(1−η) − γ/(γ+1) · z · (w^(−η) · L)^((γ+1)/γ)
//
// with η the elasticity of labor demand, γ the labor-supply elasticity, L
// aggregate labor and z the idiosyncratic disutility shock. Ω is defined
// for w > 0 only.
package utility

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned for arguments outside the model's domain, such as a
// non-positive wage or non-positive elasticities.
var ErrDomain = errors.New("utility: argument outside domain")

// Func is any period utility of (wage, shock). Implementations must be pure
// and safe for concurrent use, and must return ErrDomain for wage <= 0.
type Func interface {
	Utility(wage, shock float64) (float64, error)
}

// Params holds the structural parameters of Ω.
type Params struct {
	Eta   float64 `json:"eta" yaml:"eta"`     // labor-demand elasticity, > 1
	Gamma float64 `json:"gamma" yaml:"gamma"` // labor-supply elasticity, > 0
	AggL  float64 `json:"agg_l" yaml:"agg_l"` // aggregate labor, > 0
}

// Default calibration.
const (
	DefaultEta   = 2.5
	DefaultGamma = 0.5
	DefaultAggL  = 0.85049063822172699
)

// DefaultParams returns the default calibration.
func DefaultParams() Params {
	return Params{Eta: DefaultEta, Gamma: DefaultGamma, AggL: DefaultAggL}
}

// Validate checks Eta > 1, Gamma > 0 and AggL > 0, all finite.
func (p Params) Validate() error {
	switch {
	case !finite(p.Eta) || p.Eta <= 1:
		return fmt.Errorf("Params: eta=%g must be > 1: %w", p.Eta, ErrDomain)
	case !finite(p.Gamma) || p.Gamma <= 0:
		return fmt.Errorf("Params: gamma=%g must be > 0: %w", p.Gamma, ErrDomain)
	case !finite(p.AggL) || p.AggL <= 0:
		return fmt.Errorf("Params: agg_l=%g must be > 0: %w", p.AggL, ErrDomain)
	}
	return nil
}

// Eval computes Ω(wage, shock) for the given parameters.
//
// Errors: ErrDomain if wage <= 0 or wage is NaN.
func Eval(wage, shock, eta, gamma, aggL float64) (float64, error) {
	if !(wage > 0) {
		return 0, fmt.Errorf("Eval: wage=%g: %w", wage, ErrDomain)
	}
	hours := math.Pow(wage, -eta) * aggL
	disutility := gamma / (gamma + 1) * shock * math.Pow(hours, (gamma+1)/gamma)

	return math.Pow(wage, 1-eta) - disutility, nil
}

// Labor is the default Func, Ω with fixed Params.
type Labor struct {
	Params
}

// NewLabor validates p and returns the utility.
func NewLabor(p Params) (Labor, error) {
	if err := p.Validate(); err != nil {
		return Labor{}, err
	}
	return Labor{Params: p}, nil
}

// Utility implements Func.
func (l Labor) Utility(wage, shock float64) (float64, error) {
	return Eval(wage, shock, l.Eta, l.Gamma, l.AggL)
}

// FlexibleWage is the closed-form maximizer of Ω(·, shock) with no
// continuation value: the static flexible-wage optimum
//
//	w* = ((η/(η−1)) · z · L^((γ+1)/γ))^(γ/(γ+η)).
//
// It is the reference point for checking the optimizer.
func (l Labor) FlexibleWage(shock float64) float64 {
	k := (l.Gamma + 1) / l.Gamma
	base := l.Eta / (l.Eta - 1) * shock * math.Pow(l.AggL, k)

	return math.Pow(base, l.Gamma/(l.Gamma+l.Eta))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// SPDX-License-Identifier: MIT

// Package config loads wagerig experiment settings from YAML and turns them
// into the core types of the solver packages.
//
// Loading order is defaults, then the YAML file (if any), then environment
// variables:
//
//	WAGERIG_LOG_LEVEL  overrides logging.level
//	WAGERIG_WORKERS    overrides solver.workers
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wagerig/bellman"
	"github.com/katalvlaran/wagerig/iterate"
	"github.com/katalvlaran/wagerig/optimize"
	"github.com/katalvlaran/wagerig/shock"
	"github.com/katalvlaran/wagerig/utility"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Operator names accepted in solver.operator.
const (
	OperatorPerShock  = "per-shock"
	OperatorJoint     = "joint"
	OperatorMeanShock = "mean-shock"
)

// Experiment contains every setting of one solver run.
type Experiment struct {
	Grid    GridConfig    `json:"grid" yaml:"grid"`
	Shocks  ShockConfig   `json:"shocks" yaml:"shocks"`
	Model   ModelConfig   `json:"model" yaml:"model"`
	Solver  SolverConfig  `json:"solver" yaml:"solver"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GridConfig describes an evenly spaced wage grid.
type GridConfig struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Points int     `json:"points" yaml:"points"`
}

// ShockConfig describes the productivity shock panel.
type ShockConfig struct {
	// Count is the number of draws.
	Count int `json:"count" yaml:"count"`

	// Location and Scale are the mean and standard deviation of log z.
	Location float64 `json:"location" yaml:"location"`
	Scale    float64 `json:"scale" yaml:"scale"`

	// Lower and Upper are the truncation quantiles.
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`

	// Seed makes the panel reproducible. 0 selects the default seed.
	Seed int64 `json:"seed" yaml:"seed"`

	// Panel selects one of the independent panels drawn under Seed, for
	// repeating an experiment on fresh shocks.
	Panel uint64 `json:"panel" yaml:"panel"`
}

// ModelConfig holds the economic calibration.
type ModelConfig struct {
	Beta   float64 `json:"beta" yaml:"beta"`
	Lambda float64 `json:"lambda" yaml:"lambda"`
	Pi     float64 `json:"pi" yaml:"pi"`
	Eta    float64 `json:"eta" yaml:"eta"`
	Gamma  float64 `json:"gamma" yaml:"gamma"`
	AggL   float64 `json:"agg_l" yaml:"agg_l"`
}

// SolverConfig controls the iteration and the inner searches.
type SolverConfig struct {
	Tol     float64 `json:"tol" yaml:"tol"`
	MaxIter int     `json:"max_iter" yaml:"max_iter"`

	// Workers bounds concurrent searches per sweep; 0 means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`

	XTol    float64 `json:"xtol" yaml:"xtol"`
	MaxEval int     `json:"max_eval" yaml:"max_eval"`

	// Operator is one of "per-shock" (default), "joint" or "mean-shock".
	Operator string `json:"operator" yaml:"operator"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	// Level is "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`
}

// Default returns the reference calibration.
func Default() *Experiment {
	dist := shock.DefaultDistribution()
	model := bellman.DefaultParams()
	pref := utility.DefaultParams()

	return &Experiment{
		Grid: GridConfig{Min: 0.1, Max: 4, Points: 100},
		Shocks: ShockConfig{
			Count:    shock.DefaultCount,
			Location: dist.Location,
			Scale:    dist.Scale,
			Lower:    dist.Lower,
			Upper:    dist.Upper,
			Seed:     42,
		},
		Model: ModelConfig{
			Beta:   model.Beta,
			Lambda: model.Lambda,
			Pi:     model.Pi,
			Eta:    pref.Eta,
			Gamma:  pref.Gamma,
			AggL:   pref.AggL,
		},
		Solver: SolverConfig{
			Tol:      iterate.DefaultTol,
			MaxIter:  iterate.DefaultMaxIter,
			XTol:     optimize.DefaultXTol,
			MaxEval:  optimize.DefaultMaxEval,
			Operator: OperatorPerShock,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load returns the defaults overlaid by the YAML file at path and then by
// the environment. An empty path skips the file.
func Load(path string) (*Experiment, error) {
	exp := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := exp.decode(data); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(exp); err != nil {
		return nil, err
	}

	return exp, nil
}

// Parse returns the defaults overlaid by YAML data.
func Parse(data []byte) (*Experiment, error) {
	exp := Default()
	if err := exp.decode(data); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return exp, nil
}

// decode overlays data onto e, rejecting unknown keys.
func (e *Experiment) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(e); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// YAML renders the experiment as a YAML document.
func (e *Experiment) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// applyEnvOverrides applies WAGERIG_* variables to exp.
func applyEnvOverrides(exp *Experiment) error {
	if v := os.Getenv("WAGERIG_LOG_LEVEL"); v != "" {
		exp.Logging.Level = v
	}
	if v := os.Getenv("WAGERIG_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WAGERIG_WORKERS=%q: %w", v, err)
		}
		exp.Solver.Workers = n
	}
	return nil
}

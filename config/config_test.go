package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wagerig/bellman"
	"github.com/katalvlaran/wagerig/config"
	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/shock"
	"github.com/katalvlaran/wagerig/utility"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	exp := config.Default()
	require.NoError(t, exp.Validate())

	want := &config.Experiment{
		Grid: config.GridConfig{Min: 0.1, Max: 4, Points: 100},
		Shocks: config.ShockConfig{
			Count: 30, Location: shock.DefaultDistribution().Location, Scale: 0.2, Lower: 0.05, Upper: 0.95, Seed: 42,
		},
		Model: config.ModelConfig{
			Beta: 0.96, Lambda: 0.8, Pi: 2, Eta: 2.5, Gamma: 0.5, AggL: 0.85049063822172699,
		},
		Solver: config.SolverConfig{
			Tol: 1e-4, MaxIter: 1000, XTol: 1e-5, MaxEval: 500, Operator: config.OperatorPerShock,
		},
		Logging: config.LoggingConfig{Level: "info"},
	}
	if diff := cmp.Diff(want, exp); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
grid:
  points: 20
model:
  lambda: 0.5
solver:
  operator: joint
  workers: 2
logging:
  level: debug
`)
	exp, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Grid.Points = 20
	want.Model.Lambda = 0.5
	want.Solver.Operator = config.OperatorJoint
	want.Solver.Workers = 2
	want.Logging.Level = "debug"
	if diff := cmp.Diff(want, exp); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyPathAndEmptyFile(t *testing.T) {
	exp, err := config.Load("")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(config.Default(), exp))

	exp, err = config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(config.Default(), exp))
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "grid:\n  pionts: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeConfig(t, "grid: [1, 2"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WAGERIG_LOG_LEVEL", "warn")
	t.Setenv("WAGERIG_WORKERS", "3")

	exp, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", exp.Logging.Level)
	assert.Equal(t, 3, exp.Solver.Workers)

	t.Setenv("WAGERIG_WORKERS", "many")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Experiment)
		also   error
	}{
		{"one grid point", func(e *config.Experiment) { e.Grid.Points = 1 }, grid.ErrInvalidGrid},
		{"reversed grid", func(e *config.Experiment) { e.Grid.Min, e.Grid.Max = 4, 0.1 }, grid.ErrInvalidGrid},
		{"non-positive max", func(e *config.Experiment) { e.Grid.Min, e.Grid.Max = -2, -1 }, nil},
		{"no shocks", func(e *config.Experiment) { e.Shocks.Count = 0 }, nil},
		{"zero scale", func(e *config.Experiment) { e.Shocks.Scale = 0 }, shock.ErrDomain},
		{"quantiles reversed", func(e *config.Experiment) { e.Shocks.Lower = 0.9; e.Shocks.Upper = 0.1 }, shock.ErrDomain},
		{"beta one", func(e *config.Experiment) { e.Model.Beta = 1 }, bellman.ErrDomain},
		{"lambda above one", func(e *config.Experiment) { e.Model.Lambda = 1.5 }, bellman.ErrDomain},
		{"eta one", func(e *config.Experiment) { e.Model.Eta = 1 }, utility.ErrDomain},
		{"zero tol", func(e *config.Experiment) { e.Solver.Tol = 0 }, nil},
		{"zero max_iter", func(e *config.Experiment) { e.Solver.MaxIter = 0 }, nil},
		{"negative workers", func(e *config.Experiment) { e.Solver.Workers = -1 }, nil},
		{"zero xtol", func(e *config.Experiment) { e.Solver.XTol = 0 }, nil},
		{"zero max_eval", func(e *config.Experiment) { e.Solver.MaxEval = 0 }, nil},
		{"unknown operator", func(e *config.Experiment) { e.Solver.Operator = "sideways" }, nil},
		{"unknown level", func(e *config.Experiment) { e.Logging.Level = "trace" }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exp := config.Default()
			tc.mutate(exp)
			err := exp.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			if tc.also != nil {
				assert.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	exp := config.Default()
	exp.Solver.Operator = config.OperatorMeanShock

	data, err := exp.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "agg_l:")
	assert.Contains(t, string(data), "operator: mean-shock")

	back, err := config.Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(exp, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleShocks_Seeded(t *testing.T) {
	exp := config.Default()
	a, err := exp.SampleShocks()
	require.NoError(t, err)
	b, err := exp.SampleShocks()
	require.NoError(t, err)

	require.Len(t, a, 30)
	assert.Equal(t, a, b)
	assert.IsNonDecreasing(t, a)

	exp.Shocks.Seed = 7
	c, err := exp.SampleShocks()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSampleShocks_Panels(t *testing.T) {
	exp := config.Default()
	base, err := exp.SampleShocks()
	require.NoError(t, err)

	direct, err := shock.NewSampler(shock.NewRand(exp.Shocks.Seed)).Sample(exp.Shocks.Count, exp.Distribution())
	require.NoError(t, err)
	assert.Equal(t, direct, base, "panel 0 is the seed's own stream")

	exp.Shocks.Panel = 3
	third, err := exp.SampleShocks()
	require.NoError(t, err)
	assert.NotEqual(t, base, third)

	again, err := exp.SampleShocks()
	require.NoError(t, err)
	assert.Equal(t, third, again)

	parsed, err := config.Parse([]byte("shocks:\n  panel: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), parsed.Shocks.Panel)
}

func TestBuildOperator(t *testing.T) {
	small := func(op string) *config.Experiment {
		exp := config.Default()
		exp.Grid.Points = 8
		exp.Shocks.Count = 3
		exp.Solver.Operator = op
		return exp
	}

	for _, name := range []string{config.OperatorPerShock, config.OperatorJoint, config.OperatorMeanShock} {
		t.Run(name, func(t *testing.T) {
			exp := small(name)
			op, err := exp.BuildOperator(nil)
			require.NoError(t, err)
			assert.Equal(t, 8, op.Grid().Len())
			assert.Len(t, op.Shocks(), 3)

			w0, err := exp.InitialGuess()
			require.NoError(t, err)
			s, err := op.Apply(context.Background(), w0)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Points)
		})
	}

	bad := small(config.OperatorPerShock)
	bad.Model.Beta = 2
	_, err := bad.BuildOperator(nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestDriverOptions(t *testing.T) {
	exp := config.Default()
	exp.Solver.Tol = 1e-6
	exp.Solver.MaxIter = 5

	opts := exp.DriverOptions(nil)
	assert.Equal(t, 1e-6, opts.Tol)
	assert.Equal(t, 5, opts.MaxIter)
	assert.NotNil(t, opts.Logger)
}

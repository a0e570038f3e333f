package bellman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wagerig/bellman"
	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
	"github.com/katalvlaran/wagerig/optimize"
	"github.com/katalvlaran/wagerig/utility"
)

// tol absorbs the optimizer's tolerance when comparing values of searches
// over different intervals.
const tol = 1e-6

// referenceShocks is a small symmetric panel around 1.
var referenceShocks = []float64{0.9, 0.95, 1.0, 1.05, 1.1}

// referenceGrid is linspace(0.1, 4, 100).
func referenceGrid(t *testing.T) grid.Grid {
	t.Helper()
	g, err := grid.Linspace(0.1, 4, 100)
	require.NoError(t, err)
	return g
}

// inverse is the initial guess w0(x) = 1/x.
func inverse(t *testing.T, g grid.Grid) *interp.ValueFunction {
	t.Helper()
	w0, err := interp.FromFunc(g, func(x float64) float64 { return 1 / x })
	require.NoError(t, err)
	return w0
}

// labor is the default period utility.
func labor(t *testing.T) utility.Labor {
	t.Helper()
	u, err := utility.NewLabor(utility.DefaultParams())
	require.NoError(t, err)
	return u
}

// newOperator builds the per-shock operator on the reference setup.
func newOperator(t *testing.T, g grid.Grid, p bellman.Params, opts bellman.Options) *bellman.Operator {
	t.Helper()
	op, err := bellman.New(g, referenceShocks, p, labor(t), opts)
	require.NoError(t, err)
	return op
}

// argminOnly hides Brent.Minimize so the operator takes the
// Argmin-then-evaluate path.
type argminOnly struct{ b *optimize.Brent }

func (a argminOnly) Argmin(f optimize.Objective, lo, hi float64, args ...float64) (float64, error) {
	return a.b.Argmin(f, lo, hi, args...)
}

func (a argminOnly) MinValue(f optimize.Objective, lo, hi float64, args ...float64) (float64, error) {
	return a.b.MinValue(f, lo, hi, args...)
}

func (a argminOnly) Argmax(f optimize.Objective, lo, hi float64, args ...float64) (float64, error) {
	return a.b.Argmax(f, lo, hi, args...)
}

func (a argminOnly) MaxValue(f optimize.Objective, lo, hi float64, args ...float64) (float64, error) {
	return a.b.MaxValue(f, lo, hi, args...)
}

// broken is a utility that is undefined everywhere.
type broken struct{}

func (broken) Utility(float64, float64) (float64, error) { return 0, utility.ErrDomain }

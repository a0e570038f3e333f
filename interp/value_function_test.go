package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
)

const eps = 1e-9

// mustGrid builds a grid or aborts the test.
func mustGrid(t *testing.T, pts ...float64) grid.Grid {
	t.Helper()
	g, err := grid.New(pts)
	require.NoError(t, err)
	return g
}

// TestNew_LengthMismatch rejects value slices that do not match the grid.
func TestNew_LengthMismatch(t *testing.T) {
	g := mustGrid(t, 0, 1, 2)

	_, err := interp.New(g, []float64{1, 2})
	assert.ErrorIs(t, err, interp.ErrInvalidGrid)
	assert.ErrorIs(t, err, grid.ErrInvalidGrid, "re-export must match the grid sentinel")

	_, err = interp.New(grid.Grid{}, nil)
	assert.ErrorIs(t, err, interp.ErrInvalidGrid, "zero Grid is not a valid node set")
}

// TestNew_NonFinite rejects NaN and Inf values.
func TestNew_NonFinite(t *testing.T) {
	g := mustGrid(t, 0, 1)

	_, err := interp.New(g, []float64{math.NaN(), 1})
	assert.ErrorIs(t, err, interp.ErrNonFinite)

	_, err = interp.New(g, []float64{1, math.Inf(-1)})
	assert.ErrorIs(t, err, interp.ErrNonFinite)
}

// TestEvaluate_Nodes checks exact recovery of tabulated values.
func TestEvaluate_Nodes(t *testing.T) {
	g, err := grid.Linspace(0.1, 4, 100)
	require.NoError(t, err)
	vf, err := interp.FromFunc(g, func(x float64) float64 { return 1 / x })
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		assert.InDelta(t, vf.At(i), vf.Evaluate(g.At(i)), eps, "node %d", i)
	}
}

// TestEvaluate_Interior checks linear interpolation between nodes.
func TestEvaluate_Interior(t *testing.T) {
	vf, err := interp.New(mustGrid(t, 0, 1, 3), []float64{0, 10, 30})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, vf.Evaluate(0.5), eps)
	assert.InDelta(t, 20.0, vf.Evaluate(2), eps)
	assert.InDelta(t, 27.5, vf.Evaluate(2.75), eps)
}

// TestEvaluate_FlatExtrapolation verifies the boundary policy on both sides.
func TestEvaluate_FlatExtrapolation(t *testing.T) {
	vf, err := interp.New(mustGrid(t, 0.1, 1, 2), []float64{10, 1, 0.5})
	require.NoError(t, err)

	assert.Equal(t, 10.0, vf.Evaluate(0.0), "below Min uses first value")
	assert.Equal(t, 10.0, vf.Evaluate(-5), "far below Min uses first value")
	assert.Equal(t, 0.5, vf.Evaluate(2.5), "above Max uses last value")
}

// TestValues_Copy ensures the returned slice does not alias internal state.
func TestValues_Copy(t *testing.T) {
	vf, err := interp.New(mustGrid(t, 0, 1), []float64{1, 2})
	require.NoError(t, err)

	vals := vf.Values()
	vals[0] = 100
	assert.Equal(t, 1.0, vf.Evaluate(0))
}

// TestSupDistance measures the elementwise max absolute difference.
func TestSupDistance(t *testing.T) {
	g := mustGrid(t, 0, 1, 2)
	a, _ := interp.New(g, []float64{1, 2, 3})
	b, _ := interp.New(g, []float64{1, 2.5, 1})

	d, err := interp.SupDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d, eps)

	c, _ := interp.New(mustGrid(t, 0, 1, 3), []float64{1, 2, 3})
	_, err = interp.SupDistance(a, c)
	assert.ErrorIs(t, err, interp.ErrGridMismatch)
}

// TestMean averages node-wise and validates input.
func TestMean(t *testing.T) {
	g := mustGrid(t, 0, 1)
	a, _ := interp.New(g, []float64{1, 3})
	b, _ := interp.New(g, []float64{3, 5})

	m, err := interp.Mean(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 4}, m.Values(), eps)
	assert.True(t, m.Grid().Equal(g))

	_, err = interp.Mean()
	assert.ErrorIs(t, err, interp.ErrEmpty)

	c, _ := interp.New(mustGrid(t, 0, 2), []float64{0, 0})
	_, err = interp.Mean(a, c)
	assert.ErrorIs(t, err, interp.ErrGridMismatch)
}

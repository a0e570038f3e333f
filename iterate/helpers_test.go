package iterate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wagerig/grid"
	"github.com/katalvlaran/wagerig/interp"
)

// halving maps v to v/2 + 1. Starting from zero the sweep errors are
// exactly 1, 1/2, 1/4, ... and the fixed point is 2.
type halving struct{ calls int }

func (h *halving) Step(_ context.Context, w *interp.ValueFunction) (*interp.ValueFunction, error) {
	h.calls++
	vals := w.Values()
	for i := range vals {
		vals[i] = vals[i]/2 + 1
	}
	return interp.New(w.Grid(), vals)
}

var errBoom = errors.New("boom")

// failing returns errBoom from the sweep numbered failAt (1-based) onward.
type failing struct {
	inner  halving
	failAt int
}

func (f *failing) Step(ctx context.Context, w *interp.ValueFunction) (*interp.ValueFunction, error) {
	if f.inner.calls+1 >= f.failAt {
		return nil, errBoom
	}
	return f.inner.Step(ctx, w)
}

// regridding returns an iterate on a different grid.
type regridding struct{}

func (regridding) Step(_ context.Context, w *interp.ValueFunction) (*interp.ValueFunction, error) {
	g, err := grid.Linspace(0, 1, w.Grid().Len()+1)
	if err != nil {
		return nil, err
	}
	return interp.FromFunc(g, func(float64) float64 { return 0 })
}

func zeros(t *testing.T) *interp.ValueFunction {
	t.Helper()
	g, err := grid.Linspace(0, 1, 5)
	require.NoError(t, err)
	w0, err := interp.FromFunc(g, func(float64) float64 { return 0 })
	require.NoError(t, err)
	return w0
}

// Package grid defines the wage grid that bounds the state space of the
// wage-setting problem.
//
// What is a Grid?
//
//	An ordered, strictly increasing sequence of wage levels w₀ < w₁ < … < wₙ₋₁
//	with n ≥ 2. The grid is the set of nodes on which value functions are
//	tabulated and it fixes the optimization search interval [0, Max()].
//
// Key properties:
//   - Immutable: the constructor copies its input and accessors return copies.
//   - Validated once: New and Linspace reject short, unordered or non-finite
//     input with ErrInvalidGrid.
//   - Safe for concurrent reads; there is no mutating method.
//
// Usage:
//
//	g, err := grid.Linspace(0.1, 4, 100)
//	if err != nil {
//	    // errors.Is(err, grid.ErrInvalidGrid)
//	}
//	lo, hi := g.Min(), g.Max()
package grid

// Package interp implements the piecewise-linear value function used by the
// Bellman iteration.
//
// A ValueFunction pairs a grid.Grid with one finite value per node:
//
//	v(x) = values[i] + (x - x_i)·(values[i+1] - values[i])/(x_{i+1} - x_i)   for x_i ≤ x ≤ x_{i+1}
//	v(x) = values[0]      for x < x_0
//	v(x) = values[n-1]    for x > x_{n-1}
//
// Flat extrapolation is deliberate: inflation-discounted continuation wages
// x/(1+π) routinely fall below the grid minimum, and extending the boundary
// segment would manufacture values the model never computed.
//
// ValueFunction is immutable after construction. Many goroutines may call
// Evaluate on the same instance while a Bellman sweep runs.
package interp

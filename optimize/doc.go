// Package optimize provides bounded scalar minimization and the matching
// maximization convention used by the Bellman operator.
//
// What is provided?
//
//	Optimizer — an interface with four explicitly named operations:
//	  • Argmin(f, a, b, args...)   — the minimizer of f on [a, b]
//	  • MinValue(f, a, b, args...) — f at that minimizer
//	  • Argmax(f, a, b, args...)   — Argmin of −f
//	  • MaxValue(f, a, b, args...) — −MinValue(−f)
//	Brent — bounded Brent search (golden section with parabolic
//	  interpolation), the classic fminbound scheme.
//
// Extra arguments are forwarded to the objective on every call. The Bellman
// operator passes the current shock this way so one objective serves every
// shock.
//
// Errors:
//   - ErrOptimizationFailure — empty interval (a > b), NaN bounds, or no
//     finite objective value seen anywhere searched.
//
// Running out of evaluations is NOT an error: Minimize reports it through
// Result.Converged and returns the best point found.
//
// Complexity: at most MaxEval objective calls per search; O(1) memory.
package optimize

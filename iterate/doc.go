// Package iterate drives a Bellman operator to its fixed point.
//
// State machine:
//
//	Running ──sweep, error ≥ tol, k < MaxIter──▶ Running
//	Running ──sweep, error < tol──────────────▶ Converged
//	Running ──sweep k == MaxIter, error ≥ tol─▶ Exhausted
//
// Each sweep computes Tv from the previous iterate v and measures
// error = max_i |Tv(x_i) − v(x_i)| on the grid. Sweeps are strictly
// sequential; parallelism lives inside a sweep (see package bellman).
//
// Three ways to consume the driver:
//   - Next(ctx) — one sweep, returns a Step (iterate, error, state).
//   - All(ctx)  — a lazy iter.Seq2 of Steps, ending after the terminal step.
//   - Run(ctx)  — runs to a terminal state and returns an Outcome.
//
// Outcome is either Converged or Exhausted. Running out of iterations is
// not an error: Exhausted carries the last iterate and its error so the
// caller decides whether the approximation is good enough; Exhausted.Err
// converts it to ErrNonConvergence on request.
//
// Cancellation: ctx is checked before every sweep. A cancelled driver keeps
// its last complete iterate and can be resumed with a fresh context.
package iterate

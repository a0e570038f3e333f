// Package bellman implements the Bellman operator of the wage-setting
// problem under partial downward nominal wage rigidity.
//
// Model:
//
//	g(x, z) = Ω(x, z) + β · v(x / (1+π))
//	V(y, z) = (1−λ) · max_{x ∈ [0, w̄]} g(x, z) + λ · max_{x ∈ [y, w̄]} g(x, z)
//
// y is the current wage (a grid point), z the observed shock, w̄ = grid.Max(),
// λ the probability that the reset wage may not fall below y, β the discount
// factor and π steady-state inflation, which erodes the real continuation
// wage. Maximization is carried out as minimization of −g.
//
// Operators:
//   - Operator — per-shock timing: the worker observes z, then chooses.
//     One search per (y, z) and regime. This is the model.
//   - JointOperator — one notional wage x per (y, z), realized as max(x, y)
//     with probability λ; the regime weights apply to utilities before a
//     single joint maximization.
//   - MeanShockOperator — Deprecated expected-shock timing: one search per y
//     against mean_z Ω(x, z). Different information timing, kept for
//     comparison only.
//
// Output:
//
//	Apply returns a Sweep: the full grid × shock table of PolicyPoint rows
//	(the primary, disaggregated result), from which ByShock, Mean and the
//	wage schedules are derived. Step returns Mean, the shock-averaged
//	iterate fed back into the next sweep (shocks are i.i.d., so the
//	continuation value does not depend on today's z).
//
// Concurrency:
//
//	Within a sweep every (y, z) search is independent and reads only the
//	previous iterate, the grid and the shocks, all immutable. Searches run on
//	an errgroup bounded by Options.Workers; each writes only its own slot of
//	a preallocated table and Wait is the barrier before assembly. A failed
//	search aborts the sweep. The caller's context is not consulted inside a
//	sweep: cancellation takes effect between sweeps.
package bellman

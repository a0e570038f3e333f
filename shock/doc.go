// Package shock samples idiosyncratic productivity (disutility) shocks from
// a truncated log-normal distribution.
//
// Model:
//
//	log z ~ N(location, scale²) truncated to its [lower, upper] quantile band
//	z     = exp(log z)
//
// Sampling is by inverse CDF: u ~ U(lower, upper), log z = Φ⁻¹(u). This is
// exact for a quantile-truncated normal and never rejects a draw.
//
// Determinism:
//   - The random source is always supplied by the caller (NewSampler).
//   - NewRand(seed) builds a reproducible source; seed 0 maps to a fixed
//     default so the zero config is still reproducible.
//   - Derive(seed, panel) gives independent panels under one seed.
//   - There is no package-level generator and nothing is seeded at init.
//
// Concurrency: a Sampler wraps a *rand.Rand, which is NOT goroutine-safe.
// Use one Sampler per goroutine.
package shock

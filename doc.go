// Package wagerig computes the fixed point of a worker's wage-setting
// Bellman equation under partial downward nominal wage rigidity.
//
// Each period a worker observes a productivity shock z and picks a nominal
// wage. With probability 1−λ the wage resets freely; with probability λ it
// can only be raised above the current wage y. Steady inflation π erodes
// the real wage between periods. The value of the problem solves
//
//	V(y, z) = (1−λ)·max_{x∈[0,w̄]} g(x, z) + λ·max_{x∈[y,w̄]} g(x, z)
//	g(x, z) = Ω(x, z) + β·v(x/(1+π))
//
// where Ω is period utility and v is the shock-averaged continuation value.
//
// Everything is organized in leaf-first subpackages:
//
//	grid/     — strictly increasing wage grids
//	interp/   — piecewise-linear value functions on a grid, sup-norm distance
//	shock/    — seeded truncated log-normal shock panels
//	utility/  — the labor-supply period utility Ω
//	optimize/ — bounded Brent search (argmin/argmax, min/max value)
//	bellman/  — the Bellman operators and their per-sweep policy tables
//	iterate/  — the fixed-point driver (Next, All, Run)
//	config/   — YAML experiment files and builders to the types above
//
// The cmd/wagerig binary wires them together:
//
//	wagerig config                    # print the effective experiment
//	wagerig --config exp.yaml solve   # iterate to convergence
//	wagerig sweep --format json       # one operator application
//	wagerig schedule                  # reset and constrained wage schedules
//
// Library packages never print; they accept an optional *zap.Logger and
// report failures as wrapped sentinel errors matched with errors.Is.
package wagerig

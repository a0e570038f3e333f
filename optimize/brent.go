// SPDX-License-Identifier: MIT

package optimize

import (
	"fmt"
	"math"
)

// goldenMean is (3 − √5)/2, the golden-section fraction.
var goldenMean = 0.5 * (3.0 - math.Sqrt(5.0))

// sqrtEps is √(machine epsilon) for float64.
var sqrtEps = math.Sqrt(2.2e-16)

// Brent is a bounded Brent minimizer. The zero value uses DefaultXTol and
// DefaultMaxEval. Brent holds no state between calls and is safe for
// concurrent use.
type Brent struct {
	// XTol is the absolute tolerance on the minimizer; ≤ 0 means DefaultXTol.
	XTol float64
	// MaxEval caps objective calls; ≤ 0 means DefaultMaxEval.
	MaxEval int
}

// NewBrent returns a Brent with the default tolerances.
func NewBrent() *Brent { return &Brent{XTol: DefaultXTol, MaxEval: DefaultMaxEval} }

func (o *Brent) xtol() float64 {
	if o == nil || o.XTol <= 0 {
		return DefaultXTol
	}
	return o.XTol
}

func (o *Brent) maxEval() int {
	if o == nil || o.MaxEval <= 0 {
		return DefaultMaxEval
	}
	return o.MaxEval
}

// Minimize searches [a, b] for a minimizer of f.
//
// Algorithm (bounded Brent):
//  1. Start at the golden-section point a + g·(b−a).
//  2. While the bracket is wider than the tolerance, try a parabola through
//     the three best points; accept it if it falls inside the bracket and
//     shrinks the step, otherwise take a golden-section step.
//  3. Never step closer than tol1 to the current best point.
//
// a == b returns a and f(a) with one evaluation.
//
// NaN objective values are treated as +Inf so that a point outside the
// model's domain is never preferred.
//
// Errors: ErrOptimizationFailure when a > b, a bound is NaN, or the best
// value found is not finite.
func (o *Brent) Minimize(f Objective, a, b float64, args ...float64) (Result, error) {
	if math.IsNaN(a) || math.IsNaN(b) || a > b {
		return Result{}, fmt.Errorf("Minimize: interval [%g, %g]: %w", a, b, ErrOptimizationFailure)
	}

	eval := func(x float64) float64 {
		fx := f(x, args...)
		if math.IsNaN(fx) {
			return math.Inf(1)
		}
		return fx
	}

	lo, hi := a, b
	if a == b {
		fa := eval(a)
		if math.IsInf(fa, 0) {
			return Result{X: a, F: fa, Evals: 1}, fmt.Errorf("Minimize: f(%g) not finite: %w", a, ErrOptimizationFailure)
		}
		return Result{X: a, F: fa, Evals: 1, Converged: true}, nil
	}

	var (
		xatol   = o.xtol()
		maxEval = o.maxEval()

		fulc = a + goldenMean*(b-a) // third-best point
		nfc  = fulc                 // second-best point
		xf   = fulc                 // best point
		x    float64                // trial point
		rat  float64                // current step
		e    float64                // step before last
		fx   float64                // f(xf)
		fu   float64                // f(x)

		ffulc, fnfc float64
		xm          = 0.5 * (a + b)
		tol1        = sqrtEps*math.Abs(xf) + xatol/3.0
		tol2        = 2.0 * tol1
		num         = 1
		converged   = true
	)
	fx = eval(xf)
	ffulc, fnfc = fx, fx

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		golden := true

		// parabolic fit
		if math.Abs(e) > tol1 {
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2.0 * (q - r)
			if q > 0.0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x = xf + rat
				// keep away from the bounds
				if x-a < tol2 || b-x < tol2 {
					rat = tol1 * signOrOne(xm-xf)
				}
			} else {
				golden = true
			}
		}

		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		x = xf + signOrOne(rat)*math.Max(math.Abs(rat), tol1)
		fu = eval(x)
		num++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || nfc == xf {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || fulc == xf || fulc == nfc {
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + xatol/3.0
		tol2 = 2.0 * tol1

		if num >= maxEval {
			converged = false
			break
		}
	}

	res := Result{X: xf, F: fx, Evals: num, Converged: converged}
	if math.IsInf(fx, 0) {
		return res, fmt.Errorf("Minimize: no finite value on [%g, %g]: %w", lo, hi, ErrOptimizationFailure)
	}

	return res, nil
}

// Argmin returns the minimizer of f on [a, b].
func (o *Brent) Argmin(f Objective, a, b float64, args ...float64) (float64, error) {
	res, err := o.Minimize(f, a, b, args...)
	if err != nil {
		return 0, err
	}
	return res.X, nil
}

// MinValue returns the minimum of f on [a, b].
func (o *Brent) MinValue(f Objective, a, b float64, args ...float64) (float64, error) {
	res, err := o.Minimize(f, a, b, args...)
	if err != nil {
		return 0, err
	}
	return res.F, nil
}

// Argmax returns the maximizer of h on [a, b], i.e. Argmin(−h).
func (o *Brent) Argmax(h Objective, a, b float64, args ...float64) (float64, error) {
	return o.Argmin(Negate(h), a, b, args...)
}

// MaxValue returns the maximum of h on [a, b], i.e. −MinValue(−h).
func (o *Brent) MaxValue(h Objective, a, b float64, args ...float64) (float64, error) {
	m, err := o.MinValue(Negate(h), a, b, args...)
	if err != nil {
		return 0, err
	}
	return -m, nil
}

// Negate returns −f.
func Negate(f Objective) Objective {
	return func(x float64, args ...float64) float64 { return -f(x, args...) }
}

// signOrOne is sign(v) with sign(0) = 1.
func signOrOne(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

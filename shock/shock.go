// SPDX-License-Identifier: MIT

package shock

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrDomain is returned for invalid distribution parameters or sample sizes.
var ErrDomain = errors.New("shock: parameter outside domain")

// ErrNilSource is returned when a Sampler has no random source.
var ErrNilSource = errors.New("shock: nil random source")

// Distribution parameterizes a quantile-truncated normal on log-shocks.
type Distribution struct {
	Location float64 `json:"location" yaml:"location"` // mean of log z
	Scale    float64 `json:"scale" yaml:"scale"`       // std. dev. of log z, > 0
	Lower    float64 `json:"lower" yaml:"lower"`       // lower truncation quantile, in (0,1)
	Upper    float64 `json:"upper" yaml:"upper"`       // upper truncation quantile, in (Lower,1)
}

// Default calibration: σ = 0.2, μ = −σ²/2 (so E[z] ≈ 1 before truncation),
// central 90% band.
const (
	DefaultScale = 0.2
	DefaultLower = 0.05
	DefaultUpper = 0.95
	DefaultCount = 30
)

// DefaultDistribution returns the default calibration.
func DefaultDistribution() Distribution {
	return Distribution{
		Location: -(DefaultScale * DefaultScale) / 2,
		Scale:    DefaultScale,
		Lower:    DefaultLower,
		Upper:    DefaultUpper,
	}
}

// Validate checks 0 < Lower < Upper < 1, Scale > 0 and a finite Location.
func (d Distribution) Validate() error {
	if math.IsNaN(d.Location) || math.IsInf(d.Location, 0) {
		return fmt.Errorf("Distribution: location=%g: %w", d.Location, ErrDomain)
	}
	if !(d.Scale > 0) || math.IsInf(d.Scale, 0) {
		return fmt.Errorf("Distribution: scale=%g must be > 0: %w", d.Scale, ErrDomain)
	}
	if !(0 < d.Lower && d.Lower < d.Upper && d.Upper < 1) {
		return fmt.Errorf("Distribution: quantiles [%g, %g] must satisfy 0 < lower < upper < 1: %w",
			d.Lower, d.Upper, ErrDomain)
	}
	return nil
}

func (d Distribution) normal() distuv.Normal {
	return distuv.Normal{Mu: d.Location, Sigma: d.Scale}
}

// Support returns the bounds of the shock support, exp Φ⁻¹(Lower) and
// exp Φ⁻¹(Upper). Every sample lies in [lo, hi].
func Support(d Distribution) (lo, hi float64, err error) {
	if err = d.Validate(); err != nil {
		return 0, 0, err
	}
	n := d.normal()
	return math.Exp(n.Quantile(d.Lower)), math.Exp(n.Quantile(d.Upper)), nil
}

// Sampler draws shock panels from a caller-owned random source.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps rng. The Sampler takes no ownership beyond using it.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample draws n shocks from d and returns them sorted ascending.
//
// Errors:
//   - ErrDomain if n <= 0 or d is invalid.
//   - ErrNilSource if the sampler has no random source.
//
// Complexity: O(n log n).
func (s *Sampler) Sample(n int, d Distribution) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Sample: n=%d: %w", n, ErrDomain)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	if s == nil || s.rng == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilSource)
	}

	norm := d.normal()
	width := d.Upper - d.Lower
	out := make([]float64, n)
	for i := range out {
		u := d.Lower + width*s.rng.Float64() // u ∈ [lower, upper)
		out[i] = math.Exp(norm.Quantile(u))
	}
	sort.Float64s(out)

	return out, nil
}

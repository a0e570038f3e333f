package optimize_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wagerig/optimize"
)

// benchmarkMinimize runs Brent.Minimize on f over [a, b] and fails on
// unexpected errors.
func benchmarkMinimize(b *testing.B, f optimize.Objective, lo, hi float64) {
	opt := optimize.NewBrent()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := opt.Minimize(f, lo, hi); err != nil {
			b.Fatalf("Minimize failed: %v", err)
		}
	}
}

// BenchmarkMinimize_Quadratic: smooth interior minimum, parabolic steps dominate.
func BenchmarkMinimize_Quadratic(b *testing.B) {
	benchmarkMinimize(b, func(x float64, _ ...float64) float64 { return (x - 1.3) * (x - 1.3) }, 0, 4)
}

// BenchmarkMinimize_Kinked: piecewise-linear objective, golden-section steps dominate.
func BenchmarkMinimize_Kinked(b *testing.B) {
	benchmarkMinimize(b, func(x float64, _ ...float64) float64 { return math.Abs(x-0.7) + 0.1*math.Floor(4*x) }, 0, 4)
}

// BenchmarkMinimize_WageObjective: the negated period utility plus a
// discounted 1/x continuation, as in one Bellman search.
func BenchmarkMinimize_WageObjective(b *testing.B) {
	f := func(x float64, _ ...float64) float64 {
		if x <= 0 {
			return math.Inf(1)
		}
		u := math.Pow(x, -1.5) - (1.0/3)*math.Pow(math.Pow(x, -2.5)*0.85, 3)
		return -(u + 0.96/(x/3+0.1))
	}
	benchmarkMinimize(b, f, 0, 4)
}

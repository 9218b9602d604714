package normal

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/driftlab/drift/simulation/prng"
)

// TestNormal_ErfAgainstStdlib compares the Abramowitz-Stegun
// approximation against math.Erf within its published error bound.
func TestNormal_ErfAgainstStdlib(t *testing.T) {
	for x := -4.0; x <= 4.0; x += 0.125 {
		got := Erf(x)
		want := math.Erf(x)
		if math.Abs(got-want) > 2e-7 {
			t.Fatalf("erf(%v): want %v, got %v", x, want, got)
		}
	}
}

// TestNormal_CDFAgainstGonum compares the CDF against the exact normal
// distribution from gonum.
func TestNormal_CDFAgainstGonum(t *testing.T) {
	dist := distuv.Normal{Mu: 100.0, Sigma: 10.0}
	for x := 60.0; x <= 150.0; x += 5.0 {
		got := CDF(x, 100.0, 10.0)
		want := dist.CDF(x)
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("cdf(%v): want %v, got %v", x, want, got)
		}
	}
}

// TestNormal_IntervalMassSumsToOne partitions a wide domain and checks
// the masses add up to (almost) the full probability.
func TestNormal_IntervalMassSumsToOne(t *testing.T) {
	lo, hi := 100.0-8*10.0, 100.0+8*10.0
	width := (hi - lo) / 64
	total := 0.0
	for i := 0; i < 64; i++ {
		total += IntervalMass(lo+float64(i)*width, lo+float64(i+1)*width, 100.0, 10.0)
	}
	if math.Abs(total-1.0) > 1e-6 {
		t.Fatalf("partition masses: want sum ~1, got %v", total)
	}
}

// TestNormal_SampleMoments draws many samples and checks mean and
// standard deviation against the distribution parameters.
func TestNormal_SampleMoments(t *testing.T) {
	rg := prng.NewStream(4711)
	const n = 200000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := Sample(rg, 100.0, 10.0)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	stdDev := math.Sqrt(sumSq/n - mean*mean)
	if math.Abs(mean-100.0) > 0.2 {
		t.Fatalf("sample mean: want ~100, got %v", mean)
	}
	if math.Abs(stdDev-10.0) > 0.2 {
		t.Fatalf("sample std-dev: want ~10, got %v", stdDev)
	}
}

// TestNormal_SampleIsReproducible checks that two streams with the same
// seed produce identical samples.
func TestNormal_SampleIsReproducible(t *testing.T) {
	first := prng.NewStream(99)
	second := prng.NewStream(99)
	for i := 0; i < 10; i++ {
		x := Sample(first, 100.0, 10.0)
		y := Sample(second, 100.0, 10.0)
		if x != y {
			t.Fatalf("sample %d: want identical values, got %v and %v", i, x, y)
		}
	}
}

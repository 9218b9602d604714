package mixture

import (
	"math"
	"testing"

	"github.com/driftlab/drift/simulation/prng"
)

var testModel = Model{Mean: 100.0, StdDev: 10.0, TailShift: 3.0, TailProbability: 0.01}

// TestMixture_Check validates parameter checking.
func TestMixture_Check(t *testing.T) {
	if err := testModel.Check(); err != nil {
		t.Fatalf("valid model: want nil, got %v", err)
	}
	m := testModel
	m.StdDev = 0.0
	if err := m.Check(); err == nil {
		t.Fatalf("zero std-dev: want error, got nil")
	}
	m = testModel
	m.TailProbability = 1.5
	if err := m.Check(); err == nil {
		t.Fatalf("tail probability above one: want error, got nil")
	}
	m = testModel
	m.Mean = math.NaN()
	if err := m.Check(); err == nil {
		t.Fatalf("NaN mean: want error, got nil")
	}
}

// TestMixture_Domain checks the domain bounds.
func TestMixture_Domain(t *testing.T) {
	lo, hi := testModel.Domain()
	if lo != 60.0 {
		t.Fatalf("domain lower bound: want 60, got %v", lo)
	}
	if hi != 150.0 {
		t.Fatalf("domain upper bound: want 150, got %v", hi)
	}
}

// TestMixture_IntervalMassCoversDomain checks that nearly the whole
// mass of the mixture lies inside the domain.
func TestMixture_IntervalMassCoversDomain(t *testing.T) {
	lo, hi := testModel.Domain()
	mass := testModel.IntervalMass(lo, hi)
	if mass < 0.999 || mass > 1.0+1e-9 {
		t.Fatalf("domain mass: want close to 1, got %v", mass)
	}
}

// TestMixture_TailRaisesUpperMass checks that the tail component shifts
// mass above the main component's upper tail.
func TestMixture_TailRaisesUpperMass(t *testing.T) {
	heavy := testModel
	heavy.TailProbability = 0.2
	lo := testModel.Mean + 2.5*testModel.StdDev
	hi := testModel.Mean + (testModel.TailShift+2.0)*testModel.StdDev
	if heavy.IntervalMass(lo, hi) <= testModel.IntervalMass(lo, hi) {
		t.Fatalf("heavier tail should carry more mass above %v", lo)
	}
}

// TestMixture_SampleIsReproducible checks the component-then-Box-Muller
// draw order yields identical values for identical streams.
func TestMixture_SampleIsReproducible(t *testing.T) {
	first := prng.NewStream(prng.SeedFromID("fixed-trial-id"))
	second := prng.NewStream(prng.SeedFromID("fixed-trial-id"))
	for i := 0; i < 20; i++ {
		x := testModel.Sample(first)
		y := testModel.Sample(second)
		if x != y {
			t.Fatalf("sample %d: want identical values, got %v and %v", i, x, y)
		}
	}
}

// TestMixture_SampleMeanTracksMixture draws many samples and checks the
// mean against the analytic mixture mean.
func TestMixture_SampleMeanTracksMixture(t *testing.T) {
	m := Model{Mean: 100.0, StdDev: 10.0, TailShift: 3.0, TailProbability: 0.1}
	rg := prng.NewStream(1234)
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += m.Sample(rg)
	}
	mean := sum / n
	want := (1.0-m.TailProbability)*m.Mean + m.TailProbability*m.TailMean()
	if math.Abs(mean-want) > 0.2 {
		t.Fatalf("mixture sample mean: want ~%v, got %v", want, mean)
	}
}

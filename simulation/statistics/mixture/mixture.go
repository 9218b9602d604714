// Copyright 2026 Driftlab
// This file is part of Drift, a histogram drift simulation toolkit.
//
// Drift is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Drift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Drift. If not, see <http://www.gnu.org/licenses/>.

package mixture

import (
	"fmt"
	"math"

	"github.com/driftlab/drift/simulation/statistics/normal"
)

// Package for the bimodal mixture distribution of a main Gaussian
// component and a shifted tail component of the same width. The tail
// models rare outlier events; its mean is shifted by TailShift standard
// deviations above the main mean.

// Model holds the parameters of the mixture distribution.
type Model struct {
	Mean            float64 // mean of the main component
	StdDev          float64 // standard deviation of both components
	TailShift       float64 // tail mean offset in standard deviations
	TailProbability float64 // probability of drawing from the tail component
}

// Check validates the model parameters.
func (m Model) Check() error {
	for _, v := range []float64{m.Mean, m.StdDev, m.TailShift, m.TailProbability} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("mixture parameter is not finite (%v)", v)
		}
	}
	if m.StdDev <= 0.0 {
		return fmt.Errorf("standard deviation (%v) must be positive", m.StdDev)
	}
	if m.TailProbability < 0.0 || m.TailProbability > 1.0 {
		return fmt.Errorf("tail probability (%v) is not in interval [0,1]", m.TailProbability)
	}
	return nil
}

// TailMean returns the mean of the tail component.
func (m Model) TailMean() float64 {
	return m.Mean + m.TailShift*m.StdDev
}

// Domain returns the value range covered by the histogram, spanning four
// standard deviations below the main mean and two above the tail mean.
func (m Model) Domain() (float64, float64) {
	return m.Mean - 4.0*m.StdDev, m.Mean + (m.TailShift+2.0)*m.StdDev
}

// IntervalMass computes the probability mass of the mixture in [lo, hi)
// as the probability-weighted sum of the component masses.
func (m Model) IntervalMass(lo float64, hi float64) float64 {
	main := normal.IntervalMass(lo, hi, m.Mean, m.StdDev)
	tail := normal.IntervalMass(lo, hi, m.TailMean(), m.StdDev)
	return (1.0-m.TailProbability)*main + m.TailProbability*tail
}

// Sample draws one value from the mixture. The component draw comes
// first, then the two Box-Muller draws; the order is part of the
// reproducibility contract.
func (m Model) Sample(rg normal.UniformSource) float64 {
	mean := m.Mean
	if rg.Float64() < m.TailProbability {
		mean = m.TailMean()
	}
	return normal.Sample(rg, mean, m.StdDev)
}

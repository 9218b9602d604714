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

package simulation

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Buckets with less expected mass than this are excluded from the
// chi-square statistic; near-empty bins blow the statistic up without
// carrying information.
const minExpected = 1e-6

// Deviations returns the per-bucket distance between observed and
// expected counts in Poisson sigmas, (observed-expected)/sqrt(expected).
// Buckets with negligible expected mass report zero.
func (t Trial) Deviations() []float64 {
	out := make([]float64, len(t.Buckets))
	for i, b := range t.Buckets {
		if b.Expected < minExpected {
			continue
		}
		out[i] = (float64(b.Observed) - b.Expected) / math.Sqrt(b.Expected)
	}
	return out
}

// ChiSquare computes the chi-square goodness-of-fit statistic of the
// trial's observed counts against the expected counts.
func (t Trial) ChiSquare() float64 {
	obs := make([]float64, 0, len(t.Buckets))
	exp := make([]float64, 0, len(t.Buckets))
	for _, b := range t.Buckets {
		if b.Expected < minExpected {
			continue
		}
		obs = append(obs, float64(b.Observed))
		exp = append(exp, b.Expected)
	}
	return stat.ChiSquare(obs, exp)
}

// ObservedTotal returns the number of samples captured by the histogram.
// It is at most SamplesPerTrial; the difference is the number of samples
// that fell outside the domain.
func (t Trial) ObservedTotal() int {
	total := 0
	for _, b := range t.Buckets {
		total += b.Observed
	}
	return total
}

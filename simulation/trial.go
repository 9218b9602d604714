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

// Package simulation generates trials: batches of samples drawn from a
// bimodal mixture distribution, binned into a histogram of expected vs.
// observed counts. Trial generation is deterministic in the trial
// identifier, so a trial's samples can be reproduced from its id alone.
package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/driftlab/drift/identifier"
	"github.com/driftlab/drift/simulation/prng"
	"github.com/driftlab/drift/simulation/statistics/mixture"
)

// Config holds the distribution parameters of a trial. All fields are
// required; Check rejects configurations with missing or invalid values.
type Config struct {
	Mean            float64 // mean of the main component
	StdDev          float64 // standard deviation of both components
	TailShift       float64 // tail mean offset in standard deviations
	TailProbability float64 // probability of drawing from the tail
	SamplesPerTrial int     // number of samples drawn per trial
}

// Check validates the configuration. An invalid configuration is a
// programming error at the call site and is reported as an error rather
// than patched with defaults.
func (c Config) Check() error {
	if c.SamplesPerTrial <= 0 {
		return fmt.Errorf("samples per trial (%v) must be positive", c.SamplesPerTrial)
	}
	if err := c.model().Check(); err != nil {
		return err
	}
	return nil
}

func (c Config) model() mixture.Model {
	return mixture.Model{
		Mean:            c.Mean,
		StdDev:          c.StdDev,
		TailShift:       c.TailShift,
		TailProbability: c.TailProbability,
	}
}

// Bucket is one histogram bin. Buckets partition the domain into
// NumBuckets equal-width, contiguous intervals ordered ascending. Only
// Observed changes after layout, written exactly once during binning.
type Bucket struct {
	Start    float64 // inclusive lower bound
	End      float64 // exclusive upper bound
	Expected float64 // expected count, unrounded
	Observed int     // observed count
	Value    float64 // bucket midpoint, used for sigma-distance display
}

// Trial is one batch of simulated samples with its histogram and summary
// statistics. A trial is never mutated after creation.
type Trial struct {
	ID         string
	ParentID   string // owning run (or version in the reduced projection)
	Buckets    []Bucket
	MaxValue   float64
	Timestamp  int64 // unix milliseconds
	SampleMean float64
}

// Option overrides a generated trial default. Options are applied before
// sampling starts so that an overridden identifier also drives the
// sample stream.
type Option func(*overrides)

type overrides struct {
	id        string
	parentID  string
	timestamp int64
	hasTime   bool
}

// WithID fixes the trial identifier instead of drawing a fresh word id.
func WithID(id string) Option {
	return func(o *overrides) { o.id = id }
}

// WithParentID replaces the parent reference.
func WithParentID(parentID string) Option {
	return func(o *overrides) { o.parentID = parentID }
}

// WithTimestamp fixes the trial timestamp in unix milliseconds.
func WithTimestamp(ts int64) Option {
	return func(o *overrides) { o.timestamp = ts; o.hasTime = true }
}

// GenerateTrial draws cfg.SamplesPerTrial samples from the mixture
// distribution and bins them into NumBuckets buckets. The sample stream
// is seeded from the trial identifier. Samples falling outside the
// domain are dropped from the histogram counts but still contribute to
// MaxValue and SampleMean.
func GenerateTrial(cfg Config, parentID string, opts ...Option) (Trial, error) {
	if err := cfg.Check(); err != nil {
		return Trial{}, fmt.Errorf("generate trial: %w", err)
	}

	o := overrides{parentID: parentID}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = identifier.New()
	}
	if !o.hasTime {
		o.timestamp = time.Now().UnixMilli()
	}

	model := cfg.model()
	lo, hi := model.Domain()
	width := (hi - lo) / NumBuckets
	buckets := make([]Bucket, NumBuckets)
	for i := range buckets {
		start := lo + float64(i)*width
		end := start + width
		buckets[i] = Bucket{
			Start:    start,
			End:      end,
			Expected: model.IntervalMass(start, end) * float64(cfg.SamplesPerTrial),
			Value:    (start + end) / 2.0,
		}
	}

	rg := prng.NewStream(prng.SeedFromID(o.id))
	maxValue := math.Inf(-1)
	sum := 0.0
	for n := 0; n < cfg.SamplesPerTrial; n++ {
		v := model.Sample(rg)
		if v > maxValue {
			maxValue = v
		}
		sum += v
		if i := int(math.Floor((v - lo) / width)); i >= 0 && i < NumBuckets {
			buckets[i].Observed++
		}
	}

	return Trial{
		ID:         o.id,
		ParentID:   o.parentID,
		Buckets:    buckets,
		MaxValue:   maxValue,
		Timestamp:  o.timestamp,
		SampleMean: sum / float64(cfg.SamplesPerTrial),
	}, nil
}

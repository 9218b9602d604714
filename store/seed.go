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

package store

import (
	"fmt"

	"github.com/driftlab/drift/identifier"
	"github.com/driftlab/drift/simulation"
	"github.com/driftlab/drift/simulation/prng"
)

// The seeder builds the deterministic demo dataset. Every identifier,
// timestamp and sample is derived from the seed stream or from fixed
// constants, so two calls with the same seed produce identical output.

// seedEpoch is the fixed base timestamp of seeded entities,
// 2025-01-01T00:00:00Z in unix milliseconds.
const seedEpoch int64 = 1735689600000

const (
	seedVersionCount  = 3
	seedTrialsPerRun  = 3
	msPerDay          = 86_400_000
	msPerHour         = 3_600_000
	msPerMinute       = 60_000
)

// seedBaseConfig is the unperturbed distribution of a seeded version.
var seedBaseConfig = simulation.Config{
	Mean:            100.0,
	StdDev:          10.0,
	TailShift:       3.0,
	TailProbability: 0.01,
	SamplesPerTrial: 200,
}

type seedExperiment struct {
	name        string
	description string
	workload    Workload
	color       string
	tailFactor  float64 // scales the tail probability of the version config
}

// The fixed experiment roster. Heavier workloads make tail events more
// likely.
var seedExperiments = []seedExperiment{
	{
		name:        "idle",
		description: "baseline system at rest",
		workload:    Workload{CPUThreads: 1, MemoryPressure: 0.1, IORate: 50, NetworkTraffic: 5},
		color:       "#4e79a7",
		tailFactor:  1.0,
	},
	{
		name:        "medium",
		description: "moderate mixed workload",
		workload:    Workload{CPUThreads: 4, MemoryPressure: 0.4, IORate: 400, NetworkTraffic: 50},
		color:       "#f28e2b",
		tailFactor:  3.0,
	},
	{
		name:        "heavy",
		description: "saturated system under sustained load",
		workload:    Workload{CPUThreads: 16, MemoryPressure: 0.85, IORate: 2000, NetworkTraffic: 250},
		color:       "#e15759",
		tailFactor:  8.0,
	},
}

var seedVersionTags = []string{"1.0", "1.1", "1.2"}

// GenerateInitialState deterministically constructs the demo dataset:
// the idle/medium/heavy experiment roster, three tagged versions, and
// runs pairing version n with the first n+1 experiments, each run
// pre-populated with trials. Per-version distribution parameters are
// perturbed from the seed stream only.
func GenerateInitialState(seed uint32) Snapshot {
	rg := prng.NewStream(seed)

	experiments := make([]Experiment, len(seedExperiments))
	for i, e := range seedExperiments {
		experiments[i] = Experiment{
			ID:          identifier.NewWith(rg),
			Name:        e.name,
			Description: e.description,
			Workload:    e.workload,
			Color:       e.color,
		}
	}

	var versions []Version
	var runs []Run
	for v := 0; v < seedVersionCount; v++ {
		id, err := identifier.NewVersionIDWith(rg, seedVersionTags[v])
		if err != nil {
			panic(fmt.Sprintf("seed version %d: %v", v, err))
		}
		versionTime := seedEpoch + int64(v)*msPerDay
		versions = append(versions, Version{
			ID:        id,
			Name:      fmt.Sprintf("Version %d", v+1),
			Timestamp: versionTime,
		})

		// per-version drift of the distribution parameters
		cfg := seedBaseConfig
		cfg.Mean += (rg.Float64() - 0.5) * 4.0
		cfg.StdDev *= 0.9 + 0.2*rg.Float64()

		// version n runs under the first n+1 experiments
		for e := 0; e <= v; e++ {
			runCfg := cfg
			runCfg.TailProbability = min(cfg.TailProbability*seedExperiments[e].tailFactor, 1.0)

			run := Run{
				ID:           identifier.NewWith(rg),
				VersionID:    id,
				ExperimentID: experiments[e].ID,
				Timestamp:    versionTime + int64(e+1)*msPerHour,
			}
			for n := 0; n < seedTrialsPerRun; n++ {
				ts := run.Timestamp + int64(n+1)*msPerMinute
				trial, err := simulation.GenerateTrial(runCfg, run.ID,
					simulation.WithID(identifier.NewWith(rg)),
					simulation.WithTimestamp(ts))
				if err != nil {
					panic(fmt.Sprintf("seed trial for run %q: %v", run.ID, err))
				}
				run.Trials = append(run.Trials, trial)
				run.Timestamp = ts
			}
			runs = append(runs, run)
		}
	}

	return Snapshot{
		Versions:            versions,
		Experiments:         experiments,
		Runs:                runs,
		CurrentVersionID:    versions[len(versions)-1].ID,
		CurrentExperimentID: experiments[0].ID,
	}
}

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
	"slices"

	"github.com/driftlab/drift/simulation"
)

// indexes is the derived state of the store: a pure function of the base
// collections, rebuilt wholesale on every mutation. Rebuilding twice from
// the same collections yields structurally equal maps.
type indexes struct {
	versionByID    map[string]int // version id -> index in versions
	experimentByID map[string]int // experiment id -> index in experiments
	runByID        map[string]int // run id -> index in runs

	versionRuns        map[string][]string            // version id -> run ids, insertion order
	experimentRuns     map[string][]string            // experiment id -> run ids, insertion order
	versionExperiments map[string][]string            // version id -> experiment ids reachable via runs
	runTrials          map[string][]simulation.Trial  // run id -> trials, insertion order
}

// buildIndexes derives the lookup maps from the base collections.
func buildIndexes(versions []Version, experiments []Experiment, runs []Run) indexes {
	idx := indexes{
		versionByID:        make(map[string]int, len(versions)),
		experimentByID:     make(map[string]int, len(experiments)),
		runByID:            make(map[string]int, len(runs)),
		versionRuns:        make(map[string][]string),
		experimentRuns:     make(map[string][]string),
		versionExperiments: make(map[string][]string),
		runTrials:          make(map[string][]simulation.Trial, len(runs)),
	}
	for i, v := range versions {
		idx.versionByID[v.ID] = i
	}
	for i, e := range experiments {
		idx.experimentByID[e.ID] = i
	}
	for i, r := range runs {
		idx.runByID[r.ID] = i
		idx.versionRuns[r.VersionID] = append(idx.versionRuns[r.VersionID], r.ID)
		idx.experimentRuns[r.ExperimentID] = append(idx.experimentRuns[r.ExperimentID], r.ID)
		if !slices.Contains(idx.versionExperiments[r.VersionID], r.ExperimentID) {
			idx.versionExperiments[r.VersionID] = append(idx.versionExperiments[r.VersionID], r.ExperimentID)
		}
		idx.runTrials[r.ID] = r.Trials
	}
	return idx
}

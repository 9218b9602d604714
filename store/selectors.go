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

// Selectors return plain data with no side effects. Returned slices are
// copies; callers must not expect later mutations to show through.

// Versions lists all versions in insertion order.
func (s *Store) Versions() []Version {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.versions)
}

// Experiments lists all experiments in insertion order.
func (s *Store) Experiments() []Experiment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.experiments)
}

// Runs lists all runs in insertion order.
func (s *Store) Runs() []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.runs)
}

// VersionByID looks up a version.
func (s *Store) VersionByID(id string) (Version, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.idx.versionByID[id]
	if !ok {
		return Version{}, false
	}
	return s.versions[i], true
}

// ExperimentByID looks up an experiment.
func (s *Store) ExperimentByID(id string) (Experiment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.idx.experimentByID[id]
	if !ok {
		return Experiment{}, false
	}
	return s.experiments[i], true
}

// RunByID looks up a run.
func (s *Store) RunByID(id string) (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.idx.runByID[id]
	if !ok {
		return Run{}, false
	}
	return s.runs[i], true
}

// RunsForVersion lists the runs of a version in insertion order.
func (s *Store) RunsForVersion(versionID string) []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runsLocked(s.idx.versionRuns[versionID])
}

// RunsForExperiment lists the runs of an experiment in insertion order.
func (s *Store) RunsForExperiment(experimentID string) []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runsLocked(s.idx.experimentRuns[experimentID])
}

func (s *Store) runsLocked(ids []string) []Run {
	out := make([]Run, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.runs[s.idx.runByID[id]])
	}
	return out
}

// ExperimentsForVersion lists the experiments reachable from a version
// via existing runs, in first-run order.
func (s *Store) ExperimentsForVersion(versionID string) []Experiment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.idx.versionExperiments[versionID]
	out := make([]Experiment, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.experiments[s.idx.experimentByID[id]])
	}
	return out
}

// CurrentVersion returns the selected version, if any.
func (s *Store) CurrentVersion() (Version, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.idx.versionByID[s.currentVersionID]
	if !ok {
		return Version{}, false
	}
	return s.versions[i], true
}

// CurrentExperiment returns the selected experiment, if any.
func (s *Store) CurrentExperiment() (Experiment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.idx.experimentByID[s.currentExperimentID]
	if !ok {
		return Experiment{}, false
	}
	return s.experiments[i], true
}

// CurrentRun derives the current run: the run matching the selected
// (version, experiment) pair with the latest timestamp. Duplicate runs
// for a pair are legal; most recent wins, ties go to the later insertion.
func (s *Store) CurrentRun() (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := false
	var best Run
	for _, id := range s.idx.versionRuns[s.currentVersionID] {
		r := s.runs[s.idx.runByID[id]]
		if r.ExperimentID != s.currentExperimentID {
			continue
		}
		if !found || r.Timestamp >= best.Timestamp {
			best = r
			found = true
		}
	}
	return best, found
}

// CurrentTrials returns the trials of the current run in insertion
// order, or nil if no run matches the current selection.
func (s *Store) CurrentTrials() []simulation.Trial {
	r, ok := s.CurrentRun()
	if !ok {
		return nil
	}
	return slices.Clone(r.Trials)
}

// VersionTrials is the reduced version-owns-trials projection: all
// trials of a version aggregated across its runs in run insertion order.
func (s *Store) VersionTrials(versionID string) []simulation.Trial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []simulation.Trial
	for _, id := range s.idx.versionRuns[versionID] {
		out = append(out, s.idx.runTrials[id]...)
	}
	return out
}

// Snapshot captures the current base collections and selection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Versions:            slices.Clone(s.versions),
		Experiments:         slices.Clone(s.experiments),
		Runs:                slices.Clone(s.runs),
		CurrentVersionID:    s.currentVersionID,
		CurrentExperimentID: s.currentExperimentID,
	}
}

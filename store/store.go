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

// Package store holds the in-memory hierarchy of versions, experiments,
// runs and trials. Runs own trials; the direct version-to-trials layout
// exists only as a read-only projection. Every mutation replaces the base
// collections and rebuilds the derived indexes before it returns, so no
// caller ever observes stale derived state. Unknown-reference mutations
// are logged no-ops; they are expected from stale UI selections and never
// escalate to errors.
package store

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/driftlab/drift/identifier"
	"github.com/driftlab/drift/logger"
	"github.com/driftlab/drift/simulation"
)

// Workload describes the load profile of an experiment.
type Workload struct {
	CPUThreads     int     // worker threads kept busy
	MemoryPressure float64 // fraction of available memory held
	IORate         float64 // disk operations per second
	NetworkTraffic float64 // generated traffic in MB/s
}

// Version is one build or revision under test. Versions carry identity
// and metadata only; their trials live on runs.
type Version struct {
	ID        string
	Name      string
	Timestamp int64 // unix milliseconds, creation time
}

// Experiment is a named workload profile, independent of any version.
type Experiment struct {
	ID          string
	Name        string
	Description string
	Workload    Workload
	Color       string // display color for charts
}

// Run pairs a version with an experiment and owns the trials executed
// under that combination. Multiple runs for the same pair are legal;
// the run with the latest timestamp is the current one.
type Run struct {
	ID           string
	VersionID    string
	ExperimentID string
	Trials       []simulation.Trial
	Timestamp    int64 // unix milliseconds, refreshed on trial append
}

// Snapshot is a complete replacement state for Initialize and Reset.
type Snapshot struct {
	Versions            []Version
	Experiments         []Experiment
	Runs                []Run
	CurrentVersionID    string
	CurrentExperimentID string
}

// Store is the single mutable shared resource of the system. Every
// operation is a critical section; mutations replace the base collections
// wholesale and rebuild the derived indexes before releasing the lock.
type Store struct {
	mu  sync.RWMutex
	log logger.Logger

	versions    []Version
	experiments []Experiment
	runs        []Run

	currentVersionID    string
	currentExperimentID string

	idx indexes
}

// New creates an empty store.
func New(log logger.Logger) *Store {
	s := &Store{log: log}
	s.idx = buildIndexes(nil, nil, nil)
	return s
}

// commit installs new base collections and rebuilds the derived indexes.
// Must be called with the write lock held.
func (s *Store) commit(versions []Version, experiments []Experiment, runs []Run) {
	s.versions = versions
	s.experiments = experiments
	s.runs = runs
	s.idx = buildIndexes(versions, experiments, runs)
}

// initLocked installs a snapshot and re-derives the current selection.
func (s *Store) initLocked(snap Snapshot) {
	s.commit(slices.Clone(snap.Versions), slices.Clone(snap.Experiments), slices.Clone(snap.Runs))

	if _, ok := s.idx.versionByID[snap.CurrentVersionID]; ok {
		s.currentVersionID = snap.CurrentVersionID
	} else if len(s.versions) > 0 {
		s.currentVersionID = s.versions[len(s.versions)-1].ID
	} else {
		s.currentVersionID = ""
	}

	if _, ok := s.idx.experimentByID[snap.CurrentExperimentID]; ok {
		s.currentExperimentID = snap.CurrentExperimentID
	} else {
		s.currentExperimentID = s.defaultExperimentFor(s.currentVersionID)
	}
}

// Initialize bulk-loads the store from a snapshot.
func (s *Store) Initialize(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked(snap)
}

// Reset discards all entities and replaces them with the snapshot,
// re-deriving the current selection like Initialize.
func (s *Store) Reset(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked(snap)
}

// defaultExperimentFor selects the experiment for a freshly selected
// version: the first experiment reachable from the version via an
// existing run, else an experiment literally named "idle" (case
// insensitive), else none. Must be called with the lock held.
func (s *Store) defaultExperimentFor(versionID string) string {
	if reachable := s.idx.versionExperiments[versionID]; len(reachable) > 0 {
		return reachable[0]
	}
	for _, e := range s.experiments {
		if strings.EqualFold(e.Name, "idle") {
			return e.ID
		}
	}
	return ""
}

// AddVersion appends a version, filling unset fields with defaults, and
// makes it the current selection. It returns the stored version.
func (s *Store) AddVersion(v Version) Version {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID == "" {
		v.ID = identifier.New()
	}
	if v.Name == "" {
		v.Name = fmt.Sprintf("Version %d", len(s.versions)+1)
	}
	if v.Timestamp == 0 {
		v.Timestamp = time.Now().UnixMilli()
	}

	s.commit(append(slices.Clone(s.versions), v), s.experiments, s.runs)
	s.currentVersionID = v.ID
	s.currentExperimentID = s.defaultExperimentFor(v.ID)
	return v
}

// AddExperiment appends an experiment, filling unset fields with
// defaults, and returns the stored experiment. The current selection is
// unchanged; experiments are selected explicitly.
func (s *Store) AddExperiment(e Experiment) Experiment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = identifier.New()
	}
	if e.Name == "" {
		e.Name = fmt.Sprintf("Experiment %d", len(s.experiments)+1)
	}

	s.commit(s.versions, append(slices.Clone(s.experiments), e), s.runs)
	return e
}

// AddRun appends a run. Both referenced entities must already exist;
// an unknown reference is logged and leaves the store unchanged.
func (s *Store) AddRun(r Run) (Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.idx.versionByID[r.VersionID]; !ok {
		s.log.Errorf("add run: unknown version %q", r.VersionID)
		return Run{}, false
	}
	if _, ok := s.idx.experimentByID[r.ExperimentID]; !ok {
		s.log.Errorf("add run: unknown experiment %q", r.ExperimentID)
		return Run{}, false
	}

	if r.ID == "" {
		r.ID = identifier.New()
	}
	if r.Timestamp == 0 {
		r.Timestamp = time.Now().UnixMilli()
	}

	s.commit(s.versions, s.experiments, append(slices.Clone(s.runs), r))
	return r, true
}

// AddTrial appends a trial to the run identified by parentID and
// refreshes the run's timestamp. An unknown parent is logged and leaves
// the store unchanged.
func (s *Store) AddTrial(parentID string, t simulation.Trial) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.idx.runByID[parentID]
	if !ok {
		s.log.Errorf("add trial %q: unknown parent %q", t.ID, parentID)
		return false
	}

	runs := slices.Clone(s.runs)
	run := runs[i]
	run.Trials = append(slices.Clone(run.Trials), t)
	run.Timestamp = t.Timestamp
	runs[i] = run

	s.commit(s.versions, s.experiments, runs)
	return true
}

// SetCurrentVersion selects a version and re-derives the experiment
// selection. An unknown id is logged and leaves the selection unchanged.
func (s *Store) SetCurrentVersion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.idx.versionByID[id]; !ok {
		s.log.Errorf("set current version: unknown version %q", id)
		return
	}
	s.currentVersionID = id
	s.currentExperimentID = s.defaultExperimentFor(id)
}

// SetCurrentExperiment selects an experiment. An unknown id is logged
// and leaves the selection unchanged.
func (s *Store) SetCurrentExperiment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.idx.experimentByID[id]; !ok {
		s.log.Errorf("set current experiment: unknown experiment %q", id)
		return
	}
	s.currentExperimentID = id
}

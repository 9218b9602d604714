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

// Package visualizer renders the store contents as charts over a local
// web server.
package visualizer

import (
	"fmt"
	"sync"

	"github.com/driftlab/drift/store"
)

// runView joins a run with its version and experiment for display.
type runView struct {
	run        store.Run
	version    store.Version
	experiment store.Experiment
}

type viewState struct {
	runs         []runView          // insertion order of the underlying runs
	byID         map[string]runView // run id -> view
	currentRunID string             // may be empty if no run matches the selection
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(st *store.Store) error {
	if st == nil {
		return fmt.Errorf("visualizer: store is nil")
	}
	derived := buildViewState(st)
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(st *store.Store) *viewState {
	state := &viewState{byID: map[string]runView{}}
	for _, v := range st.Versions() {
		for _, r := range st.RunsForVersion(v.ID) {
			e, _ := st.ExperimentByID(r.ExperimentID)
			rv := runView{run: r, version: v, experiment: e}
			state.runs = append(state.runs, rv)
			state.byID[r.ID] = rv
		}
	}
	if current, ok := st.CurrentRun(); ok {
		state.currentRunID = current.ID
	}
	return state
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: no view state loaded")
	}
	return currentState, nil
}

// lookup resolves a run id to its view; an empty id resolves to the
// current run.
func (v *viewState) lookup(id string) (runView, error) {
	if id == "" {
		id = v.currentRunID
	}
	rv, ok := v.byID[id]
	if !ok {
		return runView{}, fmt.Errorf("visualizer: unknown run %q", id)
	}
	return rv, nil
}

func (rv runView) title() string {
	return fmt.Sprintf("%s (%s) under %s", rv.version.Name, rv.version.ID, rv.experiment.Name)
}

package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlab/drift/logger"
	"github.com/driftlab/drift/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(logger.NewLogger("CRITICAL", "VisualizerTest"))
	st.Initialize(store.GenerateInitialState(12345))
	return st
}

func TestView_BuildViewState(t *testing.T) {
	st := seededStore(t)
	state := buildViewState(st)

	assert.Len(t, state.runs, 6)
	assert.Len(t, state.byID, 6)
	assert.NotEmpty(t, state.currentRunID)

	for _, rv := range state.runs {
		assert.Equal(t, rv.run.VersionID, rv.version.ID)
		assert.Equal(t, rv.run.ExperimentID, rv.experiment.ID)
		assert.Contains(t, rv.title(), rv.version.Name)
	}
}

func TestView_LookupFallsBackToCurrentRun(t *testing.T) {
	st := seededStore(t)
	state := buildViewState(st)

	rv, err := state.lookup("")
	require.NoError(t, err)
	assert.Equal(t, state.currentRunID, rv.run.ID)

	_, err = state.lookup("ghost-run")
	assert.Error(t, err)
}

func TestView_SetViewState(t *testing.T) {
	require.Error(t, setViewState(nil))

	st := seededStore(t)
	require.NoError(t, setViewState(st))
	view, err := currentView()
	require.NoError(t, err)
	assert.Len(t, view.runs, 6)
}

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlab/drift/logger"
	"github.com/driftlab/drift/store"
)

func TestReport_WriteSummary(t *testing.T) {
	st := store.New(logger.NewLogger("CRITICAL", "ReportTest"))
	st.Initialize(store.GenerateInitialState(12345))

	var sb strings.Builder
	WriteSummary(&sb, st)
	out := sb.String()

	for _, want := range []string{"Experiments", "Runs", "idle", "medium", "heavy", "Version 1", "Version 3", "1.2", "Chi²"} {
		assert.Contains(t, out, want)
	}

	// the current run is marked
	current, ok := st.CurrentRun()
	require.True(t, ok)
	assert.Contains(t, out, current.ID+" *")
}

func TestReport_EmptyStore(t *testing.T) {
	st := store.New(logger.NewLogger("CRITICAL", "ReportTest"))

	var sb strings.Builder
	WriteSummary(&sb, st)

	assert.Contains(t, sb.String(), "Experiments")
}

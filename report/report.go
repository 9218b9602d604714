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

// Package report renders console summary tables for the store contents.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"

	"github.com/driftlab/drift/identifier"
	"github.com/driftlab/drift/store"
)

// WriteExperiments renders the experiment roster.
func WriteExperiments(w io.Writer, st *store.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Experiments")
	t.AppendHeader(table.Row{"Name", "CPU Threads", "Memory", "IO Rate", "Network", "Description"})
	for _, e := range st.Experiments() {
		t.AppendRow(table.Row{
			e.Name,
			e.Workload.CPUThreads,
			fmt.Sprintf("%.0f%%", e.Workload.MemoryPressure*100),
			fmt.Sprintf("%.0f op/s", e.Workload.IORate),
			fmt.Sprintf("%.0f MB/s", e.Workload.NetworkTraffic),
			e.Description,
		})
	}
	t.Render()
}

// WriteRuns renders one summary row per run: trial count, mean of the
// trial sample means, the largest observed value, and the mean chi-square
// distance between observed and expected histograms.
func WriteRuns(w io.Writer, st *store.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Runs")
	t.AppendHeader(table.Row{"Version", "Tag", "Experiment", "Run", "Trials", "Mean", "Max", "Chi²"})

	current, hasCurrent := st.CurrentRun()
	for _, v := range st.Versions() {
		for _, r := range st.RunsForVersion(v.ID) {
			e, _ := st.ExperimentByID(r.ExperimentID)

			name := r.ID
			if hasCurrent && r.ID == current.ID {
				name = r.ID + " *"
			}
			t.AppendRow(table.Row{
				v.Name,
				versionTag(v.ID),
				e.Name,
				name,
				len(r.Trials),
				fmt.Sprintf("%.2f", meanOfSampleMeans(r)),
				fmt.Sprintf("%.2f", maxValue(r)),
				fmt.Sprintf("%.2f", meanChiSquare(r)),
			})
		}
		t.AppendSeparator()
	}
	t.Render()
}

// WriteSummary renders all report tables.
func WriteSummary(w io.Writer, st *store.Store) {
	WriteExperiments(w, st)
	WriteRuns(w, st)
}

func versionTag(id string) string {
	parsed := identifier.ParseVersionID(id)
	if parsed.Tag == "" {
		return parsed.SHA
	}
	return parsed.Tag
}

func meanOfSampleMeans(r store.Run) float64 {
	if len(r.Trials) == 0 {
		return 0.0
	}
	means := make([]float64, len(r.Trials))
	for i, t := range r.Trials {
		means[i] = t.SampleMean
	}
	return stat.Mean(means, nil)
}

func maxValue(r store.Run) float64 {
	out := 0.0
	for _, t := range r.Trials {
		if t.MaxValue > out {
			out = t.MaxValue
		}
	}
	return out
}

func meanChiSquare(r store.Run) float64 {
	if len(r.Trials) == 0 {
		return 0.0
	}
	chis := make([]float64, len(r.Trials))
	for i, t := range r.Trials {
		chis[i] = t.ChiSquare()
	}
	return stat.Mean(chis, nil)
}

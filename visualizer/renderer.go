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

package visualizer

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/driftlab/drift/simulation"
	"github.com/driftlab/drift/store"
)

// HTML references for the rendered pages.
const histogramRef = "histogram"
const trendRef = "trend"

// renderMain renders the index page with one entry per run.
func renderMain(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Drift: Histogram Explorer</title>
  </head>
  <body>
    <h1>Drift: Histogram Explorer</h1>
    <ul>
`)
	for _, rv := range view.runs {
		marker := ""
		if rv.run.ID == view.currentRunID {
			marker = " (current)"
		}
		fmt.Fprintf(&sb,
			`    <li> <h3> %s%s &mdash; <a href="/%s?run=%s">histogram</a> | <a href="/%s?run=%s">trend</a> </h3> </li>
`,
			rv.title(), marker, histogramRef, rv.run.ID, trendRef, rv.run.ID)
	}
	sb.WriteString(`    </ul>
  </body>
</html>
`)
	_, _ = fmt.Fprint(w, sb.String())
}

// newHistogramChart creates a bar chart of observed counts with the
// expected counts overlaid as a line.
func newHistogramChart(title string, buckets []simulation.Bucket) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))

	labels := make([]string, len(buckets))
	observed := make([]opts.BarData, len(buckets))
	expected := make([]opts.LineData, len(buckets))
	for i, b := range buckets {
		labels[i] = fmt.Sprintf("%.1f", b.Value)
		observed[i] = opts.BarData{Value: b.Observed}
		expected[i] = opts.LineData{Value: b.Expected}
	}
	chart.SetXAxis(labels).AddSeries("Observed", observed)

	line := charts.NewLine()
	line.SetXAxis(labels).AddSeries("Expected", expected)
	chart.Overlap(line)

	return chart
}

// newTrendChart creates a line chart of the per-trial summary statistics
// of a run.
func newTrendChart(title string, trials []simulation.Trial) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))

	labels := make([]string, len(trials))
	maxima := make([]opts.LineData, len(trials))
	means := make([]opts.LineData, len(trials))
	for i, t := range trials {
		labels[i] = t.ID
		maxima[i] = opts.LineData{Value: t.MaxValue}
		means[i] = opts.LineData{Value: t.SampleMean}
	}
	chart.SetXAxis(labels).
		AddSeries("Max Value", maxima).
		AddSeries("Sample Mean", means)

	return chart
}

// renderHistogram renders the histogram of the latest trial of a run.
func renderHistogram(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	rv, err := view.lookup(r.URL.Query().Get("run"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if len(rv.run.Trials) == 0 {
		http.Error(w, fmt.Sprintf("run %q has no trials", rv.run.ID), http.StatusNotFound)
		return
	}
	latest := rv.run.Trials[len(rv.run.Trials)-1]
	chart := newHistogramChart(rv.title(), latest.Buckets)
	_ = chart.Render(w)
}

// renderTrend renders the per-trial summary trend of a run.
func renderTrend(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	rv, err := view.lookup(r.URL.Query().Get("run"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	chart := newTrendChart(rv.title(), rv.run.Trials)
	_ = chart.Render(w)
}

// FireUpWeb builds the view state from the store and serves the charts
// with a local web server.
func FireUpWeb(st *store.Store, port string) error {
	if err := setViewState(st); err != nil {
		return err
	}

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+histogramRef, renderHistogram)
	http.HandleFunc("/"+trendRef, renderTrend)
	return http.ListenAndServe(":"+port, nil)
}

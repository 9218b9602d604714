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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/driftlab/drift/config"
	"github.com/driftlab/drift/logger"
	"github.com/driftlab/drift/report"
	"github.com/driftlab/drift/simulation"
	"github.com/driftlab/drift/store"
)

// SimulateCommand seeds the demo dataset and generates additional trials
// for the current run.
var SimulateCommand = cli.Command{
	Action: simulateAction,
	Name:   "simulate",
	Usage:  "seed the store and generate additional trials for the current run",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&config.RandomSeedFlag,
		&config.TrialCountFlag,
		&config.MeanFlag,
		&config.StdDevFlag,
		&config.TailShiftFlag,
		&config.TailProbabilityFlag,
		&config.SamplesPerTrialFlag,
	},
	Description: `
The simulate command bootstraps the deterministic demo dataset from the
random seed, appends freshly generated trials to the current run, and
prints the summary tables.`,
}

func simulateAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Simulate")

	st := store.New(log)
	st.Initialize(store.GenerateInitialState(cfg.RandomSeed))
	run, ok := st.CurrentRun()
	if !ok {
		return fmt.Errorf("no run matches the current selection")
	}

	start := time.Now()
	for i := 0; i < cfg.TrialCount; i++ {
		trial, err := simulation.GenerateTrial(cfg.TrialConfig(), run.ID)
		if err != nil {
			return err
		}
		st.AddTrial(run.ID, trial)
		log.Debugf("trial %v: mean %.2f, max %.2f", trial.ID, trial.SampleMean, trial.MaxValue)
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Generated %v trials for run %v in %vh %vm %vs", cfg.TrialCount, run.ID, hours, minutes, seconds)

	report.WriteSummary(os.Stdout, st)
	return nil
}

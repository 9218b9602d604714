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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/driftlab/drift/config"
	"github.com/driftlab/drift/logger"
	"github.com/driftlab/drift/report"
	"github.com/driftlab/drift/store"
)

// ReportCommand prints the summary tables of the seeded dataset.
var ReportCommand = cli.Command{
	Action: reportAction,
	Name:   "report",
	Usage:  "print summary tables of the seeded dataset",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&config.RandomSeedFlag,
	},
}

func reportAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Report")

	st := store.New(log)
	st.Initialize(store.GenerateInitialState(cfg.RandomSeed))

	report.WriteSummary(os.Stdout, st)
	return nil
}

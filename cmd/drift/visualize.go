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
	"github.com/urfave/cli/v2"

	"github.com/driftlab/drift/config"
	"github.com/driftlab/drift/logger"
	"github.com/driftlab/drift/store"
	"github.com/driftlab/drift/visualizer"
)

// VisualizeCommand serves the seeded dataset as charts on a local web
// server.
var VisualizeCommand = cli.Command{
	Action: visualizeAction,
	Name:   "visualize",
	Usage:  "serve observed-vs-expected histograms on a local web server",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&config.RandomSeedFlag,
		&config.PortFlag,
	},
}

func visualizeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	st := store.New(log)
	st.Initialize(store.GenerateInitialState(cfg.RandomSeed))

	log.Noticef("Serving charts on http://localhost:%v", cfg.Port)
	return visualizer.FireUpWeb(st, cfg.Port)
}

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

	"github.com/urfave/cli/v2"
)

var driftApp = &cli.App{
	Name:      "Histogram drift simulator",
	HelpName:  "drift",
	Copyright: "(c) 2026 Driftlab",
	Usage:     "simulates bimodal sampling trials across versions, experiments and runs",
	Commands: []*cli.Command{
		&SimulateCommand,
		&ReportCommand,
		&VisualizeCommand,
	},
}

func main() {
	if err := driftApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

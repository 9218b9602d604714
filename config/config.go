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

// Package config defines the command-line flags of the drift apps and
// assembles them into a Config.
package config

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/driftlab/drift/logger"
	"github.com/driftlab/drift/simulation"
)

var (
	MeanFlag = cli.Float64Flag{
		Name:  "mean",
		Usage: "mean of the main distribution component",
		Value: 100.0,
	}
	StdDevFlag = cli.Float64Flag{
		Name:  "std-dev",
		Usage: "standard deviation of both distribution components",
		Value: 10.0,
	}
	TailShiftFlag = cli.Float64Flag{
		Name:  "tail-shift",
		Usage: "tail mean offset in standard deviations",
		Value: 3.0,
	}
	TailProbabilityFlag = cli.Float64Flag{
		Name:  "tail-probability",
		Usage: "probability of drawing a sample from the tail component",
		Value: 0.01,
	}
	SamplesPerTrialFlag = cli.IntFlag{
		Name:  "samples",
		Usage: "number of samples drawn per trial",
		Value: 200,
	}
	TrialCountFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of additional trials to generate",
		Value: 5,
	}
	RandomSeedFlag = cli.Uint64Flag{
		Name:  "random-seed",
		Usage: "seed of the deterministic demo dataset",
		Value: 12345,
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "port of the local visualization web server",
		Value: "8080",
	}
)

// Config holds the assembled settings of one app invocation.
type Config struct {
	AppName     string
	CommandName string

	LogLevel        string
	Mean            float64
	StdDev          float64
	TailShift       float64
	TailProbability float64
	SamplesPerTrial int
	TrialCount      int
	RandomSeed      uint32
	Port            string
}

// NewConfig reads the flag values of the invocation into a Config and
// validates the distribution parameters up front.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		LogLevel:        ctx.String(logger.LogLevelFlag.Name),
		Mean:            ctx.Float64(MeanFlag.Name),
		StdDev:          ctx.Float64(StdDevFlag.Name),
		TailShift:       ctx.Float64(TailShiftFlag.Name),
		TailProbability: ctx.Float64(TailProbabilityFlag.Name),
		SamplesPerTrial: ctx.Int(SamplesPerTrialFlag.Name),
		TrialCount:      ctx.Int(TrialCountFlag.Name),
		RandomSeed:      uint32(ctx.Uint64(RandomSeedFlag.Name)),
		Port:            ctx.String(PortFlag.Name),
	}
	if err := cfg.TrialConfig().Check(); err != nil {
		return nil, fmt.Errorf("invalid distribution parameters: %w", err)
	}
	if cfg.TrialCount < 0 {
		return nil, fmt.Errorf("trial count (%v) must not be negative", cfg.TrialCount)
	}
	return cfg, nil
}

// TrialConfig returns the distribution parameters as a trial config.
func (c *Config) TrialConfig() simulation.Config {
	return simulation.Config{
		Mean:            c.Mean,
		StdDev:          c.StdDev,
		TailShift:       c.TailShift,
		TailProbability: c.TailProbability,
		SamplesPerTrial: c.SamplesPerTrial,
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/driftlab/drift/logger"
)

func runWithArgs(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var cfg *Config
	var err error
	app := &cli.App{
		Commands: []*cli.Command{{
			Name: "test",
			Flags: []cli.Flag{
				&logger.LogLevelFlag,
				&MeanFlag,
				&StdDevFlag,
				&TailShiftFlag,
				&TailProbabilityFlag,
				&SamplesPerTrialFlag,
				&TrialCountFlag,
				&RandomSeedFlag,
				&PortFlag,
			},
			Action: func(ctx *cli.Context) error {
				cfg, err = NewConfig(ctx)
				return nil
			},
		}},
	}
	require.NoError(t, app.Run(append([]string{"drift", "test"}, args...)))
	return cfg, err
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := runWithArgs(t)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Mean)
	assert.Equal(t, 10.0, cfg.StdDev)
	assert.Equal(t, 3.0, cfg.TailShift)
	assert.Equal(t, 0.01, cfg.TailProbability)
	assert.Equal(t, 200, cfg.SamplesPerTrial)
	assert.Equal(t, 5, cfg.TrialCount)
	assert.Equal(t, uint32(12345), cfg.RandomSeed)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfig_Overrides(t *testing.T) {
	cfg, err := runWithArgs(t, "--mean", "50", "--samples", "1000", "--random-seed", "7")
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Mean)
	assert.Equal(t, 1000, cfg.SamplesPerTrial)
	assert.Equal(t, uint32(7), cfg.RandomSeed)

	trial := cfg.TrialConfig()
	assert.Equal(t, 50.0, trial.Mean)
	assert.Equal(t, 1000, trial.SamplesPerTrial)
}

func TestConfig_RejectsInvalidParameters(t *testing.T) {
	_, err := runWithArgs(t, "--std-dev", "0")
	assert.Error(t, err)

	_, err = runWithArgs(t, "--tail-probability", "1.5")
	assert.Error(t, err)

	_, err = runWithArgs(t, "--samples", "0")
	assert.Error(t, err)
}

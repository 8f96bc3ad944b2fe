package runner_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tourga/ga"
	"github.com/katalvlaran/tourga/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tourga.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := runner.DefaultConfig()
	assert.Equal(t, runner.DefaultNodes, cfg.Nodes)
	assert.Equal(t, runner.LayoutRandom, cfg.Layout)
	assert.Equal(t, ga.DefaultPopulationSize, cfg.PopulationSize)
	assert.Equal(t, runner.DefaultBatch, cfg.Batch)
	assert.Equal(t, ga.StrategyOX2Opt, cfg.Strategy)
	assert.True(t, cfg.Elitism)
	assert.Equal(t, cfg, cfg.Clamp(), "defaults are already in range")
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
nodes: 80
layout: circles
radius_ratio: 0.3
population_size: 250
strategy: pmx
seed: 42
batch: 5
generations: 1000
tick: 50ms
elitism: false
`)
	cfg, err := runner.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Nodes)
	assert.Equal(t, runner.LayoutCircles, cfg.Layout)
	assert.Equal(t, 0.3, cfg.RadiusRatio)
	assert.Equal(t, 250, cfg.PopulationSize)
	assert.Equal(t, ga.StrategyPMX, cfg.Strategy)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 5, cfg.Batch)
	assert.Equal(t, 1000, cfg.Generations)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
	assert.False(t, cfg.Elitism)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, ga.DefaultTournamentSize, cfg.TournamentSize)
	assert.Equal(t, ga.DefaultMutationRate, cfg.MutationRate)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := runner.LoadConfig(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, runner.DefaultConfig(), cfg)
}

func TestLoadConfigFrom_KeepsBase(t *testing.T) {
	base := runner.DefaultConfig()
	base.Generations = 2000
	base.Tick = 0

	cfg, err := runner.LoadConfigFrom(writeFile(t, "nodes: 8\n"), base)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Nodes)
	assert.Equal(t, 2000, cfg.Generations)
	assert.Equal(t, time.Duration(0), cfg.Tick)

	cfg, err = runner.LoadConfigFrom(writeFile(t, "generations: 0\ntick: 5ms\n"), base)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Generations, "the file wins over base")
	assert.Equal(t, 5*time.Millisecond, cfg.Tick)

	cfg, err = runner.LoadConfigFrom(writeFile(t, ""), base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := runner.LoadConfig(writeFile(t, "nodez: 10\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = runner.LoadConfig(writeFile(t, "nodes: [1, 2]\n"))
	require.Error(t, err)

	_, err = runner.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Clamp(t *testing.T) {
	tests := []struct {
		name string
		edit func(*runner.Config)
		want func(*testing.T, runner.Config)
	}{
		{"nodes low", func(c *runner.Config) { c.Nodes = 1 }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, runner.MinNodes, c.Nodes)
		}},
		{"nodes high", func(c *runner.Config) { c.Nodes = 10_000 }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, runner.MaxNodes, c.Nodes)
		}},
		{"population", func(c *runner.Config) { c.PopulationSize = 0 }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, runner.MinPopulationSize, c.PopulationSize)
		}},
		{"tournament", func(c *runner.Config) { c.TournamentSize = 99 }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, runner.MaxTournamentSize, c.TournamentSize)
		}},
		{"mutation", func(c *runner.Config) { c.MutationRate = 3 }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, runner.MaxMutationRate, c.MutationRate)
		}},
		{"mutation NaN", func(c *runner.Config) { c.MutationRate = math.NaN() }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, ga.DefaultMutationRate, c.MutationRate)
		}},
		{"ratio", func(c *runner.Config) { c.RadiusRatio = 0 }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, runner.MinRadiusRatio, c.RadiusRatio)
		}},
		{"batch and budget", func(c *runner.Config) { c.Batch, c.Generations, c.Tick = 0, -5, -time.Second }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, 1, c.Batch)
			assert.Zero(t, c.Generations)
			assert.Zero(t, c.Tick)
		}},
		{"circles pins nodes", func(c *runner.Config) { c.Layout, c.Nodes = " Circles ", 300 }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, runner.LayoutCircles, c.Layout)
			assert.Equal(t, runner.CircleNodes, c.Nodes)
		}},
		{"strategy normalised", func(c *runner.Config) { c.Strategy = " PMX" }, func(t *testing.T, c runner.Config) {
			assert.Equal(t, ga.StrategyPMX, c.Strategy)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runner.DefaultConfig()
			tc.edit(&cfg)
			tc.want(t, cfg.Clamp())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.Layout = "spiral"
	require.ErrorIs(t, cfg.Validate(), runner.ErrUnknownLayout)

	cfg = runner.DefaultConfig()
	cfg.Strategy = "cycle"
	require.ErrorIs(t, cfg.Validate(), ga.ErrUnknownStrategy)
}

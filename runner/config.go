package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourga/ga"
)

// Layout selects how node coordinates are generated.
type Layout string

// Supported layouts.
const (
	LayoutRandom  Layout = "random"  // uniform in the unit square
	LayoutCircles Layout = "circles" // two concentric circles
)

// ErrUnknownLayout indicates a layout name other than LayoutRandom or LayoutCircles.
var ErrUnknownLayout = errors.New("runner: unknown layout")

// Host bounds applied by Clamp.
const (
	MinNodes, MaxNodes                   = 4, 500
	MinPopulationSize, MaxPopulationSize = 2, 1000
	MinTournamentSize, MaxTournamentSize = 1, 50
	MinMutationRate, MaxMutationRate     = 0.0, 1.0
	MinRadiusRatio, MaxRadiusRatio       = 0.1, 1.0

	// CircleNodes is the node count forced by the circles layout.
	CircleNodes = 24
)

// Defaults applied by DefaultConfig.
const (
	DefaultNodes        = 50
	DefaultRadiusRatio  = 0.5
	DefaultBatch        = 20
	DefaultTick         = 16 * time.Millisecond
	DefaultStrategyName = ga.StrategyOX2Opt
)

// Config is the host configuration. Every field maps to one YAML key.
type Config struct {
	Nodes          int           `yaml:"nodes"`
	Layout         Layout        `yaml:"layout"`
	RadiusRatio    float64       `yaml:"radius_ratio"`
	PopulationSize int           `yaml:"population_size"`
	TournamentSize int           `yaml:"tournament_size"`
	MutationRate   float64       `yaml:"mutation_rate"`
	Elitism        bool          `yaml:"elitism"`
	Strategy       string        `yaml:"strategy"`
	Seed           int64         `yaml:"seed"`
	Batch          int           `yaml:"batch"`       // generations per tick
	Generations    int           `yaml:"generations"` // total budget; 0 runs until cancelled
	Tick           time.Duration `yaml:"tick"`        // pause between batches; 0 runs flat out
	MaxLogPoints   int           `yaml:"max_log_points"`
}

// DefaultConfig returns the configuration LoadConfig starts from. It runs
// until cancelled and paces batches by DefaultTick.
func DefaultConfig() Config {
	return Config{
		Nodes:          DefaultNodes,
		Layout:         LayoutRandom,
		RadiusRatio:    DefaultRadiusRatio,
		PopulationSize: ga.DefaultPopulationSize,
		TournamentSize: ga.DefaultTournamentSize,
		MutationRate:   ga.DefaultMutationRate,
		Elitism:        ga.DefaultElitism,
		Strategy:       DefaultStrategyName,
		Batch:          DefaultBatch,
		Tick:           DefaultTick,
		MaxLogPoints:   ga.DefaultMaxDataPoints,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys absent from the file
// keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	return LoadConfigFrom(path, DefaultConfig())
}

// LoadConfigFrom reads a YAML file over base. Keys absent from the file keep
// the value from base; an empty file returns base unchanged.
func LoadConfigFrom(path string, base Config) (Config, error) {
	cfg := base

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("LoadConfig %s: %w", path, err)
	}

	return cfg, nil
}

// Clamp returns a copy with every numeric knob forced into the host bounds.
// A NaN rate or ratio falls back to its default. The circles layout pins the
// node count to CircleNodes.
func (c Config) Clamp() Config {
	c.Layout = Layout(strings.ToLower(strings.TrimSpace(string(c.Layout))))
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	if c.Layout == LayoutCircles {
		c.Nodes = CircleNodes
	}
	c.Nodes = clampInt(c.Nodes, MinNodes, MaxNodes)
	c.PopulationSize = clampInt(c.PopulationSize, MinPopulationSize, MaxPopulationSize)
	c.TournamentSize = clampInt(c.TournamentSize, MinTournamentSize, MaxTournamentSize)
	c.MutationRate = clampFloat(c.MutationRate, MinMutationRate, MaxMutationRate, ga.DefaultMutationRate)
	c.RadiusRatio = clampFloat(c.RadiusRatio, MinRadiusRatio, MaxRadiusRatio, DefaultRadiusRatio)
	if c.Batch < 1 {
		c.Batch = 1
	}
	if c.Generations < 0 {
		c.Generations = 0
	}
	if c.Tick < 0 {
		c.Tick = 0
	}

	return c
}

// Validate reports names Clamp cannot fix: the layout and the strategy.
func (c Config) Validate() error {
	switch c.Layout {
	case LayoutRandom, LayoutCircles:
	default:
		return fmt.Errorf("layout %q: %w", c.Layout, ErrUnknownLayout)
	}
	if _, err := ga.StrategyByName(c.Strategy); err != nil {
		return err
	}

	return nil
}

// engineOptions translates the host config into engine options.
func (c Config) engineOptions() ([]ga.Option, error) {
	s, err := ga.StrategyByName(c.Strategy)
	if err != nil {
		return nil, err
	}

	return []ga.Option{
		ga.WithPopulationSize(c.PopulationSize),
		ga.WithTournamentSize(c.TournamentSize),
		ga.WithMutationRate(c.MutationRate),
		ga.WithElitism(c.Elitism),
		ga.WithStrategy(s),
		ga.WithSeed(c.Seed),
		ga.WithMaxLogPoints(c.MaxLogPoints),
	}, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func clampFloat(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}

	return math.Min(math.Max(v, lo), hi)
}

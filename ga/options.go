package ga

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults applied by DefaultConfig.
const (
	DefaultPopulationSize = 100
	DefaultTournamentSize = 5
	DefaultMutationRate   = 0.1
	DefaultElitism        = true
)

// Config holds the engine knobs.
//
// Fields:
//   - PopulationSize: individuals per generation (>= 1).
//   - TournamentSize: sample size of tournament selection (>= 1); may exceed
//     PopulationSize since sampling is with replacement.
//   - MutationRate: per-offspring mutation probability in [0, 1].
//   - Elitism: carry a copy of the current fittest into every new generation.
//   - Strategy: crossover/mutation policy (PMXInsertion or OrderTwoOpt).
//   - Seed: RNG seed; 0 selects a fixed default stream.
//   - MaxLogPoints: fitness log budget; <= 0 selects DefaultMaxDataPoints.
type Config struct {
	PopulationSize int
	TournamentSize int
	MutationRate   float64
	Elitism        bool
	Strategy       Strategy
	Seed           int64
	MaxLogPoints   int

	rng *rand.Rand // explicit stream from WithRand; overrides Seed
}

// Option customizes a Config before the engine is built.
type Option func(*Config)

// DefaultConfig returns the configuration New starts from.
//
// Defaults:
//   - PopulationSize: 100
//   - TournamentSize: 5
//   - MutationRate:   0.1
//   - Elitism:        true
//   - Strategy:       OrderTwoOpt
//   - Seed:           0 (deterministic default stream)
//   - MaxLogPoints:   DefaultMaxDataPoints
func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		TournamentSize: DefaultTournamentSize,
		MutationRate:   DefaultMutationRate,
		Elitism:        DefaultElitism,
		Strategy:       OrderTwoOpt{},
		MaxLogPoints:   DefaultMaxDataPoints,
	}
}

// WithPopulationSize sets the population size. Range is checked by New.
func WithPopulationSize(n int) Option {
	return func(c *Config) { c.PopulationSize = n }
}

// WithTournamentSize sets the tournament size. Range is checked by New.
func WithTournamentSize(n int) Option {
	return func(c *Config) { c.TournamentSize = n }
}

// WithMutationRate sets the mutation probability. Range is checked by New.
func WithMutationRate(r float64) Option {
	return func(c *Config) { c.MutationRate = r }
}

// WithElitism toggles elitism.
func WithElitism(on bool) Option {
	return func(c *Config) { c.Elitism = on }
}

// WithStrategy selects the crossover/mutation policy. Panics on nil.
func WithStrategy(s Strategy) Option {
	if s == nil {
		panic("ga: WithStrategy(nil)")
	}
	return func(c *Config) { c.Strategy = s }
}

// WithSeed seeds the engine RNG. Same seed and options ⇒ identical runs.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.rng = nil
	}
}

// WithRand hands the engine an explicit RNG stream. Panics on nil.
// The engine becomes the sole user of r.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("ga: WithRand(nil)")
	}
	return func(c *Config) { c.rng = r }
}

// WithMaxLogPoints sets the fitness log budget.
func WithMaxLogPoints(n int) Option {
	return func(c *Config) { c.MaxLogPoints = n }
}

// newConfig applies opts over DefaultConfig in order (later overrides earlier).
func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns the configured stream, or a seeded one.
func (c Config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rngFromSeed(c.Seed)
}

// validate rejects out-of-domain values at the configuration boundary.
func (c Config) validate() error {
	if err := validatePopulationSize(c.PopulationSize); err != nil {
		return err
	}
	if err := validateTournamentSize(c.TournamentSize); err != nil {
		return err
	}
	if err := validateMutationRate(c.MutationRate); err != nil {
		return err
	}
	if c.Strategy == nil {
		return fmt.Errorf("config: nil strategy: %w", ErrUnknownStrategy)
	}

	return nil
}

func validatePopulationSize(n int) error {
	if n < 1 {
		return fmt.Errorf("population size %d: %w", n, ErrInvalidPopulationSize)
	}

	return nil
}

func validateTournamentSize(n int) error {
	if n < 1 {
		return fmt.Errorf("tournament size %d: %w", n, ErrInvalidTournamentSize)
	}

	return nil
}

func validateMutationRate(r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("mutation rate %g: %w", r, ErrInvalidMutationRate)
	}

	return nil
}

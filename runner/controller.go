package runner

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tourga/ga"
	"github.com/katalvlaran/tourga/geom"
)

// Controller owns one engine and the layout it evolves over. Reset replaces
// both; the setters forward clamped values to the live engine.
//
// All methods are safe for concurrent use. A batch holds the controller lock
// for its duration, so Snapshot never observes a half-rebuilt environment.
type Controller struct {
	mu sync.Mutex

	cfg    Config
	coords geom.Coordinates
	engine *ga.Engine
	runID  uuid.UUID
	ticks  int

	baseLogger *slog.Logger
	logger     *slog.Logger
}

// Snapshot is a display-ready view of the controller state.
type Snapshot struct {
	RunID       string       `json:"run_id"`
	Ticks       int          `json:"ticks"`
	Generation  int          `json:"generation"`
	Layout      Layout       `json:"layout"`
	Strategy    string       `json:"strategy"`
	Population  int          `json:"population_size"`
	Points      []geom.Point `json:"points"`
	Path        []geom.Point `json:"path"` // Best.Tour as points, closed
	Best        ga.Result    `json:"best"`
	FitnessLog  []ga.Sample  `json:"fitness_log"`
	LogInterval int          `json:"log_interval"`
}

// New clamps cfg, builds the layout and engine, and assigns a run id.
// A nil logger selects slog.Default().
func New(cfg Config, logger *slog.Logger) (*Controller, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{baseLogger: logger}
	if err := c.reset(cfg); err != nil {
		return nil, err
	}

	return c, nil
}

// reset rebuilds everything from cfg. The controller is untouched on error.
func (c *Controller) reset(cfg Config) error {
	cfg = cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	coords, engine, err := build(cfg)
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}

	c.cfg = cfg
	c.coords = coords
	c.engine = engine
	c.runID = uuid.New()
	c.ticks = 0
	c.logger = c.baseLogger.With("run_id", c.runID.String())
	c.logger.Info("environment ready",
		"nodes", coords.Len(),
		"layout", string(cfg.Layout),
		"strategy", cfg.Strategy,
		"population_size", cfg.PopulationSize,
		"seed", cfg.Seed,
	)

	return nil
}

// build creates the coordinates for cfg.Layout and an engine over them.
func build(cfg Config) (geom.Coordinates, *ga.Engine, error) {
	opts, err := cfg.engineOptions()
	if err != nil {
		return geom.Coordinates{}, nil, err
	}

	var coords geom.Coordinates
	switch cfg.Layout {
	case LayoutCircles:
		coords, err = geom.ConcentricCircles(cfg.Nodes, cfg.RadiusRatio)
	default:
		// Coordinates draw from their own stream, separate from the engine's.
		coords, err = geom.RandomCoordinates(cfg.Nodes, rand.New(rand.NewSource(layoutSeed(cfg.Seed))))
	}
	if err != nil {
		return geom.Coordinates{}, nil, err
	}

	engine, err := ga.New(coords, opts...)
	if err != nil {
		return geom.Coordinates{}, nil, err
	}

	return coords, engine, nil
}

// layoutSeed derives the coordinate stream from the run seed; 0 maps to 1
// like the engine's own default.
func layoutSeed(seed int64) int64 {
	if seed == 0 {
		seed = 1
	}

	return seed ^ 0x5deece66d
}

// RunID identifies the current environment; Reset assigns a new one.
func (c *Controller) RunID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.runID
}

// Config returns the clamped configuration in effect.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg
}

// Tick evolves one batch. With a generation budget the last batch is
// shortened so the budget is hit exactly; once it is spent Tick is a no-op.
func (c *Controller) Tick() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tick()
}

func (c *Controller) tick() error {
	k := c.cfg.Batch
	if c.cfg.Generations > 0 {
		if left := c.cfg.Generations - c.engine.Generation(); left < k {
			k = left
		}
	}
	if k <= 0 {
		return nil
	}
	if err := c.engine.Evolve(k); err != nil {
		c.logger.Error("evolve failed", "err", err, "generation", c.engine.Generation())
		return fmt.Errorf("runner: tick %d: %w", c.ticks+1, err)
	}
	c.ticks++

	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		best := c.engine.Best()
		c.logger.Debug("tick",
			"tick", c.ticks,
			"generation", best.Generation,
			"best_distance", best.Distance,
		)
	}

	return nil
}

// done reports whether the generation budget is spent.
func (c *Controller) done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg.Generations > 0 && c.engine.Generation() >= c.cfg.Generations
}

// Run ticks until the generation budget is spent or ctx is done. Between
// batches it waits cfg.Tick. It returns nil when the budget is reached and
// ctx.Err() on cancellation; the engine keeps its state either way.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	interval := c.cfg.Tick
	logger := c.logger
	c.mu.Unlock()

	logger.Info("run started", "tick", interval.String())
	started := time.Now()

	var wait <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		wait = t.C
	}

	for !c.done() {
		if wait != nil {
			select {
			case <-ctx.Done():
				return c.stopped(ctx, started)
			case <-wait:
			}
		} else if ctx.Err() != nil {
			return c.stopped(ctx, started)
		}
		if err := c.Tick(); err != nil {
			return err
		}
	}

	best := c.Best()
	c.loggerSnapshot().Info("run finished",
		"generation", best.Generation,
		"best_distance", best.Distance,
		"elapsed", time.Since(started).String(),
	)

	return nil
}

func (c *Controller) stopped(ctx context.Context, started time.Time) error {
	best := c.Best()
	c.loggerSnapshot().Info("run stopped",
		"reason", ctx.Err().Error(),
		"generation", best.Generation,
		"best_distance", best.Distance,
		"elapsed", time.Since(started).String(),
	)

	return ctx.Err()
}

func (c *Controller) loggerSnapshot() *slog.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.logger
}

// Reset rebuilds layout and engine from cfg (clamped) and starts a new run id.
// On error the previous environment stays in place.
func (c *Controller) Reset(cfg Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reset(cfg)
}

// SetPopulationSize clamps n and resizes the live population.
func (c *Controller) SetPopulationSize(n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n = clampInt(n, MinPopulationSize, MaxPopulationSize)
	if err := c.engine.ResizePopulation(n); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	c.cfg.PopulationSize = n
	c.logger.Info("population resized", "population_size", n)

	return nil
}

// SetMutationRate clamps r into [0, 1] and applies it.
func (c *Controller) SetMutationRate(r float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	r = clampFloat(r, MinMutationRate, MaxMutationRate, c.cfg.MutationRate)
	if err := c.engine.SetMutationRate(r); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	c.cfg.MutationRate = r

	return nil
}

// SetTournamentSize clamps n and applies it.
func (c *Controller) SetTournamentSize(n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n = clampInt(n, MinTournamentSize, MaxTournamentSize)
	if err := c.engine.SetTournamentSize(n); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	c.cfg.TournamentSize = n

	return nil
}

// SetElitism toggles elitism on the live engine.
func (c *Controller) SetElitism(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engine.SetElitism(on)
	c.cfg.Elitism = on
}

// Best returns the engine's current fittest individual.
func (c *Controller) Best() ga.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.engine.Best()
}

// Snapshot collects everything a display needs in one consistent read.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	best := c.engine.Best()

	return Snapshot{
		RunID:       c.runID.String(),
		Ticks:       c.ticks,
		Generation:  best.Generation,
		Layout:      c.cfg.Layout,
		Strategy:    c.engine.Strategy().Name(),
		Population:  c.engine.Size(),
		Points:      c.coords.Points(),
		Path:        c.coords.Apply(best.Tour),
		Best:        best,
		FitnessLog:  c.engine.FitnessLog(),
		LogInterval: c.engine.LogInterval(),
	}
}

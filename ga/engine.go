package ga

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tourga/geom"
	"github.com/katalvlaran/tourga/tsp"
)

// Engine evolves a population of routes over a fixed coordinate set.
//
// State advances in discrete generations. The engine starts at generation 0
// with a random population and one fitness-log sample; every NewGeneration
// replaces the population wholesale, advances the counter and pushes a sample.
//
// An Engine is safe for use by multiple goroutines: one mutex serializes
// every mutation and snapshot, because population, counter and log are
// updated together. The engine itself never starts goroutines, never blocks
// on I/O and has no notion of time; hosts batch Evolve calls as they see fit.
type Engine struct {
	mu sync.Mutex

	coords   geom.Coordinates
	dist     *geom.DistanceTable
	strategy Strategy

	cfg        Config
	pop        *Population
	log        *FitnessLog
	generation int
}

// Result is a snapshot of the fittest individual.
type Result struct {
	Generation int     `json:"generation"`
	Route      []int   `json:"route"`    // open permutation
	Tour       []int   `json:"tour"`     // closed tour rotated to node 0 (len N+1)
	Distance   float64 `json:"distance"` // closed-tour length
	Fitness    float64 `json:"fitness"`  // 1 / Distance
}

// New builds an engine over coords.
//
// Errors: ErrTooFewNodes, ErrInvalidPopulationSize, ErrInvalidTournamentSize,
// ErrInvalidMutationRate (all wrapped); geom errors from the distance table.
//
// Complexity: O(N²) for the distance table + O(P·N) for the population.
func New(coords geom.Coordinates, opts ...Option) (*Engine, error) {
	cfg := newConfig(opts...)

	return newEngine(coords, cfg)
}

// NewRandom builds an engine over n points drawn uniformly from the unit
// square, using the engine's own RNG stream for the points.
func NewRandom(n int, opts ...Option) (*Engine, error) {
	cfg := newConfig(opts...)
	if n < 2 {
		return nil, fmt.Errorf("NewRandom: n=%d: %w", n, ErrTooFewNodes)
	}
	cfg.rng = cfg.random()

	coords, err := geom.RandomCoordinates(n, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("NewRandom: %w", err)
	}

	return newEngine(coords, cfg)
}

func newEngine(coords geom.Coordinates, cfg Config) (*Engine, error) {
	if coords.Len() < 2 {
		return nil, fmt.Errorf("New: n=%d: %w", coords.Len(), ErrTooFewNodes)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	dist, err := geom.NewDistanceTable(coords)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	cfg.rng = cfg.random()

	e := &Engine{
		coords:   coords,
		dist:     dist,
		strategy: cfg.Strategy,
		cfg:      cfg,
		pop:      NewPopulation(cfg.PopulationSize, coords.Len(), cfg.rng),
		log:      NewFitnessLog(cfg.MaxLogPoints),
	}
	e.log.Push(e.fitness(e.fittest(e.pop)))

	return e, nil
}

// ---------- fitness & selection ----------

// Fitness returns 1 / closed-tour length of ind. A zero-length tour (all
// points coincide) yields +Inf, which still orders correctly. ind must be a
// permutation of [0, N); SetGene can break that and Fitness does not check.
//
// Complexity: O(N).
func (e *Engine) Fitness(ind *Individual) float64 {
	return e.fitness(ind)
}

func (e *Engine) fitness(ind *Individual) float64 {
	return 1 / e.dist.CycleLength(ind.route)
}

// Fittest returns the individual of pop with maximum fitness; the first one
// wins ties. It returns nil for an empty population.
//
// Complexity: O(P·N).
func (e *Engine) Fittest(pop *Population) *Individual {
	return e.fittest(pop)
}

func (e *Engine) fittest(pop *Population) *Individual {
	if pop.Size() == 0 {
		return nil
	}
	var (
		best  = pop.individuals[0]
		bestF = e.fitness(best)
		f     float64
	)
	for _, ind := range pop.individuals[1:] {
		if f = e.fitness(ind); f > bestF {
			best, bestF = ind, f
		}
	}

	return best
}

// Select runs one tournament over the current population: TournamentSize
// members are drawn with replacement and a copy of the fittest of them is
// returned, so callers can never edit the live population.
//
// Complexity: O(T·N).
func (e *Engine) Select() *Individual {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.selectOne().Copy()
}

// selectOne is Select without the lock or the copy; the winner is shared.
func (e *Engine) selectOne() *Individual {
	var (
		size  = e.pop.Size()
		best  *Individual
		bestF float64
		cand  *Individual
		f     float64
	)
	for i := 0; i < e.cfg.TournamentSize; i++ {
		cand = e.pop.individuals[e.cfg.rng.Intn(size)]
		if f = e.fitness(cand); best == nil || f > bestF {
			best, bestF = cand, f
		}
	}

	return best
}

// ---------- variation ----------

// Crossover recombines two parents with the engine's strategy.
func (e *Engine) Crossover(p1, p2 *Individual) (*Individual, *Individual, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.strategy.Crossover(p1, p2, e.cfg.rng)
}

// Mutate applies the strategy's mutation to ind with probability
// MutationRate and reports whether it did.
func (e *Engine) Mutate(ind *Individual) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.mutate(ind)
}

func (e *Engine) mutate(ind *Individual) bool {
	if e.cfg.rng.Float64() >= e.cfg.MutationRate {
		return false
	}
	e.strategy.Mutate(ind, e.cfg.rng)

	return true
}

// ---------- generations ----------

// NewGeneration breeds a population of exactly PopulationSize individuals,
// makes it current, advances the generation counter and logs the new best
// fitness. With elitism a copy of the current fittest is seeded first.
// Children are appended in pairs; the second child of the last pair is
// dropped when only one slot remains.
//
// On error the engine is left exactly as it was.
//
// Complexity: O(P·(T+1)·N).
func (e *Engine) NewGeneration() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.newGeneration()
}

func (e *Engine) newGeneration() error {
	var (
		target = e.cfg.PopulationSize
		next   = newEmptyPopulation(target)
	)
	if e.cfg.Elitism {
		next.Push(e.fittest(e.pop).Copy())
	}

	var (
		p1, p2 *Individual
		c1, c2 *Individual
		err    error
	)
	for next.Size() < target {
		p1 = e.selectOne()
		p2 = e.selectOne()
		if c1, c2, err = e.strategy.Crossover(p1, p2, e.cfg.rng); err != nil {
			return fmt.Errorf("generation %d: %w", e.generation+1, err)
		}
		e.mutate(c1)
		e.mutate(c2)

		next.Push(c1)
		if next.Size() < target {
			next.Push(c2)
		}
	}

	e.pop = next
	e.generation++
	e.log.Push(e.fitness(e.fittest(e.pop)))

	return nil
}

// Evolve runs NewGeneration k times in sequence and stops at the first error.
// k <= 0 is a no-op.
func (e *Engine) Evolve(k int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i < k; i++ {
		if err := e.newGeneration(); err != nil {
			return err
		}
	}

	return nil
}

// ResizePopulation changes the population to exactly target individuals.
//
//   - target == size: no-op.
//   - shrinking: survivors are drawn by tournament (as copies); with elitism a
//     copy of the current fittest is kept first.
//   - growing: target-size fresh random individuals are appended.
//
// PopulationSize changes together with the population.
//
// Errors: ErrInvalidPopulationSize when target < 1.
func (e *Engine) ResizePopulation(target int) error {
	if err := validatePopulationSize(target); err != nil {
		return fmt.Errorf("ResizePopulation: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	size := e.pop.Size()
	switch {
	case target == size:
		return nil
	case target < size:
		next := newEmptyPopulation(target)
		if e.cfg.Elitism {
			next.Push(e.fittest(e.pop).Copy())
		}
		for next.Size() < target {
			next.Push(e.selectOne().Copy())
		}
		e.pop = next
	default:
		e.pop.Append(NewPopulation(target-size, e.coords.Len(), e.cfg.rng))
	}
	e.cfg.PopulationSize = target

	return nil
}

// ---------- configuration ----------

// SetMutationRate changes the mutation probability from the next generation on.
func (e *Engine) SetMutationRate(r float64) error {
	if err := validateMutationRate(r); err != nil {
		return fmt.Errorf("SetMutationRate: %w", err)
	}
	e.mu.Lock()
	e.cfg.MutationRate = r
	e.mu.Unlock()

	return nil
}

// SetTournamentSize changes the tournament size from the next selection on.
func (e *Engine) SetTournamentSize(n int) error {
	if err := validateTournamentSize(n); err != nil {
		return fmt.Errorf("SetTournamentSize: %w", err)
	}
	e.mu.Lock()
	e.cfg.TournamentSize = n
	e.mu.Unlock()

	return nil
}

// SetElitism toggles elitism from the next generation on.
func (e *Engine) SetElitism(on bool) {
	e.mu.Lock()
	e.cfg.Elitism = on
	e.mu.Unlock()
}

// ---------- read accessors ----------

// Generation returns the current generation number.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.generation
}

// Size returns the current population size.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pop.Size()
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg := e.cfg
	cfg.rng = nil

	return cfg
}

// Strategy returns the crossover/mutation policy chosen at construction.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Coordinates returns the immutable node set.
func (e *Engine) Coordinates() geom.Coordinates { return e.coords }

// Population returns a deep copy of the current population.
func (e *Engine) Population() *Population {
	e.mu.Lock()
	defer e.mu.Unlock()

	cp := newEmptyPopulation(e.pop.Size())
	for _, ind := range e.pop.individuals {
		cp.Push(ind.Copy())
	}

	return cp
}

// Best returns a snapshot of the current fittest individual. Distance is the
// closed-tour cost rounded to 1e-9, as tsp.CycleCost reports it.
//
// Population routes are always permutations: the operators preserve them
// and every accessor hands out copies. Best panics if that invariant is
// broken, since no caller could act on the error.
func (e *Engine) Best() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	route := e.fittest(e.pop).Route()
	tour, err := tsp.MakeTourFromPermutation(route, len(route), 0)
	if err != nil {
		panic(fmt.Sprintf("ga: corrupt fittest route %v: %v", route, err))
	}
	length, err := tsp.CycleCost(e.dist.Matrix(), route)
	if err != nil {
		panic(fmt.Sprintf("ga: fittest route %v: %v", route, err))
	}

	return Result{
		Generation: e.generation,
		Route:      route,
		Tour:       tour,
		Distance:   length,
		Fitness:    1 / length,
	}
}

// FitnessLog returns a copy of the fitness history in generation order.
func (e *Engine) FitnessLog() []Sample {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.Samples()
}

// LogInterval returns the current sampling stride of the fitness log.
func (e *Engine) LogInterval() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.log.Interval()
}

package ga

import "errors"

// Sentinel errors returned by the engine. Configuration sentinels are
// returned by New and the setters; ErrCrossoverCycle is returned (wrapped
// with position context) from a failed crossover.
var (
	// ErrTooFewNodes indicates a coordinate set with fewer than two nodes.
	ErrTooFewNodes = errors.New("ga: need at least 2 nodes")

	// ErrInvalidPopulationSize indicates a population size below 1.
	ErrInvalidPopulationSize = errors.New("ga: population size must be >= 1")

	// ErrInvalidTournamentSize indicates a tournament size below 1.
	ErrInvalidTournamentSize = errors.New("ga: tournament size must be >= 1")

	// ErrInvalidMutationRate indicates a mutation rate that is NaN or outside [0, 1].
	ErrInvalidMutationRate = errors.New("ga: mutation rate must be in [0, 1]")

	// ErrInvalidRoute indicates an explicit route that is not a permutation of [0, n).
	ErrInvalidRoute = errors.New("ga: route is not a permutation")

	// ErrParentMismatch indicates crossover parents of different lengths.
	ErrParentMismatch = errors.New("ga: parents differ in length")

	// ErrCrossoverCycle indicates that PMX gene resolution did not terminate
	// within N steps: the substitution table is corrupt. It is an internal
	// invariant violation, never a user error.
	ErrCrossoverCycle = errors.New("ga: crossover gene resolution exceeded node count")

	// ErrUnknownStrategy indicates an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("ga: unknown strategy")
)

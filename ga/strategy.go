package ga

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/tourga/tsp"
)

// Strategy is a crossover/mutation policy. Implementations must return
// children that are permutations whenever the parents are, and must mutate
// routes in a permutation-preserving way. They draw all randomness from rng
// and keep no state between calls.
type Strategy interface {
	// Name identifies the strategy in configs and logs.
	Name() string

	// Crossover recombines two parents into two new children. The parents are
	// never modified. Parents that are not permutations of the same [0, N)
	// yield ErrParentMismatch or ErrInvalidRoute.
	Crossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual, error)

	// Mutate perturbs ind in place. The engine decides whether to call it
	// (with probability equal to the mutation rate).
	Mutate(ind *Individual, rng *rand.Rand)
}

// Strategy names accepted by StrategyByName.
const (
	StrategyPMX    = "pmx"
	StrategyOX2Opt = "ox2opt"
)

// StrategyByName resolves a strategy from its configuration name
// (case-insensitive).
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyPMX:
		return PMXInsertion{}, nil
	case StrategyOX2Opt:
		return OrderTwoOpt{}, nil
	default:
		return nil, fmt.Errorf("StrategyByName(%q): %w", name, ErrUnknownStrategy)
	}
}

// checkParents ensures both parents have the same length and are
// permutations of [0, N). SetGene can leave an individual in any state, and
// the crossover kernels index tables by gene value.
//
// Complexity: O(N).
func checkParents(p1, p2 *Individual) error {
	if p1.Len() != p2.Len() {
		return fmt.Errorf("crossover: len %d vs %d: %w", p1.Len(), p2.Len(), ErrParentMismatch)
	}
	if err := tsp.ValidatePermutation(p1.route, p1.Len()); err != nil {
		return fmt.Errorf("crossover: parent 1 %v: %w", p1.route, ErrInvalidRoute)
	}
	if err := tsp.ValidatePermutation(p2.route, p2.Len()); err != nil {
		return fmt.Errorf("crossover: parent 2 %v: %w", p2.route, ErrInvalidRoute)
	}

	return nil
}

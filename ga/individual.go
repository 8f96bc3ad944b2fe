package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tourga/tsp"
)

// Individual is a candidate closed tour: a permutation of node indices [0, N).
// Every Individual owns its route; Copy never aliases.
type Individual struct {
	route []int
}

// NewRandomIndividual returns a uniformly shuffled permutation of [0, n).
//
// Complexity: O(n).
func NewRandomIndividual(n int, rng *rand.Rand) *Individual {
	route := make([]int, n)
	for i := range route {
		route[i] = i
	}
	shuffleIntsInPlace(route, rng)

	return &Individual{route: route}
}

// NewIndividual wraps an explicit route. The route is copied and must be a
// permutation of [0, len(route)).
func NewIndividual(route []int) (*Individual, error) {
	if err := tsp.ValidatePermutation(route, len(route)); err != nil {
		return nil, fmt.Errorf("NewIndividual(%v): %w", route, ErrInvalidRoute)
	}

	return &Individual{route: tsp.CopyTour(route)}, nil
}

// Copy returns an independent deep copy.
func (ind *Individual) Copy() *Individual {
	return &Individual{route: tsp.CopyTour(ind.route)}
}

// Len returns the number of genes (N).
func (ind *Individual) Len() int { return len(ind.route) }

// Gene returns the node index at position i.
func (ind *Individual) Gene(i int) int { return ind.route[i] }

// SetGene stores v at position i. No permutation check is made here; the
// engine's operators are the ones that keep routes valid.
func (ind *Individual) SetGene(i, v int) { ind.route[i] = v }

// Route returns a copy of the route.
func (ind *Individual) Route() []int { return tsp.CopyTour(ind.route) }

// String renders the route, e.g. "[0 2 1 3]".
func (ind *Individual) String() string { return fmt.Sprint(ind.route) }

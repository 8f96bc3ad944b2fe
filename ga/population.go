package ga

import "math/rand"

// Population is an ordered collection of independently owned Individuals.
type Population struct {
	individuals []*Individual
}

// NewPopulation returns size random individuals over n nodes.
//
// Complexity: O(size*n).
func NewPopulation(size, n int, rng *rand.Rand) *Population {
	p := newEmptyPopulation(size)
	for i := 0; i < size; i++ {
		p.individuals = append(p.individuals, NewRandomIndividual(n, rng))
	}

	return p
}

// newEmptyPopulation preallocates room for capacity individuals.
func newEmptyPopulation(capacity int) *Population {
	return &Population{individuals: make([]*Individual, 0, capacity)}
}

// Size returns the number of individuals.
func (p *Population) Size() int { return len(p.individuals) }

// Individual returns the i-th individual (shared, not copied).
func (p *Population) Individual(i int) *Individual { return p.individuals[i] }

// Push appends ind. The population takes ownership; push a Copy when the
// individual also lives elsewhere.
func (p *Population) Push(ind *Individual) { p.individuals = append(p.individuals, ind) }

// Append moves every individual of other to the end of p.
func (p *Population) Append(other *Population) {
	p.individuals = append(p.individuals, other.individuals...)
}

// Individuals returns a snapshot slice of the members. The slice is fresh;
// the individuals are shared.
func (p *Population) Individuals() []*Individual {
	out := make([]*Individual, len(p.individuals))
	copy(out, p.individuals)

	return out
}

package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tourga/tsp"
)

// minPMXNodes is the smallest N with two distinct cut points in [0, N-1).
const minPMXNodes = 3

// PMXInsertion is the baseline policy: partially-mapped crossover and
// single-gene insertion mutation.
type PMXInsertion struct{}

var _ Strategy = PMXInsertion{}

// Name implements Strategy.
func (PMXInsertion) Name() string { return StrategyPMX }

// Crossover implements Strategy with PMX. Cut points are two distinct values
// from [0, N-1), ordered start < end; the segment is [start, end). For N < 3
// there is no such pair and the children are plain copies of the parents.
func (PMXInsertion) Crossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, nil, err
	}
	n := p1.Len()
	if n < minPMXNodes {
		return p1.Copy(), p2.Copy(), nil
	}
	start, end := pickCut(rng, n-1)

	c1, c2, err := pmx(p1.route, p2.route, start, end)
	if err != nil {
		return nil, nil, err
	}

	return &Individual{route: c1}, &Individual{route: c2}, nil
}

// Mutate implements Strategy with insertion: the gene at one random position
// is removed and reinserted at another, shifting the genes in between.
func (PMXInsertion) Mutate(ind *Individual, rng *rand.Rand) {
	if ind.Len() < 2 {
		return
	}
	from, to := pickTwo(rng, ind.Len())
	insertGene(ind.route, from, to)
}

// pmx builds both PMX children for the segment [start, end).
//
// child1 starts as a copy of p2 (so it carries p2's segment verbatim) and each
// position outside the segment takes p1's gene, chased through the p2→p1
// substitution table until it is no longer a segment gene of p2. child2 is the
// mirror image.
//
// Complexity: O(N) time for valid parents (each chase is bounded by the
// segment length), O(N) space.
func pmx(p1, p2 []int, start, end int) ([]int, []int, error) {
	var (
		n   = len(p1)
		t12 = newSubstitution(n) // p1 segment gene → p2 gene
		t21 = newSubstitution(n) // p2 segment gene → p1 gene
		i   int
	)
	for i = start; i < end; i++ {
		t12[p1[i]] = p2[i]
		t21[p2[i]] = p1[i]
	}

	c1 := tsp.CopyTour(p2)
	c2 := tsp.CopyTour(p1)

	var (
		v   int
		err error
	)
	for i = 0; i < n; i++ {
		if i >= start && i < end {
			continue
		}
		if v, err = resolveGene(t21, p1[i], n); err != nil {
			return nil, nil, fmt.Errorf("pmx: child 1 position %d: %w", i, err)
		}
		c1[i] = v
		if v, err = resolveGene(t12, p2[i], n); err != nil {
			return nil, nil, fmt.Errorf("pmx: child 2 position %d: %w", i, err)
		}
		c2[i] = v
	}

	return c1, c2, nil
}

// noMapping marks a gene that is not a key of a substitution table.
const noMapping = -1

// newSubstitution returns a table of n empty slots.
func newSubstitution(n int) []int {
	t := make([]int, n)
	for i := range t {
		t[i] = noMapping
	}

	return t
}

// resolveGene follows table from v until it reaches a value that is not a key.
// More than limit steps means the table contains a cycle; a value outside the
// table means it was built from a corrupt route.
func resolveGene(table []int, v, limit int) (int, error) {
	var steps int
	for {
		if v < 0 || v >= len(table) {
			return noMapping, fmt.Errorf("gene %d: %w", v, ErrInvalidRoute)
		}
		if table[v] == noMapping {
			return v, nil
		}
		v = table[v]
		if steps++; steps > limit {
			return noMapping, ErrCrossoverCycle
		}
	}
}

// insertGene moves route[from] to index to, shifting the genes in between by
// one toward from. The result equals removing the gene and reinserting it so
// that it ends up at index to.
func insertGene(route []int, from, to int) {
	g := route[from]
	if from < to {
		copy(route[from:to], route[from+1:to+1])
	} else {
		copy(route[to+1:from+1], route[to:from])
	}
	route[to] = g
}

package ga

import (
	"math/rand"

	"github.com/katalvlaran/tourga/tsp"
)

// OrderTwoOpt is the variant policy: order crossover (OX) and 2-opt
// (segment reversal) mutation. Both operators are permutation-preserving by
// construction.
type OrderTwoOpt struct{}

var _ Strategy = OrderTwoOpt{}

// Name implements Strategy.
func (OrderTwoOpt) Name() string { return StrategyOX2Opt }

// Crossover implements Strategy with OX. Cut points are two distinct values
// from [0, N), ordered start < end.
func (OrderTwoOpt) Crossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, nil, err
	}
	n := p1.Len()
	if n < 2 {
		return p1.Copy(), p2.Copy(), nil
	}
	start, end := pickCut(rng, n)

	return &Individual{route: oxChild(p1.route, p2.route, start, end)},
		&Individual{route: oxChild(p2.route, p1.route, start, end)}, nil
}

// Mutate implements Strategy with 2-opt: two distinct positions pos1 < pos2
// are drawn and route[pos1:pos2] is reversed.
func (OrderTwoOpt) Mutate(ind *Individual, rng *rand.Rand) {
	if ind.Len() < 2 {
		return
	}
	lo, hi := pickCut(rng, ind.Len())
	_ = tsp.ReverseSegment(ind.route, lo, hi) // 0 <= lo < hi <= len
}

// oxChild copies seg[start:end] into place and fills the remaining positions,
// starting at end and wrapping, with the genes of other read from end
// onwards (wrapping), skipping those already taken by the segment.
//
// Complexity: O(N) time, O(N) space.
func oxChild(seg, other []int, start, end int) []int {
	var (
		n     = len(seg)
		child = make([]int, n)
		taken = make([]bool, n)
		i     int
	)
	for i = start; i < end; i++ {
		child[i] = seg[i]
		taken[seg[i]] = true
	}

	var (
		pos = end % n
		g   int
	)
	for i = 0; i < n; i++ {
		g = other[(end+i)%n]
		if taken[g] {
			continue
		}
		child[pos] = g
		pos = (pos + 1) % n
	}

	return child
}

package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourga/ga"
	"github.com/katalvlaran/tourga/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndividual(t *testing.T) {
	route := []int{2, 0, 1}
	ind, err := ga.NewIndividual(route)
	require.NoError(t, err)

	route[0] = 9
	assert.Equal(t, []int{2, 0, 1}, ind.Route(), "input must be copied")
	assert.Equal(t, 3, ind.Len())
	assert.Equal(t, 0, ind.Gene(1))
	assert.Equal(t, "[2 0 1]", ind.String())

	_, err = ga.NewIndividual([]int{0, 0, 1})
	require.ErrorIs(t, err, ga.ErrInvalidRoute)
	_, err = ga.NewIndividual(nil)
	require.ErrorIs(t, err, ga.ErrInvalidRoute)
}

func TestIndividual_CopyDoesNotAlias(t *testing.T) {
	ind, err := ga.NewIndividual([]int{0, 1, 2, 3})
	require.NoError(t, err)

	cp := ind.Copy()
	cp.SetGene(0, 3)
	cp.SetGene(3, 0)
	assert.Equal(t, []int{0, 1, 2, 3}, ind.Route())
	assert.Equal(t, []int{3, 1, 2, 0}, cp.Route())

	r := ind.Route()
	r[0] = 42
	assert.Equal(t, 0, ind.Gene(0))
}

func TestNewRandomIndividual_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 1; n <= 64; n++ {
		ind := ga.NewRandomIndividual(n, rng)
		require.NoError(t, tsp.ValidatePermutation(ind.Route(), n))
	}
}

func TestPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := ga.NewPopulation(3, 6, rng)
	require.Equal(t, 3, p.Size())

	p.Append(ga.NewPopulation(2, 6, rng))
	require.Equal(t, 5, p.Size())

	extra, err := ga.NewIndividual([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	p.Push(extra)
	require.Equal(t, 6, p.Size())
	assert.Same(t, extra, p.Individual(5))

	members := p.Individuals()
	members[0] = nil
	assert.NotNil(t, p.Individual(0), "snapshot slice must be independent")

	for _, ind := range p.Individuals() {
		require.NoError(t, tsp.ValidatePermutation(ind.Route(), 6))
	}
}

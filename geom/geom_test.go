package geom_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourga/geom"
	"github.com/katalvlaran/tourga/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare(t *testing.T) geom.Coordinates {
	t.Helper()
	c, err := geom.NewCoordinates([]geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	return c
}

func TestNewCoordinates_Validation(t *testing.T) {
	_, err := geom.NewCoordinates(nil)
	require.ErrorIs(t, err, geom.ErrNoPoints)

	_, err = geom.NewCoordinates([]geom.Point{{0, 0}, {math.NaN(), 1}})
	require.ErrorIs(t, err, geom.ErrNonFinite)

	_, err = geom.NewCoordinates([]geom.Point{{math.Inf(1), 0}})
	require.ErrorIs(t, err, geom.ErrNonFinite)
}

func TestNewCoordinates_CopiesInput(t *testing.T) {
	in := []geom.Point{{0, 0}, {3, 4}}
	c, err := geom.NewCoordinates(in)
	require.NoError(t, err)

	in[1] = geom.Point{X: 9, Y: 9}
	assert.Equal(t, geom.Point{X: 3, Y: 4}, c.At(1))

	out := c.Points()
	out[0] = geom.Point{X: -1, Y: -1}
	assert.Equal(t, geom.Point{}, c.At(0))
	assert.Equal(t, []geom.Point{{3, 4}, {0, 0}}, c.Apply([]int{1, 0}))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, geom.Distance(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}))
	assert.Equal(t, 0.0, geom.Distance(geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2}))
}

func TestDistanceTable_Invariants(t *testing.T) {
	c, err := geom.RandomCoordinates(25, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	tbl, err := geom.NewDistanceTable(c)
	require.NoError(t, err)
	require.Equal(t, 25, tbl.Len())

	m := tbl.Matrix()
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
	require.NoError(t, matrix.ValidateZeroDiagonal(m, 0))

	for i := 0; i < c.Len(); i++ {
		for j := 0; j < c.Len(); j++ {
			assert.Equal(t, geom.Distance(c.At(i), c.At(j)), tbl.At(i, j))
			assert.GreaterOrEqual(t, tbl.At(i, j), 0.0)
		}
	}
}

func TestDistanceTable_MatrixIsReadOnly(t *testing.T) {
	tbl, err := geom.NewDistanceTable(unitSquare(t))
	require.NoError(t, err)

	m := tbl.Matrix()
	require.ErrorIs(t, m.Set(0, 1, 100), geom.ErrReadOnly)
	assert.Equal(t, 1.0, tbl.At(0, 1))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 100))
	assert.Equal(t, 1.0, tbl.At(0, 1))

	// Cost loops in tsp take the unchecked path through this method.
	fast, ok := m.(interface{ UnsafeAt(i, j int) float64 })
	require.True(t, ok, "read-only view must expose UnsafeAt")
	assert.InDelta(t, math.Sqrt2, fast.UnsafeAt(0, 2), 1e-12)
}

func TestDistanceTable_CycleLength(t *testing.T) {
	tbl, err := geom.NewDistanceTable(unitSquare(t))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, tbl.CycleLength([]int{0, 1, 2, 3}), 1e-12)
	assert.InDelta(t, 2+2*math.Sqrt2, tbl.CycleLength([]int{0, 2, 1, 3}), 1e-12)
	assert.Equal(t, 0.0, tbl.CycleLength(nil))

	two, err := geom.NewCoordinates([]geom.Point{{0, 0}, {3, 4}})
	require.NoError(t, err)
	tbl2, err := geom.NewDistanceTable(two)
	require.NoError(t, err)
	assert.Equal(t, 10.0, tbl2.CycleLength([]int{0, 1}))
}

func TestNewDistanceTable_Empty(t *testing.T) {
	_, err := geom.NewDistanceTable(geom.Coordinates{})
	require.ErrorIs(t, err, geom.ErrNoPoints)
}

func TestRandomCoordinates(t *testing.T) {
	_, err := geom.RandomCoordinates(0, nil)
	require.ErrorIs(t, err, geom.ErrNoPoints)

	a, err := geom.RandomCoordinates(10, nil)
	require.NoError(t, err)
	b, err := geom.RandomCoordinates(10, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points(), "nil rng must be the fixed default stream")

	for _, p := range a.Points() {
		assert.True(t, p.X >= 0 && p.X < 1 && p.Y >= 0 && p.Y < 1)
	}
}

func TestConcentricCircles(t *testing.T) {
	_, err := geom.ConcentricCircles(1, 0.5)
	require.ErrorIs(t, err, geom.ErrTooFewPoints)
	_, err = geom.ConcentricCircles(8, 0)
	require.ErrorIs(t, err, geom.ErrInvalidRatio)
	_, err = geom.ConcentricCircles(8, 1.5)
	require.ErrorIs(t, err, geom.ErrInvalidRatio)

	c, err := geom.ConcentricCircles(7, 0.5)
	require.NoError(t, err)
	require.Equal(t, 7, c.Len())

	center := geom.Point{X: 0.5, Y: 0.5}
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 0.5, geom.Distance(center, c.At(i)), 1e-12, "outer point %d", i)
	}
	for i := 4; i < 7; i++ {
		assert.InDelta(t, 0.25, geom.Distance(center, c.At(i)), 1e-12, "inner point %d", i)
	}
}

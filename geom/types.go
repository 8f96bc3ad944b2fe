package geom

import (
	"errors"
	"math"
)

// Sentinel errors returned by geom.
var (
	// ErrNoPoints indicates an empty coordinate set or a non-positive node count.
	ErrNoPoints = errors.New("geom: no points")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("geom: non-finite coordinate")

	// ErrTooFewPoints indicates a generator asked for fewer points than its layout needs.
	ErrTooFewPoints = errors.New("geom: too few points for layout")

	// ErrReadOnly indicates a write through the read-only view of a DistanceTable.
	ErrReadOnly = errors.New("geom: distance table is read-only")

	// ErrInvalidRatio indicates a concentric-circle radius ratio outside (0, 1].
	ErrInvalidRatio = errors.New("geom: radius ratio must be in (0, 1]")
)

// Point is a node location in the plane. It is a value type; copies are independent.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y) // stable sqrt(dx*dx+dy*dy)
}

// finite reports whether both coordinates are finite numbers.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Coordinates is an ordered, immutable set of points (the TSP node set).
// The zero value is an empty set; build instances with NewCoordinates or a generator.
type Coordinates struct {
	points []Point
}

// NewCoordinates copies points into a new Coordinates value.
//
// Errors:
//   - ErrNoPoints when points is empty.
//   - ErrNonFinite when any coordinate is NaN or ±Inf.
//
// Complexity: O(n).
func NewCoordinates(points []Point) (Coordinates, error) {
	if len(points) == 0 {
		return Coordinates{}, ErrNoPoints
	}
	for i := range points {
		if !points[i].finite() {
			return Coordinates{}, ErrNonFinite
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)

	return Coordinates{points: cp}, nil
}

// Len returns the node count N.
func (c Coordinates) Len() int { return len(c.points) }

// At returns the i-th point. It panics on an out-of-range index like a slice.
func (c Coordinates) At(i int) Point { return c.points[i] }

// Points returns a copy of the underlying points in order.
func (c Coordinates) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)

	return out
}

// Apply maps a permutation of node indices to the corresponding points,
// e.g. to draw a route. Indices are not validated.
func (c Coordinates) Apply(perm []int) []Point {
	out := make([]Point, len(perm))
	for i, idx := range perm {
		out[i] = c.points[idx]
	}

	return out
}

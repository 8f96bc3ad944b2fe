package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Layout constants for ConcentricCircles; everything lives inside the unit square.
const (
	circleCenter      = 0.5
	outerRadius       = 0.5
	minCirclePoints   = 2
	defaultRandomSeed = int64(1)
)

// RandomCoordinates returns n points drawn uniformly from [0,1)².
// A nil rng selects a fixed default stream so that runs stay reproducible.
//
// Errors: ErrNoPoints when n < 1.
//
// Complexity: O(n).
func RandomCoordinates(n int, rng *rand.Rand) (Coordinates, error) {
	if n < 1 {
		return Coordinates{}, fmt.Errorf("RandomCoordinates: n=%d: %w", n, ErrNoPoints)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRandomSeed))
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	return Coordinates{points: pts}, nil
}

// ConcentricCircles places n points on two circles centred at (0.5, 0.5).
// The outer circle (radius 0.5) receives ceil(n/2) evenly spaced points, the
// inner circle (radius 0.5·ratio) receives the remaining floor(n/2).
// Outer points come first in index order.
//
// Errors:
//   - ErrTooFewPoints when n < 2.
//   - ErrInvalidRatio when ratio is not in (0, 1].
//
// Complexity: O(n).
func ConcentricCircles(n int, ratio float64) (Coordinates, error) {
	if n < minCirclePoints {
		return Coordinates{}, fmt.Errorf("ConcentricCircles: n=%d < min=%d: %w", n, minCirclePoints, ErrTooFewPoints)
	}
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return Coordinates{}, fmt.Errorf("ConcentricCircles: ratio=%g: %w", ratio, ErrInvalidRatio)
	}

	var (
		outer = n - n/2
		inner = n / 2
		pts   = make([]Point, 0, n)
	)
	pts = appendCircle(pts, outer, outerRadius)
	pts = appendCircle(pts, inner, outerRadius*ratio)

	return Coordinates{points: pts}, nil
}

// appendCircle appends k points evenly spaced on a circle of radius r.
func appendCircle(dst []Point, k int, r float64) []Point {
	var (
		i     int
		theta float64
		step  = 2 * math.Pi / float64(k)
	)
	for i = 0; i < k; i++ {
		theta = step * float64(i)
		dst = append(dst, Point{
			X: circleCenter + r*math.Cos(theta),
			Y: circleCenter + r*math.Sin(theta),
		})
	}

	return dst
}

// Package tsp: cost utilities.
//
// Small, side-effect free helpers computing the total cost of a route over a
// distance matrix, with strict sentinels on malformed input.
//
// Design:
//   - Fast path for any matrix exposing UnsafeAt (*matrix.Dense and read-only
//     views over it) after range checks; a generic At path otherwise.
//   - Defensive checks (Inf/NaN/negative) on every edge.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"math"

	"github.com/katalvlaran/tourga/matrix"
)

// unsafeReader is the unchecked read offered by *matrix.Dense and by wrappers
// that expose its storage read-only.
type unsafeReader interface {
	UnsafeAt(i, j int) float64
}

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the edges tour[i]→tour[i+1] of a closed tour (len >= 2).
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrIncompleteGraph, ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	if dist.Rows() != dist.Cols() || dist.Rows() <= 0 {
		return 0, ErrNonSquare
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		if w, err = edgeCost(dist, tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// CycleCost sums an open permutation as a closed cycle, including the edge
// from the last vertex back to the first. perm must be a permutation of the
// matrix order.
//
// Complexity: O(n).
func CycleCost(dist matrix.Matrix, perm []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	if dist.Rows() != dist.Cols() {
		return 0, ErrNonSquare
	}
	if err := ValidatePermutation(perm, dist.Rows()); err != nil {
		return 0, err
	}
	if len(perm) == 1 {
		return 0, nil
	}

	closed := make([]int, len(perm)+1)
	copy(closed, perm)
	closed[len(perm)] = perm[0]

	return TourCost(dist, closed)
}

// edgeCost fetches the weight for a single directed edge u→v with strict validation.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	n := m.Rows()
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}

	var (
		w   float64
		err error
	)
	if d, ok := m.(unsafeReader); ok {
		w = d.UnsafeAt(u, v) // indices checked above
	} else if w, err = m.At(u, v); err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) {
		return 0, ErrDimensionMismatch
	}
	if math.IsInf(w, 0) {
		return 0, ErrIncompleteGraph
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}

	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Package tsp provides permutation and tour utilities for Travelling Salesman
// routes over a distance matrix.
//
// A route is a permutation of {0..n-1}. A closed tour is the same sequence
// rotated to a start vertex and closed by repeating it (len == n+1,
// tour[0] == tour[n] == start). Helpers:
//
//   - ValidatePermutation: structural check.
//   - MakeTourFromPermutation / RotateTourToStart: permutation → closed tour.
//   - TourCost: cost of a closed tour over any matrix.Matrix.
//   - CycleCost: cost of an open permutation treated as a cycle.
//   - ReverseSegment: the 2-opt primitive on an open route.
//   - CopyTour, DebugString: copies and diagnostics.
//
// All functions are deterministic and allocation-conscious; invalid input is
// reported with sentinel errors from types.go, never with panics.
package tsp

// Package geom holds the immutable geometry of a Euclidean TSP instance:
// points, ordered coordinate sets, and the precomputed pairwise distance table.
//
// A Coordinates value and the DistanceTable derived from it are fixed for the
// lifetime of a run; nothing in this package mutates them after construction.
//
// Generators:
//
//   - RandomCoordinates: n points uniform in the unit square.
//   - ConcentricCircles: n points split over two concentric circles; the
//     optimal tour is known by construction, handy for eyeballing convergence.
//
// Complexity: NewDistanceTable is O(n²) time and space; lookups are O(1).
package geom

// Package matrix provides the dense float64 storage used by distance tables.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked two-dimensional surface (At/Set return errors).
//   - Dense, a row-major implementation with an unchecked UnsafeAt read for
//     hot loops over already-validated indices.
//   - Validators for the shape and value invariants a metric table must hold:
//     square, symmetric within eps, zero diagonal.
//
// Matrices are O(n²) in memory; they are built once and read many times.
package matrix

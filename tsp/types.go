package tsp

import "errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrDimensionMismatch indicates a malformed permutation or tour, or
	// indices that do not fit the matrix order.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start vertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNonSquare indicates a non-square distance matrix.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrIncompleteGraph indicates a ±Inf edge weight on the tour.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNegativeWeight indicates a negative edge weight on the tour.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")
)

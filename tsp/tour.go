// Package tsp: tour utilities.
//
// This file contains compact, allocation-conscious utilities that operate purely
// on tour structure (index sequences), without depending on distance matrices.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for most helpers; in-place mutations avoid extra allocations.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrDimensionMismatch
	}
	if n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation builds a closed tour from a vertex permutation,
// rotated so that it starts (and ends) at start.
//
// Contract:
//   - perm is a permutation (ValidatePermutation).
//   - start ∈ [0..n-1].
//   - Returned tour satisfies: len==n+1, tour[0]==tour[n]==start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	return RotateTourToStart(perm, start)
}

// RotateTourToStart returns a fresh copy of the tour shifted so that
// out[0] == start and out[n] == start. The input may be either a closed tour
// (len==n+1) or an open route (len==n); the result is always closed.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}

	n := len(tour)
	if n > 1 && tour[0] == tour[n-1] {
		n-- // closed input; drop the closing vertex
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := IndexOfStart(tour[:n], start)
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n+1)

	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// ReverseSegment reverses route[i:j] in place (half-open: i inclusive,
// j exclusive) on an open route. Reversing a contiguous sub-route swaps the two
// tour edges at its borders; this is the 2-opt move.
//
// Contract: 0 ≤ i ≤ j ≤ len(route).
//
// Complexity: O(j-i) time, O(1) space.
func ReverseSegment(route []int, i, j int) error {
	if i < 0 || j > len(route) || i > j {
		return ErrDimensionMismatch
	}
	for j--; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return nil
}

// IndexOfStart returns the index of the first occurrence of start, or -1.
//
// Complexity: O(n) time.
func IndexOfStart(route []int, start int) int {
	var i int
	for i = 0; i < len(route); i++ {
		if route[i] == start {
			return i
		}
	}

	return -1
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		n  = len(tour) - 1
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[n]))
	sb.WriteByte(']')

	return sb.String()
}

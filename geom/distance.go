package geom

import (
	"fmt"

	"github.com/katalvlaran/tourga/matrix"
)

// DistanceTable is the precomputed N×N Euclidean distance matrix of a
// Coordinates value. Invariants: d[i][j] == d[j][i] exactly, d[i][i] == 0,
// all entries finite and non-negative. It is never mutated after construction.
type DistanceTable struct {
	d *matrix.Dense
}

// NewDistanceTable builds the table for c. Each unordered pair is computed
// once and mirrored, so symmetry is exact rather than within a tolerance.
//
// The table is checked with matrix.ValidateSymmetric and
// matrix.ValidateZeroDiagonal before it is returned.
//
// Errors: ErrNoPoints for an empty set; matrix sentinels on storage failure
// (unreachable for finite coordinates).
//
// Complexity: O(n²) time and space.
func NewDistanceTable(c Coordinates) (*DistanceTable, error) {
	n := c.Len()
	if n == 0 {
		return nil, ErrNoPoints
	}
	d, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("NewDistanceTable: %w", err)
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = Distance(c.points[i], c.points[j])
			if err = d.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("NewDistanceTable: %w", err)
			}
			if err = d.Set(j, i, w); err != nil {
				return nil, fmt.Errorf("NewDistanceTable: %w", err)
			}
		}
	}

	// Mirrored writes make both checks exact; a failure means storage corruption.
	if err = matrix.ValidateSymmetric(d, 0); err != nil {
		return nil, fmt.Errorf("NewDistanceTable: %w", err)
	}
	if err = matrix.ValidateZeroDiagonal(d, 0); err != nil {
		return nil, fmt.Errorf("NewDistanceTable: %w", err)
	}

	return &DistanceTable{d: d}, nil
}

// Len returns the node count N.
func (t *DistanceTable) Len() int { return t.d.Rows() }

// At returns the distance between nodes i and j without bounds checks.
// Callers pass indices taken from a valid permutation of [0, N).
func (t *DistanceTable) At(i, j int) float64 { return t.d.UnsafeAt(i, j) }

// Matrix returns a read-only matrix.Matrix view of the table without copying,
// for interop with tour-cost helpers. Set on the view returns ErrReadOnly;
// Clone on the view returns an independent, writable *matrix.Dense.
func (t *DistanceTable) Matrix() matrix.Matrix { return readOnly{d: t.d} }

// readOnly guards the table against writes through the matrix.Matrix surface.
type readOnly struct{ d *matrix.Dense }

var _ matrix.Matrix = readOnly{}

func (r readOnly) Rows() int                    { return r.d.Rows() }
func (r readOnly) Cols() int                    { return r.d.Cols() }
func (r readOnly) At(i, j int) (float64, error) { return r.d.At(i, j) }
func (r readOnly) Set(i, j int, _ float64) error {
	return fmt.Errorf("DistanceTable.Set(%d,%d): %w", i, j, ErrReadOnly)
}
func (r readOnly) Clone() matrix.Matrix { return r.d.Clone() }

// UnsafeAt lets tour-cost helpers take their unchecked fast path through the view.
func (r readOnly) UnsafeAt(i, j int) float64 { return r.d.UnsafeAt(i, j) }

// CycleLength sums the closed-tour distance of route:
// Σ d[route[i]][route[(i+1) mod N]]. An empty route has length 0.
//
// Complexity: O(len(route)).
func (t *DistanceTable) CycleLength(route []int) float64 {
	n := len(route)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += t.d.UnsafeAt(route[i], route[i+1])
	}
	sum += t.d.UnsafeAt(route[n-1], route[0]) // closing edge

	return sum
}

// SPDX-License-Identifier: MIT
// Package: topobench/digraph
//
// adjacency_matrix.go — dense row-major matrix representation.
//
// Storage is a single flat []int64 of length n·n for cache friendliness;
// cell (u,v) lives at u*n+v. Zero means "no arc", any other value is the
// arc weight.
//
// Complexity:
//   - Set, At: O(1) with bounds checks.
//   - Row: O(1), returns backing storage (hot-path accessor).

package digraph

import "fmt"

// AdjacencyMatrix is a dense n×n adjacency matrix of a simple digraph.
type AdjacencyMatrix struct {
	n     int     // vertex count
	cells []int64 // flat row-major storage, length n*n
	m     int     // number of non-zero cells
}

// NewAdjacencyMatrix allocates a zeroed n×n matrix.
// Returns ErrInvalidOrder when n < 1.
func NewAdjacencyMatrix(n int) (*AdjacencyMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewAdjacencyMatrix: n=%d: %w", n, ErrInvalidOrder)
	}

	return &AdjacencyMatrix{n: n, cells: make([]int64, n*n)}, nil
}

// Order returns the number of vertices n.
func (a *AdjacencyMatrix) Order() int { return a.n }

// ArcCount returns the number of non-zero cells.
func (a *AdjacencyMatrix) ArcCount() int { return a.m }

// At returns the cell (u,v), or ErrVertexRange for invalid indices.
func (a *AdjacencyMatrix) At(u, v int) (int64, error) {
	if u < 0 || u >= a.n || v < 0 || v >= a.n {
		return 0, fmt.Errorf("At(%d,%d): %w", u, v, ErrVertexRange)
	}

	return a.cells[u*a.n+v], nil
}

// Row returns row u of the matrix without copying.
// The slice is backing storage: callers must not mutate it.
// u is assumed valid; out-of-range indices panic as with any slice access.
func (a *AdjacencyMatrix) Row(u int) []int64 {
	return a.cells[u*a.n : (u+1)*a.n]
}

// Set writes the arc u→v with weight w (w=0 is normalized to 1).
// Returns ErrVertexRange, ErrSelfLoop or ErrParallelArc on violation.
func (a *AdjacencyMatrix) Set(u, v int, w int64) error {
	if u < 0 || u >= a.n || v < 0 || v >= a.n {
		return fmt.Errorf("Set(%d,%d): %w", u, v, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("Set(%d,%d): %w", u, v, ErrSelfLoop)
	}
	idx := u*a.n + v
	if a.cells[idx] != 0 {
		return fmt.Errorf("Set(%d,%d): %w", u, v, ErrParallelArc)
	}
	if w == 0 {
		w = 1
	}

	a.cells[idx] = w
	a.m++

	return nil
}

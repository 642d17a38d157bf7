// SPDX-License-Identifier: MIT
// Package: topobench/digraph
//
// adjacency_list.go — successor-slice representation of a simple digraph.
//
// Contract:
//   - Vertices are the integers 0..n−1, fixed at construction.
//   - AddArc rejects out-of-range endpoints, self-loops and duplicates
//     with sentinel errors; it never panics.
//   - Succ returns backing storage (no copy) — hot-path accessor.
//
// Complexity:
//   - AddArc: O(outdeg(u)) for the duplicate scan.
//   - Succ, Order, ArcCount: O(1).

package digraph

import "fmt"

// Arc is a single directed connection u→To with an integer weight.
// Unweighted graphs store Weight 1 so that list and matrix cells agree.
type Arc struct {
	// To is the head (destination) vertex index.
	To int

	// Weight is the arc weight; always non-zero for a stored arc.
	Weight int64
}

// AdjacencyList stores the successors of each vertex of a simple digraph.
type AdjacencyList struct {
	succ [][]Arc // succ[u] lists the arcs leaving u, in insertion order
	m    int     // total arc count
}

// NewAdjacencyList allocates an arc-free digraph over n vertices.
// Returns ErrInvalidOrder when n < 1.
func NewAdjacencyList(n int) (*AdjacencyList, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewAdjacencyList: n=%d: %w", n, ErrInvalidOrder)
	}

	return &AdjacencyList{succ: make([][]Arc, n)}, nil
}

// Order returns the number of vertices n.
func (g *AdjacencyList) Order() int { return len(g.succ) }

// ArcCount returns the number of stored arcs.
func (g *AdjacencyList) ArcCount() int { return g.m }

// Succ returns the successor slice of u without copying.
// The slice is backing storage: callers must not mutate it.
// u is assumed valid; out-of-range indices panic as with any slice access.
func (g *AdjacencyList) Succ(u int) []Arc { return g.succ[u] }

// HasArc reports whether the arc u→v exists. Invalid indices report false.
func (g *AdjacencyList) HasArc(u, v int) bool {
	if u < 0 || u >= len(g.succ) {
		return false
	}
	for _, a := range g.succ[u] {
		if a.To == v {
			return true
		}
	}

	return false
}

// AddArc inserts the arc u→v with weight w (w=0 is normalized to 1).
// Returns ErrVertexRange, ErrSelfLoop or ErrParallelArc on violation.
func (g *AdjacencyList) AddArc(u, v int, w int64) error {
	n := len(g.succ)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddArc(%d→%d): %w", u, v, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddArc(%d→%d): %w", u, v, ErrSelfLoop)
	}
	if g.HasArc(u, v) {
		return fmt.Errorf("AddArc(%d→%d): %w", u, v, ErrParallelArc)
	}
	if w == 0 {
		w = 1 // zero means "absent" in the matrix form; normalize
	}

	g.succ[u] = append(g.succ[u], Arc{To: v, Weight: w})
	g.m++

	return nil
}

// SPDX-License-Identifier: MIT

// Package digraph provides the two directed-graph representations under
// benchmark: an adjacency list (successor slices) and a dense adjacency
// matrix (flat row-major storage).
//
// Both types model a simple digraph over integer vertices 0..n−1:
// no self-loops, no parallel arcs. A zero matrix cell means "no arc";
// any non-zero value is the arc weight (unweighted graphs store 1).
//
// The representations are deliberately bare: they are the data structures
// whose traversal cost is being measured, so every accessor on the hot
// path (Succ, Row) returns backing storage without copying. Callers must
// treat those slices as read-only.
//
// Converters guarantee that a list and a matrix produced from one another
// encode the same arc set.
//
// Errors:
//
//	ErrInvalidOrder — requested vertex count is < 1.
//	ErrVertexRange  — a vertex index is outside [0, n).
//	ErrSelfLoop     — arc endpoints are equal.
//	ErrParallelArc  — the arc already exists.
//	ErrNilGraph     — a nil representation was passed to a converter.
package digraph

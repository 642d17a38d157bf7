// Package kahn implements Kahn's topological-sort algorithm for both
// digraph representations.
//
// The algorithm maintains per-vertex indegrees and a FIFO queue of
// indegree-zero vertices; dequeuing a vertex appends it to the order and
// decrements the indegree of its successors. When the queue drains before
// every vertex is placed, the remaining vertices lie on a cycle and
// ErrCycleDetected is returned.
//
// Complexity:
//
//	SortList:   O(V + E) — successor slices are scanned once.
//	SortMatrix: O(V²)    — every row is scanned per dequeue.
//
// Both functions visit indegree-zero vertices in ascending index order,
// so the produced order is deterministic for a fixed graph.
package kahn

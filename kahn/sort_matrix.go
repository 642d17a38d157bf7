package kahn

import (
	"fmt"

	"topobench/digraph"
)

// SortMatrix computes a topological ordering of a using Kahn's algorithm
// over the dense adjacency-matrix representation.
// If a is nil, returns ErrNilGraph.
// If a contains a cycle, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func SortMatrix(a *digraph.AdjacencyMatrix, options ...Option) ([]int, error) {
	// 1. Validate graph pointer
	if a == nil {
		return nil, fmt.Errorf("SortMatrix: %w", ErrNilGraph)
	}
	// 2. Apply optional settings
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := a.Order()

	// 3. Count indegrees: column v's indegree is the number of non-zero
	//    cells in that column, gathered row by row for cache-friendly scans
	indeg := make([]int, n)
	for u := 0; u < n; u++ {
		row := a.Row(u)
		for v := 0; v < n; v++ {
			if row[v] != 0 {
				indeg[v]++
			}
		}
	}

	// 4. Seed the queue with indegree-zero vertices in ascending order
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	// 5. Dequeue, record, and release successors via full row scans
	for head := 0; head < len(queue); head++ {
		if opts.ctx != nil {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}
		}
		v := queue[head]
		row := a.Row(v)
		for w := 0; w < n; w++ {
			if row[w] == 0 {
				continue
			}
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	// 6. A short order means the leftover vertices form a cycle
	if len(queue) != n {
		return nil, fmt.Errorf("SortMatrix: %w", ErrCycleDetected)
	}

	return queue, nil
}

package kahn

import (
	"fmt"

	"topobench/digraph"
)

// SortList computes a topological ordering of g using Kahn's algorithm
// over the adjacency-list representation.
// If g is nil, returns ErrNilGraph.
// If g contains a cycle, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func SortList(g *digraph.AdjacencyList, options ...Option) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, fmt.Errorf("SortList: %w", ErrNilGraph)
	}
	// 2. Apply optional settings
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.Order()

	// 3. Count indegrees with a single pass over all successor slices
	indeg := make([]int, n)
	for u := 0; u < n; u++ {
		for _, a := range g.Succ(u) {
			indeg[a.To]++
		}
	}

	// 4. Seed the queue with indegree-zero vertices in ascending order.
	//    The queue doubles as the result buffer: head walks it in place.
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	// 5. Dequeue, record, and release successors
	for head := 0; head < len(queue); head++ {
		if opts.ctx != nil {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}
		}
		v := queue[head]
		for _, a := range g.Succ(v) {
			indeg[a.To]--
			if indeg[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	// 6. A short order means the leftover vertices form a cycle
	if len(queue) != n {
		return nil, fmt.Errorf("SortList: %w", ErrCycleDetected)
	}

	return queue, nil
}

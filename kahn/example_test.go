package kahn_test

import (
	"fmt"

	"topobench/digraph"
	"topobench/kahn"
)

// ExampleSortList demonstrates a topological sort of a diamond-shaped DAG.
// Graph structure:
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//
// Indegree-zero vertices are dequeued in ascending index order, so the
// result is deterministic.
func ExampleSortList() {
	g, _ := digraph.NewAdjacencyList(4)

	// 0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3
	for _, arc := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_ = g.AddArc(arc[0], arc[1], 0)
	}

	order, err := kahn.SortList(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [0 1 2 3]
}

// ExampleSortMatrix runs the matrix variant on the same diamond and shows
// that a cycle is reported as an error rather than a partial order.
func ExampleSortMatrix() {
	a, _ := digraph.NewAdjacencyMatrix(3)
	_ = a.Set(0, 1, 0)
	_ = a.Set(1, 2, 0)
	_ = a.Set(2, 0, 0) // closes the cycle 0→1→2→0

	_, err := kahn.SortMatrix(a)
	fmt.Println(err)

	// Output:
	// SortMatrix: kahn: cycle detected
}

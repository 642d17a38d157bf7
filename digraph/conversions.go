// SPDX-License-Identifier: MIT
// Package: topobench/digraph
//
// conversions.go — converters between the two representations.
//
// Invariant: a converted graph encodes exactly the arc set (and weights)
// of its source. Converters are O(V+E) list→matrix and O(V²) matrix→list.

package digraph

import "fmt"

// ListToMatrix builds the dense matrix form of g.
// Returns ErrNilGraph when g is nil.
func ListToMatrix(g *AdjacencyList) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("ListToMatrix: %w", ErrNilGraph)
	}

	a, err := NewAdjacencyMatrix(g.Order())
	if err != nil {
		return nil, fmt.Errorf("ListToMatrix: %w", err)
	}
	for u := 0; u < g.Order(); u++ {
		for _, arc := range g.Succ(u) {
			if err = a.Set(u, arc.To, arc.Weight); err != nil {
				return nil, fmt.Errorf("ListToMatrix: %w", err)
			}
		}
	}

	return a, nil
}

// MatrixToList builds the successor-slice form of a.
// Returns ErrNilGraph when a is nil.
func MatrixToList(a *AdjacencyMatrix) (*AdjacencyList, error) {
	if a == nil {
		return nil, fmt.Errorf("MatrixToList: %w", ErrNilGraph)
	}

	g, err := NewAdjacencyList(a.Order())
	if err != nil {
		return nil, fmt.Errorf("MatrixToList: %w", err)
	}
	n := a.Order()
	for u := 0; u < n; u++ {
		row := a.Row(u)
		for v := 0; v < n; v++ {
			if row[v] == 0 {
				continue
			}
			if err = g.AddArc(u, v, row[v]); err != nil {
				return nil, fmt.Errorf("MatrixToList: %w", err)
			}
		}
	}

	return g, nil
}

package viz

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"topobench/digraph"
)

// FormatAdjacency renders the adjacency list as text, one line per vertex:
//
//	0: 2 5 7
//	1: 4(3) 6(9)   ← weighted arcs carry their weight in parentheses
//	2:
func FormatAdjacency(g *digraph.AdjacencyList) (string, error) {
	if g == nil {
		return "", fmt.Errorf("FormatAdjacency: %w", digraph.ErrNilGraph)
	}

	var b strings.Builder
	for u := 0; u < g.Order(); u++ {
		b.WriteString(strconv.Itoa(u))
		b.WriteByte(':')
		for _, a := range g.Succ(u) {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(a.To))
			if a.Weight != 1 {
				b.WriteByte('(')
				b.WriteString(strconv.FormatInt(a.Weight, 10))
				b.WriteByte(')')
			}
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// FormatTopo renders a topological order space-separated, or the single
// word CYCLE when order is nil (the sample was not a DAG).
func FormatTopo(order []int) string {
	if order == nil {
		return "CYCLE\n"
	}

	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ") + "\n"
}

// SaveAdjacencyText writes the adjacency list dump.
// Returns (false, nil) when the file exists and overwrite is off.
func SaveAdjacencyText(path string, g *digraph.AdjacencyList, overwrite bool) (bool, error) {
	text, err := FormatAdjacency(g)
	if err != nil {
		return false, fmt.Errorf("SaveAdjacencyText: %w", err)
	}

	return writeText(path, text, overwrite)
}

// SaveTopoText writes the topological order (or CYCLE marker).
// Returns (false, nil) when the file exists and overwrite is off.
func SaveTopoText(path string, order []int, overwrite bool) (bool, error) {
	return writeText(path, FormatTopo(order), overwrite)
}

// writeText applies the overwrite policy and writes content atomically
// enough for single-writer use.
func writeText(path, content string, overwrite bool) (bool, error) {
	ok, err := shouldWrite(path, overwrite)
	if err != nil || !ok {
		return false, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}

	return true, nil
}

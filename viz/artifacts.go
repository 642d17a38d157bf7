package viz

import (
	"fmt"
	"os"
	"path/filepath"

	"topobench/digraph"
	"topobench/report"
)

// Saved reports which artifacts of a SaveAll call were actually written.
// False fields mean "skipped by the overwrite policy", not failure.
type Saved struct {
	Matrix bool
	Graph  bool
	Adj    bool
	Topo   bool
}

// Count returns the number of artifacts written.
func (s Saved) Count() int {
	n := 0
	for _, written := range []bool{s.Matrix, s.Graph, s.Adj, s.Topo} {
		if written {
			n++
		}
	}

	return n
}

// BaseName builds the shared artifact base name, e.g. n20_d10_t3.
func BaseName(n int, density float64, trial int) string {
	return fmt.Sprintf("n%d_d%d_t%d", n, report.DensityTag(density), trial)
}

// SaveAll renders the full artifact set for one trial into dir.
// topo is the trial's topological order; nil means a cycle was detected.
// Existing files are skipped unless overwrite is set.
func SaveAll(dir, base string, g *digraph.AdjacencyList, a *digraph.AdjacencyMatrix,
	topo []int, overwrite bool) (Saved, error) {
	if g == nil || a == nil {
		return Saved{}, fmt.Errorf("SaveAll: %w", digraph.ErrNilGraph)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Saved{}, fmt.Errorf("SaveAll: create %s: %w", dir, err)
	}

	var (
		saved Saved
		err   error
	)
	if saved.Matrix, err = SaveMatrixHeatmap(filepath.Join(dir, "matrix_"+base+".png"), a, overwrite); err != nil {
		return saved, fmt.Errorf("SaveAll: %w", err)
	}
	if saved.Graph, err = SaveGraphDrawing(filepath.Join(dir, "graph_"+base+".png"), g, overwrite); err != nil {
		return saved, fmt.Errorf("SaveAll: %w", err)
	}
	if saved.Adj, err = SaveAdjacencyText(filepath.Join(dir, "adj_"+base+".txt"), g, overwrite); err != nil {
		return saved, fmt.Errorf("SaveAll: %w", err)
	}
	if saved.Topo, err = SaveTopoText(filepath.Join(dir, "topo_"+base+".txt"), topo, overwrite); err != nil {
		return saved, fmt.Errorf("SaveAll: %w", err)
	}

	return saved, nil
}

// shouldWrite applies the overwrite policy to one target path.
// (false, nil) means the file exists and must be preserved.
func shouldWrite(path string, overwrite bool) (bool, error) {
	if overwrite {
		return true, nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case os.IsNotExist(err):
		return true, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

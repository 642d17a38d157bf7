package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"topobench/digraph"
)

// heatPaletteColors is the palette resolution of the matrix heatmap.
const heatPaletteColors = 12

// matrixGrid adapts an AdjacencyMatrix to plotter.GridXYZ.
// Rows are flipped so row 0 renders at the top, the usual matrix
// orientation.
type matrixGrid struct {
	a *digraph.AdjacencyMatrix
}

func (g matrixGrid) Dims() (c, r int) {
	n := g.a.Order()

	return n, n
}

func (g matrixGrid) Z(c, r int) float64 {
	return float64(g.a.Row(g.a.Order()-1-r)[c])
}

func (g matrixGrid) X(c int) float64 { return float64(c) }

func (g matrixGrid) Y(r int) float64 { return float64(r) }

// SaveMatrixHeatmap renders the adjacency matrix as a heatmap PNG.
// Returns (false, nil) when the file exists and overwrite is off.
func SaveMatrixHeatmap(path string, a *digraph.AdjacencyMatrix, overwrite bool) (bool, error) {
	if a == nil {
		return false, fmt.Errorf("SaveMatrixHeatmap: %w", digraph.ErrNilGraph)
	}
	ok, err := shouldWrite(path, overwrite)
	if err != nil || !ok {
		return false, err
	}

	h := plotter.NewHeatMap(matrixGrid{a: a}, palette.Heat(heatPaletteColors, 1))
	// Pin the range so an arc-free matrix does not degenerate to a
	// zero-width color scale.
	h.Min = 0
	if h.Max <= h.Min {
		h.Max = 1
	}

	p := plot.New()
	p.Title.Text = "Adjacency matrix"
	p.X.Label.Text = "to"
	p.Y.Label.Text = "from"
	p.Add(h)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return false, fmt.Errorf("SaveMatrixHeatmap: save %s: %w", path, err)
	}

	return true, nil
}

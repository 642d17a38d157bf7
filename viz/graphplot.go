package viz

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"topobench/digraph"
)

// labelThreshold caps vertex labeling: beyond this order the labels
// would only overlap.
const labelThreshold = 30

// SaveGraphDrawing renders the digraph with vertices on a unit circle and
// one straight segment per arc. Returns (false, nil) when the file exists
// and overwrite is off.
func SaveGraphDrawing(path string, g *digraph.AdjacencyList, overwrite bool) (bool, error) {
	if g == nil {
		return false, fmt.Errorf("SaveGraphDrawing: %w", digraph.ErrNilGraph)
	}
	ok, err := shouldWrite(path, overwrite)
	if err != nil || !ok {
		return false, err
	}

	n := g.Order()

	// Circular layout: vertex i at angle 2πi/n.
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = math.Cos(theta)
		ys[i] = math.Sin(theta)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Digraph, n=%d, m=%d", n, g.ArcCount())
	p.HideAxes()

	// Arcs first so vertex glyphs draw on top.
	for u := 0; u < n; u++ {
		for _, a := range g.Succ(u) {
			seg := plotter.XYs{
				{X: xs[u], Y: ys[u]},
				{X: xs[a.To], Y: ys[a.To]},
			}
			line, err := plotter.NewLine(seg)
			if err != nil {
				return false, fmt.Errorf("SaveGraphDrawing: arc %d→%d: %w", u, a.To, err)
			}
			line.Color = plotutil.Color(2)
			line.Width = vg.Points(0.5)
			p.Add(line)
		}
	}

	vertices := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		vertices[i].X = xs[i]
		vertices[i].Y = ys[i]
	}
	scatter, err := plotter.NewScatter(vertices)
	if err != nil {
		return false, fmt.Errorf("SaveGraphDrawing: vertices: %w", err)
	}
	scatter.Color = plotutil.Color(0)
	scatter.Radius = vg.Points(3)
	p.Add(scatter)

	if n <= labelThreshold {
		names := make([]string, n)
		for i := 0; i < n; i++ {
			names[i] = strconv.Itoa(i)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: vertices, Labels: names})
		if err != nil {
			return false, fmt.Errorf("SaveGraphDrawing: labels: %w", err)
		}
		p.Add(labels)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return false, fmt.Errorf("SaveGraphDrawing: save %s: %w", path, err)
	}

	return true, nil
}

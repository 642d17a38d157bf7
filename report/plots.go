package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotAll renders one time-vs-n summary figure per density into dir and
// returns the written file paths (sorted by ascending density).
// Returns ErrNoData when recs is empty.
func PlotAll(recs []Record, dir string) ([]string, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("PlotAll: %w", ErrNoData)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("PlotAll: create %s: %w", dir, err)
	}

	summary := Summarize(recs)
	paths := make([]string, 0, len(summary))
	for _, density := range Densities(summary) {
		path := filepath.Join(dir, fmt.Sprintf("time_vs_n_density_%d.png", DensityTag(density)))
		if err := plotDensity(density, summary[density], path); err != nil {
			return nil, fmt.Errorf("PlotAll: %w", err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// plotDensity renders the two mean-time series for one density.
func plotDensity(density float64, pts []Point, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Kahn time vs n (density=%.3f)", density)
	p.X.Label.Text = "n"
	p.Y.Label.Text = "mean time (s)"
	p.Add(plotter.NewGrid())

	listXY := make(plotter.XYs, len(pts))
	matrixXY := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		listXY[i].X = float64(pt.N)
		listXY[i].Y = pt.MeanList
		matrixXY[i].X = float64(pt.N)
		matrixXY[i].Y = pt.MeanMatrix
	}

	if err := addSeries(p, "list (O(V+E))", listXY, 0); err != nil {
		return err
	}
	if err := addSeries(p, "matrix (O(V^2))", matrixXY, 1); err != nil {
		return err
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// addSeries attaches one line-and-marker series with plotutil's i-th style.
func addSeries(p *plot.Plot, name string, xys plotter.XYs, i int) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("series %s: %w", name, err)
	}
	line.Color = plotutil.Color(i)
	points.Color = plotutil.Color(i)
	points.Shape = plotutil.Shape(i)

	p.Add(line, points)
	p.Legend.Add(name, line, points)

	return nil
}

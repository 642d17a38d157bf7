package report

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Point is the aggregate of all trials at one (density, n) cell.
// Times are in seconds for direct use on plot axes.
type Point struct {
	N          int
	MeanList   float64
	MeanMatrix float64
	StdList    float64 // sample standard deviation; 0 with fewer than 2 trials
	StdMatrix  float64
	Trials     int
}

// Summarize groups records by density and reduces each (density, n) cell
// to its Point. Points within a density are sorted by ascending n.
func Summarize(recs []Record) map[float64][]Point {
	type cell struct {
		list, matrix []float64
	}
	cells := make(map[float64]map[int]*cell)
	for _, r := range recs {
		byN, ok := cells[r.Density]
		if !ok {
			byN = make(map[int]*cell)
			cells[r.Density] = byN
		}
		c, ok := byN[r.N]
		if !ok {
			c = &cell{}
			byN[r.N] = c
		}
		c.list = append(c.list, float64(r.ListNS)*1e-9)
		c.matrix = append(c.matrix, float64(r.MatrixNS)*1e-9)
	}

	out := make(map[float64][]Point, len(cells))
	for density, byN := range cells {
		pts := make([]Point, 0, len(byN))
		for n, c := range byN {
			pts = append(pts, Point{
				N:          n,
				MeanList:   stat.Mean(c.list, nil),
				MeanMatrix: stat.Mean(c.matrix, nil),
				StdList:    safeStdDev(c.list),
				StdMatrix:  safeStdDev(c.matrix),
				Trials:     len(c.list),
			})
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].N < pts[j].N })
		out[density] = pts
	}

	return out
}

// Densities returns the distinct densities of a summary in ascending order.
func Densities(summary map[float64][]Point) []float64 {
	ds := make([]float64, 0, len(summary))
	for d := range summary {
		ds = append(ds, d)
	}
	sort.Float64s(ds)

	return ds
}

// safeStdDev is stat.StdDev guarded against the single-sample case,
// where the sample estimator is undefined (NaN).
func safeStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sd := stat.StdDev(xs, nil)
	if math.IsNaN(sd) {
		return 0
	}

	return sd
}

// DensityTag renders a density as the integer-percent file tag used in
// artifact names, e.g. 0.10 → "10".
func DensityTag(d float64) int {
	return int(math.Round(d * 100))
}

package report_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"topobench/report"
)

// sampleRecords is a tiny two-density, two-size, two-trial data set.
func sampleRecords() []report.Record {
	return []report.Record{
		{N: 20, Density: 0.1, Trial: 1, ListNS: 1000, MatrixNS: 4000, Edges: 38, Cyclic: true},
		{N: 20, Density: 0.1, Trial: 2, ListNS: 3000, MatrixNS: 6000, Edges: 38, Cyclic: true},
		{N: 40, Density: 0.1, Trial: 1, ListNS: 2000, MatrixNS: 16000, Edges: 156, Cyclic: true},
		{N: 40, Density: 0.1, Trial: 2, ListNS: 4000, MatrixNS: 18000, Edges: 156, Cyclic: false},
		{N: 20, Density: 0.5, Trial: 1, ListNS: 5000, MatrixNS: 7000, Edges: 190, Cyclic: true},
		{N: 20, Density: 0.5, Trial: 2, ListNS: 5000, MatrixNS: 9000, Edges: 190, Cyclic: true},
	}
}

// writeCSV emits records through the package's own writer helpers.
func writeCSV(t *testing.T, path string, recs []report.Record) {
	t.Helper()
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	assert.NoError(t, report.WriteHeader(w))
	for _, r := range recs {
		assert.NoError(t, report.AppendRecord(w, r))
	}
	w.Flush()
	assert.NoError(t, w.Error())
}

// TestCSV_RoundTrip writes records and reads them back unchanged.
func TestCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw_results.csv")
	want := sampleRecords()
	writeCSV(t, path, want)

	got, err := report.ReadCSV(path)
	assert.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}
}

// TestReadCSV_BadHeader rejects a file with a foreign header.
func TestReadCSV_BadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	assert.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644))

	_, err := report.ReadCSV(path)
	assert.ErrorIs(t, err, report.ErrBadHeader)
}

// TestReadCSV_BadRecord rejects a row with a non-numeric time.
func TestReadCSV_BadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "n,density,trial,list_ns,matrix_ns,edges,cyclic\n20,0.1,1,abc,2,3,true\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := report.ReadCSV(path)
	assert.ErrorIs(t, err, report.ErrBadRecord)
}

// TestSummarize verifies per-cell means, trial counts and sort order.
func TestSummarize(t *testing.T) {
	summary := report.Summarize(sampleRecords())
	assert.Len(t, summary, 2)
	assert.Equal(t, []float64{0.1, 0.5}, report.Densities(summary))

	pts := summary[0.1]
	assert.Len(t, pts, 2)
	assert.Equal(t, 20, pts[0].N)
	assert.Equal(t, 40, pts[1].N)
	assert.Equal(t, 2, pts[0].Trials)

	// mean of 1000ns and 3000ns is 2µs
	assert.InDelta(t, 2e-6, pts[0].MeanList, 1e-12)
	assert.InDelta(t, 5e-6, pts[0].MeanMatrix, 1e-12)
	assert.InDelta(t, 3e-6, pts[1].MeanList, 1e-12)

	// single-density cell with identical samples has zero deviation
	assert.Zero(t, summary[0.5][0].StdList)
}

// TestDensityTag checks the percent file tag.
func TestDensityTag(t *testing.T) {
	assert.Equal(t, 1, report.DensityTag(0.01))
	assert.Equal(t, 10, report.DensityTag(0.10))
	assert.Equal(t, 50, report.DensityTag(0.50))
	assert.Equal(t, 100, report.DensityTag(1.0))
}

// TestPlotAll renders one figure per density into a temp dir.
func TestPlotAll(t *testing.T) {
	dir := t.TempDir()

	paths, err := report.PlotAll(sampleRecords(), dir)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "time_vs_n_density_10.png"),
		filepath.Join(dir, "time_vs_n_density_50.png"),
	}, paths)

	for _, p := range paths {
		info, err := os.Stat(p)
		assert.NoError(t, err)
		assert.NotZero(t, info.Size(), "%s should not be empty", p)
	}
}

// TestPlotAll_NoData verifies the empty-input sentinel.
func TestPlotAll_NoData(t *testing.T) {
	_, err := report.PlotAll(nil, t.TempDir())
	assert.ErrorIs(t, err, report.ErrNoData)
}

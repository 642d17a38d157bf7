package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

var (
	// ErrBadHeader indicates a CSV whose header row does not match Header.
	ErrBadHeader = errors.New("report: unexpected CSV header")

	// ErrBadRecord indicates a CSV data row that failed to parse.
	ErrBadRecord = errors.New("report: malformed CSV record")

	// ErrNoData indicates that an operation needing at least one record
	// received none.
	ErrNoData = errors.New("report: no records")
)

// Header is the canonical column layout of a results CSV.
var Header = []string{"n", "density", "trial", "list_ns", "matrix_ns", "edges", "cyclic"}

// Record is one benchmark trial: a single sampled digraph, both sorts timed.
type Record struct {
	N        int     // vertex count
	Density  float64 // normalized density in [0,1]
	Trial    int     // 1-based repeat index within the (n, density) pair
	ListNS   int64   // SortList wall time, nanoseconds
	MatrixNS int64   // SortMatrix wall time, nanoseconds
	Edges    int     // sampled arc count
	Cyclic   bool    // whether the sample contained a cycle
}

// fields renders the record in Header column order.
func (r Record) fields() []string {
	return []string{
		strconv.Itoa(r.N),
		strconv.FormatFloat(r.Density, 'g', -1, 64),
		strconv.Itoa(r.Trial),
		strconv.FormatInt(r.ListNS, 10),
		strconv.FormatInt(r.MatrixNS, 10),
		strconv.Itoa(r.Edges),
		strconv.FormatBool(r.Cyclic),
	}
}

// WriteHeader emits the canonical header row.
func WriteHeader(w *csv.Writer) error {
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	return nil
}

// AppendRecord emits one data row in Header column order.
func AppendRecord(w *csv.Writer, r Record) error {
	if err := w.Write(r.fields()); err != nil {
		return fmt.Errorf("report: write record: %w", err)
	}

	return nil
}

// ReadCSV loads a results file produced by the sweep driver.
// The header is validated against Header; every data row must parse.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("report: %s: %w", path, ErrBadHeader)
	}
	if !equalFields(rows[0], Header) {
		return nil, fmt.Errorf("report: %s: got header %v: %w", path, rows[0], ErrBadHeader)
	}

	recs := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("report: %s row %d: %w", path, i+2, err)
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// parseRecord converts one CSV data row back into a Record.
func parseRecord(row []string) (Record, error) {
	if len(row) != len(Header) {
		return Record{}, fmt.Errorf("%d columns: %w", len(row), ErrBadRecord)
	}

	var (
		rec Record
		err error
	)
	if rec.N, err = strconv.Atoi(row[0]); err != nil {
		return Record{}, fmt.Errorf("n=%q: %w", row[0], ErrBadRecord)
	}
	if rec.Density, err = strconv.ParseFloat(row[1], 64); err != nil {
		return Record{}, fmt.Errorf("density=%q: %w", row[1], ErrBadRecord)
	}
	if rec.Trial, err = strconv.Atoi(row[2]); err != nil {
		return Record{}, fmt.Errorf("trial=%q: %w", row[2], ErrBadRecord)
	}
	if rec.ListNS, err = strconv.ParseInt(row[3], 10, 64); err != nil {
		return Record{}, fmt.Errorf("list_ns=%q: %w", row[3], ErrBadRecord)
	}
	if rec.MatrixNS, err = strconv.ParseInt(row[4], 10, 64); err != nil {
		return Record{}, fmt.Errorf("matrix_ns=%q: %w", row[4], ErrBadRecord)
	}
	if rec.Edges, err = strconv.Atoi(row[5]); err != nil {
		return Record{}, fmt.Errorf("edges=%q: %w", row[5], ErrBadRecord)
	}
	if rec.Cyclic, err = strconv.ParseBool(row[6]); err != nil {
		return Record{}, fmt.Errorf("cyclic=%q: %w", row[6], ErrBadRecord)
	}

	return rec, nil
}

// equalFields compares two string slices element-wise.
func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

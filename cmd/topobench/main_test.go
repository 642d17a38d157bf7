package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"topobench/report"
)

// execute runs the CLI in-process and returns its combined output.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestRunAndReplot(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "results", "raw.csv")
	plotDir := filepath.Join(dir, "plots")

	out := execute(t, "run",
		"--ns", "10,20",
		"--densities", "10",
		"--repeats", "2",
		"--warmup", "0",
		"--seed", "11",
		"--out", csvPath,
		"--plots", plotDir,
	)
	if !strings.Contains(out, "Wrote 4 rows") {
		t.Fatalf("unexpected run output:\n%s", out)
	}

	recs, err := report.ReadCSV(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 4 {
		t.Fatalf("want 4 rows, got %d", len(recs))
	}
	// density 10 means 10 percent
	if recs[0].Density != 0.10 {
		t.Fatalf("want density 0.10, got %v", recs[0].Density)
	}

	// wipe the plots and rebuild them from the CSV alone
	if err := os.RemoveAll(plotDir); err != nil {
		t.Fatal(err)
	}
	out = execute(t, "replot", "--csv", csvPath, "--plots", plotDir)
	if !strings.Contains(out, "Read 4 rows") {
		t.Fatalf("unexpected replot output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(plotDir, "time_vs_n_density_10.png")); err != nil {
		t.Fatalf("summary plot missing: %v", err)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "--ns", "0", "--out",
		filepath.Join(t.TempDir(), "r.csv"), "--plots", t.TempDir()})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected an error for --ns 0")
	}
}

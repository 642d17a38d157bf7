package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"topobench/report"
)

var replotFlags struct {
	csvPath string
	plotDir string
}

var replotCmd = &cobra.Command{
	Use:   "replot",
	Short: "Rebuild summary plots from an existing results CSV",
	Long: `Replot reads a raw results CSV produced by a previous run and rebuilds
the per-density summary plots without re-running any benchmark.

Usage:
  topobench replot
  topobench replot --csv results/raw_results.csv --plots plots`,
	Args: cobra.NoArgs,
	RunE: runReplot,
}

func init() {
	f := replotCmd.Flags()
	f.StringVar(&replotFlags.csvPath, "csv", "results/raw_results.csv", "Results CSV to read")
	f.StringVar(&replotFlags.plotDir, "plots", "plots", "Directory for summary plots")
}

func runReplot(cmd *cobra.Command, args []string) error {
	recs, err := report.ReadCSV(replotFlags.csvPath)
	if err != nil {
		return err
	}

	paths, err := report.PlotAll(recs, replotFlags.plotDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Read %d rows from %s\n", len(recs), replotFlags.csvPath)
	for _, p := range paths {
		fmt.Fprintf(out, "Plot: %s\n", p)
	}

	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"topobench/sweep"
)

var runFlags struct {
	configPath       string
	ns               string
	densities        string
	repeats          int
	warmup           int
	outCSV           string
	plotDir          string
	saveExamples     bool
	saveEach         bool
	exampleEveryK    int
	overwriteVisuals bool
	parallel         int
	seed             int64
	weighted         bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full size x density benchmark sweep",
	Long: `Run times Kahn's topological sort over every (n, density) pair of the
sweep. Each pair gets --repeats independently generated random digraphs;
both representations sort the same graph. Raw per-trial timings land in
the CSV, mean-time plots in the plot directory.

Densities above 1 are read as percentages (10 means 0.10). With
--save-examples the first trial of every pair also writes a matrix
heatmap, a drawing, and text dumps; --example-every-k=k switches to
every k-th trial and --save-each to every trial.

Usage:
  topobench run
  topobench run --ns 100,500,1000 --densities 1,5,10 --repeats 50
  topobench run --config sweep.yaml --save-examples`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.configPath, "config", "", "YAML config file; flags override its values")
	f.StringVar(&runFlags.ns, "ns", "", "Comma-separated graph sizes (default 20..200 step 20)")
	f.StringVar(&runFlags.densities, "densities", "", "Comma-separated densities; >1 means percent (default 0.01,0.05,0.1,0.2,0.5)")
	f.IntVar(&runFlags.repeats, "repeats", 20, "Trials per (n, density) pair")
	f.IntVar(&runFlags.warmup, "warmup", 2, "Leading trials per pair with an extra untimed sort")
	f.StringVarP(&runFlags.outCSV, "out", "o", "results/raw_results.csv", "Results CSV path")
	f.StringVar(&runFlags.plotDir, "plots", "plots", "Directory for summary plots and visualizations")
	f.BoolVar(&runFlags.saveExamples, "save-examples", false, "Save visualization artifacts for example trials")
	f.BoolVar(&runFlags.saveEach, "save-each", false, "Save artifacts for every trial (implies --save-examples)")
	f.IntVar(&runFlags.exampleEveryK, "example-every-k", 0, "Save artifacts for every k-th trial of a pair (0 = first trial only)")
	f.BoolVar(&runFlags.overwriteVisuals, "overwrite-visuals", false, "Regenerate artifact files that already exist")
	f.IntVar(&runFlags.parallel, "parallel", 1, "Number of (n, density) pairs to run concurrently")
	f.Int64Var(&runFlags.seed, "seed", 0, "Base RNG seed (0 = seed from the wall clock)")
	f.BoolVar(&runFlags.weighted, "weighted", false, "Sample arc weights uniformly from [1,10] instead of 1")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := buildRunConfig(cmd)
	if err != nil {
		return err
	}

	runner, err := sweep.New(cfg)
	if err != nil {
		return err
	}
	stats, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d rows to %s in %s\n", stats.Rows, stats.CSVPath, stats.Elapsed.Round(time.Millisecond))
	for _, p := range stats.PlotPaths {
		fmt.Fprintf(out, "Plot: %s\n", p)
	}
	if stats.Artifacts > 0 {
		fmt.Fprintf(out, "Saved %d visualization files\n", stats.Artifacts)
	}

	return nil
}

// buildRunConfig layers CLI flags over the config file (or the defaults).
// Only flags the user actually set override file values.
func buildRunConfig(cmd *cobra.Command) (sweep.Config, error) {
	cfg := sweep.Default()
	if runFlags.configPath != "" {
		loaded, err := sweep.Load(runFlags.configPath)
		if err != nil {
			return sweep.Config{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("ns") {
		ns, err := sweep.ParseSizes(runFlags.ns)
		if err != nil {
			return sweep.Config{}, err
		}
		cfg.Ns = ns
	}
	if changed("densities") {
		ds, err := sweep.ParseDensityList(runFlags.densities)
		if err != nil {
			return sweep.Config{}, err
		}
		cfg.Densities = ds
	}
	if changed("repeats") {
		cfg.Repeats = runFlags.repeats
	}
	if changed("warmup") {
		cfg.Warmup = runFlags.warmup
	}
	if changed("out") {
		cfg.OutCSV = runFlags.outCSV
	}
	if changed("plots") {
		cfg.PlotDir = runFlags.plotDir
	}
	if changed("save-examples") {
		cfg.SaveExamples = runFlags.saveExamples
	}
	if changed("save-each") {
		cfg.SaveEach = runFlags.saveEach
		if runFlags.saveEach {
			cfg.SaveExamples = true
		}
	}
	if changed("example-every-k") {
		cfg.ExampleEveryK = runFlags.exampleEveryK
	}
	if changed("overwrite-visuals") {
		cfg.OverwriteVisuals = runFlags.overwriteVisuals
	}
	if changed("parallel") {
		cfg.Parallel = runFlags.parallel
	}
	if changed("seed") {
		cfg.Seed = runFlags.seed
	}
	if changed("weighted") {
		cfg.Weighted = runFlags.weighted
	}

	return cfg, nil
}

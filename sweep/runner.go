package sweep

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"topobench/gen"
	"topobench/internal/logging"
	"topobench/kahn"
	"topobench/report"
	"topobench/viz"
)

// Stats summarizes one completed sweep.
type Stats struct {
	Rows      int           // CSV data rows written
	Artifacts int           // visualization files written
	Elapsed   time.Duration // wall time of the whole sweep
	CSVPath   string
	PlotPaths []string // summary plots, one per density
}

// pair is one (n, density) cell of the sweep together with its position,
// used to derive a per-pair seed.
type pair struct {
	idx     int
	n       int
	density float64
}

// pairSeedStride spaces per-pair seeds so trial offsets never collide
// across pairs.
const pairSeedStride = 1 << 20

// Runner executes a validated sweep configuration.
type Runner struct {
	cfg Config
	log *slog.Logger
}

// New validates cfg and returns a ready Runner.
func New(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	return &Runner{cfg: cfg, log: logging.New("sweep")}, nil
}

// Run executes the full sweep: every (n, density, trial) combination
// produces exactly one CSV row; summary plots are rebuilt at the end.
// The first trial error cancels the worker pool and aborts the run.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()
	cfg := r.cfg

	if dir := filepath.Dir(cfg.OutCSV); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sweep: create results dir: %w", err)
		}
	}
	if err := os.MkdirAll(cfg.PlotDir, 0o755); err != nil {
		return nil, fmt.Errorf("sweep: create plot dir: %w", err)
	}

	f, err := os.Create(cfg.OutCSV)
	if err != nil {
		return nil, fmt.Errorf("sweep: create %s: %w", cfg.OutCSV, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := report.WriteHeader(w); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var pairs []pair
	for _, n := range cfg.Ns {
		for _, d := range cfg.Densities {
			pairs = append(pairs, pair{idx: len(pairs), n: n, density: d})
		}
	}

	var (
		mu        sync.Mutex // guards w, allRecs, artifacts
		allRecs   []report.Record
		artifacts int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for _, p := range pairs {
		p := p
		g.Go(func() error {
			recs, saved, err := r.runPair(gctx, p, baseSeed+int64(p.idx)*pairSeedStride)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			for _, rec := range recs {
				if err := report.AppendRecord(w, rec); err != nil {
					return err
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("sweep: flush %s: %w", cfg.OutCSV, err)
			}
			allRecs = append(allRecs, recs...)
			artifacts += saved

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	r.log.Info("sweep finished, building summary plots",
		"rows", len(allRecs), "csv", cfg.OutCSV)
	plotPaths, err := report.PlotAll(allRecs, cfg.PlotDir)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	return &Stats{
		Rows:      len(allRecs),
		Artifacts: artifacts,
		Elapsed:   time.Since(start),
		CSVPath:   cfg.OutCSV,
		PlotPaths: plotPaths,
	}, nil
}

// runPair executes all trials of one (n, density) cell sequentially and
// returns their records plus the number of artifacts written.
func (r *Runner) runPair(ctx context.Context, p pair, seed int64) ([]report.Record, int, error) {
	cfg := r.cfg
	r.log.Info("running pair", "n", p.n, "density", p.density)

	genOpts := func(trial int) []gen.Option {
		opts := []gen.Option{gen.WithSeed(seed + int64(trial))}
		if cfg.Weighted {
			opts = append(opts, gen.WithWeightRange(1, 10))
		}
		return opts
	}

	recs := make([]report.Record, 0, cfg.Repeats)
	artifacts := 0
	savedForPair := false

	for trial := 1; trial <= cfg.Repeats; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		// Generation stays outside the measurement.
		list, mat, err := gen.ErdosRenyi(p.n, p.density, genOpts(trial)...)
		if err != nil {
			return nil, 0, fmt.Errorf("generate n=%d d=%v trial=%d: %w", p.n, p.density, trial, err)
		}

		// Warm-up: run both sorts untimed on the leading trials.
		if trial <= cfg.Warmup {
			_, _ = kahn.SortList(list)
			_, _ = kahn.SortMatrix(mat)
		}

		// Settle the collector so a background cycle does not land
		// inside a timed section.
		runtime.GC()

		t0 := time.Now()
		order, listErr := kahn.SortList(list)
		listNS := time.Since(t0).Nanoseconds()

		cyclic := errors.Is(listErr, kahn.ErrCycleDetected)
		if listErr != nil && !cyclic {
			return nil, 0, fmt.Errorf("sort list n=%d trial=%d: %w", p.n, trial, listErr)
		}

		t0 = time.Now()
		_, matErr := kahn.SortMatrix(mat)
		matrixNS := time.Since(t0).Nanoseconds()
		if matErr != nil && !errors.Is(matErr, kahn.ErrCycleDetected) {
			return nil, 0, fmt.Errorf("sort matrix n=%d trial=%d: %w", p.n, trial, matErr)
		}

		recs = append(recs, report.Record{
			N:        p.n,
			Density:  p.density,
			Trial:    trial,
			ListNS:   listNS,
			MatrixNS: matrixNS,
			Edges:    list.ArcCount(),
			Cyclic:   cyclic,
		})

		if !cfg.SaveExamples {
			continue
		}
		doSave := false
		switch {
		case cfg.SaveEach:
			doSave = true
		case cfg.ExampleEveryK > 0:
			doSave = trial%cfg.ExampleEveryK == 0
		default:
			if !savedForPair {
				doSave = true
				savedForPair = true
			}
		}
		if !doSave {
			continue
		}

		vdir := filepath.Join(cfg.PlotDir, "visualizations")
		base := viz.BaseName(p.n, p.density, trial)
		saved, err := viz.SaveAll(vdir, base, list, mat, order, cfg.OverwriteVisuals)
		if err != nil {
			return nil, 0, fmt.Errorf("save examples %s: %w", base, err)
		}
		artifacts += saved.Count()
		r.log.Debug("saved examples", "base", base, "files", saved.Count())
	}

	return recs, artifacts, nil
}

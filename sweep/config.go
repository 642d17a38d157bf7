package sweep

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"topobench/gen"
)

// Config is one sweep invocation, loadable from YAML and/or CLI flags.
type Config struct {
	// Ns lists the graph sizes to sweep.
	Ns []int `yaml:"ns"`

	// Densities lists the edge densities to sweep, normalized to [0,1].
	Densities []float64 `yaml:"densities"`

	// Repeats is the number of trials per (n, density) pair.
	Repeats int `yaml:"repeats"`

	// Warmup is the number of leading trials per pair whose sorts run
	// untimed once before measurement, settling caches and the JIT-less
	// but allocation-sensitive runtime.
	Warmup int `yaml:"warmup"`

	// OutCSV is the results file path; parent directories are created.
	OutCSV string `yaml:"out_csv"`

	// PlotDir receives summary plots and the visualizations subdirectory.
	PlotDir string `yaml:"plot_dir"`

	// SaveExamples enables per-trial visualization artifacts.
	SaveExamples bool `yaml:"save_examples"`

	// SaveEach saves artifacts for every trial (implies SaveExamples cadence).
	SaveEach bool `yaml:"save_each"`

	// ExampleEveryK saves artifacts for trials whose 1-based index is a
	// multiple of k. 0 disables the modular cadence.
	ExampleEveryK int `yaml:"example_every_k"`

	// OverwriteVisuals regenerates artifact files that already exist.
	OverwriteVisuals bool `yaml:"overwrite_visuals"`

	// Parallel bounds the number of (n, density) pairs in flight.
	Parallel int `yaml:"parallel"`

	// Seed pins the generator; 0 means seed from the wall clock.
	Seed int64 `yaml:"seed"`

	// Weighted samples uniform integer arc weights in [1,10] instead of 1.
	Weighted bool `yaml:"weighted"`
}

// Default returns the documented defaults of the `run` command.
func Default() Config {
	return Config{
		Ns:        []int{20, 40, 60, 80, 100, 120, 140, 160, 180, 200},
		Densities: []float64{0.01, 0.05, 0.10, 0.20, 0.50},
		Repeats:   20,
		Warmup:    2,
		OutCSV:    "results/raw_results.csv",
		PlotDir:   "plots",
		Parallel:  1,
	}
}

// Load reads a YAML config file layered over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sweep: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("sweep: parse config %s: %w", path, err)
	}

	// Densities from a file may use the percent convention too.
	for i, d := range cfg.Densities {
		nd, err := gen.NormalizeDensity(d)
		if err != nil {
			return Config{}, fmt.Errorf("sweep: config %s: %w", path, err)
		}
		cfg.Densities[i] = nd
	}

	return cfg, nil
}

// Validate checks every field against its sentinel.
func (c Config) Validate() error {
	if len(c.Ns) == 0 {
		return ErrNoSizes
	}
	for _, n := range c.Ns {
		if n < 1 {
			return fmt.Errorf("n=%d: %w", n, ErrBadSize)
		}
	}
	if len(c.Densities) == 0 {
		return ErrNoDensities
	}
	for _, d := range c.Densities {
		if d < 0 || d > 1 {
			return fmt.Errorf("density=%v: %w", d, gen.ErrInvalidDensity)
		}
	}
	if c.Repeats < 1 {
		return fmt.Errorf("repeats=%d: %w", c.Repeats, ErrBadRepeats)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup=%d: %w", c.Warmup, ErrBadWarmup)
	}
	if c.ExampleEveryK < 0 {
		return fmt.Errorf("example-every-k=%d: %w", c.ExampleEveryK, ErrBadCadence)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel=%d: %w", c.Parallel, ErrBadParallel)
	}

	return nil
}

// ParseSizes converts a comma-separated size list ("20,40,60") to ints.
// Empty tokens are skipped.
func ParseSizes(s string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("ParseSizes: %q: %w", tok, ErrBadSize)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ParseSizes: %q: %w", s, ErrNoSizes)
	}

	return out, nil
}

// ParseDensityList converts a comma-separated density list, applying the
// percent convention (values above 1 are divided by 100).
func ParseDensityList(s string) ([]float64, error) {
	var out []float64
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		raw, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseDensityList: %q: %w", tok, gen.ErrInvalidDensity)
		}
		d, err := gen.NormalizeDensity(raw)
		if err != nil {
			return nil, fmt.Errorf("ParseDensityList: %w", err)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ParseDensityList: %q: %w", s, ErrNoDensities)
	}

	return out, nil
}

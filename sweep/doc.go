// Package sweep drives the benchmark: it iterates the Cartesian product
// of configured graph sizes, densities and repeat indices, times both
// Kahn variants on a fresh sample per trial, and emits one CSV row per
// trial plus summary plots and (optionally) per-trial visualization
// artifacts.
//
// Trials inside a (n, density) pair always run sequentially so their
// timings are comparable. Independent pairs may run concurrently on a
// bounded worker pool (Config.Parallel); the default of 1 keeps the
// whole sweep sequential. CSV rows are written per completed pair under
// a mutex, so the row-count invariant |Ns|·|Densities|·Repeats holds at
// any parallelism.
//
// Example cadence, matching the documented CLI contract:
//
//	SaveEach            — every trial of every pair
//	ExampleEveryK = k>0 — trials whose 1-based index is a multiple of k
//	neither             — the first trial of each pair, once
//
// Nothing is rendered unless SaveExamples is set.
package sweep

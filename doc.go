// Package topobench benchmarks Kahn's topological-sort algorithm over two
// classic directed-graph representations and reports how each scales with
// graph size and edge density.
//
// What it measures:
//
//	kahn.SortList   — adjacency list,   O(V+E) per sort
//	kahn.SortMatrix — adjacency matrix, O(V²)  per sort
//
// The sweep driver iterates the Cartesian product of configured sizes,
// densities and repeat indices, generating a fresh Erdős–Rényi digraph per
// trial, timing both sorts, and appending one CSV row per trial. Summary
// plots (mean time vs. n, one figure per density) and optional per-trial
// visualization artifacts land in the plots directory.
//
// Package map:
//
//	digraph/ — int-indexed adjacency-list and adjacency-matrix types + converters
//	gen/     — exact-m Erdős–Rényi directed generator (seedable, optional weights)
//	kahn/    — Kahn's algorithm for both representations, cycle detection
//	sweep/   — sweep configuration, run loop, CSV emission, example cadence
//	report/  — CSV schema, aggregation, summary plot rendering
//	viz/     — per-trial heatmap / graph-drawing / text artifacts
//
// Typical invocation:
//
//	topobench run --ns 20,40,60 --densities 0.05,0.10 --repeats 20 \
//	    --save-examples --example-every-k 5
//
// Results are deterministic for a fixed --seed at --parallel 1.
package topobench

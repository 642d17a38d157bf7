// SPDX-License-Identifier: MIT

// Package gen constructs random simple digraphs for the benchmark sweep.
//
// The single constructor, ErdosRenyi, samples an exact-size Erdős–Rényi
// directed graph: given n vertices and a density d ∈ [0,1], it draws
// exactly m = round(d·n·(n−1)) distinct ordered pairs (u,v), u ≠ v, by
// rejection sampling, and materializes both representations (adjacency
// list and adjacency matrix) over the same arc set in one pass.
//
// Densities greater than 1 are interpreted as percentages (10 → 0.10),
// matching the CLI convention.
//
// Determinism: with WithSeed or WithRand the arc set AND the insertion
// order are reproducible, because arcs are appended at acceptance time
// in draw order. Without an explicit source the generator self-seeds
// from the wall clock.
//
// Options:
//
//	WithSeed(s)            — deterministic RNG from seed s.
//	WithRand(r)            — caller-owned RNG (panics on nil).
//	WithWeightRange(lo,hi) — weighted arcs, uniform integer in [lo,hi].
//
// Errors:
//
//	ErrTooFewVertices  — n < 1.
//	ErrInvalidDensity  — normalized density outside [0,1].
package gen

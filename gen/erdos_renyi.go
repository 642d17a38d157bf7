// SPDX-License-Identifier: MIT
// Package: topobench/gen
//
// erdos_renyi.go — exact-m Erdős–Rényi directed generator.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - density ∈ [0,1] after percent normalization (else ErrInvalidDensity).
//   - Samples exactly m = round(density·n·(n−1)) distinct ordered pairs
//     (u,v) with u ≠ v; no loops, no parallel arcs.
//   - Returns both representations over the same arc set.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: expected O(m) draws for sparse graphs; coupon-collector
//     behavior (O(m log m)) as density approaches 1.
//   - Space: O(n²) for the matrix plus O(m) for the list and seen-set.
//
// Determinism:
//   - Arcs are appended at acceptance time, so for a fixed seed both the
//     arc set and every successor order are reproducible.

package gen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"topobench/digraph"
)

// NormalizeDensity maps a raw CLI density to [0,1]: values in (1,100]
// are treated as percentages. Returns ErrInvalidDensity otherwise.
func NormalizeDensity(d float64) (float64, error) {
	if d > 1 && d <= 100 {
		d /= 100.0
	}
	if d < 0 || d > 1 || math.IsNaN(d) {
		return 0, fmt.Errorf("NormalizeDensity: density=%v: %w", d, ErrInvalidDensity)
	}

	return d, nil
}

// ErdosRenyi samples a simple digraph over n vertices with exactly
// round(density·n·(n−1)) arcs and returns it in both representations.
func ErdosRenyi(n int, density float64, opts ...Option) (*digraph.AdjacencyList, *digraph.AdjacencyMatrix, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < 1 {
		return nil, nil, fmt.Errorf("ErdosRenyi: n=%d: %w", n, ErrTooFewVertices)
	}
	d, err := NormalizeDensity(density)
	if err != nil {
		return nil, nil, fmt.Errorf("ErdosRenyi: %w", err)
	}

	// 2) Resolve options; self-seed when the caller did not pin an RNG.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 3) Allocate both representations up front.
	list, err := digraph.NewAdjacencyList(n)
	if err != nil {
		return nil, nil, fmt.Errorf("ErdosRenyi: %w", err)
	}
	mat, err := digraph.NewAdjacencyMatrix(n)
	if err != nil {
		return nil, nil, fmt.Errorf("ErdosRenyi: %w", err)
	}

	// 4) Exact arc budget for a loop-free digraph.
	m := int(math.Round(d * float64(n*(n-1))))

	// 5) Rejection-sample distinct ordered pairs until the budget is met.
	//    Arcs are inserted immediately so successor order tracks draw order.
	seen := make(map[int]struct{}, m) // key u*n+v identifies the ordered pair
	var u, v int
	var w int64
	for len(seen) < m {
		u = rng.Intn(n)
		v = rng.Intn(n)
		if u == v {
			continue
		}
		key := u*n + v
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		w = 1
		if cfg.weighted {
			w = cfg.wlo + rng.Int63n(cfg.whi-cfg.wlo+1)
		}
		if err = list.AddArc(u, v, w); err != nil {
			return nil, nil, fmt.Errorf("ErdosRenyi: %w", err)
		}
		if err = mat.Set(u, v, w); err != nil {
			return nil, nil, fmt.Errorf("ErdosRenyi: %w", err)
		}
	}

	return list, mat, nil
}

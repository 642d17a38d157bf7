// SPDX-License-Identifier: MIT
// Package: topobench/gen
//
// options.go — functional options for the generator.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the generator itself returns sentinel errors only.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package gen

import "math/rand"

// Default weight range used when WithWeightRange is not supplied but a
// weighted graph is requested elsewhere; mirrors the classic 1..10 span.
const (
	defaultWeightLo int64 = 1
	defaultWeightHi int64 = 10
)

// Option customizes generator behavior by mutating the resolved config
// before sampling begins.
type Option func(*config)

// config holds the resolved generator settings.
type config struct {
	rng      *rand.Rand // RNG; nil means "self-seed from wall clock"
	weighted bool       // draw a random weight per arc
	wlo, whi int64      // inclusive weight range when weighted
}

// defaultConfig returns the baseline settings: unseeded, unweighted.
func defaultConfig() config {
	return config{wlo: defaultWeightLo, whi: defaultWeightHi}
}

// WithSeed creates a deterministic RNG from the given seed.
// Use this in tests and sweeps to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil to surface programmer
// error early; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightRange enables weighted arcs with uniform integer weights in
// the inclusive range [lo, hi]. Panics when lo < 1 or hi < lo: weight 0
// is reserved for "no arc" in the matrix form, and an empty range is
// meaningless.
func WithWeightRange(lo, hi int64) Option {
	if lo < 1 || hi < lo {
		panic("gen: WithWeightRange: range must satisfy 1 <= lo <= hi")
	}
	return func(c *config) {
		c.weighted = true
		c.wlo, c.whi = lo, hi
	}
}

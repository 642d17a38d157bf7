// SPDX-License-Identifier: MIT
// Package: topobench/gen
//
// errors.go — sentinel errors for the generator.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Option constructors (WithX...) validate and panic on meaningless
//     inputs; ErdosRenyi itself never panics at runtime.

package gen

import "errors"

// ErrTooFewVertices indicates a vertex count below the minimum (1).
// Usage: if errors.Is(err, gen.ErrTooFewVertices) { /* fix n */ }.
var ErrTooFewVertices = errors.New("gen: vertex count must be >= 1")

// ErrInvalidDensity indicates a density outside [0,1] after percent
// normalization (values in (1,100] are divided by 100 first).
// Usage: if errors.Is(err, gen.ErrInvalidDensity) { /* fix density */ }.
var ErrInvalidDensity = errors.New("gen: density out of range")

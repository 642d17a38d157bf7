// SPDX-License-Identifier: MIT
// Package: topobench/digraph
//
// errors.go — sentinel errors for the digraph package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites attach context via %w wrapping; sentinels stay bare.

package digraph

import "errors"

// ErrInvalidOrder indicates a requested vertex count below the minimum (1).
var ErrInvalidOrder = errors.New("digraph: order must be >= 1")

// ErrVertexRange indicates a vertex index outside [0, Order()).
var ErrVertexRange = errors.New("digraph: vertex index out of range")

// ErrSelfLoop indicates an arc whose endpoints coincide; simple digraphs
// here never carry loops.
var ErrSelfLoop = errors.New("digraph: self-loops not allowed")

// ErrParallelArc indicates an arc that already exists between the same
// ordered endpoints.
var ErrParallelArc = errors.New("digraph: parallel arcs not allowed")

// ErrNilGraph indicates a nil representation passed to a converter or
// formatter.
var ErrNilGraph = errors.New("digraph: graph is nil")

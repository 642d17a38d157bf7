// Package sweep: sentinel errors for configuration validation.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Validate wraps each sentinel with the offending value via %w.

package sweep

import "errors"

// ErrNoSizes indicates an empty size list.
var ErrNoSizes = errors.New("sweep: at least one graph size is required")

// ErrBadSize indicates a non-positive or unparsable graph size.
var ErrBadSize = errors.New("sweep: invalid graph size")

// ErrNoDensities indicates an empty density list.
var ErrNoDensities = errors.New("sweep: at least one density is required")

// ErrBadRepeats indicates a repeat count below 1.
var ErrBadRepeats = errors.New("sweep: repeats must be >= 1")

// ErrBadWarmup indicates a negative warm-up count.
var ErrBadWarmup = errors.New("sweep: warmup must be >= 0")

// ErrBadCadence indicates a negative example-every-k value.
var ErrBadCadence = errors.New("sweep: example-every-k must be >= 0")

// ErrBadParallel indicates a worker limit below 1.
var ErrBadParallel = errors.New("sweep: parallel must be >= 1")

// Package kahn: shared types, options and sentinel errors.
package kahn

import (
	"context"
	"errors"
)

var (
	// ErrNilGraph is returned when a nil representation is passed to
	// SortList or SortMatrix.
	ErrNilGraph = errors.New("kahn: graph is nil")

	// ErrCycleDetected indicates the input is not a DAG: the queue
	// drained before every vertex was placed in the order.
	ErrCycleDetected = errors.New("kahn: cycle detected")
)

// Option configures optional behavior of a sort.
type Option func(*options)

// options holds settings for a sort, currently only cancellation.
type options struct {
	ctx context.Context // nil means "no cancellation checks" (hot path stays branch-free)
}

// defaultOptions returns the default options: no cancellation.
// Leaving ctx nil (rather than Background) keeps a conditional select
// out of the timed inner loop unless a caller asks for it.
func defaultOptions() options {
	return options{}
}

// WithCancelContext returns an Option that enables cooperative
// cancellation: the context is checked once per dequeued vertex.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

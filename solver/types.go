package solver

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation indicates an invalid Option was supplied.
var ErrOptionViolation = errors.New("solver: invalid option supplied")

// Option configures Solve via functional arguments.
type Option func(*options)

type options struct {
	ctx              context.Context
	radiusMultiplier float64
	maxSweeps        int
	overflowCap      int64
	maxParallelism   int
	err              error
}

func defaultOptions() options {
	return options{
		ctx:              context.Background(),
		radiusMultiplier: 1.0,
		maxSweeps:        4,
		overflowCap:      1 << 30,
		maxParallelism:   1,
	}
}

// WithContext sets the context polled for cancellation between layers
// and relaxation sweeps.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRadiusMultiplier scales the published proximity radius up for
// instances where the theoretical bound proves too tight. Must be >= 1.0.
func WithRadiusMultiplier(m float64) Option {
	return func(o *options) {
		if m < 1.0 {
			o.err = fmt.Errorf("%w: RadiusMultiplier must be >= 1.0 (%v)", ErrOptionViolation, m)
			return
		}
		o.radiusMultiplier = m
	}
}

// WithMaxSweeps bounds the number of relaxation passes attempted before
// giving up on convergence.
func WithMaxSweeps(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSweeps must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxSweeps = n
	}
}

// WithOverflowCap sets the magnitude at which relaxation reports
// Overflow.
func WithOverflowCap(cap int64) Option {
	return func(o *options) {
		if cap <= 0 {
			o.err = fmt.Errorf("%w: OverflowCap must be positive (%d)", ErrOptionViolation, cap)
			return
		}
		o.overflowCap = cap
	}
}

// WithMaxParallelism bounds the worker pool used for per-layer edge
// enumeration.
func WithMaxParallelism(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxParallelism cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxParallelism = n
	}
}

// NamedValue pairs a variable name with its solved value.
type NamedValue struct {
	Name  string
	Value int64
}

// Stats reports the shape of the search and where the time went.
type Stats struct {
	Vertices     int64
	Edges        int64
	Depth        int64
	MaxLayerSize int64
	Sweeps       int64
	BuildNS      int64
	SolveNS      int64
	TotalNS      int64

	// REnd is the fractional end-radius proximity.Compute derived
	// alongside RStart, carried through purely as a diagnostic — nothing
	// in the builder prunes against it.
	REnd float64
}

// Result is the outcome of a successful Solve call: the recovered
// variable assignment, the objective value in the caller's original
// sense, and search statistics for diagnostics.
type Result struct {
	Variables []NamedValue
	Objective int64
	Stats     Stats
}

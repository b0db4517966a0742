package graphbuild

import (
	"context"
	"errors"
	"fmt"

	"github.com/mstrand-dev/steinitzgraph/core"
)

// Sentinel errors for graph construction.
var (
	// ErrUnbounded indicates a zero column with a positive objective
	// contribution: x_j is unconstrained by A but improves c^T x without
	// limit.
	ErrUnbounded = errors.New("graphbuild: objective unbounded on a free column")

	// ErrRadiusExceeded indicates the depth cap stopped enumeration before
	// the target set had a reachable member; the caller may retry with a
	// larger radius multiplier. Build itself never returns
	// this — reaching the depth cap is normal termination, recorded on
	// Stats.DepthCapReached — it surfaces once longestpath.SelectSink
	// finds no finite-distance target-set node after such a build.
	ErrRadiusExceeded = errors.New("graphbuild: depth cap reached before target settled")

	// ErrOptionViolation indicates an invalid Option, e.g. a negative
	// parallelism factor.
	ErrOptionViolation = errors.New("graphbuild: invalid option supplied")
)

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds the tunables for graph construction.
type Options struct {
	// Ctx allows cancellation between layers.
	Ctx context.Context

	// MaxParallelism bounds the worker pool used for per-layer edge
	// enumeration. 0 or 1 means sequential.
	MaxParallelism int

	err error
}

// DefaultOptions returns sequential construction with no cancellation.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxParallelism: 1,
	}
}

// WithContext sets a custom context for cancellation between layers.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxParallelism sets the worker-pool size for per-layer edge
// enumeration. n <= 1 disables parallelism; n < 0 is an option violation.
func WithMaxParallelism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxParallelism cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		if n == 0 {
			n = 1
		}
		o.MaxParallelism = n
	}
}

// Edge is a single arc in the layered DAG: u -> u+A[:,col], weighted by
// the objective coefficient of the column that produced it.
type Edge struct {
	From   core.Vector
	To     core.Vector
	Weight int32
	Col    int
}

// Stats reports the shape of the constructed graph.
type Stats struct {
	Vertices     int64
	Edges        int64
	Depth        int64
	MaxLayerSize int64

	// DepthCapReached is true when enumeration stopped because depth hit
	// bounds.DepthCap rather than because a layer came up empty. A caller
	// that finds no finite-distance target-set node after such a build
	// should report RadiusExceeded rather than Infeasible: the instance
	// may simply need a larger radius, not have no solution at all.
	DepthCapReached bool
}

// Graph is the constructed layered DAG. Layers[0] is always {origin};
// Adjacency lists every outgoing edge of a node, absent for sinks.
type Graph struct {
	Layers    [][]core.Vector
	Adjacency map[core.Vector][]Edge
	Stats     Stats
}

package longestpath

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/mstrand-dev/steinitzgraph/core"
)

// negInf marks a node as not yet (or never) reached. It is far enough
// from zero that adding any single edge weight bounded by OverflowCap
// cannot wrap it around, while remaining a valid int64.
const negInf = math.MinInt64 / 2

// Sentinel errors for longest-path relaxation.
var (
	// ErrInfeasible indicates no target-set node has a finite distance and
	// the build that produced it was not cut short by the depth cap — see
	// SelectSink, which returns graphbuild.ErrRadiusExceeded instead when
	// it was.
	ErrInfeasible = errors.New("longestpath: no target node is reachable")

	// ErrOverflow indicates an intermediate distance left the supported
	// magnitude range.
	ErrOverflow = errors.New("longestpath: distance exceeds overflow cap")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("longestpath: invalid option supplied")
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the tunables for relaxation.
type Options struct {
	// Ctx allows cancellation between relaxation sweeps.
	Ctx context.Context

	// MaxSweeps caps the number of relaxation passes performed before
	// giving up on convergence. The layered graphs this solver builds
	// always converge in one pass; the cap exists as a defensive bound
	// for any future non-strictly-layered graph.
	MaxSweeps int

	// OverflowCap bounds the absolute magnitude any distance may reach
	// before Solve reports ErrOverflow.
	OverflowCap int64

	err error
}

// DefaultOptions returns at most four relaxation sweeps, a generous
// overflow cap, and no cancellation.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxSweeps:   4,
		OverflowCap: math.MaxInt32,
	}
}

// WithContext sets a custom context for cancellation between sweeps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSweeps bounds the number of relaxation passes. n must be >= 1.
func WithMaxSweeps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSweeps must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSweeps = n
	}
}

// WithOverflowCap sets the magnitude at which Solve reports ErrOverflow.
// cap must be positive.
func WithOverflowCap(cap int64) Option {
	return func(o *Options) {
		if cap <= 0 {
			o.err = fmt.Errorf("%w: OverflowCap must be positive (%d)", ErrOptionViolation, cap)
			return
		}
		o.OverflowCap = cap
	}
}

// Result is the outcome of relaxation: the best known distance and
// predecessor edge for every enumerated node.
type Result struct {
	Dist   map[core.Vector]int64
	Parent map[core.Vector]core.Parent
	Sweeps int
}

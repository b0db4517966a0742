package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mstrand-dev/steinitzgraph/canonical"
	"github.com/mstrand-dev/steinitzgraph/graphbuild"
	"github.com/mstrand-dev/steinitzgraph/longestpath"
	"github.com/mstrand-dev/steinitzgraph/reconstruct"
)

// ErrorKind classifies a solve failure by which stage produced it and
// why. ParseError is never produced by this package — it belongs to the
// parser collaborator (ilptext) — but is named here so a CLI can map
// every error kind, parser included, onto one exit-code table.
type ErrorKind int

const (
	// KindParseError is reserved for the parser collaborator; Solve
	// never returns it directly.
	KindParseError ErrorKind = iota
	// KindInfeasible: no target-set node has a finite distance, or the
	// reconstruction post-check failed.
	KindInfeasible
	// KindUnbounded: a zero column carries positive objective weight.
	KindUnbounded
	// KindOverflow: an intermediate distance, coordinate, or coefficient
	// left the supported integer range.
	KindOverflow
	// KindRadiusExceeded: the depth cap was reached before the target
	// settled; retrying with a larger radius multiplier may help.
	KindRadiusExceeded
	// KindCancelled: the caller's context was cancelled mid-solve.
	KindCancelled
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindParseError:
		return "parse_error"
	case KindInfeasible:
		return "infeasible"
	case KindUnbounded:
		return "unbounded"
	case KindOverflow:
		return "overflow"
	case KindRadiusExceeded:
		return "radius_exceeded"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// SolveError wraps a stage failure with its taxonomy Kind so a CLI (or
// any other caller) can branch on Kind without depth-first errors.Is
// chains through every stage's sentinels.
type SolveError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *SolveError) Error() string {
	return fmt.Sprintf("solver: %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying stage error to errors.Is/errors.As.
func (e *SolveError) Unwrap() error { return e.Err }

func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, canonical.ErrInfeasible),
		errors.Is(err, longestpath.ErrInfeasible),
		errors.Is(err, reconstruct.ErrInfeasible):
		return KindInfeasible
	case errors.Is(err, canonical.ErrNoConstraints),
		errors.Is(err, canonical.ErrTooManyConstraints):
		return KindInfeasible
	case errors.Is(err, graphbuild.ErrUnbounded):
		return KindUnbounded
	case errors.Is(err, longestpath.ErrOverflow):
		return KindOverflow
	case errors.Is(err, graphbuild.ErrRadiusExceeded):
		return KindRadiusExceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	default:
		return KindInfeasible
	}
}

func wrap(err error) error {
	if err == nil {
		return nil
	}

	return &SolveError{Kind: kindOf(err), Err: err}
}

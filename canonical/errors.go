package canonical

import "errors"

var (
	// ErrNoConstraints indicates a ParsedILP with zero constraint rows.
	// Reachable when a caller builds a ParsedILP by hand rather than via
	// ilptext.Parse, which already rejects this earlier.
	ErrNoConstraints = errors.New("canonical: instance has no constraints")

	// ErrInfeasible indicates a constant-only constraint (no variable on
	// either side) whose relation does not hold, e.g. "5 <= 3". Such a
	// row can never be satisfied regardless of x, so the whole instance
	// is infeasible before a single graph node is built.
	ErrInfeasible = errors.New("canonical: constant constraint is never satisfied")

	// ErrTooManyConstraints indicates the constraint count exceeds
	// core.MaxDim, the fixed row capacity of core.Vector (the graph
	// builder's node key).
	ErrTooManyConstraints = errors.New("canonical: too many constraints")
)

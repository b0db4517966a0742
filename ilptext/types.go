package ilptext

import "github.com/mstrand-dev/steinitzgraph/core"

// Term is a single additive component of a Sum: Coeff * Var, or a bare
// integer constant when Var == "".
type Term struct {
	Coeff int32
	Var   string
}

// Constraint is one row of the constraint list: LHS rel RHS, each side an
// ordered sum of Terms.
type Constraint struct {
	LHS []Term
	Rel core.Relation
	RHS []Term
}

// ParsedILP is the structure canonical.Canonicalise consumes. It
// carries no notion of a dense matrix yet — only the term lists as
// written, in first-appearance order.
type ParsedILP struct {
	Sense       core.Sense
	Objective   []Term
	Constraints []Constraint
}

package canonical

import (
	"github.com/mstrand-dev/steinitzgraph/core"
	"github.com/mstrand-dev/steinitzgraph/ilptext"
)

// Canonicalise builds the ordered variable set by first appearance across
// the objective and constraints, assembles dense A/b/rel rows, and
// negates C when parsed.Sense is Minimize so the returned instance is
// always in maximisation form. The original sense is preserved on the
// returned core.Instance.Sense for the driver to undo on output.
func Canonicalise(parsed ilptext.ParsedILP) (*core.Instance, error) {
	if err := validateParsed(parsed); err != nil {
		return nil, err
	}

	varNames, index := collectVariables(parsed)
	n := len(varNames)
	m := len(parsed.Constraints)

	a, err := core.NewMatrix(m, n)
	if err != nil {
		return nil, err
	}
	b := make([]int32, m)
	rel := make([]core.Relation, m)

	for i, cons := range parsed.Constraints {
		var constLHS, constRHS int32
		for _, t := range cons.LHS {
			if t.Var == "" {
				constLHS += t.Coeff
				continue
			}
			j := index[t.Var]
			cur, _ := a.At(i, j)
			_ = a.Set(i, j, cur+t.Coeff)
		}
		for _, t := range cons.RHS {
			if t.Var == "" {
				constRHS += t.Coeff
				continue
			}
			j := index[t.Var]
			cur, _ := a.At(i, j)
			_ = a.Set(i, j, cur-t.Coeff)
		}
		b[i] = constRHS - constLHS
		rel[i] = cons.Rel

		if a.IsZeroRow(i) {
			// Row degenerates to a bare numeric comparison; keep it as a
			// harmless all-zero row when it trivially holds, reject the
			// instance outright when it doesn't.
			if !cons.Rel.Holds(0, b[i]) {
				return nil, ErrInfeasible
			}
		}
	}

	c := make([]int32, n)
	for _, t := range parsed.Objective {
		if t.Var == "" {
			continue
		}
		c[index[t.Var]] += t.Coeff
	}
	if parsed.Sense == core.Minimize {
		for j := range c {
			c[j] = -c[j]
		}
	}

	return core.NewInstance(a, b, c, rel, varNames, parsed.Sense)
}

// collectVariables walks the objective then the constraints in source
// order, returning the distinct variable names in first-appearance order
// together with a name->column index lookup.
func collectVariables(parsed ilptext.ParsedILP) ([]string, map[string]int) {
	index := make(map[string]int)
	var names []string

	see := func(name string) {
		if name == "" {
			return
		}
		if _, ok := index[name]; ok {
			return
		}
		index[name] = len(names)
		names = append(names, name)
	}

	for _, t := range parsed.Objective {
		see(t.Var)
	}
	for _, cons := range parsed.Constraints {
		for _, t := range cons.LHS {
			see(t.Var)
		}
		for _, t := range cons.RHS {
			see(t.Var)
		}
	}

	return names, index
}

// validateParsed runs every structural check up front, following the
// single-pre-check-before-allocation shape used throughout this codebase:
// the first violated rule is reported before any matrix is built. The
// constraint count is what core.MaxDim bounds — it becomes m, the row
// count of core.Vector, the graph builder's node key — not the variable
// count, which becomes n and is unconstrained here.
func validateParsed(parsed ilptext.ParsedILP) error {
	if len(parsed.Constraints) == 0 {
		return ErrNoConstraints
	}
	if len(parsed.Constraints) > core.MaxDim {
		return ErrTooManyConstraints
	}

	return nil
}

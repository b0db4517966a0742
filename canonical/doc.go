// Package canonical turns a parsed ILP (as produced by ilptext.Parse, or
// hand-built by any caller satisfying the same shape) into the dense
// core.Instance the rest of the solver consumes.
//
// Canonicalise builds the ordered variable set by first appearance
// across the objective and constraints, assembles the dense A/b/rel
// rows, and negates the objective when the original sense is Minimize —
// the instance it returns is always in maximisation form, with the
// original sense preserved on core.Instance.Sense so the driver can
// negate the reported objective back on output.
package canonical

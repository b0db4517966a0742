// Package solver orchestrates canonicalisation, proximity-bound
// computation, graph construction, longest-path relaxation, and solution
// reconstruction into a single Solve call, timing each stage and
// mapping every internal failure onto a single SolveError taxonomy.
package solver

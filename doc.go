// Package steinitzgraph implements a small integer linear program solver
// built on the Eisenbrand–Weismantel proximity-via-graph technique:
// canonicalise the program into dense integer form, compute a proximity
// radius from the constraint matrix, build a layered directed graph over
// ℤ^m nodes bounded by that radius, run longest-path relaxation over the
// resulting DAG, and reconstruct the integer solution from the winning
// path's parent pointers.
//
// The pipeline lives across a handful of small packages that mirror the
// algorithm's own stages:
//
//	ilptext      — parses a textual .ilp description into a ParsedILP
//	canonical    — turns a ParsedILP into a dense core.Instance
//	proximity    — computes the radius that bounds graph construction
//	graphbuild   — enumerates the layered DAG within that radius
//	longestpath  — relaxes the DAG to find the best reachable node
//	reconstruct  — walks parent pointers back into an integer solution
//	solver       — orchestrates the five stages above into one call
//	config       — loads engine tunables from YAML
//	cmd/steinitz — a CLI front end over solver.Solve
//
// core holds the shared value types (Vector, Matrix, Instance) that flow
// between every other package; none of the algorithmic logic lives
// there.
package steinitzgraph

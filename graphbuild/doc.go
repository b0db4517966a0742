// Package graphbuild constructs the layered directed graph the solver
// searches: layer 0 is the origin, and layer k+1 is every node reachable
// from layer k by adding one constraint-matrix column, subject to the
// proximity radius.
//
// Per-layer edge enumeration may run across a worker pool
// (WithMaxParallelism); the candidate edges each worker produces are
// merged and sorted into canonical coordinate order before the next
// layer is assigned, so the resulting graph — and every tie-break
// downstream — is independent of goroutine scheduling.
package graphbuild

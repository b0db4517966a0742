// Package core defines the value types shared by every stage of the
// proximity-graph ILP solver: the fixed-capacity coordinate Vector used
// as a hash-map key throughout graphbuild and longestpath, the dense
// integer Matrix backing the constraint matrix A, and the canonicalised
// Instance that the rest of the pipeline consumes.
//
// Design notes:
//
//   - Vector is a small, comparable value type (a fixed-size array plus
//     an explicit dimension), not a slice. Go arrays are comparable, so
//     Vector can be used directly as a map key with no custom hashing —
//     this is the "value-keyed nodes" requirement the graph builder and
//     longest-path solver both depend on.
//
//   - Matrix and Instance hold exact int32 entries; nothing in this
//     package or its callers uses floating point, matching the
//     exact-arithmetic contract of the solver.
//
//   - Nothing here performs graph construction or path search; this
//     package only stores and validates the numbers those algorithms
//     operate on.
package core

// Package reconstruct walks the parent pointers longestpath.Solve
// produced, from a chosen sink back to the origin, tallying the column
// labels encountered into the integer solution x*.
package reconstruct

// Package solver implements recursive exact-cover enumeration over a
// (typically already-reduced) lattice.Lattice: a column-choice heuristic
// picks which column to satisfy next, and every row tried at a level is
// undone before the next is tried, via a per-level lattice.UndoLog scope.
package solver

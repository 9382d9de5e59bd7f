// Package lattice implements the dancing-links data structure at the heart
// of the exact-cover engine: an intrusive four-way linked structure of
// Position (column) headers, Vector (row) headers, and Cell nodes, plus the
// covering/uncovering primitives every other package builds on.
//
// Topology:
//
//	Position headers form a circular doubly linked horizontal list, anchored
//	at a sentinel root. Vector headers form a circular doubly linked vertical
//	list anchored at the same root. Each Position is the top of a circular
//	vertical list of the Cells covering it (ascending Vector.Nr); each Vector
//	is the left of a circular horizontal list of its Cells (ascending
//	Position.Nr). A spliced-out node keeps its own link fields, so splicing
//	it back in is exact reversal — the dancing-links trick.
//
// Reversibility contract:
//
//	Every Select* is paired with exactly one Unselect* at matching nesting,
//	and every UndoLog.Ignore* is undone by Close() in strict LIFO order.
//	Traversal direction inverts on undo (walk the left/up chain instead of
//	right/down) so re-splicing uses still-valid neighbour pointers.
//
// This package never allocates or frees Positions/Vectors/Cells outside of
// construction (New/AddPosition/AddVector/AddCell) — reduction and
// search only splice nodes in and out of the rings above.
package lattice

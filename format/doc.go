// Package format implements the textual row formats the engine reads and
// writes: dense 0/1 rows and numeric comma-separated-ordinal rows for
// input, the same numeric format for reduced-matrix/backup output, and
// the `|`-delimited name format for solution output (spec.md §6).
package format

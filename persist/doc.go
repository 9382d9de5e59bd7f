// Package persist provides the two on-disk hooks a long-running reduction
// or solve needs: periodic backup snapshots of the matrix so a killed run
// can be resumed from roughly where it left off, and an append-only sink
// that records accepted solutions as they are found.
//
// Backup is wall-clock gated rather than iteration-count gated, following
// the original tool's backup() function; Sink writes every solution as it
// is recorded. Both are safe to omit (nil *Backup / *Sink) for callers
// that only want in-memory results.
package persist

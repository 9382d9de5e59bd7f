package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrEmptyInstance indicates an operation was attempted on a lattice
	// with no positions or no vectors.
	ErrEmptyInstance = errors.New("lattice: empty instance")

	// ErrPositionNotFound indicates an operation referenced a position
	// that is not part of this lattice.
	ErrPositionNotFound = errors.New("lattice: position not found")

	// ErrVectorNotFound indicates an operation referenced a vector that is
	// not part of this lattice.
	ErrVectorNotFound = errors.New("lattice: vector not found")
)

// CorruptionError reports a broken lattice invariant: an operation touched
// a node that was already spliced out, or a zero-vector-count column
// surfaced outside Pass B's detection context (spec.md §3, §4.3 "Failure
// semantics"). It is fatal and non-recoverable by policy: construct it and
// panic, do not try to continue reducing or searching.
type CorruptionError struct {
	// Op names the operation that detected the violation (e.g. "reduce",
	// "selectPosition").
	Op string
	// Detail describes the offending node ("position 7 swapped out").
	Detail string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("lattice: fatal invariant violation in %s: %s", e.Op, e.Detail)
}

// corrupt panics with a *CorruptionError. Callers at package boundaries
// (cmd/xcover) recover it to print a diagnostic and exit non-zero; nothing
// inside this module is expected to recover it and keep going.
func corrupt(op, format string, args ...interface{}) {
	panic(&CorruptionError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

package lattice

// entryKind tags an UndoLog record. A plain two-value tag plus a switch at
// the two call sites (IgnoreVector/IgnorePosition) replaces the source's
// virtual ignore()/unignore() dispatch, keeping Close's replay loop
// monomorphic (spec.md "Dynamic dispatch on Node variants").
type entryKind uint8

const (
	entryVector entryKind = iota
	entryPosition
)

type logEntry struct {
	kind entryKind
	v    *Vector
	p    *Position
}

// UndoLog is a scoped container: every node passed to Ignore* is ignored
// immediately and recorded in push order; Close unignores each recorded
// node in reverse order, fully reverting the scope's effect. There is no
// "commit" — a reduction whose effects must persist is performed at the
// outermost scope's log, which is simply never closed until the pipeline
// as a whole has converged (spec.md §4.2).
type UndoLog struct {
	lat     *Lattice
	entries []logEntry
}

// NewUndoLog opens a new scope over lat. Callers should `defer log.Close()`
// immediately, mirroring the source's block-scoped IgnoredNodes.
func NewUndoLog(lat *Lattice) *UndoLog {
	return &UndoLog{lat: lat}
}

// IgnoreVector removes v from the lattice (see Lattice.ignoreVector) and
// records it for reversal on Close. hot requests hot-propagation to the
// neighbourhood of every column v covers.
func (u *UndoLog) IgnoreVector(v *Vector, hot bool) {
	u.lat.ignoreVector(v, nil, hot)
	u.entries = append(u.entries, logEntry{kind: entryVector, v: v})
}

// IgnorePosition removes p from the lattice (see Lattice.ignorePosition)
// and records it for reversal on Close.
func (u *UndoLog) IgnorePosition(p *Position) {
	u.lat.ignorePosition(p)
	u.entries = append(u.entries, logEntry{kind: entryPosition, p: p})
}

// Len reports how many ignores are currently recorded in this scope.
func (u *UndoLog) Len() int { return len(u.entries) }

// Close reverses every recorded ignore in strict LIFO order and empties
// the log. Safe to call multiple times (a second call is a no-op).
func (u *UndoLog) Close() {
	for i := len(u.entries) - 1; i >= 0; i-- {
		e := u.entries[i]
		switch e.kind {
		case entryVector:
			u.lat.unignoreVector(e.v, nil)
		case entryPosition:
			u.lat.unignorePosition(e.p)
		}
	}
	u.entries = u.entries[:0]
}

package reduce

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
)

// passA checks p1 against every other live column for exact equality
// (same vector set), removing every duplicate found — not just the
// first — matching the original's single call removing every column
// equal to position1 (ExactCover.cpp:479+). Returns true if any column
// was removed.
func (r *Reducer) passA(p1 *lattice.Position, stats *Stats) bool {
	removed := false
	for _, p2 := range r.lat.LivePositions() {
		if p2 == p1 || p2.Swapped() || p2.NrVecLeft != p1.NrVecLeft {
			continue
		}
		if !columnsEqual(p1, p2) {
			continue
		}
		r.log.IgnorePosition(p2)
		stats.PassAColumns++
		r.cfg.log.Debug("pass A: removed equal column", zap.Int("kept", p1.Nr), zap.Int("removed", p2.Nr))
		removed = true
	}
	return removed
}

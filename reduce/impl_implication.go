package reduce

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
)

// passB checks p1 against every other live column for the implication
// relation (p1's vectors are a subset of p2's), removing every vector that
// covers p2 but not p1 — those vectors can never appear in a cover where
// p1 is satisfied by one of its own vectors. Returns true if any vector
// was removed.
func (r *Reducer) passB(p1 *lattice.Position, stats *Stats) bool {
	if p1.NrVecLeft == 0 {
		return false
	}

	progress := false
	for _, p2 := range r.lat.LivePositions() {
		if p2 == p1 || p1.NrVecLeft >= p2.NrVecLeft {
			continue
		}
		if !columnImplies(p1, p2) {
			continue
		}
		extra := p2OnlyVectors(p1, p2)
		for _, v := range extra {
			r.removeVector(v, true)
			stats.PassBVectors++
		}
		if len(extra) > 0 {
			r.cfg.log.Debug("pass B: column implication",
				zap.Int("implied_by", p1.Nr), zap.Int("implied", p2.Nr), zap.Int("removed", len(extra)))
			progress = true
		}
	}
	return progress
}

package reduce

import "github.com/katalvlaran/xcover/lattice"

// pickNeedsReducing returns the live column with NeedsReducing > 0 and the
// smallest residual (NrVecLeft - NeedsReducing), servicing the
// most-urgent column first per spec.md §4.3 scheduling.
func (r *Reducer) pickNeedsReducing() (*lattice.Position, bool) {
	var best *lattice.Position
	var bestResidual int64
	for _, p := range r.lat.LivePositions() {
		if p.NeedsReducing <= 0 {
			continue
		}
		residual := int64(p.NrVecLeft) - p.NeedsReducing
		if best == nil || residual < bestResidual {
			best, bestResidual = p, residual
		}
	}
	return best, best != nil
}

// runAB services needs_reducing columns with Pass A and Pass B until none
// remain with outstanding debt. Returns true if any elimination happened.
func (r *Reducer) runAB(stats *Stats) bool {
	progress := false
	for {
		p, ok := r.pickNeedsReducing()
		if !ok {
			return progress
		}
		p.NeedsReducing = 0

		if r.passA(p, stats) {
			progress = true
		}
		if !p.Swapped() && r.passB(p, stats) {
			progress = true
		}
	}
}

// seedInitialDebt primes every live column with one unit of reduction debt
// so the first sweep actually services every column, matching the
// source's startup seeding (every position's hotpos and needs_reducing
// start at 1 before the first reduce() call).
func (r *Reducer) seedInitialDebt() {
	for _, p := range r.lat.LivePositions() {
		p.HotPos = 1
		p.NeedsReducing = 1
	}
}

// bumpHot increments every live vector's Hot counter by one. Called once
// per outer sweep before Pass D, so vectors resolved (Hot reset to 0) in
// an earlier sweep become eligible for re-probing in a later one.
func (r *Reducer) bumpHot() {
	for _, v := range r.lat.LiveVectors() {
		v.Hot++
	}
}

// Run drives the full reduction pipeline to a fixed point. Each outer
// sweep: drain Pass A/B to quiescence, and only when that drain made
// progress and Pass C is enabled, run Pass C once — looping back to
// drain A/B again only if Pass C itself found something (mirroring the
// original's `reducing_groups_useful` guard, ExactCover.cpp:899-928: Pass
// C never runs off an already-quiescent A/B, and the loop never repeats
// A/B on Pass C's account unless Pass C actually moved the needle). Then
// Pass D's inner loop runs; if Pass D eliminates nothing, escalate. The
// sweep repeats while Pass D or the escalation eliminated something.
//
// Returns ErrInstanceInfeasible if, at the fixed point, any live column
// has zero covering vectors (spec.md §7).
func (r *Reducer) Run() (Stats, error) {
	var stats Stats
	r.seedInitialDebt()

	for {
		stats.Iterations++

		for {
			abProgress := r.runAB(&stats)
			if !abProgress || !r.cfg.reduceGroups {
				break
			}
			if !r.passC(&stats) {
				break
			}
		}

		r.bumpHot()

		changed := r.runPassD(&stats)
		if !changed && stats.Escalations < r.cfg.escalationRoundCap {
			changed = r.runEscalation(&stats)
		}
		if !changed {
			break
		}
	}

	if r.lat.NrPosWithZeroVec > 0 {
		return stats, ErrInstanceInfeasible
	}
	return stats, nil
}

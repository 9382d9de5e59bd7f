package reduce

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
)

// hottestVector returns the live vector with the largest Hot counter, or
// ok=false if no live vectors remain.
func (r *Reducer) hottestVector() (*lattice.Vector, bool) {
	live := r.lat.LiveVectors()
	if len(live) == 0 {
		return nil, false
	}
	best := live[0]
	for _, v := range live[1:] {
		if v.Hot > best.Hot {
			best = v
		}
	}
	return best, true
}

// resolveHotVector probes v with a one-ply lookahead (budget 1, per
// spec.md §4.3). An infeasible probe removes v (hot-marking its
// neighbourhood so dependents reschedule); a feasible probe resolves it
// and resets its Hot counter. Either way v's "hot>0" debt is cleared by
// this call, so the caller can move on to the next-hottest vector.
// Returns true iff v was removed.
func (r *Reducer) resolveHotVector(v *lattice.Vector, stats *Stats) bool {
	r.lat.SelectVector(v)
	possible := r.oracle.Possible(1)
	r.lat.UnselectVector(v)

	if !possible {
		r.removeVector(v, true)
		stats.PassDVectors++
		r.cfg.log.Debug("pass D: hot vector impossible", zap.String("vector", v.Name), zap.Int("nr", v.Nr))
		return true
	}
	v.Hot = 0
	return false
}

// runPassD drives Pass D's inner loop: resolve the hottest vector,
// whether it resolves by acceptance or removal, and keep picking the
// next-hottest vector until none has outstanding hot debt. An "accept"
// resolution must not stop the sweep early — every vector bumpHot marked
// hot this sweep needs probing, not just the single hottest one.
func (r *Reducer) runPassD(stats *Stats) bool {
	progress := false
	for {
		v, ok := r.hottestVector()
		if !ok || v.Hot <= 0 {
			break
		}
		if r.resolveHotVector(v, stats) {
			progress = true
		}
	}
	return progress
}

// runEscalation picks the live column with the smallest nr_vec_left-hotpos
// score (the column reduction has worked hardest on relative to its
// remaining size) and probes every vector under it with the larger
// escalation budget. Returns true if any vector was eliminated.
func (r *Reducer) runEscalation(stats *Stats) bool {
	live := r.lat.LivePositions()
	if len(live) == 0 {
		return false
	}
	best := live[0]
	bestScore := int64(best.NrVecLeft) - best.HotPos
	for _, p := range live[1:] {
		score := int64(p.NrVecLeft) - p.HotPos
		if score < bestScore {
			best, bestScore = p, score
		}
	}

	var vectors []*lattice.Vector
	cell, ok := best.Down()
	for ok {
		vectors = append(vectors, cell.Vector())
		cell, ok = cell.Down()
	}

	progress := false
	for _, v := range vectors {
		if v.Swapped() {
			continue
		}
		r.lat.SelectVector(v)
		possible := r.oracle.Possible(r.cfg.escalationBudget)
		r.lat.UnselectVector(v)
		if !possible {
			r.removeVector(v, true)
			stats.PassDVectors++
			progress = true
		}
	}
	if progress {
		stats.Escalations++
		r.cfg.log.Debug("pass D: escalation", zap.Int("column", best.Nr), zap.Int64("score", bestScore))
	}
	return progress
}

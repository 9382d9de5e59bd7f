package reduce

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
)

// passC runs Pass C once: for group sizes in the configured range, build
// the connection graph, greedily grow groups from unused high-weight
// edges, and eliminate vectors whose coverage mask over the group has no
// reachable complement. Stops at the first group size that makes
// progress, per spec.md §4.3 ("iterate through g until ... progress or
// exhausts the range").
func (r *Reducer) passC(stats *Stats) bool {
	for g := r.cfg.minGroupSize; g <= r.cfg.maxGroupSize; g++ {
		if r.passCAtSize(g, stats) {
			return true
		}
	}
	return false
}

func (r *Reducer) passCAtSize(g int, stats *Stats) bool {
	edges := r.lat.BuildConnections()
	progress := false
	for {
		group, grew, exhausted := growGroup(edges, g)
		if exhausted {
			break
		}
		if !grew {
			// This seed edge was disabled but failed to grow to size g;
			// try the next enabled seed rather than abandoning the whole
			// size-g search (ExactCover.cpp:713-770's `for (gr...)` loop
			// keeps trying seeds until none remain).
			continue
		}
		if r.reduceGroup(group, stats) {
			progress = true
			edges = r.lat.BuildConnections()
		}
	}
	return progress
}

// growGroup grows one group of exactly size g starting from the
// highest-weight still-enabled edge, repeatedly attaching whichever
// outside column has the strongest incident edge to the current group.
// The seed edge is marked disabled so a later call picks a different
// starting point.
//
// Returns exhausted=true once no enabled seed edge remains at all (the
// caller must stop trying this group size). Otherwise a seed was
// consumed: grew=true and group has exactly g members on success,
// grew=false if the group could not be grown to size g from that seed —
// the caller should try growGroup again, since the failed seed is
// already disabled and the next call will pick a fresh one.
func growGroup(edges []*lattice.PositionConnection, g int) (group []*lattice.Position, grew bool, exhausted bool) {
	var seed *lattice.PositionConnection
	for _, e := range edges {
		if e.Enabled {
			seed = e
			break
		}
	}
	if seed == nil {
		return nil, false, true
	}
	seed.Enabled = false

	inGroup := map[int]bool{seed.A.Nr: true, seed.B.Nr: true}
	group = []*lattice.Position{seed.A, seed.B}

	for len(group) < g {
		var bestEdge *lattice.PositionConnection
		var bestNext *lattice.Position
		for _, p := range group {
			for _, inc := range p.Incident() {
				other := inc.Other(p)
				if inGroup[other.Nr] {
					continue
				}
				if bestEdge == nil || inc.NrCommon > bestEdge.NrCommon {
					bestEdge = inc
					bestNext = other
				}
			}
		}
		if bestNext == nil {
			return group, false, false
		}
		inGroup[bestNext.Nr] = true
		group = append(group, bestNext)
	}
	return group, true, false
}

// reduceGroup enumerates the 2^len(group) subset masks achievable by
// disjoint union of the vectors covering the group's columns, and removes
// every vector whose mask has no reachable complement within the group.
func (r *Reducer) reduceGroup(group []*lattice.Position, stats *Stats) bool {
	g := len(group)
	full := uint64(1)<<uint(g) - 1

	maskOf := make(map[*lattice.Vector]uint64)
	for i, p := range group {
		cell, ok := p.Down()
		for ok {
			v := cell.Vector()
			maskOf[v] |= uint64(1) << uint(i)
			cell, ok = cell.Down()
		}
	}
	if len(maskOf) == 0 {
		return false
	}

	distinct := make(map[uint64]bool, len(maskOf))
	for _, m := range maskOf {
		distinct[m] = true
	}

	reachable := map[uint64]bool{0: true}
	for changed := true; changed; {
		changed = false
		for m := range distinct {
			for r0 := range snapshot(reachable) {
				if r0&m == 0 {
					if u := r0 | m; !reachable[u] {
						reachable[u] = true
						changed = true
					}
				}
			}
		}
	}

	var toRemove []*lattice.Vector
	for v, m := range maskOf {
		if !reachable[full&^m] {
			toRemove = append(toRemove, v)
		}
	}
	if len(toRemove) == 0 {
		return false
	}
	for _, v := range toRemove {
		r.removeVector(v, false)
		stats.PassCVectors++
	}
	r.cfg.log.Debug("pass C: group reduction", zap.Int("group_size", g), zap.Int("removed", len(toRemove)))
	return true
}

func snapshot(m map[uint64]bool) map[uint64]bool {
	out := make(map[uint64]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

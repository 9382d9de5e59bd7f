package lattice

import "sort"

// PositionConnection is an edge in the reduction-group scoring graph
// (spec.md §3): NrCommon counts how many live vectors cover both A and B.
// It is a per-pass value — BuildConnections rebuilds the whole graph from
// scratch each time Pass C runs, matching the source's "Connections are
// allocated at the start of each Pass C invocation" arena policy; Go's GC
// reclaims the previous graph once nothing references it anymore.
type PositionConnection struct {
	NrCommon int64
	A, B     *Position

	// Enabled is mutated by the greedy group-growing search in the
	// reduce package to mark an edge already consumed by some group in
	// the current group_size pass.
	Enabled bool
}

// Other returns the endpoint of the connection that is not p.
func (pc *PositionConnection) Other(p *Position) *Position {
	if p == pc.A {
		return pc.B
	}
	return pc.A
}

// BuildConnections recomputes the full position-connection graph over the
// currently live columns: for every pair, NrCommon is the number of live
// vectors covering both. Returns the global edge list sorted descending by
// NrCommon; each live Position's Incident() reflects the same edges sorted
// the same way from that column's perspective.
//
// Complexity: O(P² · average column length) — quadratic in live columns,
// acceptable since Pass C only runs after Pass A/B have already shrunk the
// instance and only when they made progress.
func (lat *Lattice) BuildConnections() []*PositionConnection {
	live := lat.LivePositions()
	for _, p := range live {
		p.incident = nil
	}

	var global []*PositionConnection
	for i, p1 := range live {
		for _, p2 := range live[i+1:] {
			n := commonVectors(p1, p2)
			if n == 0 {
				continue
			}
			pc := &PositionConnection{NrCommon: n, A: p1, B: p2, Enabled: true}
			global = append(global, pc)
			p1.incident = append(p1.incident, pc)
			p2.incident = append(p2.incident, pc)
		}
	}

	sort.SliceStable(global, func(i, j int) bool { return global[i].NrCommon > global[j].NrCommon })
	for _, p := range live {
		inc := p.incident
		sort.SliceStable(inc, func(i, j int) bool { return inc[i].NrCommon > inc[j].NrCommon })
	}

	return global
}

// commonVectors counts vectors covering both p1 and p2 by merging their
// columns in ascending Vector.Nr order.
func commonVectors(p1, p2 *Position) int64 {
	c1, ok1 := p1.Down()
	c2, ok2 := p2.Down()

	var n int64
	for ok1 && ok2 {
		v1, v2 := c1.Vector().Nr, c2.Vector().Nr
		switch {
		case v1 < v2:
			c1, ok1 = c1.Down()
		case v2 < v1:
			c2, ok2 = c2.Down()
		default:
			n++
			c1, ok1 = c1.Down()
			c2, ok2 = c2.Down()
		}
	}
	return n
}

// Incident returns p's PositionConnection edges, descending by NrCommon,
// as of the most recent BuildConnections call.
func (p *Position) Incident() []*PositionConnection { return p.incident }

package reduce

import "github.com/katalvlaran/xcover/lattice"

// removeVector ignores v on the Reducer's persistent log and cascades: any
// position v covered that drops to zero live vectors as a result is itself
// redundant (not contradictory — spec.md §4.3 Pass B) and is ignored too.
func (r *Reducer) removeVector(v *lattice.Vector, hot bool) {
	var touched []*lattice.Position
	cell, ok := v.Right()
	for ok {
		touched = append(touched, cell.Position())
		cell, ok = cell.Right()
	}

	r.log.IgnoreVector(v, hot)

	for _, p := range touched {
		if !p.Swapped() && p.NrVecLeft == 0 {
			r.log.IgnorePosition(p)
		}
	}
}

// columnVectorNrs returns the sorted (ascending, by construction) vector
// ordinals covering p, via its live down-chain.
func columnVectorNrs(p *lattice.Position) []int {
	var out []int
	cell, ok := p.Down()
	for ok {
		out = append(out, cell.Vector().Nr)
		cell, ok = cell.Down()
	}
	return out
}

// columnsEqual reports whether p1 and p2 cover exactly the same vectors,
// by walking both columns in parallel ascending-Nr order (Pass A).
func columnsEqual(p1, p2 *lattice.Position) bool {
	c1, ok1 := p1.Down()
	c2, ok2 := p2.Down()
	for ok1 && ok2 {
		if c1.Vector().Nr != c2.Vector().Nr {
			return false
		}
		c1, ok1 = c1.Down()
		c2, ok2 = c2.Down()
	}
	return ok1 == ok2
}

// columnImplies reports whether every vector covering p1 also covers p2,
// via a merge walk exploiting ascending-Nr ordering (Pass B precondition:
// p1.NrVecLeft < p2.NrVecLeft).
func columnImplies(p1, p2 *lattice.Position) bool {
	c1, ok1 := p1.Down()
	c2, ok2 := p2.Down()
	for ok1 {
		if !ok2 {
			return false
		}
		v1, v2 := c1.Vector().Nr, c2.Vector().Nr
		switch {
		case v1 == v2:
			c1, ok1 = c1.Down()
			c2, ok2 = c2.Down()
		case v1 > v2:
			c2, ok2 = c2.Down()
		default:
			return false
		}
	}
	return true
}

// p2OnlyVectors returns the vectors covering p2 but not p1, assuming
// columnImplies(p1, p2) holds (every p1 vector is also under p2).
func p2OnlyVectors(p1, p2 *lattice.Position) []*lattice.Vector {
	c1, ok1 := p1.Down()
	c2, ok2 := p2.Down()
	var out []*lattice.Vector
	for ok2 {
		if !ok1 {
			out = append(out, c2.Vector())
			c2, ok2 = c2.Down()
			continue
		}
		v1, v2 := c1.Vector().Nr, c2.Vector().Nr
		switch {
		case v1 == v2:
			c1, ok1 = c1.Down()
			c2, ok2 = c2.Down()
		case v1 < v2:
			c1, ok1 = c1.Down()
		default:
			out = append(out, c2.Vector())
			c2, ok2 = c2.Down()
		}
	}
	return out
}

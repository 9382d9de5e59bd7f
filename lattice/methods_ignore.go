package lattice

// ignoreVector splices v out of the vertical (row) ring and, for every
// cell of v other than the one in exclude, splices that cell out of its
// column and decrements the column's NrVecLeft. When hot is true, the
// first vector to ignore a given column propagates a Hot++ to every
// vector still remaining under that column (spec.md §4.1).
//
// exclude is nil when a reduction pass removes v outright, and is the
// position already spliced out by the caller when this is invoked from
// selectPosition (removing v would double-splice that column's cell).
//
// Complexity: O(row length of v).
func (lat *Lattice) ignoreVector(v *Vector, exclude *Position, hot bool) {
	v.node.spliceOutVert()

	for n := v.node.r; n != &v.node; n = n.r {
		p := n.pos
		if hot {
			if p.HotPos == 0 {
				for n2 := p.node.d; n2 != &p.node; n2 = n2.d {
					n2.vec.Hot++
				}
			}
			p.HotPos++
			p.NeedsReducing++
		}
		if p != exclude {
			n.spliceOutVert()
			p.NeedsReducing++
			p.NrVecLeft--
			if p.NrVecLeft == 0 {
				lat.NrPosWithZeroVec++
			}
		}
	}
}

// unignoreVector is the exact reverse of ignoreVector: it walks v's left
// chain (not right — traversal direction inverts on undo, spec.md §4.1)
// and re-splices each non-excluded cell vertically before re-splicing v
// itself into the row ring.
//
// Complexity: O(row length of v).
func (lat *Lattice) unignoreVector(v *Vector, exclude *Position) {
	for n := v.node.l; n != &v.node; n = n.l {
		p := n.pos
		if p != exclude {
			n.spliceInVert()
			if p.NrVecLeft == 0 {
				lat.NrPosWithZeroVec--
			}
			p.NrVecLeft++
		}
	}
	v.node.spliceInVert()
}

// ignorePosition splices p out of the horizontal (column) ring and, for
// every cell under p, splices that cell out of its row. Other columns'
// NrVecLeft counts are untouched: cells remain attached to their columns
// vertically (spec.md §4.1) — only the row each cell belongs to loses
// this one entry.
//
// Complexity: O(column length of p).
func (lat *Lattice) ignorePosition(p *Position) {
	if p.NrVecLeft == 0 {
		lat.NrPosWithZeroVec--
	}
	p.node.spliceOutHorz()

	for n := p.node.d; n != &p.node; n = n.d {
		n.spliceOutHorz()
	}
}

// unignorePosition is the exact reverse of ignorePosition: it walks p's up
// chain and re-splices each cell horizontally before re-splicing p itself.
//
// Complexity: O(column length of p).
func (lat *Lattice) unignorePosition(p *Position) {
	for n := p.node.u; n != &p.node; n = n.u {
		n.spliceInHorz()
	}
	p.node.spliceInHorz()

	if p.NrVecLeft == 0 {
		lat.NrPosWithZeroVec++
	}
}

package solver

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
)

// Solve enumerates every exact cover reachable from the lattice's current
// state, invoking the configured SolutionHandler for each. Returns true if
// the handler requested an early stop, false if enumeration ran to
// completion.
func (s *Solver) Solve() bool { return s.solve() }

// solve implements spec.md §4.5: FRESH -> SELECTED(v) -> EXHAUSTED at each
// level, protected by a per-level lattice.UndoLog scope.
func (s *Solver) solve() bool {
	s.stats.NodesVisited++

	if s.lat.Empty() {
		return s.emit()
	}

	log := lattice.NewUndoLog(s.lat)
	defer log.Close()

	for {
		if s.lat.NrPosWithZeroVec > 0 {
			return false
		}

		best, ok := s.chooseColumn()
		if !ok {
			return false
		}
		if best.NrVecLeft == 0 {
			panic(&lattice.CorruptionError{Op: "solve", Detail: "chosen column has zero vectors"})
		}
		wasOnlyChoice := best.NrVecLeft == 1

		cell, _ := best.Down()
		v := cell.Vector()

		s.stack = append(s.stack, v)
		s.lat.SelectVector(v)
		stop := s.solve()
		s.lat.UnselectVector(v)
		s.stack = s.stack[:len(s.stack)-1]

		if stop {
			return true
		}
		if wasOnlyChoice {
			return false
		}

		log.IgnoreVector(v, false)
		if s.cfg.logInterval > 0 && s.stats.SolutionsFound > 0 && s.stats.SolutionsFound%int64(s.cfg.logInterval) == 0 {
			s.cfg.log.Info("solving", zap.Int64("solutions", s.stats.SolutionsFound), zap.Int64("nodes", s.stats.NodesVisited))
		}
	}
}

// chooseColumn picks the first live column with exactly one remaining
// vector if any exists (a forced choice), otherwise the column ranked
// best by the configured heuristic.
func (s *Solver) chooseColumn() (*lattice.Position, bool) {
	live := s.lat.LivePositions()
	if len(live) == 0 {
		return nil, false
	}
	for _, p := range live {
		if p.NrVecLeft == 1 {
			return p, true
		}
	}

	best := live[0]
	for _, p := range live[1:] {
		switch s.cfg.heuristic {
		case SmallestRemaining:
			if p.NrVecLeft < best.NrVecLeft {
				best = p
			}
		default:
			if p.NrVecLeft > best.NrVecLeft {
				best = p
			}
		}
	}
	return best, true
}

// emit reports the current selection stack as a completed solution.
func (s *Solver) emit() bool {
	s.stats.SolutionsFound++
	solution := make([]*lattice.Vector, len(s.stack))
	copy(solution, s.stack)

	if s.cfg.onSolution == nil {
		return false
	}
	return s.cfg.onSolution(solution)
}

package oracle

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
)

// Option customizes an Oracle by mutating its config before first use.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger attaches a structured logger; nil (the default) installs a
// no-op logger, so callers never need a nil check before logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// Oracle runs the budget-bounded lookahead feasibility probe over a single
// shared lattice. It holds no state of its own between calls besides the
// lattice reference and logger — Possible is reentrant-safe to call at any
// point a lattice.UndoLog scope is open.
type Oracle struct {
	lat *lattice.Lattice
	log *zap.Logger
}

// New creates an Oracle over lat.
func New(lat *lattice.Lattice, opts ...Option) *Oracle {
	cfg := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return &Oracle{lat: lat, log: cfg.log}
}

// Possible reports whether a full cover may still exist given the lattice's
// current live positions, within the given effort budget. A true result is
// conservative (the budget may have run out before disproving feasibility);
// a false result is a sound proof of infeasibility.
//
// Algorithm: pick the live column with the fewest remaining vectors; a
// zero-vector column proves infeasibility immediately, and an empty column
// list proves feasibility immediately (nothing left to satisfy). Otherwise
// divide the budget across that column's branching factor and try each
// vector under it in turn, recursing with the reduced budget; any
// recursion returning true proves feasibility and short-circuits the rest.
//
// Complexity: bounded by budget, not by instance size — the whole point of
// the budget is to cap the search below brute-force enumeration.
func (o *Oracle) Possible(budget int) bool {
	live := o.lat.LivePositions()
	if len(live) == 0 {
		return true
	}

	best := live[0]
	for _, p := range live[1:] {
		if p.NrVecLeft < best.NrVecLeft {
			best = p
		}
	}
	if best.NrVecLeft == 0 {
		return false
	}

	quotient := budget / best.NrVecLeft
	if quotient == 0 {
		return true
	}

	log := lattice.NewUndoLog(o.lat)
	defer log.Close()

	cell, ok := best.Down()
	for ok {
		v := cell.Vector()
		o.lat.SelectVector(v)
		result := o.Possible(quotient)
		o.lat.UnselectVector(v)
		if result {
			return true
		}
		cell, ok = cell.Down()
	}
	return false
}

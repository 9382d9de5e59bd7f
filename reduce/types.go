package reduce

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
	"github.com/katalvlaran/xcover/oracle"
)

// Option customizes a Reducer by mutating its config before first use.
type Option func(*config)

type config struct {
	reduceGroups       bool
	baseBudget         int
	escalationBudget   int
	escalationRoundCap int
	minGroupSize       int
	maxGroupSize       int
	log                *zap.Logger
}

func defaultConfig() config {
	return config{
		reduceGroups:       false,
		baseBudget:         1000,
		escalationBudget:   10000,
		escalationRoundCap: 1000,
		minGroupSize:       3,
		maxGroupSize:       12,
		log:                zap.NewNop(),
	}
}

// WithReduceGroups enables Pass C (the `-reducegroups` CLI flag).
func WithReduceGroups(enabled bool) Option {
	return func(c *config) { c.reduceGroups = enabled }
}

// WithReduceTries sets the oracle budget seed used by Pass D's escalation
// probe (the `-reducetries N` CLI flag). Pass D's own per-vector probe
// always runs with budget 1 per spec.md §4.3; this value only scales the
// escalation pass's larger budget.
func WithReduceTries(n int) Option {
	return func(c *config) {
		if n <= 0 {
			return
		}
		c.escalationBudget = n
	}
}

// WithEscalationRoundCap bounds how many escalation rounds a single Run
// performs, guarding against pathological non-convergence.
func WithEscalationRoundCap(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.escalationRoundCap = n
		}
	}
}

// WithGroupSizeRange overrides Pass C's group size search range (default
// 3..12, matching the source's `group_size = 3..12`).
func WithGroupSizeRange(min, max int) Option {
	return func(c *config) {
		if min > 0 && max >= min {
			c.minGroupSize, c.maxGroupSize = min, max
		}
	}
}

// WithLogger attaches a structured logger; nil installs a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// Stats tallies how many eliminations each pass performed across a single
// Run, for diagnostics.
type Stats struct {
	PassAColumns int
	PassBVectors int
	PassCVectors int
	PassDVectors int
	Escalations  int
	Iterations   int
}

// Reducer owns the persistent undo log that records every reduction
// performed against a lattice, plus the oracle Pass D probes against.
type Reducer struct {
	lat    *lattice.Lattice
	log    *lattice.UndoLog
	oracle *oracle.Oracle
	cfg    config
}

// New creates a Reducer over lat. The returned Reducer's undo log is kept
// open for the Reducer's lifetime; callers that need to fully revert a
// reduction (none of the shipped CLI paths do) would call Log().Close().
func New(lat *lattice.Lattice, opts ...Option) *Reducer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return &Reducer{
		lat:    lat,
		log:    lattice.NewUndoLog(lat),
		oracle: oracle.New(lat, oracle.WithLogger(cfg.log)),
		cfg:    cfg,
	}
}

// Log exposes the Reducer's persistent undo log.
func (r *Reducer) Log() *lattice.UndoLog { return r.log }

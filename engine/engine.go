package engine

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/lattice"
	"github.com/katalvlaran/xcover/reduce"
	"github.com/katalvlaran/xcover/solver"
)

// Engine owns a Lattice and drives it through reduction and solving with
// one Run call, honoring the CLI-level `-noreduce`/`-onlyreduce` switches
// and wiring the persistence hooks into the solver's solution callback.
type Engine struct {
	lat *lattice.Lattice
	cfg config
}

// New constructs an Engine over lat. lat should already be fully parsed
// (format.ParseDense/ParseNumeric) before Run is called.
func New(lat *lattice.Lattice, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return &Engine{lat: lat, cfg: cfg}
}

// Run executes the configured pipeline: an up-front zero-row feasibility
// check, then reduction (unless WithNoReduce), then solving (unless
// WithOnlyReduce or the instance proved infeasible).
//
// The up-front check exists because a column with zero covering rows is
// infeasible by construction and does not require running the reduction
// pipeline to detect — spec.md §7 calls this out as a distinct "report and
// exit with no solutions" path, separate from reduce.ErrInstanceInfeasible
// which is only raised after reduction actually runs.
func (e *Engine) Run() (Result, error) {
	for _, p := range e.lat.LivePositions() {
		if p.NrVecLeft == 0 {
			e.cfg.log.Info("instance infeasible: column has zero covering rows before reduction")
			return Result{Infeasible: true}, nil
		}
	}

	var result Result

	if !e.cfg.noReduce {
		reducer := reduce.New(e.lat, append(e.cfg.reduceOpts, reduce.WithLogger(e.cfg.log))...)
		stats, err := reducer.Run()
		result.ReduceStats = stats
		if errors.Is(err, reduce.ErrInstanceInfeasible) {
			e.cfg.log.Info("instance infeasible after reduction")
			result.Infeasible = true
			return result, nil
		}
		if err != nil {
			return result, err
		}
		if e.cfg.backup != nil {
			if _, err := e.cfg.backup.Maybe(time.Now()); err != nil {
				e.cfg.log.Error("backup write failed", zap.Error(err))
			}
		}
	}

	if e.cfg.onlyReduce {
		return result, nil
	}

	found := 0
	handler := func(solution []*lattice.Vector) bool {
		found++
		if e.cfg.sink != nil {
			if err := e.cfg.sink.Record(solution); err != nil {
				e.cfg.log.Error("sink record failed", zap.Error(err))
			}
		}
		if e.cfg.backup != nil {
			if _, err := e.cfg.backup.Maybe(time.Now()); err != nil {
				e.cfg.log.Error("backup write failed", zap.Error(err))
			}
		}
		if e.cfg.stopAfter > 0 && found >= e.cfg.stopAfter {
			return true
		}
		return false
	}

	solverOpts := append(append([]solver.Option{}, e.cfg.solverOpts...),
		solver.WithLogger(e.cfg.log),
		solver.WithSolutionHandler(handler),
	)
	s := solver.New(e.lat, solverOpts...)
	s.Solve()
	result.SolverStats = s.Stats()
	return result, nil
}

package engine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/persist"
	"github.com/katalvlaran/xcover/reduce"
	"github.com/katalvlaran/xcover/solver"
)

// Option customizes an Engine by mutating its config before Run.
type Option func(*config)

type config struct {
	noReduce   bool
	onlyReduce bool
	reduceOpts []reduce.Option
	solverOpts []solver.Option
	backup     *persist.Backup
	sink       *persist.Sink
	stopAfter  int
	log        *zap.Logger
}

func defaultConfig() config {
	return config{log: zap.NewNop()}
}

// WithNoReduce skips the reduction pipeline entirely (the `-noreduce` CLI
// flag), passing the parsed instance straight to the solver.
func WithNoReduce(skip bool) Option {
	return func(c *config) { c.noReduce = skip }
}

// WithOnlyReduce stops after reduction and reports its Stats instead of
// solving (the `-onlyreduce` CLI flag).
func WithOnlyReduce(only bool) Option {
	return func(c *config) { c.onlyReduce = only }
}

// WithReduceOptions passes configuration through to the internal Reducer.
func WithReduceOptions(opts ...reduce.Option) Option {
	return func(c *config) { c.reduceOpts = append(c.reduceOpts, opts...) }
}

// WithSolverOptions passes configuration through to the internal Solver.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(c *config) { c.solverOpts = append(c.solverOpts, opts...) }
}

// WithBackup attaches a periodic snapshot writer, polled once per solution
// emitted and once after reduction (when reduction runs).
func WithBackup(b *persist.Backup) Option {
	return func(c *config) { c.backup = b }
}

// WithSink attaches a solution sink. The Engine installs its own solver
// solution handler to record to this sink (and poll the backup), so any
// solver.WithSolutionHandler passed via WithSolverOptions is overridden —
// use WithStopAfter for early-stop behavior instead.
func WithSink(s *persist.Sink) Option {
	return func(c *config) { c.sink = s }
}

// WithStopAfter halts enumeration once n solutions have been found (0, the
// default, means unbounded — enumerate all solutions).
func WithStopAfter(n int) Option {
	return func(c *config) { c.stopAfter = n }
}

// WithLogger attaches a structured logger; nil installs a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// Result summarizes one Run.
type Result struct {
	// Infeasible reports that the instance has no solution: either a
	// column had zero covering rows immediately after parsing, or the
	// reduction pipeline proved infeasibility (reduce.ErrInstanceInfeasible).
	Infeasible bool
	// ReduceStats is the zero value if reduction was skipped.
	ReduceStats reduce.Stats
	// SolverStats is the zero value if solving did not run (OnlyReduce,
	// or Infeasible).
	SolverStats solver.Stats
}

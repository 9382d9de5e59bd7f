package persist

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/format"
	"github.com/katalvlaran/xcover/lattice"
)

// Sink appends each accepted solution to a single output stream as soon as
// the solver finds it, so a long enumeration's results are durable even if
// the process is later killed.
type Sink struct {
	w   io.Writer
	log *zap.Logger
	n   int
}

// NewSink wraps an already-open writer (e.g. an os.File opened for append,
// or os.Stdout) as a Sink. log may be nil.
func NewSink(w io.Writer, log *zap.Logger) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{w: w, log: log}
}

// OpenFileSink opens path for appending (creating it if absent) and wraps
// it as a Sink. The caller must Close the returned file when done.
func OpenFileSink(path string, log *zap.Logger) (*Sink, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("persist: open sink %s: %w", path, err)
	}
	return NewSink(f, log), f, nil
}

// Record appends one solution as a `|`-delimited line of row names.
func (s *Sink) Record(solution []*lattice.Vector) error {
	if err := format.WriteSolution(s.w, solution); err != nil {
		return fmt.Errorf("persist: write solution: %w", err)
	}
	s.n++
	s.log.Info("solution recorded", zap.Int("count", s.n))
	return nil
}

// Count reports how many solutions have been recorded so far.
func (s *Sink) Count() int { return s.n }

package persist

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/xcover/format"
	"github.com/katalvlaran/xcover/lattice"
)

// Encoding selects which row format a Backup or Sink serializes with.
type Encoding int

const (
	// Dense writes fixed-width 0/1 rows.
	Dense Encoding = iota
	// Numeric writes ascending comma-separated column ordinals.
	Numeric
)

// Option configures a Backup.
type Option func(*config)

type config struct {
	period   time.Duration
	encoding Encoding
	pathA    string
	pathB    string
	log      *zap.Logger
}

// WithPeriod overrides the default 5-minute backup cadence.
func WithPeriod(d time.Duration) Option {
	return func(c *config) { c.period = d }
}

// WithEncoding selects Dense or Numeric row format for the backup file.
func WithEncoding(e Encoding) Option {
	return func(c *config) { c.encoding = e }
}

// WithPaths overrides the two alternating backup file paths.
func WithPaths(a, b string) Option {
	return func(c *config) { c.pathA, c.pathB = a, b }
}

// WithLogger injects a structured logger; nil defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// Backup periodically snapshots a Lattice to one of two alternating files,
// so a killed long-running reduction can be restarted from a recent state
// without ever truncating the most recent good snapshot mid-write. Gated
// on wall-clock elapsed time rather than iteration count, matching the
// original tool's backup() function.
type Backup struct {
	lat  *lattice.Lattice
	cfg  config
	last time.Time
	toA  bool
}

// New constructs a Backup for lat with the default 5-minute period,
// numeric encoding and backup1.ec/backup2.ec paths, overridable via Option.
func New(lat *lattice.Lattice, opts ...Option) *Backup {
	cfg := config{
		period:   5 * time.Minute,
		encoding: Numeric,
		pathA:    "backup1.ec",
		pathB:    "backup2.ec",
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return &Backup{lat: lat, cfg: cfg, toA: true}
}

// Maybe writes a snapshot if at least cfg.period has elapsed since the
// last write (or this is the first call), alternating between the two
// backup paths so there is always one complete prior snapshot on disk.
// It reports whether a write happened.
func (b *Backup) Maybe(now time.Time) (bool, error) {
	if !b.last.IsZero() && now.Sub(b.last) < b.cfg.period {
		return false, nil
	}
	path := b.cfg.pathB
	if b.toA {
		path = b.cfg.pathA
	}
	if err := b.writeSnapshot(path); err != nil {
		return false, fmt.Errorf("persist: backup to %s: %w", path, err)
	}
	b.last = now
	b.toA = !b.toA
	b.cfg.log.Debug("wrote backup snapshot", zap.String("path", path))
	return true, nil
}

func (b *Backup) writeSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snap := format.BuildSnapshot(b.lat)
	if b.cfg.encoding == Numeric {
		return format.WriteNumeric(f, snap)
	}
	return format.WriteDense(f, snap)
}

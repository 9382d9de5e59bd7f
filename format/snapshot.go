package format

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/xcover/lattice"
)

// ErrOutOfRange reports an (row, col) access outside a Snapshot's bounds.
var ErrOutOfRange = errors.New("format: index out of range")

// Snapshot is a row-major 0/1 buffer capturing the lattice's currently
// live positions and vectors at one instant, plus each row's name. It is
// the shared representation behind both the `-onlyreduce` dump and the
// periodic backup writer (persist.Backup) — a single capture, two
// serializations (dense or numeric): the `-onlyreduce` dump is always
// numeric, and a Backup uses the encoding chosen by persist.WithEncoding.
//
// Grounded on the row-major flat-slice idiom of a dense matrix buffer:
// fixed dimensions, O(1) indexed access, explicit out-of-range errors
// instead of silent clamping.
type Snapshot struct {
	rows, cols int
	data       []bool
	names      []string
}

// NewSnapshot allocates an empty rows x cols Snapshot.
func NewSnapshot(rows, cols int) *Snapshot {
	return &Snapshot{
		rows:  rows,
		cols:  cols,
		data:  make([]bool, rows*cols),
		names: make([]string, rows),
	}
}

// Rows reports the number of captured rows.
func (s *Snapshot) Rows() int { return s.rows }

// Cols reports the number of captured columns.
func (s *Snapshot) Cols() int { return s.cols }

// Name returns row r's name.
func (s *Snapshot) Name(r int) string { return s.names[r] }

func (s *Snapshot) index(r, c int) (int, error) {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return 0, fmt.Errorf("snapshot.index(%d,%d): %w", r, c, ErrOutOfRange)
	}
	return r*s.cols + c, nil
}

// At reports whether row r covers column c.
func (s *Snapshot) At(r, c int) (bool, error) {
	idx, err := s.index(r, c)
	if err != nil {
		return false, err
	}
	return s.data[idx], nil
}

// Set marks row r as covering column c.
func (s *Snapshot) Set(r, c int) error {
	idx, err := s.index(r, c)
	if err != nil {
		return err
	}
	s.data[idx] = true
	return nil
}

// SetName assigns row r's printable name.
func (s *Snapshot) SetName(r int, name string) { s.names[r] = name }

// BuildSnapshot captures the lattice's currently live positions (columns,
// left to right) and live vectors (rows, top to bottom) into a Snapshot.
// Live positions are re-indexed densely 0..n-1 in their current left-to-
// right order, matching the source's print()/print_numeric() traversal
// over the root rings (which visit only live nodes).
func BuildSnapshot(lat *lattice.Lattice) *Snapshot {
	positions := lat.LivePositions()
	vectors := lat.LiveVectors()
	colIndex := make(map[int]int, len(positions))
	for i, p := range positions {
		colIndex[p.Nr] = i
	}

	snap := NewSnapshot(len(vectors), len(positions))
	for r, v := range vectors {
		snap.SetName(r, v.Name)
		cell, ok := v.Right()
		for ok {
			c, present := colIndex[cell.Position().Nr]
			if present {
				_ = snap.Set(r, c)
			}
			cell, ok = cell.Right()
		}
	}
	return snap
}

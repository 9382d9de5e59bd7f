package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/xcover/lattice"
)

// ParseNumeric reads numeric rows into lat: each row is an ascending
// comma-separated list of covered column ordinals, optional space,
// optional name. Columns are materialized lazily up to the largest
// ordinal seen. A synthetic column at ordinal 0 is always present first,
// to support 1-based instances (spec.md §6).
func ParseNumeric(r io.Reader, lat *lattice.Lattice) error {
	positions := []*lattice.Position{lat.AddPosition()}

	ensure := func(nr int) {
		for len(positions) <= nr {
			positions = append(positions, lat.AddPosition())
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sawRow := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] < '0' || line[0] > '9' {
			break
		}
		sawRow = true

		i := 0
		var ordinals []int
		for i < len(line) && isDigit(line[i]) {
			start := i
			for i < len(line) && isDigit(line[i]) {
				i++
			}
			n, err := strconv.Atoi(line[start:i])
			if err != nil {
				return ErrMalformedOrdinal
			}
			if len(ordinals) > 0 && n <= ordinals[len(ordinals)-1] {
				return ErrMalformedOrdinal
			}
			ordinals = append(ordinals, n)
			if i < len(line) && line[i] == ',' {
				i++
			}
		}

		name := strings.TrimLeft(line[i:], " ")
		name = strings.TrimRight(name, controlCutset)

		v := lat.AddVector(name)
		for _, nr := range ordinals {
			ensure(nr)
			lat.AddCell(v, positions[nr])
		}
	}
	if !sawRow {
		return ErrEmptyInput
	}
	return scanner.Err()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// WriteNumeric writes a Snapshot in numeric row format: ascending
// comma-separated column ordinals (re-indexed densely over the snapshot's
// own column count), optional name, one row per line.
func WriteNumeric(w io.Writer, snap *Snapshot) error {
	for r := 0; r < snap.Rows(); r++ {
		first := true
		for c := 0; c < snap.Cols(); c++ {
			on, _ := snap.At(r, c)
			if !on {
				continue
			}
			if !first {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			first = false
			if _, err := fmt.Fprintf(w, "%d", c); err != nil {
				return err
			}
		}
		if name := snap.Name(r); name != "" {
			if _, err := fmt.Fprintf(w, " %s", name); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

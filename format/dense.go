package format

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/xcover/lattice"
)

// controlCutset is the set of trailing ASCII control bytes the source
// strips from a row name (`s[l-1] < ' '`), ported as a TrimRight cutset
// since Go strings are UTF-8 rather than raw bytes.
const controlCutset = "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f" +
	"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f"

// ParseDense reads dense 0/1 rows into lat: the bit-length of the first
// row fixes the column count for every subsequent row. An optional space
// after the bits separates an optional row name.
func ParseDense(r io.Reader, lat *lattice.Lattice) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	width := -1
	var positions []*lattice.Position

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		end := 0
		for end < len(line) && (line[end] == '0' || line[end] == '1') {
			end++
		}
		if end == 0 {
			continue
		}

		if width == -1 {
			width = end
			positions = make([]*lattice.Position, width)
			for i := range positions {
				positions[i] = lat.AddPosition()
			}
		}
		if end != width {
			return ErrRowWidthMismatch
		}

		name := strings.TrimLeft(line[end:], " ")
		name = strings.TrimRight(name, controlCutset)

		v := lat.AddVector(name)
		for col := 0; col < width; col++ {
			if line[col] == '1' {
				lat.AddCell(v, positions[col])
			}
		}
	}
	if width == -1 {
		return ErrEmptyInput
	}
	return scanner.Err()
}

// WriteDense writes a Snapshot in dense 0/1 row format, one row per line.
func WriteDense(w io.Writer, snap *Snapshot) error {
	buf := make([]byte, 0, snap.Cols()+32)
	for r := 0; r < snap.Rows(); r++ {
		buf = buf[:0]
		for c := 0; c < snap.Cols(); c++ {
			on, _ := snap.At(r, c)
			if on {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		if name := snap.Name(r); name != "" {
			buf = append(buf, ' ')
			buf = append(buf, name...)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Package format_test exercises the dense and numeric row codecs and the
// solution/reduced-matrix writers against literal fixtures.
package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xcover/format"
	"github.com/katalvlaran/xcover/lattice"
)

func TestParseDenseFixedWidth(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	input := "100 A\n010 B\n001 C\n110 D\n"

	err := format.ParseDense(strings.NewReader(input), lat)
	require.NoError(t, err)
	require.Len(t, lat.Positions(), 3)
	require.Len(t, lat.Vectors(), 4)
	require.Equal(t, "A", lat.Vectors()[0].Name)
	require.Equal(t, 2, lat.Positions()[0].NrVecLeft, "column 0 is covered by A and D")
}

func TestParseDenseRejectsWidthMismatch(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	input := "100\n01\n"

	err := format.ParseDense(strings.NewReader(input), lat)
	require.ErrorIs(t, err, format.ErrRowWidthMismatch)
}

func TestParseDenseEmptyInput(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	err := format.ParseDense(strings.NewReader(""), lat)
	require.ErrorIs(t, err, format.ErrEmptyInput)
}

func TestParseNumericSyntheticLeadingColumn(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	input := "1,2 A\n3 B\n"

	err := format.ParseNumeric(strings.NewReader(input), lat)
	require.NoError(t, err)
	// Column 0 is the synthetic leading column, plus 1,2,3 materialized
	// lazily from the highest ordinal seen: four columns total.
	require.Len(t, lat.Positions(), 4)
	require.Equal(t, 0, lat.Positions()[0].NrVecLeft, "synthetic column 0 is never referenced by these rows")
}

func TestDenseRoundTrip(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	input := "100 A\n010 B\n001 C\n"
	require.NoError(t, format.ParseDense(strings.NewReader(input), lat))

	snap := format.BuildSnapshot(lat)
	var out strings.Builder
	require.NoError(t, format.WriteDense(&out, snap))
	require.Equal(t, input, out.String())
}

func TestNumericWriteUsesDenseColumnIndices(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	require.NoError(t, format.ParseDense(strings.NewReader("10 A\n01 B\n"), lat))

	snap := format.BuildSnapshot(lat)
	var out strings.Builder
	require.NoError(t, format.WriteNumeric(&out, snap))
	require.Equal(t, "0 A\n1 B\n", out.String())
}

func TestWriteSolutionOmitsEmptyNames(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	p0 := lat.AddPosition()
	v1 := lat.AddVector("first")
	v2 := lat.AddVector("")
	lat.AddCell(v1, p0)

	var out strings.Builder
	err := format.WriteSolution(&out, []*lattice.Vector{v1, v2})
	require.NoError(t, err)
	require.Equal(t, "first|\n", out.String())
}

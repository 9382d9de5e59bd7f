// Package lattice_test exercises the dancing-links lattice directly:
// construction, select/unselect reversibility, and undo-log reversal.
package lattice_test

import (
	"testing"

	"github.com/katalvlaran/xcover/lattice"
	"github.com/stretchr/testify/require"
)

// build3x3 constructs a small instance with three positions and three
// vectors, each vector covering two positions, so selecting any one vector
// removes both other vectors and leaves the third position with no
// covering vector (the instance has no exact cover):
//
//	v0: p0 p1
//	v1: p1 p2
//	v2: p0 p2
func build3x3(t *testing.T) (*lattice.Lattice, []*lattice.Position, []*lattice.Vector) {
	t.Helper()
	lat := lattice.New()
	positions := make([]*lattice.Position, 3)
	for i := range positions {
		positions[i] = lat.AddPosition()
	}
	rows := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	vectors := make([]*lattice.Vector, 3)
	for i, row := range rows {
		v := lat.AddVector("")
		vectors[i] = v
		lat.AddCell(v, positions[row[0]])
		lat.AddCell(v, positions[row[1]])
	}
	return lat, positions, vectors
}

func TestLiveCountsAfterConstruction(t *testing.T) {
	t.Parallel()
	lat, positions, vectors := build3x3(t)

	require.Len(t, lat.LivePositions(), 3)
	require.Len(t, lat.LiveVectors(), 3)
	require.False(t, lat.Empty())
	for _, p := range positions {
		require.Equal(t, 2, p.NrVecLeft)
	}
	require.Equal(t, 0, lat.NrPosWithZeroVec)
	_ = vectors
}

// TestSelectUnselectReversible is Testable Property 1: selecting a vector
// and then unselecting it must restore the lattice to its pre-select state
// (same live positions/vectors, same per-column counts).
func TestSelectUnselectReversible(t *testing.T) {
	t.Parallel()
	lat, positions, vectors := build3x3(t)

	before := lat.LivePositions()
	beforeCounts := make(map[int]int, len(before))
	for _, p := range before {
		beforeCounts[p.Nr] = p.NrVecLeft
	}

	lat.SelectVector(vectors[0])
	require.Len(t, lat.LivePositions(), 1, "selecting v0 should remove p0 and p1, leaving only p2")
	require.Len(t, lat.LiveVectors(), 0, "v0 is selected and v1/v2 both touch p0 or p1 and must be removed with them")

	lat.UnselectVector(vectors[0])

	after := lat.LivePositions()
	require.Len(t, after, len(before))
	for _, p := range after {
		require.Equal(t, beforeCounts[p.Nr], p.NrVecLeft, "position %d NrVecLeft must be restored", p.Nr)
	}
	require.Len(t, lat.LiveVectors(), 3)
	require.Equal(t, 0, lat.NrPosWithZeroVec)
	_ = positions
}

// TestUndoLogReversesInLIFOOrder checks that closing an UndoLog after two
// successive vector ignores restores the lattice's live vectors, live
// positions and per-column counts.
func TestUndoLogReversesInLIFOOrder(t *testing.T) {
	t.Parallel()
	lat, _, vectors := build3x3(t)

	log := lattice.NewUndoLog(lat)
	log.IgnoreVector(vectors[0], false)
	log.IgnoreVector(vectors[1], false)
	require.Len(t, lat.LiveVectors(), 1)

	log.Close()

	require.Len(t, lat.LiveVectors(), 3)
	require.Len(t, lat.LivePositions(), 3)
	for _, p := range lat.LivePositions() {
		require.Equal(t, 2, p.NrVecLeft)
	}
	require.Equal(t, 0, lat.NrPosWithZeroVec)
}

// TestUndoLogDoubleCloseIsNoOp matches UndoLog.Close's documented contract.
func TestUndoLogDoubleCloseIsNoOp(t *testing.T) {
	t.Parallel()
	lat, _, vectors := build3x3(t)

	log := lattice.NewUndoLog(lat)
	log.IgnoreVector(vectors[0], false)
	log.Close()
	require.Equal(t, 0, log.Len())
	require.NotPanics(t, func() { log.Close() })
}

// TestBuildConnectionsCountsSharedVectors verifies Testable Property 6-style
// column-count consistency: every pair of positions here shares exactly one
// vector (the 3x3 "triangle" instance), and BuildConnections must report
// that for every pair.
func TestBuildConnectionsCountsSharedVectors(t *testing.T) {
	t.Parallel()
	lat, positions, _ := build3x3(t)

	edges := lat.BuildConnections()
	require.Len(t, edges, 3, "three positions, each pair sharing exactly one vector, gives three edges")
	for _, e := range edges {
		require.Equal(t, int64(1), e.NrCommon)
	}

	for _, p := range positions {
		require.Len(t, p.Incident(), 2, "each position participates in two of the three pairs")
	}
}

func TestAssertLivePanicsOnSwappedPosition(t *testing.T) {
	t.Parallel()
	lat, positions, vectors := build3x3(t)

	lat.SelectVector(vectors[0])
	require.True(t, positions[0].Swapped())
	require.Panics(t, func() { positions[0].AssertLive("test") })
}

package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xcover/engine"
	"github.com/katalvlaran/xcover/format"
	"github.com/katalvlaran/xcover/lattice"
	"github.com/katalvlaran/xcover/reduce"
)

func TestRunFindsAllSolutions(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	require.NoError(t, format.ParseDense(strings.NewReader("100 A\n010 B\n001 C\n110 D\n"), lat))

	eng := engine.New(lat)
	result, err := eng.Run()
	require.NoError(t, err)
	require.False(t, result.Infeasible)
	require.Equal(t, int64(2), result.SolverStats.SolutionsFound, "{A,B,C} and {C,D} are both exact covers")
}

func TestRunReportsInfeasibleZeroColumn(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	require.NoError(t, format.ParseDense(strings.NewReader("10 A\n"), lat))

	eng := engine.New(lat)
	result, err := eng.Run()
	require.NoError(t, err)
	require.True(t, result.Infeasible, "column 1 has zero covering rows")
}

func TestOnlyReduceSkipsSolving(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	require.NoError(t, format.ParseDense(strings.NewReader("11 A\n11 B\n"), lat))

	eng := engine.New(lat, engine.WithOnlyReduce(true))
	result, err := eng.Run()
	require.NoError(t, err)
	require.False(t, result.Infeasible)
	require.Equal(t, int64(0), result.SolverStats.SolutionsFound, "solving must not run")
	require.Equal(t, 1, result.ReduceStats.PassAColumns)
}

func TestNoReduceSkipsReductionStats(t *testing.T) {
	t.Parallel()
	lat := lattice.New()
	require.NoError(t, format.ParseDense(strings.NewReader("100 A\n010 B\n001 C\n"), lat))

	eng := engine.New(lat, engine.WithNoReduce(true))
	result, err := eng.Run()
	require.NoError(t, err)
	require.Equal(t, reduce.Stats{}, result.ReduceStats, "reduction did not run, stats stay zero")
	require.Equal(t, int64(1), result.SolverStats.SolutionsFound)
}

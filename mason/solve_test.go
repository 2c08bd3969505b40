// SPDX-License-Identifier: MIT

package mason_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/mason"
)

// TestAnalyze_Acyclic: without loops Δ = 1, every Δ_k = 1 and T = ΣP_k.
func TestAnalyze_Acyclic(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "x"},
		branch{"A", "C", "y"},
		branch{"R", "C", "z"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)

	res := a.Result
	assert.Empty(t, res.Table)
	assert.True(t, res.Delta.IsOne())
	require.Len(t, res.Cofactors, 2)
	for _, c := range res.Cofactors {
		assert.True(t, c.IsOne())
	}
	assertExpr(t, "x*y + z", res.Transfer)
	assert.False(t, res.Unbounded)
}

func TestAnalyze_SelfLoop(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "p"},
		branch{"A", "A", "L"},
		branch{"A", "C", "q"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)

	assertExpr(t, "1 - L", a.Result.Delta)
	assert.Equal(t, "p*q/(1 - L)", a.Result.Transfer.String())
	assert.Equal(t, "T = p*q/(1 - L)", a.Result.String())
}

// TestAnalyze_DetachedLoopCancels: a loop touching neither the path nor its
// loop appears in both Δ and Δ_1 and must cancel out of T.
func TestAnalyze_DetachedLoopCancels(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "a"},
		branch{"A", "A", "L"},
		branch{"A", "C", "c"},
		branch{"D", "E", "g"},
		branch{"E", "D", "h"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)

	assertExpr(t, "(1 - L)*(1 - g*h)", a.Result.Delta)
	assertExpr(t, "1 - g*h", a.Result.Cofactors[0])
	assert.Equal(t, "a*c/(1 - L)", a.Result.Transfer.String())
}

// TestAnalyze_TouchingFeedback covers R→A (a), A→B (b), B→C (c), B→A (L).
func TestAnalyze_TouchingFeedback(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "a"},
		branch{"A", "B", "b"},
		branch{"B", "C", "c"},
		branch{"B", "A", "L"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, "R", a.Inventory.Input)
	assert.Equal(t, "C", a.Inventory.Output)
	assertExpr(t, "1 - b*L", a.Result.Delta)
	require.Len(t, a.Result.Cofactors, 1)
	assert.True(t, a.Result.Cofactors[0].IsOne())
	assertExpr(t, "a*b*c", a.Result.Numerator)
	assert.Equal(t, "a*b*c/(1 - L*b)", a.Result.Transfer.String())
}

// TestSolve_LoopsOffPath: three mutually disjoint loops none of which touch
// the single path, so Δ_1 = Δ and T = P.
func TestSolve_LoopsOffPath(t *testing.T) {
	paths := []dfs.Path{path("P", "R", "Y")}
	res, err := mason.Solve(paths, threeDisjoint())
	require.NoError(t, err)

	want := "1 - (L1 + L2 + L3) + (L1*L2 + L1*L3 + L2*L3) - L1*L2*L3"
	assertExpr(t, want, res.Delta)
	assertExpr(t, want, res.Cofactors[0])
	assert.Equal(t, 7, res.PathTables[0].Count())
	assertExpr(t, "P", res.Transfer)
}

// TestSolve_PartialCofactor: the path touches L1 only.
func TestSolve_PartialCofactor(t *testing.T) {
	paths := []dfs.Path{path("P", "R", "A", "Y")}
	res, err := mason.Solve(paths, threeDisjoint())
	require.NoError(t, err)

	assertExpr(t, "1 - L2 - L3 + L2*L3", res.Cofactors[0])
	assert.Equal(t, [][]int{{1}, {2}}, combos(res.PathTables[0], 0))
}

// TestAnalyze_ThreeUntouchedLoops is a seven-stage chain with three
// disjoint feedback loops, each touching the only forward path.
func TestAnalyze_ThreeUntouchedLoops(t *testing.T) {
	g := mustGraph(t,
		branch{"x1", "A", "x"},
		branch{"A", "B", "1"},
		branch{"B", "C", "1"},
		branch{"C", "D", "1"},
		branch{"D", "E", "1"},
		branch{"E", "F", "1"},
		branch{"F", "G", "1"},
		branch{"G", "x7", "1"},
		branch{"B", "A", "y"},
		branch{"D", "C", "t"},
		branch{"F", "E", "x"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)

	require.Len(t, a.Inventory.Paths, 1)
	require.Len(t, a.Inventory.Loops, 3)
	require.Len(t, a.Result.Table, 3)
	assert.True(t, a.Result.Cofactors[0].IsOne())
	assertExpr(t, "(1 - y)*(1 - t)*(1 - x)", a.Result.Delta)
	assertExpr(t, "x/((1 - y)*(1 - t)*(1 - x))", a.Result.Transfer)
}

// TestAnalyze_AllLoopsTouch has two forward paths and five mutually touching
// loops, two of which share a vertex set with different gains.
func TestAnalyze_AllLoopsTouch(t *testing.T) {
	g := mustGraph(t,
		branch{"x1", "A", "x"},
		branch{"A", "B", "3"},
		branch{"B", "C", "2"},
		branch{"B", "A", "-y"},
		branch{"A", "C", "6"},
		branch{"C", "B", "4"},
		branch{"C", "x7", "1"},
		branch{"C", "A", "y"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)

	require.Len(t, a.Inventory.Paths, 2)
	require.Len(t, a.Inventory.Loops, 5)
	require.Len(t, a.Result.Table, 1)
	assertExpr(t, "15*y - 7", a.Result.Delta)
	assertExpr(t, "12*x", a.Result.Numerator)
	assertExpr(t, "12*x/(15*y - 7)", a.Result.Transfer)
}

// TestAnalyze_ParallelBranchesUnbounded: a unit-gain loop disjoint from a
// z-loop makes Δ vanish identically.
func TestAnalyze_ParallelBranchesUnbounded(t *testing.T) {
	g := mustGraph(t,
		branch{"x1", "A", "x"},
		branch{"A", "B", "1"},
		branch{"B", "C", "1"},
		branch{"C", "D", "1"},
		branch{"D", "x7", "1"},
		branch{"A", "E", "1"},
		branch{"E", "F", "1"},
		branch{"F", "G", "1"},
		branch{"G", "x7", "1"},
		branch{"B", "C", "y"},
		branch{"E", "F", "1"},
		branch{"F", "E", "z"},
		branch{"G", "H", "1"},
		branch{"H", "G", "1"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)

	// Parallel E→F branches give one merged E-F loop.
	require.Len(t, a.Inventory.Paths, 4)
	require.Len(t, a.Inventory.Loops, 2)

	assert.True(t, a.Result.Delta.IsZero())
	assert.True(t, a.Result.Unbounded)
	assert.Equal(t, "T = ∞ (Δ = 0)", a.Result.String())
	assertExpr(t, "2*x", a.Result.Numerator)
}

func TestAnalyze_UnitSelfLoopUnbounded(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "p"},
		branch{"A", "A", "1"},
		branch{"A", "C", "q"},
	)
	a, err := mason.Analyze(g)
	require.NoError(t, err)
	assert.True(t, a.Result.Unbounded)
	assert.True(t, a.Result.Transfer.IsZero())
}

func TestSolve_NoPaths(t *testing.T) {
	res, err := mason.Solve(nil, threeDisjoint())
	require.NoError(t, err)
	assert.True(t, res.Transfer.IsZero())
	assert.False(t, res.Unbounded)
	assert.Empty(t, res.Cofactors)

	// Δ ≡ 0 without paths still gives T = 0.
	res, err = mason.Solve(nil, []dfs.Loop{loop("1", "A")})
	require.NoError(t, err)
	assert.True(t, res.Delta.IsZero())
	assert.False(t, res.Unbounded)
	assert.Equal(t, "T = 0", res.String())
}

func TestSolve_CombinationLimit(t *testing.T) {
	paths := []dfs.Path{path("P", "R", "Y")}
	_, err := mason.Solve(paths, threeDisjoint(), mason.WithMaxCombinations(6))
	assert.ErrorIs(t, err, mason.ErrCombinationLimit)
}

func TestSolve_MalformedLoop(t *testing.T) {
	paths := []dfs.Path{path("P", "R", "Y")}
	_, err := mason.Solve(paths, []dfs.Loop{{}})
	assert.ErrorIs(t, err, mason.ErrMalformedLoop)
}

func TestSolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths := []dfs.Path{path("P", "R", "Y")}
	_, err := mason.Solve(paths, threeDisjoint(), mason.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_ConcurrencyDeterministic compares one worker against many on a
// fan of paths, each skipping a different loop.
func TestSolve_ConcurrencyDeterministic(t *testing.T) {
	const n = 6
	loops := make([]dfs.Loop, n)
	paths := make([]dfs.Path, n)
	for i := 0; i < n; i++ {
		v := fmt.Sprintf("V%02d", i)
		loops[i] = loop(fmt.Sprintf("L%d", i), v)
		paths[i] = path(fmt.Sprintf("P%d", i), "R", v, "Y")
	}

	serial, err := mason.Solve(paths, loops, mason.WithConcurrency(1))
	require.NoError(t, err)
	parallel, err := mason.Solve(paths, loops, mason.WithConcurrency(4))
	require.NoError(t, err)

	assert.True(t, serial.Delta.Equal(parallel.Delta))
	require.Len(t, parallel.Cofactors, n)
	for k := range serial.Cofactors {
		assert.Truef(t, serial.Cofactors[k].Equal(parallel.Cofactors[k]), "Δ_%d", k+1)
		assert.Equal(t, serial.PathTables[k].Count(), parallel.PathTables[k].Count())
	}
	assert.True(t, serial.Transfer.Equal(parallel.Transfer))
}

func TestAnalyze_StructureError(t *testing.T) {
	g := mustGraph(t, branch{"R", "C", "x"}, branch{"R", "D", "y"})
	_, err := mason.Analyze(g)

	var se *dfs.GraphStructureError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, dfs.RoleOutput, se.Role)
	assert.Equal(t, []string{"C", "D"}, se.Candidates)
	assert.ErrorIs(t, err, dfs.ErrMultipleOutputNodes)
}

func TestAnalyze_ExtractOptions(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "x"},
		branch{"A", "C", "y"},
		branch{"R", "C", "z"},
	)
	_, err := mason.Analyze(g, mason.WithExtractOptions(dfs.WithMaxPaths(1)))
	assert.ErrorIs(t, err, dfs.ErrPathLimit)
}

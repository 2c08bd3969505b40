// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mason/dfs"
)

func TestForwardPaths_ParallelEdgesAreDistinct(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "x"},
		branch{"R", "A", "y"},
		branch{"A", "C", "z"},
	)
	paths, err := dfs.ForwardPaths(g, "R", "C")
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, []string{"R", "A", "C"}, paths[0].Nodes)
	assert.Equal(t, []string{"e1", "e3"}, paths[0].Edges)
	assert.Equal(t, "x*z", paths[0].Weight.String())

	assert.Equal(t, []string{"R", "A", "C"}, paths[1].Nodes)
	assert.Equal(t, []string{"e2", "e3"}, paths[1].Edges)
	assert.Equal(t, "y*z", paths[1].Weight.String())
}

func TestForwardPaths_SkipsCyclesAndDeadEnds(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "a"},
		branch{"A", "D", "d"}, // D never reaches C
		branch{"D", "D", "s"},
		branch{"A", "B", "b"},
		branch{"B", "A", "L"},
		branch{"B", "C", "c"},
	)
	paths, err := dfs.ForwardPaths(g, "R", "C")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"R", "A", "B", "C"}}, pathNodes(paths))
}

func TestForwardPaths_WeightIsSimplifiedProduct(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "1/s"},
		branch{"A", "C", "s^2"},
	)
	paths, err := dfs.ForwardPaths(g, "R", "C")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "s", paths[0].Weight.String())
}

func TestForwardPaths_EmptyPathSet(t *testing.T) {
	g := mustGraph(t, branch{"R", "A", "x"}, branch{"B", "C", "y"})
	paths, err := dfs.ForwardPaths(g, "R", "C")
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestForwardPaths_Errors(t *testing.T) {
	g := scenarioRABC(t)

	_, err := dfs.ForwardPaths(nil, "R", "C")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.ForwardPaths(g, "missing", "C")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.ForwardPaths(g, "R", "missing")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.ForwardPaths(g, "R", "R")
	assert.ErrorIs(t, err, dfs.ErrDegenerateGraph)
}

func TestForwardPaths_Limit(t *testing.T) {
	g := mustGraph(t,
		branch{"R", "A", "x"},
		branch{"R", "A", "y"},
		branch{"A", "C", "z"},
	)
	_, err := dfs.ForwardPaths(g, "R", "C", dfs.WithMaxPaths(1))
	assert.ErrorIs(t, err, dfs.ErrPathLimit)

	paths, err := dfs.ForwardPaths(g, "R", "C", dfs.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	paths, err = dfs.ForwardPaths(g, "R", "C", dfs.WithMaxPaths(0))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

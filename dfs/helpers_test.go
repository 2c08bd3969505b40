// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/dfs"
)

// branch is one edge of a test fixture: From, To, gain text.
type branch [3]string

// mustGraph builds a loop- and multi-edge-enabled graph from branches.
func mustGraph(t testing.TB, branches ...branch) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, b := range branches {
		_, err := g.AddEdgeExpr(b[0], b[1], b[2])
		require.NoError(t, err)
	}

	return g
}

// scenarioRABC is R→A (a), A→B (b), B→C (c), B→A (L).
func scenarioRABC(t testing.TB) *core.Graph {
	return mustGraph(t,
		branch{"R", "A", "a"},
		branch{"A", "B", "b"},
		branch{"B", "C", "c"},
		branch{"B", "A", "L"},
	)
}

// loopNodes returns the node sequences of loops.
func loopNodes(loops []dfs.Loop) [][]string {
	out := make([][]string, len(loops))
	for i, l := range loops {
		out[i] = l.Nodes
	}

	return out
}

// pathNodes returns the node sequences of paths.
func pathNodes(paths []dfs.Path) [][]string {
	out := make([][]string, len(paths))
	for i, p := range paths {
		out[i] = p.Nodes
	}

	return out
}

// loopWeights returns the rendered loop gains.
func loopWeights(loops []dfs.Loop) []string {
	out := make([]string, len(loops))
	for i, l := range loops {
		out[i] = l.Weight.String()
	}

	return out
}

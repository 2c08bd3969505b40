// SPDX-License-Identifier: MIT

package mason_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/mason"
	"github.com/katalvlaran/mason/symbolic"
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

// loop returns a literal loop over nodes (closing node appended) with gain.
func loop(gain string, nodes ...string) dfs.Loop {
	closed := append(append([]string(nil), nodes...), nodes[0])

	return dfs.Loop{Nodes: closed, Weight: symbolic.MustParse(gain)}
}

// path returns a literal forward path over nodes with gain.
func path(gain string, nodes ...string) dfs.Path {
	return dfs.Path{Nodes: nodes, Weight: symbolic.MustParse(gain)}
}

// assertExpr fails unless got equals the parsed want algebraically.
func assertExpr(t *testing.T, want string, got symbolic.Expr) {
	t.Helper()
	w := symbolic.MustParse(want)
	require.Truef(t, w.Equal(got), "want %s, got %s", w, got)
}

// combos returns the loop index sets of one table level.
func combos(t mason.Table, level int) [][]int {
	out := make([][]int, len(t[level]))
	for i, c := range t[level] {
		out[i] = c.Loops
	}

	return out
}

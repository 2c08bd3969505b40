// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for mason/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/symbolic"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexR = "R"
	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100

	NLoops   = 50
	NReaders = 50
	NCloners = 20
)

// NewGraphFull returns a Graph with loops and multi-edges enabled.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithLoops(), core.WithMultiEdges())
}

// MustAddEdge adds from→to with gain text and fails the test on error.
func MustAddEdge(t *testing.T, g *core.Graph, from, to, gain string) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, symbolic.MustParse(gain))
	require.NoError(t, err, "AddEdge(%s,%s,%s)", from, to, gain)

	return eid
}

// ExtractEdgeIDs returns edge IDs in slice order.
func ExtractEdgeIDs(edges []*core.Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}

	return ids
}

// SPDX-License-Identifier: MIT
// Package matrix - gain (adjacency) matrix of a signal-flow graph.
//
// Deliverables:
//   1) Vertex order is lexicographic (core.Graph.Vertices), so indices are stable.
//   2) Parallel branches i → j add up: A[i][j] = Σ gains.
//   3) Self-loops land on the diagonal.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
)

// AdjacencyMatrix wraps the gain matrix of a graph.
// VertexIndex maps vertex ID → row/col in Mat.
type AdjacencyMatrix struct {
	Mat           *Dense
	VertexIndex   map[string]int
	vertexByIndex []string
}

// NewAdjacencyMatrix builds the gain matrix of g.
//
// Errors: ErrGraphNil.
//
// Complexity: O(V² + E) time, O(V²) space.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}

	vertices := g.Vertices()
	idx := make(map[string]int, len(vertices))
	for i, id := range vertices {
		idx[id] = i
	}
	mat, err := NewDense(len(vertices), len(vertices))
	if err != nil {
		return nil, matrixErrorf(opAdjacency, err)
	}

	// Edges are snapshotted after vertices; a concurrent writer could add an
	// endpoint we have not indexed.
	for _, e := range g.Edges() {
		i, ok1 := idx[e.From]
		j, ok2 := idx[e.To]
		if !ok1 || !ok2 {
			return nil, matrixErrorf(opAdjacency, fmt.Errorf("edge %s: %w", e.ID, ErrUnknownVertex))
		}
		cell := i*mat.c + j
		mat.data[cell] = mat.data[cell].Add(e.Weight)
	}

	return &AdjacencyMatrix{Mat: mat, VertexIndex: idx, vertexByIndex: vertices}, nil
}

// VertexCount returns the matrix dimension.
func (am *AdjacencyMatrix) VertexCount() int { return len(am.vertexByIndex) }

// VertexID returns the vertex at index i.
func (am *AdjacencyMatrix) VertexID(i int) (string, error) {
	if i < 0 || i >= len(am.vertexByIndex) {
		return "", fmt.Errorf("VertexID(%d): %w", i, ErrOutOfRange)
	}

	return am.vertexByIndex[i], nil
}

// Index returns the row/col of vertex id.
func (am *AdjacencyMatrix) Index(id string) (int, error) {
	i, ok := am.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices(), Sources(), Sinks() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Inward/outward list bootstrap under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, allocate Vertex and register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap empty inward/outward lists.
//
// Returns:
//   - error: nil on success; ErrEmptyVertexID on invalid input.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	// Stage 2: Register in the vertex catalog under muVert.
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Stage 3: Bootstrap inward/outward lists under muEdgeAdj.
	g.muEdgeAdj.Lock()
	g.out[id] = nil
	g.in[id] = nil
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 3: Verify vertex presence (ErrVertexNotFound).
//   - Stage 4: Unlink every edge on the vertex's inward and outward lists.
//   - Stage 5: Delete the vertex and its lists.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v)·d) where d is the largest neighbor list touched.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Copy the lists first: unlinkEdge rewrites them.
	incident := make([]*Edge, 0, len(g.out[id])+len(g.in[id]))
	incident = append(incident, g.out[id]...)
	incident = append(incident, g.in[id]...)
	for _, e := range incident {
		if _, live := g.edges[e.ID]; live { // self-loops appear on both lists
			unlinkEdge(g, e)
		}
	}

	delete(g.vertices, id)
	delete(g.out, id)
	delete(g.in, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Determinism:
//   - Deterministic output order (lex asc); the seed order for every traversal in dfs.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// GetVertex returns the Vertex record for id, or ErrVertexNotFound.
// The returned pointer must be treated as read-only apart from Metadata.
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Sources returns the vertices with an empty inward list, sorted ascending.
// A well-formed signal-flow graph has exactly one: its input node.
func (g *Graph) Sources() []string {
	return g.filterVertices(func(id string) bool { return len(g.in[id]) == 0 })
}

// Sinks returns the vertices with an empty outward list, sorted ascending.
// A well-formed signal-flow graph has exactly one: its output node.
func (g *Graph) Sinks() []string {
	return g.filterVertices(func(id string) bool { return len(g.out[id]) == 0 })
}

// filterVertices returns the sorted vertex IDs satisfying keep, evaluated under muEdgeAdj.
func (g *Graph) filterVertices(keep func(id string) bool) []string {
	ids := g.Vertices()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := ids[:0]
	for _, id := range ids {
		if _, live := g.out[id]; !live {
			continue // removed concurrently
		}
		if keep(id) {
			out = append(out, id)
		}
	}

	return out
}

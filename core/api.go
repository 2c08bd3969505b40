// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Stats() is O(V+E) snapshot; rely on it for quick admissions/diagnostics.

package core

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Returns:
//   - bool: true if self-loops are permitted.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Signal-flow graphs with self-loop branches must be built WithLoops().
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge(from,to,...) rejects duplicates with ErrMultiEdgeNotAllowed.
//
// Returns:
//   - bool: true if parallel edges are permitted.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges, self-loops, sources and sinks, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//   - SourceCount/SinkCount of exactly one each is the precondition for terminal resolution.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot of flags and counts.
//
// Determinism:
//   - Deterministic for a fixed graph state; if the graph is mutated concurrently,
//     the snapshot reflects a consistent read per phase (flags/vertices, then edges).
//
// Complexity:
//   - Time O(V+E), Space O(V) for the vertex ID snapshot.
func (g *Graph) Stats() *GraphStats {
	// First phase: flags and vertex IDs under muVert.
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	// Second phase: edge counters under muEdgeAdj.
	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.From == e.To {
			stats.SelfLoopCount++
		}
	}
	for _, id := range ids {
		if len(g.in[id]) == 0 {
			stats.SourceCount++
		}
		if len(g.out[id]) == 0 {
			stats.SinkCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

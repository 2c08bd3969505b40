// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Carries over nextEdgeID so that future AddEdge calls on the clone continue
// the same textual sequence.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.cloneVerticesLocked()
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and lists.
//
// Edge gains are shared: symbolic.Expr values are immutable.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := g.cloneVerticesLocked()
	copies := make(map[string]*Edge, len(g.edges))
	for eid, e := range g.edges {
		c := *e
		copies[eid] = &c
		clone.edges[eid] = &c
	}
	// Rebuild lists from the source lists so creation order is preserved.
	for id, list := range g.out {
		for _, e := range list {
			clone.out[id] = append(clone.out[id], copies[e.ID])
		}
	}
	for id, list := range g.in {
		for _, e := range list {
			clone.in[id] = append(clone.in[id], copies[e.ID])
		}
	}

	return clone
}

// cloneVerticesLocked copies flags, the edge counter and vertices.
// Caller holds both read locks.
func (g *Graph) cloneVerticesLocked() *Graph {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.out[id] = nil
		clone.in[id] = nil
	}

	return clone
}

// Clear removes all vertices and edges, preserving configuration flags.
// The edge ID counter restarts, so the next edge is "e1" again.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.out = make(map[string][]*Edge)
	g.in = make(map[string][]*Edge)
	atomic.StoreUint64(&g.nextEdgeID, 0)
}

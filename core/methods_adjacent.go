// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries over the inward/outward lists and the private
//       list-maintenance helpers used by edge and vertex mutations.
// Determinism:
//   - OutEdges/InEdges return edges in creation order.
//   - NeighborIDs returns unique IDs sorted ascending.
// Concurrency:
//   - Public queries take muEdgeAdj read lock; helpers expect the caller to hold the write lock.

package core

import "sort"

// OutEdges returns the outward edges of id in creation order.
//
// Behavior highlights:
//   - Parallel edges appear once each; a self-loop appears on both OutEdges and InEdges.
//   - The returned slice is a copy; the *Edge values are read-only.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity:
//   - Time O(deg⁺), Space O(deg⁺).
//
// AI-Hints:
//   - Forward-path and loop enumeration iterate this slice; its order fixes the output order.
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	list, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(list))
	copy(out, list)

	return out, nil
}

// InEdges returns the inward edges of id in creation order.
// Errors: ErrVertexNotFound if id is absent.
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	list, ok := g.in[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(list))
	copy(out, list)

	return out, nil
}

// NeighborIDs returns the unique successor IDs of id, sorted ascending.
// A self-loop contributes id itself.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	list, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	seen := make(map[string]struct{}, len(list))
	ids := make([]string, 0, len(list))
	for _, e := range list {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		ids = append(ids, e.To)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the inward and outward edge counts of id.
// A self-loop counts once on each side.
func (g *Graph) Degree(id string) (in, out int, err error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ol, ok := g.out[id]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return len(g.in[id]), len(ol), nil
}

// unlinkEdge removes e from the catalog and both lists.
// Caller must hold muEdgeAdj write lock.
func unlinkEdge(g *Graph, e *Edge) {
	delete(g.edges, e.ID)
	g.out[e.From] = dropEdge(g.out[e.From], e.ID)
	g.in[e.To] = dropEdge(g.in[e.To], e.ID)
}

// dropEdge returns list without the edge eid, preserving order.
// A fresh slice is built so copies handed out by OutEdges/InEdges stay intact.
func dropEdge(list []*Edge, eid string) []*Edge {
	out := make([]*Edge, 0, len(list))
	for _, e := range list {
		if e.ID != eid {
			out = append(out, e)
		}
	}

	return out
}

// replaceEdge swaps the entry with e.ID for e in place.
func replaceEdge(list []*Edge, e *Edge) {
	for i := range list {
		if list[i].ID == e.ID {
			list[i] = e
			return
		}
	}
}

// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeExpr/RemoveEdge/HasEdge/GetEdge/
//       SetWeight/Edges/EdgeCount. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (sequence number asc).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/mason/symbolic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from→to with the given gain.
//
// AI-HINT:
//   - If Looped()==false and from==to, this returns ErrLoopNotAllowed.
//   - If Multigraph()==false and (from,to) already has an edge, this returns ErrMultiEdgeNotAllowed.
//
// Steps:
//  1. Validate IDs and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically.
//  5. Store in g.edges and append to out[from] and in[to].
//
// Complexity: O(1) amortized, plus O(deg⁺(from)) for the multi-edge check.
// Concurrency:
//   - Creates vertices outside muEdgeAdj; edge catalog and lists under muEdgeAdj.
func (g *Graph) AddEdge(from, to string, weight symbolic.Expr) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		for _, e := range g.out[from] {
			if e.To == to {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	// 4) Generate a new unique textual edge ID.
	eid, seq := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}

	// 5) Store and link
	g.edges[eid] = e
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)

	return eid, nil
}

// AddEdgeExpr parses gain text with symbolic.Parse and adds the edge.
// Parse failures are returned wrapped; errors.Is(err, symbolic.ErrSyntax) holds.
func (g *Graph) AddEdgeExpr(from, to, gain string) (string, error) {
	w, err := symbolic.Parse(gain)
	if err != nil {
		return "", fmt.Errorf("AddEdgeExpr %s->%s: %w", from, to, err)
	}

	return g.AddEdge(from, to, w)
}

// RemoveEdge deletes one edge.
// Complexity: O(deg⁺(from) + deg⁻(to)).
// Concurrency: acquires muEdgeAdj write lock only.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	unlinkEdge(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg⁺(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.out[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetWeight replaces the gain of an existing edge.
//
// The edge keeps its ID and sequence number, so its position in Edges() and
// in the inward/outward lists is unchanged. Pointers obtained before the call
// keep observing the old gain.
func (g *Graph) SetWeight(edgeID string, weight symbolic.Expr) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	old, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e := &Edge{ID: old.ID, From: old.From, To: old.To, Weight: weight, seq: old.seq}
	g.edges[edgeID] = e
	replaceEdge(g.out[e.From], e)
	replaceEdge(g.in[e.To], e)

	return nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by creation sequence.
// Textual IDs do not sort numerically ("e10" < "e2"), so seq is the key.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// nextEdgeID returns a new unique textual edge ID and its sequence number.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) (string, uint64) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}

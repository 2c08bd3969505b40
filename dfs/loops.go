// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/symbolic"
)

// loopWalker holds the state of loop enumeration over the whole graph.
type loopWalker struct {
	graph *core.Graph
	opts  Options

	root  string         // current root: smallest vertex of every loop found from it
	state map[string]int // Gray while on the current walk
	nodes []string
	edges []*core.Edge

	loops   []Loop
	buckets map[string][]int // NodeSetKey → indices into loops
}

// Loops enumerates every distinct simple directed cycle of g.
//
// Implementation:
//   - Stage 1: Root a DFS at every vertex r in lexicographic order.
//   - Stage 2: From r, walk only through vertices greater than r, never
//     revisiting a vertex on the current walk. Each outward edge back to r
//     closes a candidate loop; a self-loop on r closes immediately.
//   - Stage 3: Rooting each cycle at its smallest vertex yields every simple
//     cycle (as an edge sequence) exactly once. Candidates then merge when
//     their node sets are equal AND their weights are algebraically equal;
//     the first one found is kept.
//
// Behavior highlights:
//   - Parallel edges produce distinct candidates; they survive as separate
//     loops only if their gains differ.
//   - Loop.Nodes is closed ([A B A]) and starts at the smallest vertex.
//
// Errors:
//   - ErrGraphNil, ErrLoopLimit (more than Options.MaxLoops distinct loops), ctx.Err().
//
// Determinism: roots in lexicographic order, edges in creation order.
//
// Complexity: O((V+E)·(C+1)) for C elementary cycles, exponential in the worst case.
func Loops(g *core.Graph, opts ...Option) ([]Loop, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := &loopWalker{
		graph:   g,
		opts:    buildOptions(opts),
		state:   make(map[string]int),
		loops:   []Loop{},
		buckets: make(map[string][]int),
	}

	var err error
	for _, r := range g.Vertices() {
		w.root = r
		if err = w.visit(r); err != nil {
			return nil, err
		}
	}

	return w.loops, nil
}

// visit extends the current walk with id.
func (w *loopWalker) visit(id string) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Push
	w.state[id] = Gray
	w.nodes = append(w.nodes, id)
	defer func() {
		w.state[id] = White
		w.nodes = w.nodes[:len(w.nodes)-1]
	}()

	// 3. Explore outward edges
	out, err := w.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("dfs: edges of %q: %w", id, err)
	}
	for _, e := range out {
		switch {
		case e.To == w.root:
			w.edges = append(w.edges, e)
			err = w.candidate()
			w.edges = w.edges[:len(w.edges)-1]
		case e.To < w.root || w.state[e.To] == Gray:
			continue
		default:
			w.edges = append(w.edges, e)
			err = w.visit(e.To)
			w.edges = w.edges[:len(w.edges)-1]
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// candidate closes the current walk into a loop and merges it into the inventory.
func (w *loopWalker) candidate() error {
	ids, gains := splitEdges(w.edges)
	nodes := make([]string, 0, len(w.nodes)+1)
	nodes = append(nodes, w.nodes...)
	nodes = append(nodes, w.root)
	loop := Loop{Nodes: nodes, Edges: ids, Weight: symbolic.Product(gains...)}

	key := NodeSetKey(loop.Vertices())
	for _, i := range w.buckets[key] {
		if w.loops[i].Weight.Equal(loop.Weight) {
			return nil // same node set, algebraically equal gain
		}
	}
	if w.opts.MaxLoops > 0 && len(w.loops) >= w.opts.MaxLoops {
		return fmt.Errorf("Loops: more than %d loops: %w", w.opts.MaxLoops, ErrLoopLimit)
	}
	w.buckets[key] = append(w.buckets[key], len(w.loops))
	w.loops = append(w.loops, loop)

	return nil
}

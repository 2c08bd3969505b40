// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
)

// walker encapsulates state during a reachability DFS.
type walker struct {
	graph *core.Graph
	dir   Direction
	opts  Options
	res   *WalkResult
}

// Reachable performs a depth-first search from start, following outward
// edges (Forward) or inward edges (Reverse). Vertices are finished in
// post-order; neighbors are explored in edge creation order.
//
// ForwardPaths uses Reverse reachability from the output to prune vertices
// that cannot complete a path.
//
// Errors:
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
func Reachable(g *core.Graph, start string, dir Direction, opts ...Option) (*WalkResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := buildOptions(opts)

	// 3. Verify start
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("Reachable %q: %w", start, ErrStartVertexNotFound)
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &WalkResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	w := &walker{graph: g, dir: dir, opts: o, res: res}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *walker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Fetch the edge list for the walk direction once
	var (
		edges []*core.Edge
		err   error
	)
	if w.dir == Reverse {
		edges, err = w.graph.InEdges(id)
	} else {
		edges, err = w.graph.OutEdges(id)
	}
	if err != nil {
		return fmt.Errorf("dfs: edges of %q: %w", id, err)
	}

	// 5. Explore each neighbor
	var e *core.Edge
	var nid string
	for _, e = range edges {
		nid = e.To
		if w.dir == Reverse {
			nid = e.From
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/symbolic"
)

// pathWalker holds the state of one forward-path enumeration.
type pathWalker struct {
	graph   *core.Graph
	opts    Options
	output  string
	canExit map[string]bool // vertices from which output is reachable
	state   map[string]int  // Gray while on the current path
	nodes   []string
	edges   []*core.Edge
	paths   []Path
}

// ForwardPaths enumerates every simple path from input to output.
//
// Every outward edge is followed (parallel edges yield distinct paths) unless
// its head is already on the current path or cannot reach the output. An
// empty result is valid: the output is unreachable from the input.
//
// Determinism: outward edges are explored in creation order, so the result
// order is stable across runs.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound (input or output missing).
//   - *GraphStructureError wrapping ErrDegenerateGraph if input == output.
//   - ErrPathLimit when more than Options.MaxPaths paths exist.
//   - ctx.Err() on cancellation.
//
// Complexity: O(P·V) for P paths after pruning, exponential in the worst case.
func ForwardPaths(g *core.Graph, input, output string, opts ...Option) ([]Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(input) {
		return nil, fmt.Errorf("ForwardPaths: input %q: %w", input, ErrStartVertexNotFound)
	}
	if input == output {
		return nil, &GraphStructureError{Role: RoleOutput, Candidates: []string{output}, kind: ErrDegenerateGraph}
	}
	o := buildOptions(opts)

	// 1. Reverse reachability from output prunes dead branches.
	back, err := Reachable(g, output, Reverse, WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("ForwardPaths: %w", err)
	}

	w := &pathWalker{
		graph:   g,
		opts:    o,
		output:  output,
		canExit: back.Visited,
		state:   make(map[string]int),
	}
	if !w.canExit[input] {
		return []Path{}, nil
	}

	// 2. Enumerate.
	if err = w.visit(input); err != nil {
		return nil, err
	}

	return w.paths, nil
}

// visit extends the current path with id.
func (w *pathWalker) visit(id string) error {
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

	// 3. Output reached: record and stop (a simple path ends here).
	if id == w.output {
		return w.record()
	}

	// 4. Explore outward edges
	out, err := w.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("dfs: edges of %q: %w", id, err)
	}
	for _, e := range out {
		if w.state[e.To] == Gray || !w.canExit[e.To] {
			continue
		}
		w.edges = append(w.edges, e)
		err = w.visit(e.To)
		w.edges = w.edges[:len(w.edges)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// record snapshots the current path.
func (w *pathWalker) record() error {
	if w.opts.MaxPaths > 0 && len(w.paths) >= w.opts.MaxPaths {
		return fmt.Errorf("ForwardPaths: more than %d paths: %w", w.opts.MaxPaths, ErrPathLimit)
	}
	ids, gains := splitEdges(w.edges)
	w.paths = append(w.paths, Path{
		Nodes:  cloneStrings(w.nodes),
		Edges:  ids,
		Weight: symbolic.Product(gains...),
	})

	return nil
}

// splitEdges returns the IDs and gains of es in order.
func splitEdges(es []*core.Edge) ([]string, []symbolic.Expr) {
	ids := make([]string, len(es))
	gains := make([]symbolic.Expr, len(es))
	for i, e := range es {
		ids[i] = e.ID
		gains[i] = e.Weight
	}

	return ids, gains
}

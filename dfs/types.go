// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mason/symbolic"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current walk.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to any entry point.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNoInputNode indicates that no vertex has an empty inward list.
	ErrNoInputNode = errors.New("dfs: no candidate input node found")

	// ErrMultipleInputNodes indicates more than one vertex with an empty inward list.
	ErrMultipleInputNodes = errors.New("dfs: multiple candidate input nodes found")

	// ErrNoOutputNode indicates that no vertex has an empty outward list.
	ErrNoOutputNode = errors.New("dfs: no candidate output node found")

	// ErrMultipleOutputNodes indicates more than one vertex with an empty outward list.
	ErrMultipleOutputNodes = errors.New("dfs: multiple candidate output nodes found")

	// ErrDegenerateGraph indicates that input and output resolve to the same vertex.
	ErrDegenerateGraph = errors.New("dfs: input and output are the same node")

	// ErrPathLimit indicates that forward-path enumeration exceeded Options.MaxPaths.
	ErrPathLimit = errors.New("dfs: forward path limit exceeded")

	// ErrLoopLimit indicates that loop enumeration exceeded Options.MaxLoops.
	ErrLoopLimit = errors.New("dfs: loop limit exceeded")

	// ErrVertexLimit indicates that the graph has more vertices than Options.MaxVertices.
	ErrVertexLimit = errors.New("dfs: vertex limit exceeded")
)

// Terminal roles reported by GraphStructureError.
const (
	RoleInput  = "input"
	RoleOutput = "output"
)

// GraphStructureError reports a violated terminal invariant: the graph must
// have exactly one input node and exactly one output node, and they must differ.
//
// It unwraps to one of ErrNoInputNode, ErrMultipleInputNodes, ErrNoOutputNode,
// ErrMultipleOutputNodes or ErrDegenerateGraph.
type GraphStructureError struct {
	// Role is RoleInput or RoleOutput.
	Role string

	// Candidates lists the offending vertices in lexicographic order
	// (empty when no candidate exists).
	Candidates []string

	kind error
}

// Error names the violated invariant and the candidates, e.g.
// "dfs: multiple candidate output nodes found: [C D]".
func (e *GraphStructureError) Error() string {
	if len(e.Candidates) == 0 {
		return e.kind.Error()
	}

	return fmt.Sprintf("%s: %v", e.kind.Error(), e.Candidates)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *GraphStructureError) Unwrap() error { return e.kind }

// Direction selects which edge list Reachable follows.
type Direction int

const (
	// Forward follows outward edges (From → To).
	Forward Direction = iota
	// Reverse follows inward edges (To → From).
	Reverse
)

// Path is a simple forward path from the input to the output.
type Path struct {
	// Nodes starts at the input, ends at the output; all distinct.
	Nodes []string

	// Edges holds the traversed edge IDs; len(Edges) == len(Nodes)-1.
	Edges []string

	// Weight is the product of the traversed edge gains, simplified.
	Weight symbolic.Expr
}

// Loop is a simple directed cycle.
type Loop struct {
	// Nodes is the closed walk [v0 … vk v0]; v0 is the lexicographically
	// smallest vertex of the loop. A self-loop on v is [v v].
	Nodes []string

	// Edges holds the traversed edge IDs; len(Edges) == len(Nodes)-1.
	Edges []string

	// Weight is the product of exactly one gain per traversed edge, simplified.
	Weight symbolic.Expr
}

// Vertices returns the distinct vertices of the path.
func (p Path) Vertices() []string { return p.Nodes }

// Vertices returns the distinct vertices of the loop (the closing repeat
// dropped). A loop with no nodes has no vertices.
func (l Loop) Vertices() []string {
	if len(l.Nodes) == 0 {
		return nil
	}

	return l.Nodes[:len(l.Nodes)-1]
}

// Inventory is the output of Extract: resolved terminals plus every
// forward path and every distinct loop.
type Inventory struct {
	Input  string
	Output string
	Paths  []Path
	Loops  []Loop
}

// Option configures extraction and traversal.
type Option func(*Options)

// Options holds the limits and cancellation context shared by every entry point.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked at every DFS step.
	Ctx context.Context

	// MaxDepth, if non-negative, limits Reachable to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// MaxPaths bounds the number of forward paths; <= 0 disables the bound.
	MaxPaths int

	// MaxLoops bounds the number of distinct loops; <= 0 disables the bound.
	MaxLoops int

	// MaxVertices bounds the graph size accepted by Extract; <= 0 disables the bound.
	MaxVertices int
}

// Default limits.
const (
	DefaultMaxPaths = 10000
	DefaultMaxLoops = 10000
)

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - DefaultMaxPaths forward paths, DefaultMaxLoops loops
//   - No vertex bound
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		MaxPaths: DefaultMaxPaths,
		MaxLoops: DefaultMaxLoops,
	}
}

// WithContext sets the Context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits Reachable traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithMaxPaths bounds forward-path enumeration; n <= 0 disables the bound.
func WithMaxPaths(n int) Option {
	return func(o *Options) { o.MaxPaths = n }
}

// WithMaxLoops bounds loop enumeration; n <= 0 disables the bound.
func WithMaxLoops(n int) Option {
	return func(o *Options) { o.MaxLoops = n }
}

// WithMaxVertices rejects graphs larger than n vertices; n <= 0 disables the bound.
func WithMaxVertices(n int) Option {
	return func(o *Options) { o.MaxVertices = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}

// WalkResult captures the outcome of Reachable.
type WalkResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its distance (#edges) from the start.
	Depth map[string]int

	// Parent maps each vertex ID to the ID of the vertex from which it was first discovered.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool
}

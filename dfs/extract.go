// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mason/core"
)

// Extract resolves the terminals of g and inventories every forward path
// and every distinct loop.
//
// Steps:
//  1. Reject nil graphs and graphs above Options.MaxVertices.
//  2. Terminals(g).
//  3. ForwardPaths(g, input, output).
//  4. Loops(g).
//
// The graph must not be mutated while Extract runs. Two calls on the same
// graph return identical inventories.
func Extract(g *core.Graph, opts ...Option) (*Inventory, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	if n := g.VertexCount(); o.MaxVertices > 0 && n > o.MaxVertices {
		return nil, fmt.Errorf("Extract: %d vertices (max %d): %w", n, o.MaxVertices, ErrVertexLimit)
	}

	// 2. Terminals
	input, output, err := Terminals(g)
	if err != nil {
		return nil, err
	}

	// 3. Forward paths
	paths, err := ForwardPaths(g, input, output, opts...)
	if err != nil {
		return nil, err
	}

	// 4. Loops
	loops, err := Loops(g, opts...)
	if err != nil {
		return nil, err
	}

	klog.V(2).Infof("dfs: extracted %d forward paths and %d loops (%s -> %s)", len(paths), len(loops), input, output)

	return &Inventory{Input: input, Output: output, Paths: paths, Loops: loops}, nil
}

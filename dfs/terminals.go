// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/mason/core"

// Terminals resolves the input and output nodes of a signal-flow graph.
//
// Implementation:
//   - Stage 1: Collect vertices with an empty inward list (input candidates).
//   - Stage 2: Collect vertices with an empty outward list (output candidates).
//   - Stage 3: Require exactly one of each, and require them to differ.
//
// Errors (all *GraphStructureError):
//   - ErrNoInputNode / ErrMultipleInputNodes: input candidates != 1 (empty graph included).
//   - ErrNoOutputNode / ErrMultipleOutputNodes: output candidates != 1.
//   - ErrDegenerateGraph: the only candidate for both roles is one vertex (single isolated node).
//
// Complexity: O(V log V + E).
func Terminals(g *core.Graph) (input, output string, err error) {
	if g == nil {
		return "", "", ErrGraphNil
	}

	// Stage 1
	sources := g.Sources()
	switch len(sources) {
	case 0:
		return "", "", &GraphStructureError{Role: RoleInput, kind: ErrNoInputNode}
	case 1:
	default:
		return "", "", &GraphStructureError{Role: RoleInput, Candidates: sources, kind: ErrMultipleInputNodes}
	}

	// Stage 2
	sinks := g.Sinks()
	switch len(sinks) {
	case 0:
		return "", "", &GraphStructureError{Role: RoleOutput, kind: ErrNoOutputNode}
	case 1:
	default:
		return "", "", &GraphStructureError{Role: RoleOutput, Candidates: sinks, kind: ErrMultipleOutputNodes}
	}

	// Stage 3
	if sources[0] == sinks[0] {
		return "", "", &GraphStructureError{Role: RoleOutput, Candidates: sinks, kind: ErrDegenerateGraph}
	}

	return sources[0], sinks[0], nil
}

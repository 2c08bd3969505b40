// SPDX-License-Identifier: MIT

// Package dfs extracts the structural inventory of a signal-flow graph with
// depth-first search: its terminals, every simple forward path between them,
// and every distinct simple loop.
//
// What:
//
//   - Terminals: the input is the unique vertex with no inward edges, the
//     output the unique vertex with no outward edges. Violations are
//     reported as *GraphStructureError naming the role and the candidates.
//   - ForwardPaths: backtracking DFS from the input with an on-path set;
//     every outward edge is tried, so parallel edges give distinct paths.
//     Vertices that cannot reach the output are pruned up front.
//   - Loops: each simple cycle is found once by rooting it at its smallest
//     vertex; cycles with the same node set and algebraically equal gain
//     collapse into one loop.
//   - Reachable: plain forward or reverse DFS with post-order, depth and
//     parent maps.
//   - Extract: all of the above as one Inventory.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Path, Loop: node sequence, edge IDs, symbolic weight
//   - Inventory: Input, Output, Paths, Loops
//   - Option / Options: Ctx, MaxDepth, MaxPaths, MaxLoops, MaxVertices
//
// Complexity:
//
//   - Reachable:     Time O(V+E), Memory O(V)
//   - ForwardPaths:  Time O(V·P) after pruning (P = #paths), Memory O(V)
//   - Loops:         Time O((V+E)·(C+1)) (C = #elementary cycles), Memory O(V)
//
// Path and cycle counts can grow exponentially with graph size; MaxPaths,
// MaxLoops and MaxVertices turn runaway enumeration into ErrPathLimit,
// ErrLoopLimit and ErrVertexLimit.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrNoInputNode, ErrMultipleInputNodes,
//     ErrNoOutputNode, ErrMultipleOutputNodes,
//     ErrDegenerateGraph      terminal invariants (via *GraphStructureError)
//   - ErrPathLimit, ErrLoopLimit, ErrVertexLimit
//   - context.Canceled        traversal canceled via context
//
// Determinism: vertices are visited in lexicographic order and edges in
// creation order; identical graphs give identical inventories.
package dfs

// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory signal-flow graph: a directed
// multigraph whose vertices are signals and whose edges carry exact symbolic
// gains (symbolic.Expr).
//
// Every vertex keeps an inward and an outward edge list in creation order.
// The input of a well-formed signal-flow graph is the single vertex with an
// empty inward list (Sources), and its output is the single vertex with an
// empty outward list (Sinks); terminal resolution itself lives in package dfs.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	RemoveVertex(id string) error        // drops incident edges
//
//	// Edge lifecycle
//	AddEdge(from, to string, w symbolic.Expr) (edgeID string, err error)
//	AddEdgeExpr(from, to, gain string) (edgeID string, err error)
//	SetWeight(edgeID string, w symbolic.Expr) error
//	RemoveEdge(edgeID string) error
//	HasEdge(from, to string) bool
//
//	// Query
//	OutEdges(id) / InEdges(id) ([]*Edge, error)  // creation order
//	NeighborIDs(id string) ([]string, error)     // unique, sorted
//	Vertices() []string                          // sorted
//	Edges() []*Edge                              // creation order
//	Sources() / Sinks() []string                 // sorted
//	Degree(id string) (in, out int, err error)
//
//	// Cloning & maintenance
//	CloneEmpty() *Graph
//	Clone() *Graph
//	Clear()
//	Stats() *GraphStats
//
// Edge IDs are "e1", "e2", … from an atomic counter. Because "e10" sorts
// before "e2" as text, ordering always uses the creation sequence (Edge.Seq).
//
// Concurrency: muVert guards the vertex catalog, muEdgeAdj guards the edge
// catalog and the lists; lock order is muVert → muEdgeAdj. Analyses in dfs and
// mason assume the graph is not mutated while they run.
package core

// SPDX-License-Identifier: MIT

// Package mason is an in-memory toolkit for signal-flow graphs: build them,
// extract their forward paths and loops, and derive exact transfer functions
// with Mason's Gain Formula.
//
// 🚀 What is inside?
//
//	• Exact algebra: rational functions over named symbols, no floats
//	• Core primitives: a thread-safe directed graph with symbolic branch gains
//	• Extraction: input/output detection, forward paths, distinct loops
//	• Mason's Gain Formula: non-touching loop tables, Δ, Δ_k and T
//	• Matrix cross-check: Δ = det(I − A) and T by Cramer's rule
//	• Builders: chains, feedback and feedforward branches, edge-list text
//
// Under the hood, everything is organized under these subpackages:
//
//	symbolic/ - exact expressions: parse, add, multiply, divide, evaluate
//	core/     - Graph, Vertex and Edge types with R/W-locked mutation
//	dfs/      - terminals, forward paths and loops by depth-first search
//	mason/    - non-touching hierarchy, determinants, transfer function
//	matrix/   - gain matrix, Bareiss determinant, Cramer transfer
//	builder/  - deterministic graph constructors and the edge-list parser
//	cmd/mason - command-line front end (solve, extract)
//
// Quick ASCII example:
//
//	       a       b       c
//	  R ─────► A ─────► B ─────► C
//	           ▲        │
//	           └────────┘
//	               L
//
//	Δ = 1 − b·L, T = a·b·c / (1 − b·L)
//
//	go install github.com/katalvlaran/mason/cmd/mason@latest
//	mason solve "R -> A : a; A -> B : b; B -> C : c; B -> A : L"
package mason

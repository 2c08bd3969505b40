// SPDX-License-Identifier: MIT

// Package builder assembles signal-flow graph fixtures in a deterministic,
// "functional-options" style. It is used by tests, benchmarks, examples and
// the mason command to turn a short description into a *core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph, resolve options,
//     apply constructors in order.
//   - Constructors (Constructor implementations):
//     – Chain(n):              forward chain 0 → 1 → … → n-1.
//     – Feedback(from, to, g): backward edge between chain stages.
//     – Feedforward(from, to, g): skip edge between chain stages.
//     – SelfLoop(at, g):       self-loop on a chain stage.
//     – RandomFeedback(k):     k seeded random feedback edges.
//     – EdgeList(text):        "R -> A : a; A -> B : b" edge-list text.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn.
//   - Gain schemes (GainFn): IndexedGainFn ("g1","g2",…), UnitGainFn,
//     ConstantGainFn.
//
// Guarantees:
//
//   - Deterministic: same constructors, options and seed give the same graph,
//     with the same edge IDs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the sentinels of
//     errors.go.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithLoops()},
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Chain(4),              // A -g1-> B -g2-> C -g3-> D
//	    builder.Feedback(2, 1, "-H"),  // C -> B
//	)
package builder

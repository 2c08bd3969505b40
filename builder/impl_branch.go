// SPDX-License-Identifier: MIT
// Package: mason/builder
//
// impl_branch.go - single-branch constructors over existing stages.
//
// Contract:
//   - Stage indices are resolved through cfg.idFn and must name vertices the
//     graph already contains (else ErrBadIndex); run Chain first.
//   - Feedback requires from > to, Feedforward requires to > from, SelfLoop
//     requires core.WithLoops on the graph (else core.ErrLoopNotAllowed).
//   - Gain text is parsed exactly (symbolic.Parse); parse errors wrap
//     symbolic.ErrSyntax.
//
// Complexity: O(1) per branch plus gain parsing.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/symbolic"
)

// Feedback returns a Constructor adding a backward branch from stage from to
// stage to (from > to) with the given gain.
func Feedback(from, to int, gain string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if from <= to {
			return builderErrorf(MethodFeedback, ErrBadIndex, "from=%d must exceed to=%d", from, to)
		}

		return addBranch(g, cfg, MethodFeedback, from, to, gain)
	}
}

// Feedforward returns a Constructor adding a forward skip branch from stage
// from to stage to (to > from). A skip of one stage duplicates a chain branch
// and needs core.WithMultiEdges.
func Feedforward(from, to int, gain string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if to <= from {
			return builderErrorf(MethodFeedforward, ErrBadIndex, "to=%d must exceed from=%d", to, from)
		}

		return addBranch(g, cfg, MethodFeedforward, from, to, gain)
	}
}

// SelfLoop returns a Constructor adding a self-loop with the given gain on
// stage at.
func SelfLoop(at int, gain string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return addBranch(g, cfg, MethodSelfLoop, at, at, gain)
	}
}

// addBranch resolves both stages, parses gain and adds the edge.
func addBranch(g *core.Graph, cfg builderConfig, method string, from, to int, gain string) error {
	u, err := existingStage(g, cfg, method, from)
	if err != nil {
		return err
	}
	v, err := existingStage(g, cfg, method, to)
	if err != nil {
		return err
	}
	w, err := symbolic.Parse(gain)
	if err != nil {
		return fmt.Errorf("%s: gain of %s→%s: %w", method, u, v, err)
	}
	if _, err = g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, %s): %w", method, u, v, w, err)
	}

	return nil
}

// existingStage maps idx to a vertex ID present in g.
func existingStage(g *core.Graph, cfg builderConfig, method string, idx int) (string, error) {
	id, ok := stageID(cfg.idFn, idx)
	if !ok || !g.HasVertex(id) {
		return "", builderErrorf(method, ErrBadIndex, "stage %d not in graph", idx)
	}

	return id, nil
}

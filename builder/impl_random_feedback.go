// SPDX-License-Identifier: MIT
// Package: mason/builder
//
// impl_random_feedback.go - implementation of RandomFeedback(k) constructor.
//
// Contract:
//   - k ≥ 0; cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Requires at least minRandomFeedbackStages stages 0..m-1 already in the
//     graph, i.e. the vertices cfg.idFn(0..m-1) for the largest such m.
//   - Draws k pairs 1 ≤ to < from ≤ m-2 uniformly and adds from → to with gain
//     "h1".."hk". Stage 0 and stage m-1 are never touched, so they stay the
//     input and output nodes.
//     Repeated pairs become parallel edges and need core.WithMultiEdges.
//
// Determinism:
//   - Draw order is fixed: for each i asc, from then to.
//   - Deterministic for fixed seed and options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/symbolic"
)

// minRandomFeedbackStages leaves two interior stages between the terminals.
const minRandomFeedbackStages = 4

// RandomFeedback returns a Constructor adding k random feedback branches over
// the existing chain stages.
func RandomFeedback(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return builderErrorf(MethodRandomFeedback, ErrTooFewVertices, "k=%d < 0", k)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomFeedback, ErrNeedRandSource, "k=%d", k)
		}

		// Count the contiguous stages 0..m-1 present in g.
		var ids []string
		for i := 0; ; i++ {
			id, ok := stageID(cfg.idFn, i)
			if !ok || !g.HasVertex(id) {
				break
			}
			ids = append(ids, id)
		}
		m := len(ids)
		if m < minRandomFeedbackStages {
			return builderErrorf(MethodRandomFeedback, ErrTooFewVertices, "stages=%d < min=%d", m, minRandomFeedbackStages)
		}

		for i := 0; i < k; i++ {
			from := 2 + cfg.rng.Intn(m-3) // 2..m-2
			to := 1 + cfg.rng.Intn(from-1) // 1..from-1
			u, v := ids[from], ids[to]
			gain := symbolic.Var(fmt.Sprintf("%s%d", RandomFeedbackPrefix, i+1))
			if _, err := g.AddEdge(u, v, gain); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, %s): %w", MethodRandomFeedback, u, v, gain, err)
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: mason/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ MinChainNodes (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits branches (i-1) -> i for i=1..n-1 with gain cfg.gainFn(i-1).
//   - Returns only wrapped errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
)

// Chain returns a Constructor that builds the forward chain 0 → 1 → … → n-1.
// Stage 0 becomes the input node and stage n-1 the output node unless later
// constructors attach more branches.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinChainNodes {
			return builderErrorf(MethodChain, ErrTooFewVertices, "n=%d < min=%d", n, MinChainNodes)
		}

		// Resolve all IDs first so a panicking IDFn leaves g untouched.
		ids := make([]string, n)
		for i := range ids {
			id, ok := stageID(cfg.idFn, i)
			if !ok {
				return builderErrorf(MethodChain, ErrBadIndex, "no vertex ID for stage %d", i)
			}
			ids[i] = id
		}

		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodChain, id, err)
			}
		}

		for i := 1; i < n; i++ {
			u, v := ids[i-1], ids[i]
			gain := cfg.gainFn(i - 1)
			if _, err := g.AddEdge(u, v, gain); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, %s): %w", MethodChain, u, v, gain, err)
			}
		}

		return nil
	}
}

// stageID evaluates fn at idx, reporting false for negative indices or when
// fn panics (e.g. SymbolIDFn past "Z").
func stageID(fn IDFn, idx int) (id string, ok bool) {
	if idx < 0 {
		return "", false
	}
	defer func() {
		if recover() != nil {
			id, ok = "", false
		}
	}()

	return fn(idx), true
}

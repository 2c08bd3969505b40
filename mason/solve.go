// SPDX-License-Identifier: MIT

package mason

import (
	"fmt"

	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/symbolic"
)

// Solve applies Mason's Gain Formula to an inventory of forward paths and loops.
//
// Steps:
//  1. Build the hierarchy of all loops and fold it into Δ.
//  2. For every path k, in parallel: keep the loops that share no vertex with
//     the path, build their hierarchy and fold it into Δ_k (1 if none remain).
//  3. Numerator = Σ P_k·Δ_k.
//  4. T = Numerator/Δ. No paths gives T = 0; Δ ≡ 0 with paths sets Unbounded.
//
// Concurrency: each cofactor goroutine reads the shared, immutable loop
// inventory and writes only its own slot of Cofactors/PathTables.
//
// Errors: ErrCombinationLimit, ErrMalformedLoop, ctx.Err().
func Solve(paths []dfs.Path, loops []dfs.Loop, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	// 1) Δ
	table, err := hierarchy(o.Ctx, loops, nil, o.MaxCombinations)
	if err != nil {
		return nil, fmt.Errorf("Solve: Δ: %w", err)
	}
	res := &Result{
		Delta:      Determinant(table),
		Table:      table,
		Cofactors:  make([]symbolic.Expr, len(paths)),
		PathTables: make([]Table, len(paths)),
	}

	// 2) Δ_k
	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Concurrency)
	for k := range paths {
		k := k
		g.Go(func() error {
			subset := untouched(paths[k], loops)
			tbl, err := hierarchy(gctx, loops, subset, o.MaxCombinations)
			if err != nil {
				return fmt.Errorf("Solve: Δ_%d: %w", k+1, err)
			}
			res.PathTables[k] = tbl
			res.Cofactors[k] = Determinant(tbl)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// 3) Σ P_k·Δ_k
	terms := make([]symbolic.Expr, len(paths))
	for k, p := range paths {
		terms[k] = p.Weight.Mul(res.Cofactors[k])
	}
	res.Numerator = symbolic.Sum(terms...)

	// 4) T
	switch {
	case len(paths) == 0:
		res.Transfer = symbolic.Zero()
	case res.Delta.IsZero():
		res.Unbounded = true
		klog.V(2).Infof("mason: Δ ≡ 0, transfer function is unbounded")
	default:
		if res.Transfer, err = res.Numerator.Quo(res.Delta); err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
	}
	klog.V(2).Infof("mason: %d paths, %d loops, %d non-touching levels", len(paths), len(loops), len(table))

	return res, nil
}

// untouched returns the indices of the loops sharing no vertex with p.
func untouched(p dfs.Path, loops []dfs.Loop) []int {
	out := make([]int, 0, len(loops))
	for i, l := range loops {
		if dfs.Disjoint(p.Vertices(), l.Vertices()) {
			out = append(out, i)
		}
	}

	return out
}

// Analyze extracts the inventory of g and solves it.
//
// Structural errors from dfs (e.g. *dfs.GraphStructureError) are returned unchanged.
func Analyze(g *core.Graph, opts ...Option) (*Analysis, error) {
	o := buildOptions(opts)
	extractOpts := append([]dfs.Option{dfs.WithContext(o.Ctx)}, o.Extract...)

	inv, err := dfs.Extract(g, extractOpts...)
	if err != nil {
		return nil, err
	}
	res, err := Solve(inv.Paths, inv.Loops, opts...)
	if err != nil {
		return nil, err
	}

	return &Analysis{Inventory: inv, Result: res}, nil
}

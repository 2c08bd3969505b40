// SPDX-License-Identifier: MIT

// Package mason evaluates Mason's Gain Formula over the inventory produced by
// package dfs.
//
//	T = Σ_k P_k·Δ_k / Δ
//	Δ = 1 − ΣL_i + ΣL_iL_j − ΣL_iL_jL_k + …
//
// The sums run over combinations of pairwise non-touching loops (no shared
// vertex). Hierarchy builds those combinations level by level: level 0 is
// every single loop, level n adds one more disjoint loop of higher index to
// each level n-1 combination, and construction stops at the first empty
// level. Determinant folds a hierarchy into Δ with alternating signs.
// Δ_k is the same construction restricted to loops that do not touch path k.
//
// All arithmetic is exact (package symbolic). Δ ≡ 0 is not an error: the
// Result reports Unbounded. An inventory without forward paths gives T = 0.
//
// Cofactors are computed concurrently with errgroup, bounded by
// WithConcurrency. Combination counts grow exponentially with the number of
// mutually disjoint loops; WithMaxCombinations bounds them.
package mason

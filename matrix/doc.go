// SPDX-License-Identifier: MIT

// Package matrix offers the linear-algebra view of a signal-flow graph.
//
// The node equations of a signal-flow graph are x_j = Σ_i A[i][j]·x_i + u_j,
// where A is the gain (adjacency) matrix: A[i][j] is the sum of the gains of
// every branch i → j. Two classical identities follow:
//
//	Δ = det(I − A)                    (the graph determinant)
//	T = det(M_out) / det(I − Aᵀ)      (Cramer's rule on (I − Aᵀ)·x = e_in)
//
// where M_out is I − Aᵀ with column out replaced by e_in. These give an
// independent route to the results of package mason and are used to
// cross-check them.
//
// Entries are exact symbolic.Expr values; the determinant uses fraction-free
// Bareiss elimination with row pivoting, O(n³) expression operations.
// Matrices are dense and intended for small graphs.
package matrix

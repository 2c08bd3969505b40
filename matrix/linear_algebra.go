// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/symbolic"
)

// Det returns the determinant of a square matrix by Bareiss elimination.
//
// Each step k replaces the trailing block by
//
//	M[i][j] ← (M[k][k]·M[i][j] − M[i][k]·M[k][j]) / p
//
// with p the previous pivot, so the last pivot is the determinant. A zero
// pivot is replaced by the first lower row with a non-zero entry in the
// column (flipping the sign); no such row means det = 0.
//
// Errors: ErrNonSquare.
func Det(m *Dense) (symbolic.Expr, error) {
	if m.r != m.c {
		return symbolic.Expr{}, matrixErrorf(opDet, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}
	n := m.r
	if n == 0 {
		return symbolic.One(), nil
	}

	a := m.Clone().data
	at := func(i, j int) symbolic.Expr { return a[i*n+j] }
	negate := false
	prev := symbolic.One()

	for k := 0; k < n-1; k++ {
		if at(k, k).IsZero() {
			swap := -1
			for i := k + 1; i < n; i++ {
				if !at(i, k).IsZero() {
					swap = i
					break
				}
			}
			if swap < 0 {
				return symbolic.Zero(), nil
			}
			for j := 0; j < n; j++ {
				a[k*n+j], a[swap*n+j] = a[swap*n+j], a[k*n+j]
			}
			negate = !negate
		}

		pivot := at(k, k)
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				v, err := pivot.Mul(at(i, j)).Sub(at(i, k).Mul(at(k, j))).Quo(prev)
				if err != nil {
					return symbolic.Expr{}, matrixErrorf(opDet, err)
				}
				a[i*n+j] = v
			}
			a[i*n+k] = symbolic.Zero()
		}
		prev = pivot
	}

	d := at(n-1, n-1)
	if negate {
		d = d.Neg()
	}

	return d, nil
}

// Characteristic returns I − A for the gain matrix A of g.
func Characteristic(g *core.Graph) (*Dense, *AdjacencyMatrix, error) {
	am, err := NewAdjacencyMatrix(g)
	if err != nil {
		return nil, nil, err
	}
	id, err := Identity(am.VertexCount())
	if err != nil {
		return nil, nil, err
	}
	m, err := Sub(id, am.Mat)
	if err != nil {
		return nil, nil, err
	}

	return m, am, nil
}

// Determinant returns det(I − A), which equals the graph determinant Δ of
// Mason's Gain Formula over the distinct loops of g.
func Determinant(g *core.Graph) (symbolic.Expr, error) {
	m, _, err := Characteristic(g)
	if err != nil {
		return symbolic.Expr{}, err
	}

	return Det(m)
}

// Transfer solves the node equations (I − Aᵀ)·x = e_in by Cramer's rule and
// returns x_out, the transfer function from input to output.
//
// Errors: ErrGraphNil, ErrUnknownVertex, ErrSingular (det(I − A) ≡ 0).
func Transfer(g *core.Graph, input, output string) (symbolic.Expr, error) {
	m, am, err := Characteristic(g)
	if err != nil {
		return symbolic.Expr{}, matrixErrorf(opTransfer, err)
	}
	in, err := am.Index(input)
	if err != nil {
		return symbolic.Expr{}, matrixErrorf(opTransfer, err)
	}
	out, err := am.Index(output)
	if err != nil {
		return symbolic.Expr{}, matrixErrorf(opTransfer, err)
	}

	sys := m.Transpose()
	delta, err := Det(sys)
	if err != nil {
		return symbolic.Expr{}, matrixErrorf(opTransfer, err)
	}
	if delta.IsZero() {
		return symbolic.Expr{}, matrixErrorf(opTransfer, ErrSingular)
	}

	// Replace column out with e_in.
	cramer := sys.Clone()
	for i := 0; i < cramer.r; i++ {
		v := symbolic.Zero()
		if i == in {
			v = symbolic.One()
		}
		cramer.data[i*cramer.c+out] = v
	}
	num, err := Det(cramer)
	if err != nil {
		return symbolic.Expr{}, matrixErrorf(opTransfer, err)
	}

	t, err := num.Quo(delta)
	if err != nil {
		return symbolic.Expr{}, matrixErrorf(opTransfer, err)
	}

	return t, nil
}

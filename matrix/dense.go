// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mason/symbolic"
)

// Dense is a row-major matrix of exact symbolic entries.
// The zero value of an entry is 0, so NewDense returns the zero matrix.
type Dense struct {
	r, c int
	data []symbolic.Expr
}

// NewDense returns a rows×cols zero matrix. A 0×0 matrix is valid.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return &Dense{r: rows, c: cols, data: make([]symbolic.Expr, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = symbolic.One()
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the entry at (row, col).
func (m *Dense) At(row, col int) (symbolic.Expr, error) {
	i, err := m.indexOf(row, col)
	if err != nil {
		return symbolic.Expr{}, matrixErrorf(opAt, err)
	}

	return m.data[i], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v symbolic.Expr) error {
	i, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data[i] = v

	return nil
}

// Clone returns a copy of m. Entries are immutable values, so the copy is deep.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]symbolic.Expr(nil), m.data...)}
}

// Transpose returns mᵀ.
func (m *Dense) Transpose() *Dense {
	t := &Dense{r: m.c, c: m.r, data: make([]symbolic.Expr, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Sub returns a − b.
func Sub(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opSub, fmt.Errorf("%dx%d - %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	out := &Dense{r: a.r, c: a.c, data: make([]symbolic.Expr, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i].Sub(b.data[i])
	}

	return out, nil
}

// String renders one bracketed row per line, e.g. "[1, -a]\n[0, 1]".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

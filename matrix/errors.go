// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (wrapped with operation context) and
// tests match them via errors.Is. No function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or cols < 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Sub of
	// matrices with different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates a vertex ID absent from the vertex index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrSingular is returned when det(I − Aᵀ) ≡ 0, so the node equations
	// have no unique solution.
	ErrSingular = errors.New("matrix: singular matrix")
)

// matrixErrorf prefixes err with the operation tag, keeping it matchable.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// operation tags for matrixErrorf.
const (
	opNewDense  = "NewDense"
	opAt        = "At"
	opSet       = "Set"
	opSub       = "Sub"
	opDet       = "Det"
	opAdjacency = "NewAdjacencyMatrix"
	opTransfer  = "Transfer"
)

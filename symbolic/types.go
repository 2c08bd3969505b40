// SPDX-License-Identifier: MIT

package symbolic

import (
	"errors"
	"math/big"
)

// Sentinel errors for expression construction and evaluation.
var (
	// ErrSyntax indicates that expression text could not be parsed.
	ErrSyntax = errors.New("symbolic: syntax error")

	// ErrNonIntegerExponent indicates a power with a fractional exponent.
	ErrNonIntegerExponent = errors.New("symbolic: exponent must be an integer")

	// ErrDivisionByZero indicates a quotient whose divisor is algebraically zero.
	ErrDivisionByZero = errors.New("symbolic: division by zero")

	// ErrUnboundSymbol indicates Eval was called without a value for a free symbol.
	ErrUnboundSymbol = errors.New("symbolic: unbound symbol")
)

// Expr is an exact rational function num/den.
//
// A nil den stands for the constant polynomial 1, which makes the zero value
// of Expr the constant 0. Expr values are immutable; every operation returns
// a fresh, simplified value and never aliases coefficients of its operands.
type Expr struct {
	num poly
	den poly
}

// Int returns the integer constant n.
func Int(n int64) Expr {
	return Rat(big.NewRat(n, 1))
}

// Rat returns the rational constant r. A nil r is treated as 0.
func Rat(r *big.Rat) Expr {
	if r == nil || r.Sign() == 0 {
		return Expr{}
	}

	return Expr{num: constPoly(r)}
}

// Var returns the free symbol name. It panics on an empty name, which is a
// programmer error rather than an input error (parsed text never yields one).
func Var(name string) Expr {
	if name == "" {
		panic("symbolic: Var(\"\")")
	}

	return Expr{num: varPoly(name)}
}

// One is the multiplicative identity.
func One() Expr { return Int(1) }

// Zero is the additive identity; identical to Expr{}.
func Zero() Expr { return Expr{} }

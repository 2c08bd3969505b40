// SPDX-License-Identifier: MIT

// Package symbolic implements the exact algebra used for signal-flow gains.
//
// What:
//
//   - Expr: an immutable rational function N/D where N and D are multivariate
//     polynomials with arbitrary-precision rational coefficients (math/big).
//   - Parse: a participle grammar for gain expressions such as "2*x", "x+x",
//     "1/(s+1)", "-G1*H2", "K*s^-1".
//   - Equal: algebraic equality by cross-multiplication, so "2*x" and "x+x"
//     compare equal even though their source text differs.
//
// Canonical form:
//
//	Every value returned by this package is simplified: common monomial
//	factors of N and D are cancelled, exact polynomial division is attempted
//	in both directions, and D is scaled so its lowest-order term has
//	coefficient 1. Polynomials are kept as sums of monomials; nothing is
//	factored.
//
// Rendering:
//
//	String() prints terms by ascending total degree, then lexicographically,
//	using "*", "/", "^" and parentheses, so the output parses back to an
//	equal expression.
//
// Errors:
//
//   - ErrSyntax               malformed expression text
//   - ErrNonIntegerExponent   exponent is not an integer literal
//   - ErrDivisionByZero       division by an expression equal to zero
//   - ErrUnboundSymbol        Eval without a value for some symbol
//
// The zero value of Expr is the constant 0.
package symbolic

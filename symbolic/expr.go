// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// numer returns the numerator polynomial (zero for the zero value).
func (e Expr) numer() poly { return e.num }

// denom returns the denominator polynomial, materialising the implicit 1.
func (e Expr) denom() poly {
	if e.den.isZero() {
		return constPoly(big.NewRat(1, 1))
	}

	return e.den
}

// hasDen reports whether the denominator differs from 1.
func (e Expr) hasDen() bool { return !e.den.isZero() }

// normalize builds the canonical form of num/den; den must be non-zero.
func normalize(num, den poly) Expr {
	// 1) 0/den is 0.
	if num.isZero() {
		return Expr{}
	}

	// 2) Cancel the common monomial factor.
	if g := num.content().gcd(den.content()); len(g) > 0 {
		num = num.quoMonomial(g)
		den = den.quoMonomial(g)
	}

	// 3) Constant denominator folds into the numerator.
	if c, ok := den.constant(); ok {
		return Expr{num: num.scale(new(big.Rat).Inv(c))}
	}

	// 4) Exact division, then the common polynomial factor.
	if q, ok := num.divExact(den); ok {
		return Expr{num: q}
	}
	if g := gcdPoly(num, den); !g.isConst() {
		num, _ = num.divExact(g)
		den, _ = den.divExact(g)
		if c, ok := den.constant(); ok {
			return Expr{num: num.scale(new(big.Rat).Inv(c))}
		}
	}

	// 5) Scale so the lowest-order denominator term has coefficient 1.
	_, c := den.trail()
	if c.Cmp(big.NewRat(1, 1)) != 0 {
		k := new(big.Rat).Inv(c)
		num, den = num.scale(k), den.scale(k)
	}

	return Expr{num: num, den: den}
}

// Simplify returns the canonical form of e: numerator and denominator share
// no non-constant factor and the lowest-order denominator term has
// coefficient 1. Values produced by this package are already canonical, so
// Simplify is the identity on them.
func (e Expr) Simplify() Expr {
	if !e.hasDen() {
		return Expr{num: e.num.clone()}
	}

	return normalize(e.num, e.den)
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	if !e.hasDen() && !o.hasDen() {
		return Expr{num: e.num.add(o.num)}
	}
	if e.hasDen() && o.hasDen() && e.den.equal(o.den) {
		return normalize(e.num.add(o.num), e.den)
	}
	num := e.numer().mul(o.denom()).add(o.numer().mul(e.denom()))

	return normalize(num, e.denom().mul(o.denom()))
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr { return e.Add(o.Neg()) }

// Neg returns -e.
func (e Expr) Neg() Expr {
	if e.IsZero() {
		return Expr{}
	}

	return Expr{num: e.num.neg(), den: e.den}
}

// Mul returns e * o.
func (e Expr) Mul(o Expr) Expr {
	if e.IsZero() || o.IsZero() {
		return Expr{}
	}
	if !e.hasDen() && !o.hasDen() {
		return Expr{num: e.num.mul(o.num)}
	}

	return normalize(e.numer().mul(o.numer()), e.denom().mul(o.denom()))
}

// Quo returns e / o, or ErrDivisionByZero when o is algebraically zero.
func (e Expr) Quo(o Expr) (Expr, error) {
	if o.IsZero() {
		return Expr{}, ErrDivisionByZero
	}

	return normalize(e.numer().mul(o.denom()), e.denom().mul(o.numer())), nil
}

// Inv returns 1/e.
func (e Expr) Inv() (Expr, error) { return One().Quo(e) }

// Pow returns e^n for any integer n; negative n inverts first.
func (e Expr) Pow(n int) (Expr, error) {
	base := e
	if n < 0 {
		inv, err := e.Inv()
		if err != nil {
			return Expr{}, err
		}
		base, n = inv, -n
	}
	out := One()
	for ; n > 0; n-- {
		out = out.Mul(base)
	}

	return out, nil
}

// Product multiplies xs left to right; the empty product is 1.
func Product(xs ...Expr) Expr {
	out := One()
	for _, x := range xs {
		out = out.Mul(x)
	}

	return out
}

// Sum adds xs left to right; the empty sum is 0.
func Sum(xs ...Expr) Expr {
	var out Expr
	for _, x := range xs {
		out = out.Add(x)
	}

	return out
}

// Equal reports algebraic equality: e.num*o.den == o.num*e.den.
func (e Expr) Equal(o Expr) bool {
	if !e.hasDen() && !o.hasDen() {
		return e.num.equal(o.num)
	}

	return e.numer().mul(o.denom()).equal(o.numer().mul(e.denom()))
}

// IsZero reports whether e is the constant 0.
func (e Expr) IsZero() bool { return e.num.isZero() }

// IsOne reports whether e is the constant 1.
func (e Expr) IsOne() bool {
	c, ok := e.Const()

	return ok && c.Cmp(big.NewRat(1, 1)) == 0
}

// Const returns the value of e when it contains no symbols.
func (e Expr) Const() (*big.Rat, bool) {
	if e.hasDen() {
		return nil, false
	}
	c, ok := e.num.constant()
	if !ok {
		return nil, false
	}

	return new(big.Rat).Set(c), true
}

// IsConst reports whether e contains no symbols.
func (e Expr) IsConst() bool {
	_, ok := e.Const()

	return ok
}

// Num returns the numerator of the canonical form.
func (e Expr) Num() Expr { return Expr{num: e.num.clone()} }

// Den returns the denominator of the canonical form (1 for polynomials).
func (e Expr) Den() Expr { return Expr{num: e.denom()} }

// Vars returns the free symbols of e in ascending order.
func (e Expr) Vars() []string {
	set := make(map[string]struct{})
	e.num.symbols(set)
	e.den.symbols(set)
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Eval substitutes exact values for every symbol.
func (e Expr) Eval(values map[string]*big.Rat) (*big.Rat, error) {
	n, err := e.num.eval(values)
	if err != nil {
		return nil, err
	}
	if !e.hasDen() {
		return n, nil
	}
	d, err := e.den.eval(values)
	if err != nil {
		return nil, err
	}
	if d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return n.Quo(n, d), nil
}

// String renders e in a form Parse accepts.
func (e Expr) String() string {
	if !e.hasDen() {
		return e.num.String()
	}
	num := e.num.String()
	if e.num.size() > 1 {
		num = "(" + num + ")"
	}
	den := e.den.String()
	if e.den.size() > 1 || strings.ContainsAny(den, "*/") {
		den = "(" + den + ")"
	}

	return num + "/" + den
}

// GoString makes %#v print the algebraic form rather than treemap internals.
func (e Expr) GoString() string {
	return fmt.Sprintf("symbolic.MustParse(%q)", e.String())
}

// unboundError names the symbol Eval could not resolve.
type unboundError struct{ sym string }

func (u *unboundError) Error() string { return fmt.Sprintf("symbolic: unbound symbol %q", u.sym) }
func (u *unboundError) Unwrap() error { return ErrUnboundSymbol }

// SPDX-License-Identifier: MIT

package symbolic

import (
	"math/big"
	"sort"
)

// gcdPoly returns the greatest common divisor of p and q over Q[x…], scaled
// so its leading coefficient is 1. gcdPoly(0, 0) is 0.
//
// The recursion picks the alphabetically first symbol x of p and q, views
// both as polynomials in x with coefficients in the remaining symbols, and
// combines the gcd of their contents with a primitive pseudo-remainder
// sequence on their primitive parts.
func gcdPoly(p, q poly) poly {
	switch {
	case p.isZero():
		return monic(q)
	case q.isZero():
		return monic(p)
	}
	if p.isConst() || q.isConst() {
		return constPoly(big.NewRat(1, 1))
	}

	x := mainSymbol(p, q)
	if p.degreeIn(x) == 0 {
		return gcdPoly(p, q.contentIn(x))
	}
	if q.degreeIn(x) == 0 {
		return gcdPoly(p.contentIn(x), q)
	}

	cp, cq := p.contentIn(x), q.contentIn(x)
	c := gcdPoly(cp, cq)
	a, _ := p.divExact(cp)
	b, _ := q.divExact(cq)
	if a.degreeIn(x) < b.degreeIn(x) {
		a, b = b, a
	}
	for {
		r := a.pseudoRem(b, x)
		if r.isZero() {
			break
		}
		if r.degreeIn(x) == 0 {
			b = constPoly(big.NewRat(1, 1))
			break
		}
		rc := r.contentIn(x)
		a = b
		b, _ = r.divExact(rc)
	}

	return monic(c.mul(b))
}

// monic scales p so its leading coefficient is 1.
func monic(p poly) poly {
	if p.isZero() {
		return p
	}
	_, c := p.lead()
	if c.Cmp(big.NewRat(1, 1)) == 0 {
		return p
	}

	return p.scale(new(big.Rat).Inv(c))
}

// mainSymbol returns the alphabetically first symbol of p or q.
func mainSymbol(p, q poly) string {
	set := make(map[string]struct{})
	p.symbols(set)
	q.symbols(set)
	first := ""
	for s := range set {
		if first == "" || s < first {
			first = s
		}
	}

	return first
}

// degreeIn returns the highest power of x in p (0 if x is absent).
func (p poly) degreeIn(x string) int {
	d := 0
	p.each(func(m monomial, _ *big.Rat) {
		if e := m.exponent(x); e > d {
			d = e
		}
	})

	return d
}

// coeffsIn splits p = Σ c_k·x^k and returns c_k by k.
func (p poly) coeffsIn(x string) map[int]poly {
	out := make(map[int]poly)
	p.each(func(m monomial, c *big.Rat) {
		k := m.exponent(x)
		ck, ok := out[k]
		if !ok {
			ck = newPoly()
			out[k] = ck
		}
		ck.addTerm(m.without(x), c)
	})

	return out
}

// contentIn returns the monic gcd of the coefficients of p in x.
func (p poly) contentIn(x string) poly {
	coeffs := p.coeffsIn(x)
	degs := make([]int, 0, len(coeffs))
	for k := range coeffs {
		degs = append(degs, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degs)))

	var g poly
	for _, k := range degs {
		g = gcdPoly(g, coeffs[k])
		if g.isConst() {
			return constPoly(big.NewRat(1, 1))
		}
	}

	return g
}

// pseudoRem returns the pseudo-remainder of p by d in x: repeatedly
// r ← lc(d)·r − lc(r)·x^(deg r − deg d)·d until deg r < deg d.
func (p poly) pseudoRem(d poly, x string) poly {
	n := d.degreeIn(x)
	ld := d.coeffsIn(x)[n]
	r := p.clone()
	for !r.isZero() {
		dr := r.degreeIn(x)
		if dr < n {
			break
		}
		lr := r.coeffsIn(x)[dr]
		shift := lr.mul(d).mul(powerOf(x, dr-n))
		r = ld.mul(r).sub(shift)
	}

	return r
}

// powerOf returns x^k as a polynomial.
func powerOf(x string, k int) poly {
	if k == 0 {
		return constPoly(big.NewRat(1, 1))
	}
	p := newPoly()
	p.addTerm(monomial{{sym: x, exp: k}}, big.NewRat(1, 1))

	return p
}

// isConst reports whether p has no symbols.
func (p poly) isConst() bool {
	_, ok := p.constant()

	return ok
}

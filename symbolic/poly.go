// SPDX-License-Identifier: MIT

package symbolic

import (
	"math/big"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// poly is a sparse multivariate polynomial: monomial -> *big.Rat, kept in a
// treemap ordered by compareMonomials so the leading term is Max().
// Stored coefficients are never zero and never shared with another poly.
// A nil terms map is the zero polynomial.
type poly struct {
	terms *treemap.Map
}

func newPoly() poly {
	return poly{terms: treemap.NewWith(compareMonomials)}
}

func constPoly(c *big.Rat) poly {
	p := newPoly()
	p.addTerm(monomial{}, c)

	return p
}

func varPoly(name string) poly {
	p := newPoly()
	p.addTerm(monomial{{sym: name, exp: 1}}, big.NewRat(1, 1))

	return p
}

func (p poly) isZero() bool {
	return p.terms == nil || p.terms.Empty()
}

func (p poly) size() int {
	if p.terms == nil {
		return 0
	}

	return p.terms.Size()
}

// each visits terms in ascending monomial order.
func (p poly) each(fn func(m monomial, c *big.Rat)) {
	if p.terms == nil {
		return
	}
	it := p.terms.Iterator()
	for it.Next() {
		fn(it.Key().(monomial), it.Value().(*big.Rat))
	}
}

// addTerm accumulates c*m into p in place. Only used on polys under construction.
func (p poly) addTerm(m monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	sum := new(big.Rat).Set(c)
	if old, ok := p.terms.Get(m); ok {
		sum.Add(sum, old.(*big.Rat))
	}
	if sum.Sign() == 0 {
		p.terms.Remove(m)
		return
	}
	p.terms.Put(m, sum)
}

func (p poly) clone() poly {
	out := newPoly()
	p.each(func(m monomial, c *big.Rat) { out.addTerm(m, c) })

	return out
}

func (p poly) add(q poly) poly {
	out := p.clone()
	q.each(func(m monomial, c *big.Rat) { out.addTerm(m, c) })

	return out
}

func (p poly) neg() poly {
	return p.scale(big.NewRat(-1, 1))
}

func (p poly) sub(q poly) poly {
	return p.add(q.neg())
}

func (p poly) scale(k *big.Rat) poly {
	out := newPoly()
	p.each(func(m monomial, c *big.Rat) { out.addTerm(m, new(big.Rat).Mul(c, k)) })

	return out
}

func (p poly) mulTerm(tm monomial, tc *big.Rat) poly {
	out := newPoly()
	p.each(func(m monomial, c *big.Rat) { out.addTerm(m.mul(tm), new(big.Rat).Mul(c, tc)) })

	return out
}

func (p poly) mul(q poly) poly {
	out := newPoly()
	p.each(func(pm monomial, pc *big.Rat) {
		q.each(func(qm monomial, qc *big.Rat) {
			out.addTerm(pm.mul(qm), new(big.Rat).Mul(pc, qc))
		})
	})

	return out
}

func (p poly) equal(q poly) bool {
	if p.size() != q.size() {
		return false
	}

	return p.sub(q).isZero()
}

// lead returns the greatest term under the graded order.
func (p poly) lead() (monomial, *big.Rat) {
	k, v := p.terms.Max()

	return k.(monomial), v.(*big.Rat)
}

// trail returns the smallest term under the graded order.
func (p poly) trail() (monomial, *big.Rat) {
	k, v := p.terms.Min()

	return k.(monomial), v.(*big.Rat)
}

// constant reports whether p has no symbols, returning its value.
func (p poly) constant() (*big.Rat, bool) {
	switch p.size() {
	case 0:
		return new(big.Rat), true
	case 1:
		m, c := p.lead()
		if len(m) == 0 {
			return c, true
		}
	}

	return nil, false
}

// content returns the gcd of all monomials of p (p must be non-zero).
func (p poly) content() monomial {
	var g monomial
	first := true
	p.each(func(m monomial, _ *big.Rat) {
		if first {
			g, first = m, false
			return
		}
		g = g.gcd(m)
	})

	return g
}

// quoMonomial divides every term by d; d must divide every monomial of p.
func (p poly) quoMonomial(d monomial) poly {
	out := newPoly()
	p.each(func(m monomial, c *big.Rat) {
		q, _ := m.quo(d)
		out.addTerm(q, c)
	})

	return out
}

// divExact performs multivariate division by d and reports whether the
// remainder is zero. If d divides p, lt(d) divides the leading term of every
// intermediate remainder, so the first failure proves d does not divide p.
func (p poly) divExact(d poly) (poly, bool) {
	if d.isZero() {
		return poly{}, false
	}
	dm, dc := d.lead()
	q := newPoly()
	r := p.clone()
	for !r.isZero() {
		rm, rc := r.lead()
		tm, ok := rm.quo(dm)
		if !ok {
			return poly{}, false
		}
		tc := new(big.Rat).Quo(rc, dc)
		q.addTerm(tm, tc)
		r = r.sub(d.mulTerm(tm, tc))
	}

	return q, true
}

func (p poly) symbols(into map[string]struct{}) {
	p.each(func(m monomial, _ *big.Rat) {
		for _, f := range m {
			into[f.sym] = struct{}{}
		}
	})
}

func (p poly) eval(values map[string]*big.Rat) (*big.Rat, error) {
	sum := new(big.Rat)
	var err error
	p.each(func(m monomial, c *big.Rat) {
		if err != nil {
			return
		}
		term := new(big.Rat).Set(c)
		for _, f := range m {
			v, ok := values[f.sym]
			if !ok || v == nil {
				err = &unboundError{sym: f.sym}
				return
			}
			for i := 0; i < f.exp; i++ {
				term.Mul(term, v)
			}
		}
		sum.Add(sum, term)
	})

	return sum, err
}

// displayTerms returns terms ordered for printing: ascending total degree,
// then by the monomial's text.
func (p poly) displayTerms() []displayTerm {
	out := make([]displayTerm, 0, p.size())
	p.each(func(m monomial, c *big.Rat) {
		out = append(out, displayTerm{mono: m, text: m.String(), coef: c})
	})
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].mono.degree(), out[j].mono.degree()
		if di != dj {
			return di < dj
		}
		return out[i].text < out[j].text
	})

	return out
}

type displayTerm struct {
	mono monomial
	text string
	coef *big.Rat
}

// String renders p as a sum; the zero polynomial renders as "0".
func (p poly) String() string {
	if p.isZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.displayTerms() {
		s := formatTerm(t)
		if i == 0 {
			sb.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}

	return sb.String()
}

func formatTerm(t displayTerm) string {
	if len(t.mono) == 0 {
		return t.coef.RatString()
	}
	switch {
	case t.coef.Cmp(big.NewRat(1, 1)) == 0:
		return t.text
	case t.coef.Cmp(big.NewRat(-1, 1)) == 0:
		return "-" + t.text
	default:
		return t.coef.RatString() + "*" + t.text
	}
}

// SPDX-License-Identifier: MIT

package symbolic

import (
	"strconv"
	"strings"
)

// factor is one symbol raised to a positive power.
type factor struct {
	sym string
	exp int
}

// monomial is a product of factors sorted by symbol name; the empty monomial is 1.
type monomial []factor

// degree returns the total degree (sum of exponents).
func (m monomial) degree() int {
	d := 0
	for _, f := range m {
		d += f.exp
	}

	return d
}

// mul merges two sorted factor lists, adding exponents of shared symbols.
func (m monomial) mul(o monomial) monomial {
	out := make(monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].sym == o[j].sym:
			out = append(out, factor{sym: m[i].sym, exp: m[i].exp + o[j].exp})
			i++
			j++
		case m[i].sym < o[j].sym:
			out = append(out, m[i])
			i++
		default:
			out = append(out, o[j])
			j++
		}
	}
	out = append(out, m[i:]...)
	out = append(out, o[j:]...)

	return out
}

// quo returns m/o when o divides m.
func (m monomial) quo(o monomial) (monomial, bool) {
	out := make(monomial, 0, len(m))
	j := 0
	for _, f := range m {
		if j < len(o) && o[j].sym < f.sym {
			return nil, false // o has a symbol m lacks
		}
		if j < len(o) && o[j].sym == f.sym {
			switch {
			case o[j].exp > f.exp:
				return nil, false
			case o[j].exp < f.exp:
				out = append(out, factor{sym: f.sym, exp: f.exp - o[j].exp})
			}
			j++
			continue
		}
		out = append(out, f)
	}
	if j < len(o) {
		return nil, false
	}

	return out, true
}

// gcd returns the largest monomial dividing both m and o.
func (m monomial) gcd(o monomial) monomial {
	var out monomial
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].sym == o[j].sym:
			e := m[i].exp
			if o[j].exp < e {
				e = o[j].exp
			}
			out = append(out, factor{sym: m[i].sym, exp: e})
			i++
			j++
		case m[i].sym < o[j].sym:
			i++
		default:
			j++
		}
	}

	return out
}

// String renders the monomial as "L*b^2"; the empty monomial renders as "".
func (m monomial) String() string {
	var sb strings.Builder
	for i, f := range m {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(f.sym)
		if f.exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(f.exp))
		}
	}

	return sb.String()
}

// compareMonomials is the graded lexicographic order used as the treemap
// comparator: higher total degree is greater; ties are broken at the
// alphabetically first symbol whose exponents differ, larger exponent greater.
func compareMonomials(a, b interface{}) int {
	x, y := a.(monomial), b.(monomial)
	if dx, dy := x.degree(), y.degree(); dx != dy {
		if dx < dy {
			return -1
		}
		return 1
	}

	i, j := 0, 0
	for i < len(x) || j < len(y) {
		var ex, ey int
		switch {
		case j >= len(y) || (i < len(x) && x[i].sym < y[j].sym):
			ex = x[i].exp
			i++
		case i >= len(x) || y[j].sym < x[i].sym:
			ey = y[j].exp
			j++
		default:
			ex, ey = x[i].exp, y[j].exp
			i++
			j++
		}
		if ex != ey {
			if ex < ey {
				return -1
			}
			return 1
		}
	}

	return 0
}

// exponent returns the power of sym in m (0 if absent).
func (m monomial) exponent(sym string) int {
	for _, f := range m {
		if f.sym == sym {
			return f.exp
		}
	}

	return 0
}

// without returns m with every power of sym removed.
func (m monomial) without(sym string) monomial {
	out := make(monomial, 0, len(m))
	for _, f := range m {
		if f.sym != sym {
			out = append(out, f)
		}
	}

	return out
}

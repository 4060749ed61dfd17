package scalar

import (
	"strconv"
	"strings"
)

// power is one factor name^exp of a monomial; exp is always > 0.
type power struct {
	name string
	exp  int
}

// monomial is a product of powers sorted by name. The empty monomial is 1.
type monomial []power

// degree returns the total degree of m.
func (m monomial) degree() int {
	d := 0
	for _, p := range m {
		d += p.exp
	}

	return d
}

// key returns the canonical textual form of m, e.g. "x^2*y". The empty
// monomial has key "".
func (m monomial) key() string {
	var sb strings.Builder
	for i, p := range m {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(p.name)
		if p.exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(p.exp))
		}
	}

	return sb.String()
}

// mul returns m*o by merging both sorted factor lists.
func (m monomial) mul(o monomial) monomial {
	out := make(monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].name == o[j].name:
			out = append(out, power{m[i].name, m[i].exp + o[j].exp})
			i++
			j++
		case m[i].name < o[j].name:
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

// exp returns the exponent of name in m (0 if absent).
func (m monomial) exp(name string) int {
	for _, p := range m {
		if p.name == name {
			return p.exp
		}
	}

	return 0
}

// divides reports whether m divides o.
func (m monomial) divides(o monomial) bool {
	for _, p := range m {
		if o.exp(p.name) < p.exp {
			return false
		}
	}

	return true
}

// quo returns o/m; callers must check m.divides(o) first.
func (m monomial) quo(o monomial) monomial {
	out := make(monomial, 0, len(o))
	for _, p := range o {
		e := p.exp - m.exp(p.name)
		if e > 0 {
			out = append(out, power{p.name, e})
		}
	}

	return out
}

// gcd returns the greatest common monomial divisor of m and o.
func (m monomial) gcd(o monomial) monomial {
	out := make(monomial, 0, len(m))
	for _, p := range m {
		if e := min(p.exp, o.exp(p.name)); e > 0 {
			out = append(out, power{p.name, e})
		}
	}

	return out
}

// diff returns the exponent of v in m and the monomial m/v, i.e. the
// derivative d(m)/dv is exp * rest. exp == 0 means the derivative vanishes.
func (m monomial) diff(v string) (int, monomial) {
	e := m.exp(v)
	if e == 0 {
		return 0, nil
	}
	out := make(monomial, 0, len(m))
	for _, p := range m {
		switch {
		case p.name != v:
			out = append(out, p)
		case p.exp > 1:
			out = append(out, power{p.name, p.exp - 1})
		}
	}

	return e, out
}

// cmpGrlex orders monomials by graded lexicographic order with variables
// ranked alphabetically (a > b > ...). It returns +1 if m > o, -1 if m < o.
// The order is multiplicative, which the division algorithm relies on.
func cmpGrlex(m, o monomial) int {
	if dm, do := m.degree(), o.degree(); dm != do {
		if dm > do {
			return 1
		}

		return -1
	}
	i, j := 0, 0
	for i < len(m) || j < len(o) {
		var name string
		switch {
		case i >= len(m):
			name = o[j].name
		case j >= len(o):
			name = m[i].name
		case m[i].name < o[j].name:
			name = m[i].name
		default:
			name = o[j].name
		}
		em, eo := 0, 0
		if i < len(m) && m[i].name == name {
			em = m[i].exp
			i++
		}
		if j < len(o) && o[j].name == name {
			eo = o[j].exp
			j++
		}
		if em != eo {
			if em > eo {
				return 1
			}

			return -1
		}
	}

	return 0
}

package scalar

import (
	"math/big"
	"slices"
	"strings"
)

// term is coef*mono. coef is never mutated after construction.
type term struct {
	mono monomial
	coef *big.Rat
}

// poly is a canonical polynomial: terms sorted by descending grlex order,
// distinct monomials, no zero coefficients. The nil poly is 0.
type poly []term

var ratOne = big.NewRat(1, 1)

// constPoly returns the constant polynomial r.
func constPoly(r *big.Rat) poly {
	if r.Sign() == 0 {
		return nil
	}

	return poly{{mono: nil, coef: new(big.Rat).Set(r)}}
}

// collect merges raw terms into canonical form.
func collect(raw []term) poly {
	byKey := make(map[string]int, len(raw))
	out := make(poly, 0, len(raw))
	for _, t := range raw {
		k := t.mono.key()
		if i, ok := byKey[k]; ok {
			out[i].coef = new(big.Rat).Add(out[i].coef, t.coef)
			continue
		}
		byKey[k] = len(out)
		out = append(out, term{mono: t.mono, coef: new(big.Rat).Set(t.coef)})
	}
	out = slices.DeleteFunc(out, func(t term) bool { return t.coef.Sign() == 0 })
	slices.SortFunc(out, func(a, b term) int { return -cmpGrlex(a.mono, b.mono) })
	if len(out) == 0 {
		return nil
	}

	return out
}

func (p poly) isZero() bool { return len(p) == 0 }

// isConst reports whether p has no symbol (0 included).
func (p poly) isConst() bool {
	return len(p) == 0 || (len(p) == 1 && len(p[0].mono) == 0)
}

// constant returns the value of a constant polynomial.
func (p poly) constant() *big.Rat {
	if len(p) == 0 {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p[0].coef)
}

func (p poly) isOne() bool {
	return len(p) == 1 && len(p[0].mono) == 0 && p[0].coef.Cmp(ratOne) == 0
}

func (p poly) equal(q poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].coef.Cmp(q[i].coef) != 0 || cmpGrlex(p[i].mono, q[i].mono) != 0 {
			return false
		}
	}

	return true
}

func addPoly(p, q poly) poly {
	raw := make([]term, 0, len(p)+len(q))
	raw = append(raw, p...)
	raw = append(raw, q...)

	return collect(raw)
}

func (p poly) neg() poly {
	out := make(poly, len(p))
	for i, t := range p {
		out[i] = term{mono: t.mono, coef: new(big.Rat).Neg(t.coef)}
	}

	return out
}

func (p poly) scale(r *big.Rat) poly {
	if r.Sign() == 0 {
		return nil
	}
	out := make(poly, len(p))
	for i, t := range p {
		out[i] = term{mono: t.mono, coef: new(big.Rat).Mul(t.coef, r)}
	}

	return out
}

func (p poly) mulTerm(t term) poly {
	raw := make([]term, len(p))
	for i, s := range p {
		raw[i] = term{mono: s.mono.mul(t.mono), coef: new(big.Rat).Mul(s.coef, t.coef)}
	}

	return collect(raw)
}

func mulPoly(p, q poly) poly {
	raw := make([]term, 0, len(p)*len(q))
	for _, s := range p {
		for _, t := range q {
			raw = append(raw, term{mono: s.mono.mul(t.mono), coef: new(big.Rat).Mul(s.coef, t.coef)})
		}
	}

	return collect(raw)
}

// diff returns the partial derivative of p with respect to v.
func (p poly) diff(v string) poly {
	raw := make([]term, 0, len(p))
	for _, t := range p {
		e, rest := t.mono.diff(v)
		if e == 0 {
			continue
		}
		raw = append(raw, term{mono: rest, coef: new(big.Rat).Mul(t.coef, big.NewRat(int64(e), 1))})
	}

	return collect(raw)
}

// content returns the gcd of all monomials of p.
func (p poly) content() monomial {
	if len(p) == 0 {
		return nil
	}
	g := p[0].mono
	for _, t := range p[1:] {
		g = g.gcd(t.mono)
	}

	return g
}

// divMono divides every term of p by m; m must divide p.content().
func (p poly) divMono(m monomial) poly {
	raw := make([]term, len(p))
	for i, t := range p {
		raw[i] = term{mono: m.quo(t.mono), coef: t.coef}
	}

	return collect(raw)
}

// divExact returns p/q when q divides p exactly. It runs the multivariate
// division algorithm in grlex order; for a single divisor the remainder is
// zero iff q | p.
func divExact(p, q poly) (poly, bool) {
	if q.isZero() {
		return nil, false
	}
	lq := q[0]
	var quo []term
	r := p
	for !r.isZero() {
		lt := r[0]
		if !lq.mono.divides(lt.mono) {
			return nil, false
		}
		t := term{mono: lq.mono.quo(lt.mono), coef: new(big.Rat).Quo(lt.coef, lq.coef)}
		quo = append(quo, t)
		r = addPoly(r, q.mulTerm(t).neg())
	}

	return collect(quo), true
}

// names adds every symbol of p into set.
func (p poly) names(set map[string]struct{}) {
	for _, t := range p {
		for _, f := range t.mono {
			set[f.name] = struct{}{}
		}
	}
}

// terms reports the number of terms.
func (p poly) terms() int { return len(p) }

// singlePower reports whether p is exactly one symbol power with unit coefficient.
func (p poly) singlePower() bool {
	return len(p) == 1 && len(p[0].mono) == 1 && p[0].coef.Cmp(ratOne) == 0
}

func (p poly) String() string {
	if len(p) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p {
		s := formatTerm(t)
		if i > 0 {
			if strings.HasPrefix(s, "-") {
				sb.WriteString(" - ")
				s = s[1:]
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(s)
	}

	return sb.String()
}

func formatTerm(t term) string {
	k := t.mono.key()
	switch {
	case k == "":
		return t.coef.RatString()
	case t.coef.Cmp(ratOne) == 0:
		return k
	case t.coef.Cmp(big.NewRat(-1, 1)) == 0:
		return "-" + k
	default:
		return t.coef.RatString() + "*" + k
	}
}

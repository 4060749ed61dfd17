package scalar

import (
	"fmt"
	"math/big"
	"slices"
)

// Expr is an immutable scalar expression num/den. The zero value is 0.
//
// Invariants (kept by every constructor):
//   - num and den are canonical polynomials;
//   - den is nil (meaning 1) or non-constant with leading coefficient 1;
//   - num and den share no common monomial factor;
//   - if num is 0 then den is nil.
type Expr struct {
	num poly
	den poly
}

// Zero returns the scalar 0.
func Zero() Expr { return Expr{} }

// One returns the scalar 1.
func One() Expr { return Int(1) }

// Int returns the integer constant n.
func Int(n int64) Expr { return Expr{num: constPoly(big.NewRat(n, 1))} }

// Rat returns the rational constant a/b. It panics if b == 0, like big.NewRat.
func Rat(a, b int64) Expr { return Expr{num: constPoly(big.NewRat(a, b))} }

// FromRat returns the constant r.
func FromRat(r *big.Rat) Expr { return Expr{num: constPoly(r)} }

// Symbol returns the free symbol name. The name is used verbatim; Parse
// restricts names to identifiers but Symbol does not.
func Symbol(name string) Expr {
	return Expr{num: poly{{mono: monomial{{name: name, exp: 1}}, coef: big.NewRat(1, 1)}}}
}

// newExpr builds num/den and reduces it to the invariants above.
//
// Implementation:
//   - Stage 1: zero numerator or unit denominator short-circuit.
//   - Stage 2: constant denominator folds into the numerator.
//   - Stage 3: exact polynomial division num/den.
//   - Stage 4: cancel the common monomial factor, make den monic.
func newExpr(num, den poly) Expr {
	if num.isZero() {
		return Expr{}
	}
	if den == nil || den.isOne() {
		return Expr{num: num}
	}
	if den.isConst() {
		return Expr{num: num.scale(new(big.Rat).Inv(den.constant()))}
	}
	if q, ok := divExact(num, den); ok {
		return Expr{num: q}
	}
	if g := num.content().gcd(den.content()); len(g) > 0 {
		num, den = num.divMono(g), den.divMono(g)
		if den.isConst() {
			return Expr{num: num.scale(new(big.Rat).Inv(den.constant()))}
		}
	}
	if lc := den[0].coef; lc.Cmp(ratOne) != 0 {
		inv := new(big.Rat).Inv(lc)
		num, den = num.scale(inv), den.scale(inv)
	}

	return Expr{num: num, den: den}
}

// denom returns the denominator with nil expanded to 1.
func (e Expr) denom() poly {
	if e.den == nil {
		return constPoly(ratOne)
	}

	return e.den
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	if e.den.equal(o.den) {
		return newExpr(addPoly(e.num, o.num), e.den)
	}
	ed, od := e.denom(), o.denom()

	return newExpr(addPoly(mulPoly(e.num, od), mulPoly(o.num, ed)), mulPoly(ed, od))
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
	if e.den == nil && o.den == nil {
		return Expr{num: mulPoly(e.num, o.num)}
	}

	return newExpr(mulPoly(e.num, o.num), mulPoly(e.denom(), o.denom()))
}

// MulInt returns n * e.
func (e Expr) MulInt(n int64) Expr { return e.Mul(Int(n)) }

// Div returns e / o, or ErrDivisionByZero when o is identically zero.
func (e Expr) Div(o Expr) (Expr, error) {
	if o.IsZero() {
		return Expr{}, ErrDivisionByZero
	}

	return newExpr(mulPoly(e.num, o.denom()), mulPoly(e.denom(), o.num)), nil
}

// MaxExponent bounds |n| in Pow and in parsed exponents.
const MaxExponent = 64

// Pow returns e^n by square-and-multiply. Negative n requires a non-zero
// base; |n| above MaxExponent returns ErrExponentRange.
func (e Expr) Pow(n int) (Expr, error) {
	if n > MaxExponent || n < -MaxExponent {
		return Expr{}, fmt.Errorf("exponent %d (max %d): %w", n, MaxExponent, ErrExponentRange)
	}
	if n < 0 {
		if e.IsZero() {
			return Expr{}, ErrNegativePower
		}
		p, _ := e.Pow(-n)

		return One().Div(p)
	}
	out, base := One(), e
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return out, nil
}

// IsZero reports whether e is identically zero.
func (e Expr) IsZero() bool { return e.num.isZero() }

// IsNumber reports whether e contains no free symbol.
func (e Expr) IsNumber() bool { return e.num.isConst() && e.den == nil }

// IsOne reports whether e is the constant 1.
func (e Expr) IsOne() bool { return e.den == nil && e.num.isOne() }

// Rat returns the value of a numeric expression.
func (e Expr) Rat() (*big.Rat, bool) {
	if !e.IsNumber() {
		return nil, false
	}

	return e.num.constant(), true
}

// Equal reports whether e - o is identically zero.
func (e Expr) Equal(o Expr) bool { return e.Sub(o).IsZero() }

// Diff returns the partial derivative ∂e/∂v.
func (e Expr) Diff(v string) Expr {
	if e.den == nil {
		return Expr{num: e.num.diff(v)}
	}
	// (n'd - nd') / d^2
	top := addPoly(mulPoly(e.num.diff(v), e.den), mulPoly(e.num, e.den.diff(v)).neg())

	return newExpr(top, mulPoly(e.den, e.den))
}

// FreeSymbols returns the sorted, de-duplicated symbol names of e.
func (e Expr) FreeSymbols() []string {
	set := make(map[string]struct{})
	e.num.names(set)
	e.den.names(set)
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// Has reports whether symbol v occurs in e.
func (e Expr) Has(v string) bool {
	return slices.Contains(e.FreeSymbols(), v)
}

// Simplify returns e reduced to normal form. Every constructor already
// returns normalized values, so Simplify is idempotent and cheap.
func (e Expr) Simplify() Expr { return newExpr(e.num, e.den) }

// Subs replaces every occurrence of symbol v with r. It fails with
// ErrDivisionByZero when the substituted denominator vanishes.
func (e Expr) Subs(v string, r Expr) (Expr, error) {
	n, err := subsPoly(e.num, v, r)
	if err != nil {
		return Expr{}, err
	}
	if e.den == nil {
		return n, nil
	}
	d, err := subsPoly(e.den, v, r)
	if err != nil {
		return Expr{}, err
	}
	out, err := n.Div(d)
	if err != nil {
		return Expr{}, fmt.Errorf("subs %s: %w", v, err)
	}

	return out, nil
}

func subsPoly(p poly, v string, r Expr) (Expr, error) {
	out := Zero()
	for _, t := range p {
		acc := FromRat(t.coef)
		for _, f := range t.mono {
			base := Symbol(f.name)
			if f.name == v {
				base = r
			}
			pw, err := base.Pow(f.exp)
			if err != nil {
				return Expr{}, err
			}
			acc = acc.Mul(pw)
		}
		out = out.Add(acc)
	}

	return out, nil
}

// Terms returns the number of additive terms in the numerator.
func (e Expr) Terms() int { return e.num.terms() }

// String renders e deterministically, e.g. "x^2 + 2*x*y", "(x + 1)/y".
func (e Expr) String() string {
	if e.den == nil {
		return e.num.String()
	}
	n := e.num.String()
	if e.num.terms() > 1 {
		n = "(" + n + ")"
	}
	d := e.den.String()
	if !e.den.singlePower() {
		d = "(" + d + ")"
	}

	return n + "/" + d
}

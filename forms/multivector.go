package forms

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/diffform/scalar"
)

// Multivector is a canonical finite sum of scalar-weighted wedge products of
// Form Atoms.
//
// Invariants (re-established by every producing operation):
//   - no term exceeds the Space's MaxDegree;
//   - no term repeats an odd-degree atom;
//   - atoms in a term are ascending by Atom.Less;
//   - atom sequences are pairwise distinct and coefficients non-zero;
//   - Identity appears only as the sole atom of a scalar term.
//
// The empty Multivector is zero. Values are immutable: every method returns a
// new Multivector built from freshly allocated slices, and accessors return
// copies.
type Multivector struct {
	space *Space
	terms []Term
}

// NewMultivector builds a canonical Multivector from index-aligned lists:
// factors[i] is the coefficient of forms[i][0]∧forms[i][1]∧…
// Inputs are copied.
func (s *Space) NewMultivector(forms [][]Atom, factors []scalar.Expr) (*Multivector, error) {
	if len(forms) != len(factors) {
		return nil, fmt.Errorf("%d forms, %d factors: %w", len(forms), len(factors), ErrLengthMismatch)
	}
	raw := make([]Term, len(forms))
	for i := range forms {
		raw[i] = Term{Atoms: slices.Clone(forms[i]), Coeff: factors[i]}
	}

	return s.build(raw), nil
}

// FromTerms builds a canonical Multivector from terms. Inputs are copied.
func (s *Space) FromTerms(terms ...Term) *Multivector { return s.build(terms) }

// Zero returns the zero Multivector of s.
func (s *Space) Zero() *Multivector { return &Multivector{space: s} }

// build canonicalizes raw terms into a new Multivector.
func (s *Space) build(raw []Term) *Multivector {
	return &Multivector{space: s, terms: s.canonicalize(raw)}
}

// Space returns the configuration the Multivector was built in.
func (m *Multivector) Space() *Space { return orDefault(m.space) }

// Len returns the number of terms.
func (m *Multivector) Len() int { return len(m.terms) }

// IsZero reports whether m has no terms.
func (m *Multivector) IsZero() bool { return len(m.terms) == 0 }

// Terms returns a deep copy of the canonical terms.
func (m *Multivector) Terms() []Term {
	out := make([]Term, len(m.terms))
	for i, t := range m.terms {
		out[i] = t.clone()
	}

	return out
}

// FormsList returns the atom sequence of each term (deep copy).
func (m *Multivector) FormsList() [][]Atom {
	out := make([][]Atom, len(m.terms))
	for i, t := range m.terms {
		out[i] = slices.Clone(t.Atoms)
	}

	return out
}

// Factors returns the coefficients, index-aligned with FormsList.
func (m *Multivector) Factors() []scalar.Expr {
	out := make([]scalar.Expr, len(m.terms))
	for i, t := range m.terms {
		out[i] = t.Coeff
	}

	return out
}

// Coefficient returns the coefficient of the wedge product of atoms in m.
// The atoms may be given in any order; the Koszul sign of sorting them is
// applied. A call without atoms returns the scalar part.
func (m *Multivector) Coefficient(atoms ...Atom) scalar.Expr {
	q := slices.Clone(atoms)
	sign := bubbleSort(q)
	k := atomsKey(stripIdentity(q))
	for _, t := range m.terms {
		if t.key() == k {
			if sign < 0 {
				return t.Coeff.Neg()
			}

			return t.Coeff
		}
	}

	return scalar.Zero()
}

// Degrees returns the sorted distinct degrees of the terms of m.
func (m *Multivector) Degrees() []int {
	var out []int
	for _, t := range m.terms {
		if d := t.Degree(); !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)

	return out
}

// Grade returns the degree-k part of m.
func (m *Multivector) Grade(k int) *Multivector {
	out := &Multivector{space: m.space}
	for _, t := range m.terms {
		if t.Degree() == k {
			out.terms = append(out.terms, t.clone())
		}
	}

	return out
}

// Add returns m + o.
func (m *Multivector) Add(o Operand) (*Multivector, error) { return m.Space().Add(m, o) }

// Sub returns m - o.
func (m *Multivector) Sub(o Operand) (*Multivector, error) { return m.Space().Sub(m, o) }

// Neg returns -m.
func (m *Multivector) Neg() *Multivector { return m.Scale(scalar.Int(-1)) }

// Scale returns c·m.
func (m *Multivector) Scale(c scalar.Expr) *Multivector {
	raw := make([]Term, len(m.terms))
	for i, t := range m.terms {
		raw[i] = Term{Atoms: t.Atoms, Coeff: t.Coeff.Mul(c)}
	}

	return m.Space().build(raw)
}

// Wedge returns m∧o.
func (m *Multivector) Wedge(o Operand) (*Multivector, error) { return m.Space().Wedge(m, o) }

// Simplify re-simplifies every coefficient and reruns canonicalization.
func (m *Multivector) Simplify() *Multivector {
	raw := make([]Term, len(m.terms))
	for i, t := range m.terms {
		raw[i] = Term{Atoms: t.Atoms, Coeff: t.Coeff.Simplify()}
	}

	return m.Space().build(raw)
}

// Equal reports whether m and o have the same canonical form. o may be any
// operand that lifts to a Multivector; a single unit term equals its bare
// atom and the zero Multivector equals Num(0). Coefficients are compared by
// exact scalar difference, atom sequences by key.
func (m *Multivector) Equal(o Operand) bool {
	other, err := m.Space().Lift(o)
	if err != nil {
		return false
	}
	if len(m.terms) != len(other.terms) {
		return false
	}
	for i := range m.terms {
		if m.terms[i].key() != other.terms[i].key() || !m.terms[i].Coeff.Equal(other.terms[i].Coeff) {
			return false
		}
	}

	return true
}

// String renders m as e.g. "3 + x*dx∧dy - dy∧dz". The zero Multivector is "0".
func (m *Multivector) String() string {
	parts := make([]string, len(m.terms))
	for i, t := range m.terms {
		names := make([]string, 0, len(t.Atoms))
		if !(len(t.Atoms) == 1 && t.Atoms[0].Equal(Identity)) {
			for _, a := range t.Atoms {
				names = append(names, a.String())
			}
		}
		parts[i] = formatTerm(t.Coeff, names, "∧")
	}

	return joinTerms(parts)
}

package forms

import (
	"fmt"
	"slices"
)

// Hodge returns the Hodge dual of a with respect to the Space basis
// e₀…eₙ₋₁ and signature σ.
//
// For each term with basis indices I (in term order) and complement J
// (ascending), the result term is
//
//	ε(I ++ J) · σ^[0 ∈ I] · c · e_J₀∧e_J₁∧…
//
// where ε is the Levi-Civita symbol. A scalar term maps to the volume form
// and a top-degree term to a scalar.
//
// Errors:
//   - ErrNoBasis when the Space has no basis.
//   - ErrNotInBasis when a term holds an atom outside the basis.
func (s *Space) Hodge(a Operand) (*Multivector, error) {
	if len(s.basis) == 0 {
		return nil, ErrNoBasis
	}
	m, err := s.Lift(a)
	if err != nil {
		return nil, fmt.Errorf("hodge: %w", err)
	}
	n := len(s.basis)
	raw := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		occupied := make([]int, 0, n)
		for _, at := range t.Atoms {
			if at.Equal(Identity) {
				continue
			}
			i := s.basisIndex(at)
			if i < 0 {
				return nil, fmt.Errorf("hodge %s: %w", at, ErrNotInBasis)
			}
			occupied = append(occupied, i)
		}
		complement := make([]int, 0, n-len(occupied))
		for i := 0; i < n; i++ {
			if !slices.Contains(occupied, i) {
				complement = append(complement, i)
			}
		}
		sign := leviCivita(append(slices.Clone(occupied), complement...))
		if sign == 0 {
			continue
		}
		c := t.Coeff.MulInt(int64(sign))
		if slices.Contains(occupied, 0) {
			c = c.Mul(s.signature)
		}
		atoms := make([]Atom, 0, len(complement))
		for _, j := range complement {
			atoms = append(atoms, s.basis[j])
		}
		if len(atoms) == 0 {
			atoms = []Atom{Identity}
		}
		raw = append(raw, Term{Atoms: atoms, Coeff: c})
	}

	return s.build(raw), nil
}

// Hodge returns the Hodge dual of m in its own Space.
func (m *Multivector) Hodge() (*Multivector, error) { return m.Space().Hodge(m) }

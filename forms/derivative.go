package forms

import (
	"slices"
)

// D returns the exterior derivative of m.
//
// Each term c·a₀∧…∧aₖ contributes
//   - for every free symbol v of c with ∂c/∂v ≠ 0: (∂c/∂v)·dv∧a₀∧…∧aₖ;
//   - for every position j: (-1)^(deg a₀+…+deg aⱼ₋₁)·c·a₀∧…∧d(aⱼ)∧…∧aₖ.
//
// Together these realize d(f) = Σ ∂f/∂xᵢ dxᵢ and the graded Leibniz rule
// d(α∧β) = dα∧β + (-1)^deg(α) α∧dβ in one pass. Exact atoms differentiate to
// the zero atom, so their contributions vanish in canonicalization.
func (m *Multivector) D() *Multivector {
	var raw []Term
	for _, t := range m.terms {
		for _, v := range t.Coeff.FreeSymbols() {
			c := t.Coeff.Diff(v)
			if c.IsZero() {
				continue
			}
			atoms := make([]Atom, 0, len(t.Atoms)+1)
			atoms = append(atoms, Atom{Symbol: v}.D())
			atoms = append(atoms, t.Atoms...)
			raw = append(raw, Term{Atoms: atoms, Coeff: c})
		}

		prior := 0
		for j, a := range t.Atoms {
			atoms := slices.Clone(t.Atoms)
			atoms[j] = a.D()
			c := t.Coeff
			if prior%2 != 0 {
				c = c.Neg()
			}
			raw = append(raw, Term{Atoms: atoms, Coeff: c})
			prior += a.Degree
		}
	}

	return m.Space().build(raw)
}

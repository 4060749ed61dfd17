package forms

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/diffform/scalar"
)

// Insert returns the interior product i_v m.
//
// Accepted operands:
//   - VectorField: in every term the first atom pairing non-zero with v is
//     removed; the coefficient picks up the pairing value and (-1)^deg for
//     each atom skipped before it. Only that first slot contracts.
//   - *Tensor that IsVectorField: linear extension, Σ cᵢ·i_{vᵢ} m.
//
// Errors:
//   - ErrNotVectorField for any other Tensor.
//   - ErrUnsupportedOperand for other operand kinds.
func (m *Multivector) Insert(o Operand) (*Multivector, error) {
	switch v := o.(type) {
	case VectorField:
		return m.Space().build(m.insertTerms(v, scalar.One())), nil
	case *Tensor:
		if v == nil {
			return nil, ErrNilOperand
		}
		if !v.IsVectorField() {
			return nil, ErrNotVectorField
		}
		var raw []Term
		for _, t := range v.terms {
			raw = append(raw, m.insertTerms(t.Comps[0].(VectorField), t.Coeff)...)
		}

		return m.Space().build(raw), nil
	default:
		return nil, fmt.Errorf("insert %T: %w", o, ErrUnsupportedOperand)
	}
}

// insertTerms contracts every term with v and scales by weight; the result
// is not canonicalized.
func (m *Multivector) insertTerms(v VectorField, weight scalar.Expr) []Term {
	raw := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		negate := false
		for j, a := range t.Atoms {
			pair := a.Insert(v)
			if pair.IsZero() {
				if a.Degree%2 != 0 {
					negate = !negate
				}
				continue
			}
			atoms := slices.Delete(slices.Clone(t.Atoms), j, j+1)
			if len(atoms) == 0 {
				atoms = []Atom{Identity}
			}
			c := t.Coeff.Mul(pair).Mul(weight)
			if negate {
				c = c.Neg()
			}
			raw = append(raw, Term{Atoms: atoms, Coeff: c})

			break
		}
	}

	return raw
}

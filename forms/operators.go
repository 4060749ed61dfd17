package forms

import (
	"fmt"

	"github.com/katalvlaran/diffform/scalar"
)

// Lift converts a Scalar, Atom or *Multivector into a canonical Multivector
// of s.
//
// Errors:
//   - ErrUnsupportedOperand for VectorField and *Tensor.
//   - ErrNilOperand for a nil *Multivector.
func (s *Space) Lift(op Operand) (*Multivector, error) {
	switch v := op.(type) {
	case Scalar:
		return s.build([]Term{{Atoms: []Atom{Identity}, Coeff: v.Value}}), nil
	case Atom:
		return s.build([]Term{{Atoms: []Atom{v}, Coeff: scalar.One()}}), nil
	case *Multivector:
		if v == nil {
			return nil, ErrNilOperand
		}
		if v.space == s {
			return v, nil
		}

		return s.build(v.terms), nil
	case VectorField, *Tensor:
		return nil, fmt.Errorf("lift %T: %w", op, ErrUnsupportedOperand)
	default:
		return nil, fmt.Errorf("lift %T: %w", op, ErrUnsupportedOperand)
	}
}

// lift2 lifts both operands of a binary operator.
func (s *Space) lift2(a, b Operand) (*Multivector, *Multivector, error) {
	ma, err := s.Lift(a)
	if err != nil {
		return nil, nil, err
	}
	mb, err := s.Lift(b)
	if err != nil {
		return nil, nil, err
	}

	return ma, mb, nil
}

// Add returns a + b.
func (s *Space) Add(a, b Operand) (*Multivector, error) {
	ma, mb, err := s.lift2(a, b)
	if err != nil {
		return nil, err
	}
	raw := make([]Term, 0, len(ma.terms)+len(mb.terms))
	raw = append(raw, ma.terms...)
	raw = append(raw, mb.terms...)

	return s.build(raw), nil
}

// Sub returns a - b.
func (s *Space) Sub(a, b Operand) (*Multivector, error) {
	ma, mb, err := s.lift2(a, b)
	if err != nil {
		return nil, err
	}
	raw := make([]Term, 0, len(ma.terms)+len(mb.terms))
	raw = append(raw, ma.terms...)
	for _, t := range mb.terms {
		raw = append(raw, Term{Atoms: t.Atoms, Coeff: t.Coeff.Neg()})
	}

	return s.build(raw), nil
}

// Neg returns -a.
func (s *Space) Neg(a Operand) (*Multivector, error) {
	m, err := s.Lift(a)
	if err != nil {
		return nil, err
	}

	return m.Scale(scalar.Int(-1)), nil
}

// Wedge returns a∧b for Scalar, Atom and *Multivector operands.
//
// Implementation:
//   - Stage 1: lift both sides (scalars become Coeff·Identity terms).
//   - Stage 2: cross product: concatenate atom lists, multiply coefficients.
//   - Stage 3: Simplify (coefficient simplification + canonicalization).
//
// Complexity:
//   - Time O(|a|·|b|·k²) for terms of at most k atoms.
func (s *Space) Wedge(a, b Operand) (*Multivector, error) {
	ma, mb, err := s.lift2(a, b)
	if err != nil {
		return nil, fmt.Errorf("wedge: %w", err)
	}
	raw := wedgeTerms(ma.terms, mb.terms)

	return (&Multivector{space: s, terms: raw}).Simplify(), nil
}

// wedgeTerms returns the uncanonicalized cross product of two term lists.
func wedgeTerms(left, right []Term) []Term {
	raw := make([]Term, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			atoms := make([]Atom, 0, len(l.Atoms)+len(r.Atoms))
			atoms = append(atoms, l.Atoms...)
			atoms = append(atoms, r.Atoms...)
			raw = append(raw, Term{Atoms: atoms, Coeff: l.Coeff.Mul(r.Coeff)})
		}
	}

	return raw
}

// D returns the exterior derivative of a Scalar, Atom or *Multivector.
func (s *Space) D(a Operand) (*Multivector, error) {
	m, err := s.Lift(a)
	if err != nil {
		return nil, fmt.Errorf("d: %w", err)
	}

	return m.D(), nil
}

// Insert returns the interior product of a with a VectorField or a
// vector-field *Tensor.
func (s *Space) Insert(a Operand, v Operand) (*Multivector, error) {
	m, err := s.Lift(a)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}

	return m.Insert(v)
}

// Substitute replaces target by replacement inside a. See
// Multivector.Substitute for the accepted targets.
func (s *Space) Substitute(a, target, replacement Operand) (*Multivector, error) {
	m, err := s.Lift(a)
	if err != nil {
		return nil, fmt.Errorf("substitute: %w", err)
	}

	return m.Substitute(target, replacement)
}

// LieDerivative returns L_v a = i_v(da) + d(i_v a) (Cartan's formula). It is
// exact for coordinate vector fields, whose components are constant.
func (s *Space) LieDerivative(v VectorField, a Operand) (*Multivector, error) {
	m, err := s.Lift(a)
	if err != nil {
		return nil, fmt.Errorf("lie: %w", err)
	}
	left, err := m.D().Insert(v)
	if err != nil {
		return nil, err
	}
	inner, err := m.Insert(v)
	if err != nil {
		return nil, err
	}

	return left.Add(inner.D())
}

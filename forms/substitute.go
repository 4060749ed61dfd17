package forms

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/diffform/scalar"
)

// Substitution is one target → replacement pair for SubstituteAll.
type Substitution struct {
	Target      Operand
	Replacement Operand
}

// Substitute replaces target with replacement throughout m.
//
// Targets:
//   - Scalar holding a single symbol: substituted into every coefficient;
//     the replacement must be a Scalar.
//   - Atom, or a single-term Multivector c·p₀∧…∧pₖ: in every term, the first
//     contiguous run of atoms equal to p₀…pₖ is replaced by the replacement
//     (Scalar, Atom or Multivector) and the coefficient divided by c.
//     Terms without the run are kept as they are.
//
// Runs are matched in canonical atom order, so a pattern made of atoms that
// sort apart in a term does not match it.
//
// Errors:
//   - ErrMultiTermTarget when a Multivector target has more than one term.
//   - ErrUnsupportedOperand for any other target or replacement kind.
//   - scalar.ErrDivisionByZero when a coefficient denominator vanishes.
func (m *Multivector) Substitute(target, replacement Operand) (*Multivector, error) {
	s := m.Space()
	if sc, ok := target.(Scalar); ok {
		return m.substituteSymbol(sc, replacement)
	}
	pattern, err := substitutionPattern(target)
	if err != nil {
		return nil, err
	}
	repl, err := s.Lift(replacement)
	if err != nil {
		return nil, fmt.Errorf("substitute replacement: %w", err)
	}

	var raw []Term
	for _, t := range m.terms {
		j := matchRun(t.Atoms, pattern.Atoms)
		if j < 0 {
			raw = append(raw, t)
			continue
		}
		c, err := t.Coeff.Div(pattern.Coeff)
		if err != nil {
			return nil, fmt.Errorf("substitute: %w", err)
		}
		head := Term{Atoms: slices.Clone(t.Atoms[:j]), Coeff: c}
		if len(head.Atoms) == 0 {
			head.Atoms = []Atom{Identity}
		}
		tail := Term{Atoms: slices.Clone(t.Atoms[j+len(pattern.Atoms):]), Coeff: scalar.One()}
		if len(tail.Atoms) == 0 {
			tail.Atoms = []Atom{Identity}
		}
		raw = append(raw, wedgeTerms(wedgeTerms([]Term{head}, repl.terms), []Term{tail})...)
	}

	return s.build(raw), nil
}

// SubstituteAll applies subs in order; each sees the result of the previous.
func (m *Multivector) SubstituteAll(subs ...Substitution) (*Multivector, error) {
	out := m
	for _, sub := range subs {
		next, err := out.Substitute(sub.Target, sub.Replacement)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// substituteSymbol replaces a scalar symbol inside every coefficient.
func (m *Multivector) substituteSymbol(target Scalar, replacement Operand) (*Multivector, error) {
	syms := target.Value.FreeSymbols()
	if len(syms) != 1 || !target.Value.Equal(scalar.Symbol(syms[0])) {
		return nil, fmt.Errorf("substitute target %s: %w", target.Value, ErrUnsupportedOperand)
	}
	r, ok := replacement.(Scalar)
	if !ok {
		return nil, fmt.Errorf("substitute %s by %T: %w", syms[0], replacement, ErrUnsupportedOperand)
	}
	raw := make([]Term, len(m.terms))
	for i, t := range m.terms {
		c, err := t.Coeff.Subs(syms[0], r.Value)
		if err != nil {
			return nil, fmt.Errorf("substitute %s: %w", syms[0], err)
		}
		raw[i] = Term{Atoms: t.Atoms, Coeff: c}
	}

	return m.Space().build(raw), nil
}

// substitutionPattern resolves an atom-valued substitution target to a
// single canonical term.
func substitutionPattern(target Operand) (Term, error) {
	switch v := target.(type) {
	case Atom:
		return Term{Atoms: []Atom{v}, Coeff: scalar.One()}, nil
	case *Multivector:
		if v == nil {
			return Term{}, ErrNilOperand
		}
		if len(v.terms) > 1 {
			return Term{}, ErrMultiTermTarget
		}
		if len(v.terms) == 1 && !v.terms[0].Atoms[0].Equal(Identity) {
			return v.terms[0].clone(), nil
		}

		return Term{}, fmt.Errorf("substitute target %s: %w", v, ErrUnsupportedOperand)
	default:
		return Term{}, fmt.Errorf("substitute target %T: %w", target, ErrUnsupportedOperand)
	}
}

// matchRun returns the index of the first contiguous run of atoms equal to
// pattern, or -1.
func matchRun(atoms, pattern []Atom) int {
	for j := 0; j+len(pattern) <= len(atoms); j++ {
		if slices.EqualFunc(atoms[j:j+len(pattern)], pattern, Atom.Equal) {
			return j
		}
	}

	return -1
}

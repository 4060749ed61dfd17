package forms

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/diffform/scalar"
)

// TensorTerm is Coeff · Comps[0]⊗Comps[1]⊗… ; no components means a scalar.
type TensorTerm struct {
	Comps []Component
	Coeff scalar.Expr
}

func (t TensorTerm) clone() TensorTerm {
	return TensorTerm{Comps: slices.Clone(t.Comps), Coeff: t.Coeff}
}

// Tensor is a raw ordered sum of ordered tensor products of Atoms and
// VectorFields. Unlike Multivector it is never canonicalized: duplicates and
// zero coefficients are kept, and component order is significant.
type Tensor struct {
	space *Space
	terms []TensorTerm
}

// NewTensor builds a Tensor from terms. Inputs are copied.
func (s *Space) NewTensor(terms ...TensorTerm) *Tensor {
	out := &Tensor{space: s, terms: make([]TensorTerm, len(terms))}
	for i, t := range terms {
		out.terms[i] = t.clone()
	}

	return out
}

// liftTensor converts a Scalar, Atom, VectorField or *Tensor into a Tensor.
// A *Multivector is rejected: it must be converted with ToTensor first.
func (s *Space) liftTensor(op Operand) (*Tensor, error) {
	switch v := op.(type) {
	case Scalar:
		return s.NewTensor(TensorTerm{Coeff: v.Value}), nil
	case Atom:
		return s.NewTensor(TensorTerm{Comps: []Component{v}, Coeff: scalar.One()}), nil
	case VectorField:
		return s.NewTensor(TensorTerm{Comps: []Component{v}, Coeff: scalar.One()}), nil
	case *Tensor:
		if v == nil {
			return nil, ErrNilOperand
		}

		return v, nil
	case *Multivector:
		return nil, fmt.Errorf("tensor of multivector (use ToTensor): %w", ErrUnsupportedOperand)
	default:
		return nil, fmt.Errorf("tensor of %T: %w", op, ErrUnsupportedOperand)
	}
}

// TensorProduct returns a⊗b. Component lists concatenate pairwise, with no
// antisymmetrization.
//
// Errors:
//   - ErrUnsupportedOperand when either side is a *Multivector.
func (s *Space) TensorProduct(a, b Operand) (*Tensor, error) {
	ta, err := s.liftTensor(a)
	if err != nil {
		return nil, err
	}
	tb, err := s.liftTensor(b)
	if err != nil {
		return nil, err
	}
	out := &Tensor{space: s, terms: make([]TensorTerm, 0, len(ta.terms)*len(tb.terms))}
	for _, l := range ta.terms {
		for _, r := range tb.terms {
			comps := make([]Component, 0, len(l.Comps)+len(r.Comps))
			comps = append(comps, l.Comps...)
			comps = append(comps, r.Comps...)
			out.terms = append(out.terms, TensorTerm{Comps: comps, Coeff: l.Coeff.Mul(r.Coeff)})
		}
	}

	return out, nil
}

// Space returns the configuration the Tensor was built in.
func (t *Tensor) Space() *Space { return orDefault(t.space) }

// Len returns the number of terms.
func (t *Tensor) Len() int { return len(t.terms) }

// Terms returns a deep copy of the terms.
func (t *Tensor) Terms() []TensorTerm {
	out := make([]TensorTerm, len(t.terms))
	for i, term := range t.terms {
		out[i] = term.clone()
	}

	return out
}

// CompsList returns the component sequence of each term (deep copy).
func (t *Tensor) CompsList() [][]Component {
	out := make([][]Component, len(t.terms))
	for i, term := range t.terms {
		out[i] = slices.Clone(term.Comps)
	}

	return out
}

// Factors returns the coefficients, index-aligned with CompsList.
func (t *Tensor) Factors() []scalar.Expr {
	out := make([]scalar.Expr, len(t.terms))
	for i, term := range t.terms {
		out[i] = term.Coeff
	}

	return out
}

// IsVectorField reports whether every term is a single VectorField.
func (t *Tensor) IsVectorField() bool {
	for _, term := range t.terms {
		if len(term.Comps) != 1 {
			return false
		}
		if _, ok := term.Comps[0].(VectorField); !ok {
			return false
		}
	}

	return true
}

// Add returns t + o by concatenation.
func (t *Tensor) Add(o Operand) (*Tensor, error) {
	other, err := t.Space().liftTensor(o)
	if err != nil {
		return nil, err
	}
	out := t.Space().NewTensor(t.terms...)
	for _, term := range other.terms {
		out.terms = append(out.terms, term.clone())
	}

	return out, nil
}

// Sub returns t - o by concatenation.
func (t *Tensor) Sub(o Operand) (*Tensor, error) {
	other, err := t.Space().liftTensor(o)
	if err != nil {
		return nil, err
	}

	return t.Add(other.Neg())
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor { return t.Scale(scalar.Int(-1)) }

// Scale returns c·t.
func (t *Tensor) Scale(c scalar.Expr) *Tensor {
	out := t.Space().NewTensor(t.terms...)
	for i := range out.terms {
		out.terms[i].Coeff = out.terms[i].Coeff.Mul(c)
	}

	return out
}

// TensorProduct returns t⊗o.
func (t *Tensor) TensorProduct(o Operand) (*Tensor, error) { return t.Space().TensorProduct(t, o) }

// ToTensor expands m into a full tensor: each term c·a₀∧…∧a_{L-1} becomes
//
//	Σ_π sgn(π) · c / L! · a_π(0)⊗…⊗a_π(L-1)
//
// over all L! permutations π, with sgn the plain permutation parity whatever
// the atom degrees. Scalar terms map to component-free tensor terms.
//
// Complexity:
//   - Time O(T·L!·L²); fine for the degrees a MaxDegree-bounded Space allows.
func (m *Multivector) ToTensor() *Tensor {
	out := &Tensor{space: m.space}
	for _, t := range m.terms {
		if len(t.Atoms) == 1 && t.Atoms[0].Equal(Identity) {
			out.terms = append(out.terms, TensorTerm{Coeff: t.Coeff})
			continue
		}
		base := t.Coeff.Mul(scalar.Rat(1, factorial(len(t.Atoms))))
		for _, p := range permutations(len(t.Atoms)) {
			comps := make([]Component, len(p))
			for i, j := range p {
				comps[i] = t.Atoms[j]
			}
			c := base
			if leviCivita(p) < 0 {
				c = c.Neg()
			}
			out.terms = append(out.terms, TensorTerm{Comps: comps, Coeff: c})
		}
	}

	return out
}

// String renders t with ⊗ between components; the empty Tensor is "0".
func (t *Tensor) String() string {
	parts := make([]string, len(t.terms))
	for i, term := range t.terms {
		names := make([]string, len(term.Comps))
		for j, c := range term.Comps {
			names[j] = c.String()
		}
		parts[i] = formatTerm(term.Coeff, names, "⊗")
	}

	return joinTerms(parts)
}

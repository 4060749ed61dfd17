package forms

import (
	"strconv"

	"github.com/katalvlaran/diffform/scalar"
)

// Operand is the closed set of values the operators accept:
// Scalar, Atom, VectorField, *Multivector and *Tensor. The interface is
// sealed; every operator switches over exactly these five cases and returns
// ErrUnsupportedOperand for the ones outside its overload set.
type Operand interface {
	isOperand()
}

// Component is a Tensor slot: an Atom or a VectorField.
type Component interface {
	Operand
	isComponent()
	String() string
}

// Scalar wraps a scalar expression as an Operand.
type Scalar struct {
	Value scalar.Expr
}

// ScalarOf wraps e.
func ScalarOf(e scalar.Expr) Scalar { return Scalar{Value: e} }

// Num wraps the integer n.
func Num(n int64) Scalar { return Scalar{Value: scalar.Int(n)} }

// Atom is an indivisible differential form: a symbol of fixed degree.
//
// Fields:
//   - Symbol: the name; equality and ordering use it verbatim.
//   - Degree: form degree, >= 0.
//   - Exact:  set when the atom is d of something, so its own D is zero.
//
// Two atoms are equal iff Symbol and Degree match; Exact is ignored.
type Atom struct {
	Symbol string
	Degree int
	Exact  bool
}

// VectorField is a coordinate vector field ∂_Symbol, the dual partner of
// the 1-forms Symbol and d(Symbol).
type VectorField struct {
	Symbol string
}

// Term is one scalar-weighted wedge product Coeff * Atoms[0]∧Atoms[1]∧…
// A pure scalar term holds the single atom Identity.
type Term struct {
	Atoms []Atom
	Coeff scalar.Expr
}

// Degree returns the total degree of the term.
func (t Term) Degree() int {
	d := 0
	for _, a := range t.Atoms {
		d += a.Degree
	}

	return d
}

func (t Term) clone() Term {
	return Term{Atoms: append([]Atom(nil), t.Atoms...), Coeff: t.Coeff}
}

// key identifies the atom sequence of t for like-term collection.
func (t Term) key() string { return atomsKey(t.Atoms) }

func atomsKey(atoms []Atom) string {
	b := make([]byte, 0, 8*len(atoms))
	for i, a := range atoms {
		if i > 0 {
			b = append(b, '^')
		}
		b = append(b, a.Key()...)
	}

	return string(b)
}

func (Scalar) isOperand()       {}
func (Atom) isOperand()         {}
func (VectorField) isOperand()  {}
func (*Multivector) isOperand() {}
func (*Tensor) isOperand()      {}

func (Atom) isComponent()        {}
func (VectorField) isComponent() {}

// Key returns "symbol/degree", the string atoms are compared by.
func (a Atom) Key() string { return a.Symbol + "/" + strconv.Itoa(a.Degree) }

// String returns the symbol.
func (a Atom) String() string { return a.Symbol }

// String returns "∂" followed by the symbol.
func (v VectorField) String() string { return "∂" + v.Symbol }

// Equal reports whether v and o name the same vector field.
func (v VectorField) Equal(o VectorField) bool { return v.Symbol == o.Symbol }

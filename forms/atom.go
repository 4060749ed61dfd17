package forms

import (
	"math/big"

	"github.com/katalvlaran/diffform/scalar"
)

// Identity is the multiplicative-identity atom. A Multivector stores a pure
// scalar term as Coeff * Identity.
var Identity = Atom{Symbol: "1", Degree: 0, Exact: true}

// ZeroAtom returns the zero form of the given degree. Terms containing it
// are dropped by canonicalization.
func ZeroAtom(degree int) Atom { return Atom{Symbol: "0", Degree: degree, Exact: true} }

// DerivativeName returns the deterministic symbol of d(symbol):
// "d"+symbol for identifiers, "d(" + symbol + ")" otherwise.
func DerivativeName(symbol string) string {
	if scalar.IsIdent(symbol) {
		return "d" + symbol
	}

	return "d(" + symbol + ")"
}

// Equal reports whether a and o have the same symbol and degree.
func (a Atom) Equal(o Atom) bool { return a.Symbol == o.Symbol && a.Degree == o.Degree }

// Less orders atoms by symbol, then degree.
func (a Atom) Less(o Atom) bool {
	if a.Symbol != o.Symbol {
		return a.Symbol < o.Symbol
	}

	return a.Degree < o.Degree
}

// IsNumeric reports whether the symbol is a numeric literal ("0", "1", "2.5").
func (a Atom) IsNumeric() bool {
	_, ok := new(big.Rat).SetString(a.Symbol)

	return ok
}

// D returns the exterior derivative of the atom.
//
// Exact and numeric atoms differentiate to the zero atom of degree+1.
// Anything else yields a fresh exact atom named DerivativeName(Symbol); the
// name is a pure function of the source, so repeated calls agree.
func (a Atom) D() Atom {
	if a.Exact || a.IsNumeric() {
		return ZeroAtom(a.Degree + 1)
	}

	return Atom{Symbol: DerivativeName(a.Symbol), Degree: a.Degree + 1, Exact: true}
}

// Insert pairs a with the vector field v: 1 when a is the 1-form v.Symbol or
// d(v.Symbol), 0 otherwise. Atoms of any other degree pair to 0.
func (a Atom) Insert(v VectorField) scalar.Expr {
	if a.Degree != 1 {
		return scalar.Zero()
	}
	if a.Symbol == v.Symbol || a.Symbol == DerivativeName(v.Symbol) {
		return scalar.One()
	}

	return scalar.Zero()
}

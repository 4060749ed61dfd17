// Package forms_test contains test helpers.
//
// Purpose:
//   - Build atoms and products in one line, failing the test on error.
//   - Keep every fixture inside the default 4-form Space unless a test
//     asks for another one.

package forms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// mustForm constructs a Form Atom or fails the test.
func mustForm(t *testing.T, sp *forms.Space, symbol string, degree int) forms.Atom {
	t.Helper()
	a, err := sp.Form(symbol, degree)
	require.NoError(t, err)

	return a
}

// mustDiff constructs the exact 1-form d(coord) or fails the test.
func mustDiff(t *testing.T, sp *forms.Space, coord string) forms.Atom {
	t.Helper()
	a, err := sp.Differential(coord)
	require.NoError(t, err)

	return a
}

// mustVector constructs a vector field or fails the test.
func mustVector(t *testing.T, sp *forms.Space, symbol string) forms.VectorField {
	t.Helper()
	v, err := sp.Vector(symbol)
	require.NoError(t, err)

	return v
}

// wedge folds sp.Wedge over ops left to right.
func wedge(t *testing.T, sp *forms.Space, ops ...forms.Operand) *forms.Multivector {
	t.Helper()
	out, err := sp.Lift(forms.Num(1))
	require.NoError(t, err)
	for _, op := range ops {
		out, err = sp.Wedge(out, op)
		require.NoError(t, err)
	}

	return out
}

// add folds sp.Add over ops.
func add(t *testing.T, sp *forms.Space, ops ...forms.Operand) *forms.Multivector {
	t.Helper()
	out := sp.Zero()
	for _, op := range ops {
		var err error
		out, err = sp.Add(out, op)
		require.NoError(t, err)
	}

	return out
}

// sym parses a scalar operand.
func sym(s string) forms.Scalar { return forms.ScalarOf(scalar.MustParse(s)) }

// minkowski returns a Space with basis dt, dx, dy, dz and signature -1,
// plus the four basis atoms.
func minkowski(t *testing.T) (*forms.Space, []forms.Atom) {
	t.Helper()
	base := forms.NewSpace()
	basis := []forms.Atom{
		mustDiff(t, base, "t"),
		mustDiff(t, base, "x"),
		mustDiff(t, base, "y"),
		mustDiff(t, base, "z"),
	}

	return base.With(forms.WithBasis(basis...), forms.WithSignature(scalar.Int(-1))), basis
}

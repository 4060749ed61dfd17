package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// TestLift_Operands verifies the Multivector overload set.
func TestLift_Operands(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	vx := mustVector(t, sp, "x")
	tensor, err := sp.TensorProduct(dx, vx)
	require.NoError(t, err)

	cases := []struct {
		name string
		op   forms.Operand
		err  error
	}{
		{"Scalar", forms.Num(2), nil},
		{"Atom", dx, nil},
		{"Multivector", wedge(t, sp, dx), nil},
		{"VectorField", vx, forms.ErrUnsupportedOperand},
		{"Tensor", tensor, forms.ErrUnsupportedOperand},
		{"NilMultivector", (*forms.Multivector)(nil), forms.ErrNilOperand},
		{"Nil", nil, forms.ErrUnsupportedOperand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sp.Lift(tc.op)
			if tc.err == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tc.err)

			_, err = sp.Wedge(dx, tc.op)
			assert.ErrorIs(t, err, tc.err)
			_, err = sp.Add(tc.op, dx)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestMultivector_Equal covers atom and scalar comparisons.
func TestMultivector_Equal(t *testing.T) {
	sp := forms.NewSpace()
	dx, dy := mustDiff(t, sp, "x"), mustDiff(t, sp, "y")

	assert.True(t, wedge(t, sp, dx).Equal(dx), "unit term equals its atom")
	assert.False(t, wedge(t, sp, forms.Num(2), dx).Equal(dx))
	assert.True(t, sp.Zero().Equal(forms.Num(0)))
	assert.True(t, wedge(t, sp, sym("x^2 - 1")).Equal(sym("(x-1)*(x+1)")))
	assert.False(t, wedge(t, sp, dx, dy).Equal(mustVector(t, sp, "x")))
}

// TestMultivector_Arithmetic covers Add, Sub, Neg, Scale and rendering.
func TestMultivector_Arithmetic(t *testing.T) {
	sp := forms.NewSpace()
	dx, dy, dz := mustDiff(t, sp, "x"), mustDiff(t, sp, "y"), mustDiff(t, sp, "z")

	m := add(t, sp, forms.Num(3), wedge(t, sp, sym("x"), dx, dy), wedge(t, sp, forms.Num(-1), dy, dz))
	assert.Equal(t, "3 + x*dx∧dy - dy∧dz", m.String())
	assert.Equal(t, []int{0, 2}, m.Degrees())
	assert.Equal(t, 2, m.Grade(2).Len())
	assert.True(t, m.Coefficient(dy, dx).Equal(scalar.MustParse("-x")))
	assert.True(t, m.Coefficient().Equal(scalar.Int(3)))

	neg := m.Neg()
	sum, err := m.Add(neg)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	diff, err := m.Sub(forms.Num(3))
	require.NoError(t, err)
	assert.Equal(t, "x*dx∧dy - dy∧dz", diff.String())

	assert.True(t, m.Scale(scalar.Zero()).IsZero())
	assert.Equal(t, "(x + 1)*dx", wedge(t, sp, sym("x + 1"), dx).String())
	assert.Equal(t, "(x/y)*dx", wedge(t, sp, sym("x/y"), dx).String())
}

// TestNewMultivector_LengthMismatch verifies index alignment is enforced.
func TestNewMultivector_LengthMismatch(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	_, err := sp.NewMultivector([][]forms.Atom{{dx}}, nil)
	assert.ErrorIs(t, err, forms.ErrLengthMismatch)
}

// TestMultivector_Simplify verifies coefficients are re-simplified.
func TestMultivector_Simplify(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	m := sp.FromTerms(forms.Term{Atoms: []forms.Atom{dx}, Coeff: scalar.MustParse("(x^2 - 1)/(x - 1)")})
	assert.Equal(t, "(x + 1)*dx", m.Simplify().String())
	assert.Equal(t, m.Simplify().String(), m.Simplify().Simplify().String())
}

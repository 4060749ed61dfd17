package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// TestTensorProduct_Ordered checks that ⊗ keeps component order.
func TestTensorProduct_Ordered(t *testing.T) {
	sp := forms.NewSpace()
	dx, dy := mustDiff(t, sp, "x"), mustDiff(t, sp, "y")

	xy, err := sp.TensorProduct(dx, dy)
	require.NoError(t, err)
	yx, err := sp.TensorProduct(dy, dx)
	require.NoError(t, err)

	assert.Equal(t, [][]forms.Component{{dx, dy}}, xy.CompsList())
	assert.Equal(t, [][]forms.Component{{dy, dx}}, yx.CompsList())
	assert.Equal(t, "dx⊗dy", xy.String())

	// dx⊗dx survives: no antisymmetry.
	xx, err := sp.TensorProduct(dx, dx)
	require.NoError(t, err)
	assert.Equal(t, 1, xx.Len())

	scaled, err := sp.TensorProduct(forms.Num(3), xy)
	require.NoError(t, err)
	assert.Equal(t, "3*dx⊗dy", scaled.String())
}

// TestTensorProduct_RejectsMultivector checks the overload set.
func TestTensorProduct_RejectsMultivector(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	m := wedge(t, sp, dx)

	_, err := sp.TensorProduct(m, dx)
	assert.ErrorIs(t, err, forms.ErrUnsupportedOperand)
	_, err = sp.TensorProduct(dx, m)
	assert.ErrorIs(t, err, forms.ErrUnsupportedOperand)

	tensor, err := sp.TensorProduct(dx, dx)
	require.NoError(t, err)
	_, err = tensor.Add(m)
	assert.ErrorIs(t, err, forms.ErrUnsupportedOperand)
}

// TestTensor_AddKeepsDuplicates checks that Tensor addition never canonicalizes.
func TestTensor_AddKeepsDuplicates(t *testing.T) {
	sp := forms.NewSpace()
	vx := mustVector(t, sp, "x")

	field, err := sp.TensorProduct(forms.Num(1), vx)
	require.NoError(t, err)
	twice, err := field.Add(field)
	require.NoError(t, err)
	assert.Equal(t, 2, twice.Len())
	assert.True(t, twice.IsVectorField())

	cancel, err := field.Sub(vx)
	require.NoError(t, err)
	assert.Equal(t, 2, cancel.Len(), "zero-sum terms are tolerated")
	assert.Equal(t, "∂x - ∂x", cancel.String())
}

// TestTensor_IsVectorField checks the predicate on mixed content.
func TestTensor_IsVectorField(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	vx, vy := mustVector(t, sp, "x"), mustVector(t, sp, "y")

	field := sp.NewTensor(
		forms.TensorTerm{Comps: []forms.Component{vx}, Coeff: scalar.One()},
		forms.TensorTerm{Comps: []forms.Component{vy}, Coeff: scalar.Symbol("x")},
	)
	assert.True(t, field.IsVectorField())

	withForm, err := field.Add(dx)
	require.NoError(t, err)
	assert.False(t, withForm.IsVectorField())

	withScalar, err := field.Add(forms.Num(1))
	require.NoError(t, err)
	assert.False(t, withScalar.IsVectorField())
}

// TestToTensor_Antisymmetrizes checks the parity-weighted permutation expansion.
func TestToTensor_Antisymmetrizes(t *testing.T) {
	sp := forms.NewSpace()
	dx, dy, dz := mustDiff(t, sp, "x"), mustDiff(t, sp, "y"), mustDiff(t, sp, "z")

	two := wedge(t, sp, dx, dy).ToTensor()
	assert.Equal(t, "1/2*dx⊗dy - 1/2*dy⊗dx", two.String())

	three := wedge(t, sp, dx, dy, dz).ToTensor()
	require.Equal(t, 6, three.Len())
	sum := scalar.Zero()
	for i, comps := range three.CompsList() {
		c := three.Factors()[i]
		sum = sum.Add(c)
		switch {
		case comps[0] == forms.Component(dx) && comps[1] == forms.Component(dy):
			assert.True(t, c.Equal(scalar.Rat(1, 6)), "dx⊗dy⊗dz")
		case comps[0] == forms.Component(dy) && comps[1] == forms.Component(dx):
			assert.True(t, c.Equal(scalar.Rat(-1, 6)), "dy⊗dx⊗dz")
		}
	}
	assert.True(t, sum.IsZero())

	// Weights follow permutation parity even where the atoms commute.
	a := mustForm(t, sp, "a", 1)
	f := mustForm(t, sp, "F", 2)
	g := mustForm(t, sp, "G", 2)
	assert.Equal(t, "1/2*F⊗a - 1/2*a⊗F", wedge(t, sp, a, f).ToTensor().String())
	assert.Equal(t, "1/2*F⊗G - 1/2*G⊗F", wedge(t, sp, f, g).ToTensor().String())

	scalarOnly := wedge(t, sp, sym("x")).ToTensor()
	require.Equal(t, 1, scalarOnly.Len())
	assert.Empty(t, scalarOnly.CompsList()[0])
	assert.Equal(t, "x", scalarOnly.String())
}

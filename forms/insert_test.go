package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// TestInsert_Duality checks i_∂x dx == 1 and i_∂y dx == 0.
func TestInsert_Duality(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	vx, vy := mustVector(t, sp, "x"), mustVector(t, sp, "y")

	assert.True(t, dx.Insert(vx).IsOne())
	assert.True(t, dx.Insert(vy).IsZero())

	one, err := sp.Insert(dx, vx)
	require.NoError(t, err)
	assert.True(t, one.Equal(forms.Num(1)))

	zero, err := sp.Insert(dx, vy)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	// A frame 1-form named like its dual vector also pairs.
	e1 := mustForm(t, sp, "e1", 1)
	assert.True(t, e1.Insert(mustVector(t, sp, "e1")).IsOne())

	// 0-forms never pair.
	assert.True(t, mustForm(t, sp, "x", 0).Insert(vx).IsZero())
}

// TestInsert_Sign checks the (-1)^deg sign for skipped atoms.
func TestInsert_Sign(t *testing.T) {
	sp := forms.NewSpace()
	dx, dy, dz := mustDiff(t, sp, "x"), mustDiff(t, sp, "y"), mustDiff(t, sp, "z")
	vx, vy := mustVector(t, sp, "x"), mustVector(t, sp, "y")

	m := wedge(t, sp, sym("x*y"), dx, dy, dz)

	got, err := m.Insert(vx)
	require.NoError(t, err)
	assert.True(t, got.Equal(wedge(t, sp, sym("x*y"), dy, dz)), "got %s", got)

	got, err = m.Insert(vy)
	require.NoError(t, err)
	assert.True(t, got.Equal(wedge(t, sp, sym("-x*y"), dx, dz)), "got %s", got)

	scalarPart, err := sp.Insert(sym("x"), vx)
	require.NoError(t, err)
	assert.True(t, scalarPart.IsZero())
}

// TestInsert_VectorFieldTensor checks linear extension over a weighted vector field.
func TestInsert_VectorFieldTensor(t *testing.T) {
	sp := forms.NewSpace()
	dx, dy := mustDiff(t, sp, "x"), mustDiff(t, sp, "y")
	vx, vy := mustVector(t, sp, "x"), mustVector(t, sp, "y")

	field := sp.NewTensor(
		forms.TensorTerm{Comps: []forms.Component{vx}, Coeff: scalar.Int(2)},
		forms.TensorTerm{Comps: []forms.Component{vy}, Coeff: scalar.Int(3)},
	)
	require.True(t, field.IsVectorField())

	got, err := wedge(t, sp, dx, dy).Insert(field)
	require.NoError(t, err)
	want := add(t, sp, wedge(t, sp, forms.Num(2), dy), wedge(t, sp, forms.Num(-3), dx))
	assert.True(t, got.Equal(want), "got %s", got)
	assert.Equal(t, "-3*dx + 2*dy", got.String())
}

// TestInsert_Errors checks operand validation.
func TestInsert_Errors(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	vx := mustVector(t, sp, "x")
	m := wedge(t, sp, dx)

	mixed, err := sp.TensorProduct(dx, vx)
	require.NoError(t, err)
	_, err = m.Insert(mixed)
	assert.ErrorIs(t, err, forms.ErrNotVectorField)

	_, err = m.Insert(forms.Num(1))
	assert.ErrorIs(t, err, forms.ErrUnsupportedOperand)

	var nilTensor *forms.Tensor
	_, err = m.Insert(nilTensor)
	assert.ErrorIs(t, err, forms.ErrNilOperand)
}

// TestLieDerivative checks Cartan's formula on coordinate fields.
func TestLieDerivative(t *testing.T) {
	sp := forms.NewSpace()
	dy := mustDiff(t, sp, "y")
	vx := mustVector(t, sp, "x")

	got, err := sp.LieDerivative(vx, wedge(t, sp, sym("x^2"), dy))
	require.NoError(t, err)
	assert.True(t, got.Equal(wedge(t, sp, sym("2*x"), dy)), "got %s", got)

	got, err = sp.LieDerivative(vx, sym("x*y^2"))
	require.NoError(t, err)
	assert.True(t, got.Equal(sym("y^2")), "got %s", got)
}

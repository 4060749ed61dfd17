package forms_test

import (
	"fmt"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// ExampleSpace_D applies the product rule: d(x·dy) = dx∧dy, and takes the
// gradient of a scalar.
func ExampleSpace_D() {
	sp := forms.NewSpace()
	dy, _ := sp.Differential("y")

	m, _ := sp.Wedge(forms.ScalarOf(scalar.Symbol("x")), dy)
	dm, _ := sp.D(m)
	grad, _ := sp.D(forms.ScalarOf(scalar.MustParse("x^2*y")))

	fmt.Println(m)
	fmt.Println(dm)
	fmt.Println(grad)
	// Output:
	// x*dy
	// dx∧dy
	// 2*x*y*dx + x^2*dy
}

// ExampleSpace_Hodge dualizes dt in Minkowski space.
func ExampleSpace_Hodge() {
	base := forms.NewSpace()
	var basis []forms.Atom
	for _, c := range []string{"t", "x", "y", "z"} {
		d, _ := base.Differential(c)
		basis = append(basis, d)
	}
	sp := base.With(forms.WithBasis(basis...), forms.WithSignature(scalar.Int(-1)))

	star, err := sp.Hodge(basis[0])
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(star)
	// Output:
	// -dx∧dy∧dz
}

// ExampleMultivector_Insert contracts dx∧dy with ∂y.
func ExampleMultivector_Insert() {
	sp := forms.NewSpace()
	dx, _ := sp.Differential("x")
	dy, _ := sp.Differential("y")
	vy, _ := sp.Vector("y")

	m, _ := sp.Wedge(dx, dy)
	out, _ := m.Insert(vy)
	fmt.Println(out)
	// Output:
	// -dx
}

// ExampleMultivector_ToTensor antisymmetrizes a 2-form into a full tensor.
func ExampleMultivector_ToTensor() {
	sp := forms.NewSpace()
	dx, _ := sp.Differential("x")
	dy, _ := sp.Differential("y")

	m, _ := sp.Wedge(dx, dy)
	fmt.Println(m.ToTensor())
	// Output:
	// 1/2*dx⊗dy - 1/2*dy⊗dx
}

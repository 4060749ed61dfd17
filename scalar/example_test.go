package scalar_test

import (
	"fmt"

	"github.com/katalvlaran/diffform/scalar"
)

// ExampleParse parses a polynomial and takes both partial derivatives.
func ExampleParse() {
	f, err := scalar.Parse("x^2*y + 3*y")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(f)
	fmt.Println(f.Diff("x"))
	fmt.Println(f.Diff("y"))
	// Output:
	// x^2*y + 3*y
	// 2*x*y
	// x^2 + 3
}

// ExampleExpr_Div shows exact polynomial division.
func ExampleExpr_Div() {
	q, err := scalar.MustParse("x^2 - y^2").Div(scalar.MustParse("x + y"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(q)
	// Output:
	// x - y
}

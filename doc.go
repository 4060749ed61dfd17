// Package diffform is a symbolic calculator for differential forms: an
// exterior-algebra engine with wedge products, exterior derivatives, interior
// products, Hodge duals, Lie derivatives and substitution, over exact
// rational-function coefficients.
//
// Under the hood, everything is organized under these subpackages:
//
//	scalar/             exact rational functions of named symbols (the coefficient ring)
//	forms/              atoms, multivectors, tensors and every operator on them
//	internal/worksheet/ TOML worksheets: declarations plus a list of steps
//	internal/cli/       the diffform command (eval, check)
//	cmd/diffform/       entry point
//	examples/           a runnable electromagnetism demo and sample worksheets
//
// Quick example:
//
//	sp := forms.NewSpace()
//	dy, _ := sp.Differential("y")
//	m, _ := sp.Wedge(forms.ScalarOf(scalar.Symbol("x")), dy)
//	fmt.Println(m.D()) // dx∧dy
//
// Or from the shell:
//
//	diffform eval examples/worksheets/potential.toml
package diffform

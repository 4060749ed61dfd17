// Package worksheet loads and evaluates exterior-calculus worksheets.
//
// A worksheet is a TOML document that configures a forms.Space, declares
// form atoms and named multivectors, and lists the steps to compute:
//
//	max_degree  = 4
//	signature   = "-1"
//	coordinates = ["t", "x", "y", "z"]
//	basis       = ["dt", "dx", "dy", "dz"]
//	vectors     = ["x"]
//
//	[[form]]
//	name   = "F"
//	degree = 2
//
//	[[define]]
//	name  = "A"
//	terms = [{ coeff = "x*y", atoms = ["dx"] }]
//
//	[[step]]
//	name = "dA"
//	op   = "d"
//	args = ["A"]
//
// # Names
//
// Coordinates, vectors, forms, definitions and steps share one namespace.
// A coordinate "x" binds the scalar symbol "x" and its differential "dx"; a
// vector "x" binds "∂x". Step arguments name anything bound earlier.
//
// Any other argument that is a bare identifier is an unknown name. Anything
// else is parsed as an inline scalar expression such as "2", "x*y" or "t + 1".
//
// # Operations
//
//	add, wedge        two or more operands
//	sub               two operands
//	neg, d, hodge     one operand
//	simplify, tensor  one operand
//	insert            form, vector
//	lie               vector, form
//	substitute        form, target, replacement
//	product           two operands, tensor product
//
// Load and Decode parse; Validate checks names, ops and arity without
// evaluating; Run evaluates the steps in order.
package worksheet

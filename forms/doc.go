// Package forms implements symbolic exterior calculus over package scalar:
// differential forms, the wedge product, the exterior derivative, interior
// products with vector fields, the Hodge star and substitution.
//
// # Values
//
//   - Atom: an indivisible form of fixed degree ("dx", "F", …).
//   - VectorField: a coordinate vector field ∂x, dual to the 1-form dx.
//   - Multivector: a canonical sum Σ cᵢ·aᵢ₀∧aᵢ₁∧… of wedge monomials.
//   - Tensor: an ordered, non-canonicalized sum of tensor products of atoms
//     and vector fields; the bridge for index-by-index pairing.
//   - Scalar: a scalar.Expr used as an operand.
//
// All five satisfy the sealed Operand interface, and every operator
// switches over exactly these cases.
//
// # Normal form
//
// Every Multivector-producing operation ends with the canonicalization
// pipeline: square removal, degree truncation, Koszul-signed sorting,
// like-term collection. Two Multivectors are therefore equal iff their term
// lists match. Atoms are compared by their symbol strings, so symbols that
// are mathematically equal but spelled differently are never merged.
//
// # Configuration
//
// A Space carries the maximum total degree (DefaultMaxDegree = 4), the
// ordered 1-form basis and signature used by Hodge, and an optional logger.
// It is immutable; derive variants with Space.With.
//
// # Example
//
//	sp := forms.NewSpace()
//	dx, _ := sp.Differential("x")
//	dy, _ := sp.Differential("y")
//	m, _ := sp.Wedge(forms.ScalarOf(scalar.Symbol("x")), dy) // x·dy
//	w, _ := sp.Wedge(dx, dy)
//	fmt.Println(m.D().Equal(w))                                // true
//
// Errors are package sentinels (ErrUnsupportedOperand, ErrInvalidDegree, …)
// matched with errors.Is.
package forms

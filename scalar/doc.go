// Package scalar is the exact symbolic scalar layer used as coefficients by
// package forms.
//
// An Expr is an immutable rational function num/den of multivariate
// polynomials with arbitrary-precision rational coefficients. It supports
// the operations exterior calculus needs from a scalar field:
//
//   - Arithmetic: Add, Sub, Mul, Neg, Div, Pow.
//   - Exact zero test: IsZero (numerators are kept in canonical form).
//   - Calculus: Diff (partial derivative), FreeSymbols.
//   - Simplify: exact polynomial division, monomial cancellation and a
//     monic denominator.
//   - Subs: symbol substitution.
//   - Parse / String: a small infix grammar and a deterministic printer.
//
// There is no polynomial GCD, so quotients whose common factor is not a
// monomial and does not divide exactly are left unreduced. Zero detection is
// unaffected.
//
// The zero value of Expr is the scalar 0:
//
//	var z scalar.Expr         // 0
//	x := scalar.Symbol("x")   // x
//	f := x.Mul(x).Add(scalar.Int(1))
//	fmt.Println(f.Diff("x"))  // 2*x
package scalar

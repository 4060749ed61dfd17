// SPDX-License-Identifier: MIT
// Package forms: sentinel error set.
// Every operation returns one of these sentinels, possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is. Panics are
// reserved for nonsensical Option values (programmer error).

package forms

import "errors"

var (
	// ErrUnsupportedOperand is returned when an operator is applied to an
	// operand outside its overload set, e.g. TensorProduct of a Multivector
	// or Wedge of a VectorField.
	ErrUnsupportedOperand = errors.New("forms: unsupported operand")

	// ErrNilOperand indicates a nil *Multivector or *Tensor argument.
	ErrNilOperand = errors.New("forms: nil operand")

	// ErrInvalidDegree indicates a Form Atom degree outside [0, MaxDegree].
	ErrInvalidDegree = errors.New("forms: degree out of range")

	// ErrInvalidSymbol indicates an empty atom or vector-field symbol.
	ErrInvalidSymbol = errors.New("forms: invalid symbol")

	// ErrMultiTermTarget indicates a substitution target with more than one term.
	ErrMultiTermTarget = errors.New("forms: substitution target has more than one term")

	// ErrNotVectorField indicates a Tensor passed to Insert is not a weighted
	// sum of single vector-field components.
	ErrNotVectorField = errors.New("forms: tensor is not a vector field")

	// ErrNoBasis indicates Hodge was called on a Space without a basis.
	ErrNoBasis = errors.New("forms: no basis configured")

	// ErrNotInBasis indicates Hodge met an atom that is not a basis 1-form.
	ErrNotInBasis = errors.New("forms: atom is not a basis element")

	// ErrLengthMismatch indicates forms and factors lists of different length.
	ErrLengthMismatch = errors.New("forms: forms and factors length mismatch")
)

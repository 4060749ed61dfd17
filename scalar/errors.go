package scalar

import "errors"

var (
	// ErrSyntax indicates Parse could not read the input.
	ErrSyntax = errors.New("scalar: syntax error")

	// ErrDivisionByZero indicates a division by an expression that is identically zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrNegativePower indicates zero raised to a negative power.
	ErrNegativePower = errors.New("scalar: zero to a negative power")

	// ErrExponentRange indicates an exponent whose magnitude exceeds MaxExponent.
	ErrExponentRange = errors.New("scalar: exponent out of range")
)

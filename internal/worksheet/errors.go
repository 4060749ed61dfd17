package worksheet

import "errors"

var (
	// ErrUnknownName indicates a step or definition refers to an undeclared name.
	ErrUnknownName = errors.New("worksheet: unknown name")

	// ErrUnknownOp indicates a step uses an operation outside the op table.
	ErrUnknownOp = errors.New("worksheet: unknown op")

	// ErrArity indicates a step has the wrong number of arguments.
	ErrArity = errors.New("worksheet: wrong number of arguments")

	// ErrDuplicateName indicates two declarations share a name.
	ErrDuplicateName = errors.New("worksheet: duplicate name")

	// ErrInvalidConfig indicates a Space setting the algebra cannot use.
	ErrInvalidConfig = errors.New("worksheet: invalid configuration")

	// ErrOperandType indicates an argument of the wrong kind, e.g. a form
	// where a vector field is expected.
	ErrOperandType = errors.New("worksheet: wrong operand type")
)

package worksheet

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/diffform/forms"
)

type opFunc func(sp *forms.Space, args []forms.Operand) (forms.Operand, error)

// opSpec is one row of the op table. max < 0 means unbounded.
type opSpec struct {
	min, max int
	eval     opFunc
}

func (o opSpec) accepts(n int) bool { return n >= o.min && (o.max < 0 || n <= o.max) }

func (o opSpec) arity() string {
	switch {
	case o.max < 0:
		return "at least " + strconv.Itoa(o.min)
	case o.min == o.max:
		return strconv.Itoa(o.min)
	default:
		return strconv.Itoa(o.min) + " to " + strconv.Itoa(o.max)
	}
}

var ops = map[string]opSpec{
	"add":   {2, -1, fold((*forms.Space).Add)},
	"wedge": {2, -1, fold((*forms.Space).Wedge)},
	"sub": {2, 2, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		return multivector(sp.Sub(a[0], a[1]))
	}},
	"neg": {1, 1, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		return multivector(sp.Neg(a[0]))
	}},
	"d": {1, 1, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		return multivector(sp.D(a[0]))
	}},
	"hodge": {1, 1, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		return multivector(sp.Hodge(a[0]))
	}},
	"simplify": {1, 1, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		m, err := sp.Lift(a[0])
		if err != nil {
			return nil, fmt.Errorf("simplify: %w", err)
		}

		return m.Simplify(), nil
	}},
	"insert": {2, 2, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		return multivector(sp.Insert(a[0], a[1]))
	}},
	"lie": {2, 2, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		v, ok := a[0].(forms.VectorField)
		if !ok {
			return nil, fmt.Errorf("lie: first argument must be a vector field: %w", ErrOperandType)
		}

		return multivector(sp.LieDerivative(v, a[1]))
	}},
	"substitute": {3, 3, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		return multivector(sp.Substitute(a[0], a[1], a[2]))
	}},
	"tensor": {1, 1, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		m, err := sp.Lift(a[0])
		if err != nil {
			return nil, fmt.Errorf("tensor: %w", err)
		}

		return m.ToTensor(), nil
	}},
	"product": {2, 2, func(sp *forms.Space, a []forms.Operand) (forms.Operand, error) {
		t, err := sp.TensorProduct(a[0], a[1])
		if err != nil {
			return nil, err
		}

		return t, nil
	}},
}

// multivector adapts a (*Multivector, error) pair, keeping a nil result a
// nil interface.
func multivector(m *forms.Multivector, err error) (forms.Operand, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

// fold applies a binary operator left to right.
func fold(op func(*forms.Space, forms.Operand, forms.Operand) (*forms.Multivector, error)) opFunc {
	return func(sp *forms.Space, args []forms.Operand) (forms.Operand, error) {
		acc, err := op(sp, args[0], args[1])
		if err != nil {
			return nil, err
		}
		for _, b := range args[2:] {
			if acc, err = op(sp, acc, b); err != nil {
				return nil, err
			}
		}

		return acc, nil
	}
}

// Run validates the worksheet and evaluates its steps in order. The logger
// receives one debug line per step and the Space's canonicalization traces;
// nil discards them. Cancellation is checked between steps and the results
// computed so far are returned with ctx.Err().
func (w *Worksheet) Run(ctx context.Context, logger *log.Logger) ([]Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e, err := w.compile(logger)
	if err != nil {
		return nil, err
	}
	if err := e.check(w.Steps); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(w.Steps))
	for _, st := range w.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		args, err := e.resolve(st.Args)
		if err != nil {
			return results, fmt.Errorf("step %q: %w", st.Name, err)
		}
		val, err := ops[st.Op].eval(e.space, args)
		if err != nil {
			return results, fmt.Errorf("step %q: %w", st.Name, err)
		}
		e.values[st.Name] = val

		out := Render(val)
		logger.Debug("step", "name", st.Name, "op", st.Op, "value", out)
		results = append(results, Result{Name: st.Name, Value: out})
	}

	return results, nil
}

func (e *env) resolve(args []string) ([]forms.Operand, error) {
	out := make([]forms.Operand, len(args))
	for i, arg := range args {
		inline, isName, err := parseArg(arg, e.known)
		if err != nil {
			return nil, err
		}
		if isName {
			out[i] = e.values[arg]
		} else {
			out[i] = forms.ScalarOf(inline)
		}
	}

	return out, nil
}

// Render formats any operand the way the worksheet prints it.
func Render(v forms.Operand) string {
	switch x := v.(type) {
	case forms.Scalar:
		return x.Value.String()
	case forms.Atom:
		return x.String()
	case forms.VectorField:
		return x.String()
	case *forms.Multivector:
		return x.String()
	case *forms.Tensor:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

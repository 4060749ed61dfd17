package worksheet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// vectorPrefix marks vector-field names in step arguments.
const vectorPrefix = "∂"

// Worksheet is the decoded TOML document.
type Worksheet struct {
	MaxDegree   *int         `toml:"max_degree"`
	Signature   string       `toml:"signature"`
	Coordinates []string     `toml:"coordinates"`
	Basis       []string     `toml:"basis"`
	Vectors     []string     `toml:"vectors"`
	Forms       []FormDecl   `toml:"form"`
	Defines     []Definition `toml:"define"`
	Steps       []Step       `toml:"step"`
}

// FormDecl declares a Form Atom.
type FormDecl struct {
	Name   string `toml:"name"`
	Degree int    `toml:"degree"`
}

// Definition names a multivector given term by term.
type Definition struct {
	Name  string     `toml:"name"`
	Terms []TermDecl `toml:"terms"`
}

// TermDecl is one coeff * atoms[0]∧atoms[1]∧… term. An empty Coeff means 1
// and empty Atoms a scalar term.
type TermDecl struct {
	Coeff string   `toml:"coeff"`
	Atoms []string `toml:"atoms"`
}

// Step applies Op to Args and binds the result to Name.
type Step struct {
	Name string   `toml:"name"`
	Op   string   `toml:"op"`
	Args []string `toml:"args"`
}

// Result is the rendered value of one step.
type Result struct {
	Name  string
	Value string
}

// Load reads and decodes the worksheet at path.
func Load(path string) (*Worksheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return w, nil
}

// Decode parses a worksheet from r. Keys outside the schema are rejected so
// that a misspelt table does not silently drop steps.
func Decode(r io.Reader) (*Worksheet, error) {
	var w Worksheet
	md, err := toml.NewDecoder(r).Decode(&w)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}

	return &w, nil
}

// Validate builds the Space and declarations and checks every step's op,
// arity and argument names, without evaluating anything.
func (w *Worksheet) Validate() error {
	e, err := w.compile(nil)
	if err != nil {
		return err
	}

	return e.check(w.Steps)
}

// env is a compiled worksheet: the configured Space and every bound name.
type env struct {
	space  *forms.Space
	values map[string]forms.Operand
}

func (e *env) bind(name string, v forms.Operand) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidConfig)
	}
	if _, dup := e.values[name]; dup {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	e.values[name] = v

	return nil
}

func (e *env) known(name string) bool {
	_, ok := e.values[name]

	return ok
}

// compile builds the Space and binds coordinates, vectors, forms and
// definitions, in that order. Names share one namespace.
func (w *Worksheet) compile(logger *log.Logger) (*env, error) {
	maxDegree := forms.DefaultMaxDegree
	if w.MaxDegree != nil {
		if *w.MaxDegree < 0 {
			return nil, fmt.Errorf("max_degree %d: %w", *w.MaxDegree, ErrInvalidConfig)
		}
		maxDegree = *w.MaxDegree
	}
	sig := scalar.Int(forms.DefaultSignature)
	if w.Signature != "" {
		var err error
		if sig, err = scalar.Parse(w.Signature); err != nil {
			return nil, fmt.Errorf("signature: %w", err)
		}
		if sig.IsZero() {
			return nil, fmt.Errorf("signature is zero: %w", ErrInvalidConfig)
		}
	}

	sp := forms.NewSpace(forms.WithMaxDegree(maxDegree), forms.WithSignature(sig), forms.WithLogger(logger))
	e := &env{space: sp, values: make(map[string]forms.Operand)}

	for _, c := range w.Coordinates {
		if !scalar.IsIdent(c) {
			return nil, fmt.Errorf("coordinate %q: %w", c, ErrInvalidConfig)
		}
		d, err := sp.Differential(c)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", c, err)
		}
		if err := e.bind(c, forms.ScalarOf(scalar.Symbol(c))); err != nil {
			return nil, err
		}
		if err := e.bind(d.Symbol, d); err != nil {
			return nil, err
		}
	}
	for _, name := range w.Vectors {
		v, err := sp.Vector(name)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", name, err)
		}
		if err := e.bind(vectorPrefix+name, v); err != nil {
			return nil, err
		}
	}
	for _, f := range w.Forms {
		a, err := sp.Form(f.Name, f.Degree)
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", f.Name, err)
		}
		if err := e.bind(f.Name, a); err != nil {
			return nil, err
		}
	}

	if len(w.Basis) > 0 {
		basis, err := e.basis(w.Basis)
		if err != nil {
			return nil, err
		}
		e.space = sp.With(forms.WithBasis(basis...))
	}

	for _, def := range w.Defines {
		m, err := e.define(def)
		if err != nil {
			return nil, fmt.Errorf("define %q: %w", def.Name, err)
		}
		if err := e.bind(def.Name, m); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// basis resolves the basis names to distinct 1-form atoms.
func (e *env) basis(names []string) ([]forms.Atom, error) {
	out := make([]forms.Atom, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		a, err := e.atom(name)
		if err != nil {
			return nil, fmt.Errorf("basis: %w", err)
		}
		if a.Degree != 1 || seen[a.Key()] {
			return nil, fmt.Errorf("basis element %q: %w", name, ErrInvalidConfig)
		}
		seen[a.Key()] = true
		out = append(out, a)
	}

	return out, nil
}

// atom resolves name to a bound Atom.
func (e *env) atom(name string) (forms.Atom, error) {
	v, ok := e.values[name]
	if !ok {
		return forms.Atom{}, fmt.Errorf("%q: %w", name, ErrUnknownName)
	}
	a, ok := v.(forms.Atom)
	if !ok {
		return forms.Atom{}, fmt.Errorf("%q is not a form atom: %w", name, ErrOperandType)
	}

	return a, nil
}

func (e *env) define(def Definition) (*forms.Multivector, error) {
	terms := make([]forms.Term, 0, len(def.Terms))
	for _, td := range def.Terms {
		coeff := scalar.One()
		if strings.TrimSpace(td.Coeff) != "" {
			var err error
			if coeff, err = scalar.Parse(td.Coeff); err != nil {
				return nil, err
			}
		}
		atoms := []forms.Atom{forms.Identity}
		if len(td.Atoms) > 0 {
			atoms = make([]forms.Atom, 0, len(td.Atoms))
			for _, name := range td.Atoms {
				a, err := e.atom(name)
				if err != nil {
					return nil, err
				}
				atoms = append(atoms, a)
			}
		}
		terms = append(terms, forms.Term{Atoms: atoms, Coeff: coeff})
	}

	return e.space.FromTerms(terms...), nil
}

// check validates steps statically against the bound names.
func (e *env) check(steps []Step) error {
	known := make(map[string]bool, len(e.values)+len(steps))
	for name := range e.values {
		known[name] = true
	}
	isKnown := func(name string) bool { return known[name] }

	for _, st := range steps {
		if err := checkStep(st, isKnown); err != nil {
			return err
		}
		if st.Name == "" {
			return fmt.Errorf("step %q: empty name: %w", st.Op, ErrInvalidConfig)
		}
		if known[st.Name] {
			return fmt.Errorf("step %q: %w", st.Name, ErrDuplicateName)
		}
		known[st.Name] = true
	}

	return nil
}

func checkStep(st Step, known func(string) bool) error {
	op, ok := ops[st.Op]
	if !ok {
		return fmt.Errorf("step %q: %q: %w", st.Name, st.Op, ErrUnknownOp)
	}
	if !op.accepts(len(st.Args)) {
		return fmt.Errorf("step %q: %s takes %s, got %d: %w", st.Name, st.Op, op.arity(), len(st.Args), ErrArity)
	}
	for _, arg := range st.Args {
		if _, _, err := parseArg(arg, known); err != nil {
			return fmt.Errorf("step %q: %w", st.Name, err)
		}
	}

	return nil
}

// parseArg classifies arg: isName reports a bound name, otherwise the inline
// scalar is returned. Bare identifiers must be bound.
func parseArg(arg string, known func(string) bool) (inline scalar.Expr, isName bool, err error) {
	if known(arg) {
		return scalar.Expr{}, true, nil
	}
	if scalar.IsIdent(arg) || strings.HasPrefix(arg, vectorPrefix) {
		return scalar.Expr{}, false, fmt.Errorf("%q: %w", arg, ErrUnknownName)
	}
	inline, err = scalar.Parse(arg)
	if err != nil {
		return scalar.Expr{}, false, fmt.Errorf("%q: %w", arg, err)
	}

	return inline, false, nil
}

// SPDX-License-Identifier: MIT

// Package forms: functional configuration for the exterior algebra.
// This file defines:
//   - Space, the immutable configuration threaded through every operation,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - No global state: every Multivector and Tensor remembers the Space it
//     was built in, and every operator reads its settings from there.
//   - Deriving a Space (With) never touches values built in the old one;
//     they are not retroactively renormalized.
package forms

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/diffform/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDegree is the highest total degree a term may carry before
	// the canonicalization pipeline discards it (forms on a 4-manifold).
	DefaultMaxDegree = 4

	// DefaultSignature is the metric signature factor used by Hodge when the
	// first basis 1-form is occupied (Euclidean). Pass WithSignature(-1) for
	// a Lorentzian basis with time first.
	DefaultSignature = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDegreeInvalid = "forms: WithMaxDegree: max degree must be >= 0"
	panicBasisDegree      = "forms: WithBasis: basis elements must be 1-forms"
	panicBasisDuplicate   = "forms: WithBasis: duplicate basis element"
	panicSignatureZero    = "forms: WithSignature: signature must be non-zero"
)

// Option mutates a Space under construction.
type Option func(*Space)

// Space is the immutable algebra configuration: maximum total degree, the
// ordered 1-form basis and metric signature used by Hodge, and an optional
// debug logger.
//
// Build one with NewSpace; the zero value is not usable, a nil *Space is
// treated as NewSpace() by Multivector methods.
type Space struct {
	maxDegree int
	basis     []Atom
	signature scalar.Expr
	logger    *log.Logger
}

// WithMaxDegree sets the maximum total degree.
// Panics when n < 0.
func WithMaxDegree(n int) Option {
	if n < 0 {
		panic(panicMaxDegreeInvalid)
	}

	return func(s *Space) { s.maxDegree = n }
}

// WithBasis sets the ordered 1-form basis used by Hodge.
//
// Behavior highlights:
//   - The order given here is the order the Levi-Civita symbol is taken in;
//     it need not match the canonical atom order.
//   - Panics when an element is not a 1-form or appears twice.
func WithBasis(basis ...Atom) Option {
	seen := make(map[string]struct{}, len(basis))
	for _, a := range basis {
		if a.Degree != 1 {
			panic(panicBasisDegree)
		}
		if _, dup := seen[a.Key()]; dup {
			panic(panicBasisDuplicate)
		}
		seen[a.Key()] = struct{}{}
	}
	cp := append([]Atom(nil), basis...)

	return func(s *Space) { s.basis = cp }
}

// WithSignature sets the metric signature factor applied by Hodge.
// Panics when sig is zero.
func WithSignature(sig scalar.Expr) Option {
	if sig.IsZero() {
		panic(panicSignatureZero)
	}

	return func(s *Space) { s.signature = sig }
}

// WithLogger attaches a logger that receives debug traces of the
// canonicalization pipeline. nil disables logging.
func WithLogger(l *log.Logger) Option {
	return func(s *Space) { s.logger = l }
}

// NewSpace returns a Space with defaults overridden by opts.
func NewSpace(opts ...Option) *Space {
	s := &Space{
		maxDegree: DefaultMaxDegree,
		signature: scalar.Int(DefaultSignature),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// With returns a copy of s with opts applied. Values already built in s keep
// using s.
func (s *Space) With(opts ...Option) *Space {
	cp := *s
	cp.basis = append([]Atom(nil), s.basis...)
	for _, opt := range opts {
		opt(&cp)
	}

	return &cp
}

// MaxDegree returns the configured maximum total degree.
func (s *Space) MaxDegree() int { return s.maxDegree }

// Basis returns a copy of the Hodge basis.
func (s *Space) Basis() []Atom { return append([]Atom(nil), s.basis...) }

// Signature returns the Hodge signature factor.
func (s *Space) Signature() scalar.Expr { return s.signature }

// Form constructs a Form Atom of the given degree.
//
// Errors:
//   - ErrInvalidSymbol when symbol is empty.
//   - ErrInvalidDegree when degree < 0 or degree > MaxDegree.
func (s *Space) Form(symbol string, degree int) (Atom, error) {
	if symbol == "" {
		return Atom{}, ErrInvalidSymbol
	}
	if degree < 0 || degree > s.maxDegree {
		return Atom{}, fmt.Errorf("%s of degree %d (max %d): %w", symbol, degree, s.maxDegree, ErrInvalidDegree)
	}

	return Atom{Symbol: symbol, Degree: degree}, nil
}

// Differential returns the exact 1-form d(coord) of a scalar coordinate.
func (s *Space) Differential(coord string) (Atom, error) {
	a, err := s.Form(coord, 0)
	if err != nil {
		return Atom{}, err
	}
	da := a.D()
	if da.Degree > s.maxDegree {
		return Atom{}, fmt.Errorf("d%s: %w", coord, ErrInvalidDegree)
	}

	return da, nil
}

// Vector constructs a Vector Field Atom.
func (s *Space) Vector(symbol string) (VectorField, error) {
	if symbol == "" {
		return VectorField{}, ErrInvalidSymbol
	}

	return VectorField{Symbol: symbol}, nil
}

// basisIndex returns the position of a in the basis or -1.
func (s *Space) basisIndex(a Atom) int {
	for i, b := range s.basis {
		if b.Equal(a) {
			return i
		}
	}

	return -1
}

// defaultSpace backs Multivector and Tensor zero values.
var defaultSpace = NewSpace()

func orDefault(s *Space) *Space {
	if s == nil {
		return defaultSpace
	}

	return s
}

package scalar

import (
	"fmt"
	"math/big"
	"strconv"
)

// Parse reads an infix scalar expression.
//
// Grammar:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary ('^' ['-'] integer)?
//	primary := number | ident | '(' expr ')'
//
// Numbers are integers or decimals ("2", "0.5"); identifiers match
// [A-Za-z_][A-Za-z0-9_]*. Errors wrap ErrSyntax (or ErrDivisionByZero)
// and carry the byte offset.
func Parse(s string) (Expr, error) {
	p := &parser{src: s}
	p.skip()
	if p.eof() {
		return Expr{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	e, err := p.expr()
	if err != nil {
		return Expr{}, err
	}
	if !p.eof() {
		return Expr{}, p.errorf("unexpected %q", p.src[p.pos])
	}

	return e, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return e
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) skip() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return Expr{}, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		p.skip()
		right, err := p.term()
		if err != nil {
			return Expr{}, err
		}
		if op == '+' {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
}

func (p *parser) term() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return Expr{}, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		at := p.pos
		p.pos++
		p.skip()
		right, err := p.unary()
		if err != nil {
			return Expr{}, err
		}
		if op == '*' {
			left = left.Mul(right)
			continue
		}
		if left, err = left.Div(right); err != nil {
			return Expr{}, fmt.Errorf("%w at offset %d", err, at)
		}
	}
}

func (p *parser) unary() (Expr, error) {
	switch p.peek() {
	case '-':
		p.pos++
		p.skip()
		e, err := p.unary()
		if err != nil {
			return Expr{}, err
		}

		return e.Neg(), nil
	case '+':
		p.pos++
		p.skip()

		return p.unary()
	}

	return p.power()
}

func (p *parser) power() (Expr, error) {
	base, err := p.primary()
	if err != nil {
		return Expr{}, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	p.skip()
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
		p.skip()
	}
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	if start == p.pos {
		return Expr{}, p.errorf("expected integer exponent")
	}
	digits := p.src[start:p.pos]
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxExponent {
		return Expr{}, fmt.Errorf("exponent %s at offset %d (max %d): %w", digits, start, MaxExponent, ErrExponentRange)
	}
	p.skip()
	if neg {
		n = -n
	}
	out, err := base.Pow(n)
	if err != nil {
		return Expr{}, fmt.Errorf("%w at offset %d", err, start)
	}

	return out, nil
}

func (p *parser) primary() (Expr, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		p.skip()
		e, err := p.expr()
		if err != nil {
			return Expr{}, err
		}
		if p.peek() != ')' {
			return Expr{}, p.errorf("expected ')'")
		}
		p.pos++
		p.skip()

		return e, nil
	case isDigit(c) || c == '.':
		start := p.pos
		for !p.eof() && (isDigit(p.peek()) || p.peek() == '.') {
			p.pos++
		}
		r, ok := new(big.Rat).SetString(p.src[start:p.pos])
		if !ok {
			return Expr{}, p.errorf("bad number %q", p.src[start:p.pos])
		}
		p.skip()

		return FromRat(r), nil
	case isIdentStart(c):
		start := p.pos
		for !p.eof() && (isIdentStart(p.peek()) || isDigit(p.peek())) {
			p.pos++
		}
		name := p.src[start:p.pos]
		p.skip()

		return Symbol(name), nil
	case c == 0:
		return Expr{}, p.errorf("unexpected end of input")
	}

	return Expr{}, p.errorf("unexpected %q", c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdent reports whether s is a valid symbol name for Parse.
func IsIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentStart(s[i]) && !isDigit(s[i]) {
			return false
		}
	}

	return true
}

package forms_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// TestNewSpace_Defaults verifies the documented defaults.
func TestNewSpace_Defaults(t *testing.T) {
	sp := forms.NewSpace()
	assert.Equal(t, forms.DefaultMaxDegree, sp.MaxDegree())
	assert.True(t, sp.Signature().Equal(scalar.Int(forms.DefaultSignature)))
	assert.Empty(t, sp.Basis())
}

// TestOptions_Panics verifies that nonsensical option values panic.
func TestOptions_Panics(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	f := mustForm(t, sp, "F", 2)

	assert.Panics(t, func() { forms.WithMaxDegree(-1) })
	assert.Panics(t, func() { forms.WithBasis(dx, f) })
	assert.Panics(t, func() { forms.WithBasis(dx, dx) })
	assert.Panics(t, func() { forms.WithSignature(scalar.Zero()) })
	assert.NotPanics(t, func() { forms.WithMaxDegree(0) })
}

// TestSpace_Form verifies atom construction bounds.
func TestSpace_Form(t *testing.T) {
	sp := forms.NewSpace()
	cases := []struct {
		name   string
		symbol string
		degree int
		err    error
	}{
		{"Valid", "A", 1, nil},
		{"Top", "V", 4, nil},
		{"EmptySymbol", "", 1, forms.ErrInvalidSymbol},
		{"Negative", "A", -1, forms.ErrInvalidDegree},
		{"TooHigh", "A", 5, forms.ErrInvalidDegree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := sp.Form(tc.symbol, tc.degree)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.degree, a.Degree)
			assert.False(t, a.Exact)
		})
	}

	_, err := forms.NewSpace(forms.WithMaxDegree(0)).Differential("x")
	assert.ErrorIs(t, err, forms.ErrInvalidDegree)

	_, err = sp.Vector("")
	assert.ErrorIs(t, err, forms.ErrInvalidSymbol)
}

// TestSpace_With verifies derivation leaves the parent untouched.
func TestSpace_With(t *testing.T) {
	sp := forms.NewSpace()
	dx := mustDiff(t, sp, "x")
	child := sp.With(forms.WithBasis(dx), forms.WithMaxDegree(2))

	assert.Empty(t, sp.Basis())
	assert.Equal(t, 4, sp.MaxDegree())
	assert.Equal(t, []forms.Atom{dx}, child.Basis())
	assert.Equal(t, 2, child.MaxDegree())

	basis := child.Basis()
	basis[0] = mustDiff(t, sp, "y")
	assert.Equal(t, []forms.Atom{dx}, child.Basis(), "Basis returns a copy")
}

// TestWithLogger verifies that canonicalization is traced at debug level.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sp := forms.NewSpace(forms.WithLogger(logger))
	dx := mustDiff(t, sp, "x")

	_, err := sp.Wedge(dx, dx)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "canonicalize")

	buf.Reset()
	quiet := sp.With(forms.WithLogger(nil))
	_, err = quiet.Wedge(dx, dx)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

package forms_test

import (
	"testing"

	"github.com/katalvlaran/diffform/forms"
	"github.com/katalvlaran/diffform/scalar"
)

// benchForm builds Σ cᵢ·dxᵢ over four coordinates with polynomial coefficients.
func benchForm(b *testing.B, sp *forms.Space) *forms.Multivector {
	out := sp.Zero()
	for i, c := range []string{"t", "x", "y", "z"} {
		d, err := sp.Differential(c)
		if err != nil {
			b.Fatalf("Differential failed: %v", err)
		}
		term, err := sp.Wedge(forms.ScalarOf(scalar.MustParse("x*y + t^2").MulInt(int64(i+1))), d)
		if err != nil {
			b.Fatalf("Wedge failed: %v", err)
		}
		if out, err = out.Add(term); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}

	return out
}

// BenchmarkWedge measures the cross product and canonicalization of two 1-forms.
func BenchmarkWedge(b *testing.B) {
	sp := forms.NewSpace()
	a := benchForm(b, sp)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Wedge(a.Neg()); err != nil {
			b.Fatalf("Wedge failed: %v", err)
		}
	}
}

// BenchmarkD measures the exterior derivative of a weighted 1-form.
func BenchmarkD(b *testing.B) {
	sp := forms.NewSpace()
	a := benchForm(b, sp)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.D()
	}
}

// BenchmarkToTensor measures antisymmetrization of a 4-form.
func BenchmarkToTensor(b *testing.B) {
	sp := forms.NewSpace()
	a := benchForm(b, sp)
	vol, err := a.Wedge(a.D())
	if err != nil {
		b.Fatalf("Wedge failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vol.ToTensor()
	}
}

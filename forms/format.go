package forms

import (
	"strings"

	"github.com/katalvlaran/diffform/scalar"
)

// formatTerm renders coeff*names[0]<sep>names[1]…; an empty names list is
// a bare scalar. Compound coefficients are parenthesized.
func formatTerm(coeff scalar.Expr, names []string, sep string) string {
	if len(names) == 0 {
		return coeff.String()
	}
	body := strings.Join(names, sep)
	switch {
	case coeff.IsOne():
		return body
	case coeff.Equal(scalar.Int(-1)):
		return "-" + body
	}
	c := coeff.String()
	if coeff.Terms() > 1 || (!coeff.IsNumber() && strings.Contains(c, "/")) {
		c = "(" + c + ")"
	}

	return c + "*" + body
}

// joinTerms joins rendered terms with " + ", folding a leading minus into " - ".
func joinTerms(parts []string) string {
	if len(parts) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			if strings.HasPrefix(p, "-") {
				sb.WriteString(" - ")
				p = p[1:]
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(p)
	}

	return sb.String()
}

package forms

import (
	"cmp"
	"slices"
	"strings"
)

// canonicalize runs the normal-form pipeline over raw terms and returns a
// fresh slice. The stages run in a fixed order:
//
//  1. removeSquares: a term with an odd-degree atom at two positions is 0.
//  2. truncate: a term whose degree exceeds MaxDegree is 0.
//  3. sortTerms: bubble sort each term's atoms, Koszul sign per swap.
//  4. collect: drop zero atoms, strip Identity, merge equal atom
//     sequences, drop zero coefficients, order terms by (degree, key).
//
// Squares and truncation go first so discarded terms are never sign-corrected;
// collection goes last so it only compares fully sorted sequences. The
// pipeline is idempotent.
//
// Complexity:
//   - Time O(T·k²) for T terms of at most k atoms, plus O(T log T) ordering.
func (s *Space) canonicalize(raw []Term) []Term {
	terms := make([]Term, 0, len(raw))
	for _, t := range raw {
		terms = append(terms, t.clone())
	}
	in := len(terms)

	terms = removeSquares(terms)
	terms = truncate(terms, s.maxDegree)
	terms = sortTerms(terms)
	terms = collect(terms)

	if s.logger != nil {
		s.logger.Debug("canonicalize", "in", in, "out", len(terms), "maxDegree", s.maxDegree)
	}

	return terms
}

// removeSquares drops every term in which an odd-degree atom occurs twice.
// Even-degree atoms commute with themselves and are kept.
func removeSquares(terms []Term) []Term {
	return slices.DeleteFunc(terms, func(t Term) bool {
		seen := make(map[string]struct{}, len(t.Atoms))
		for _, a := range t.Atoms {
			if a.Degree%2 == 0 {
				continue
			}
			if _, dup := seen[a.Key()]; dup {
				return true
			}
			seen[a.Key()] = struct{}{}
		}

		return false
	})
}

// truncate drops terms above the maximum total degree.
func truncate(terms []Term, maxDegree int) []Term {
	return slices.DeleteFunc(terms, func(t Term) bool { return t.Degree() > maxDegree })
}

// sortTerms orders the atoms of every term, adjusting the coefficient sign.
func sortTerms(terms []Term) []Term {
	for i := range terms {
		if bubbleSort(terms[i].Atoms) < 0 {
			terms[i].Coeff = terms[i].Coeff.Neg()
		}
	}

	return terms
}

// bubbleSort sorts atoms in place by Atom.Less and returns the accumulated
// Koszul sign: each transposition of a and b contributes (-1)^(deg a·deg b).
// Equal atoms are never swapped.
func bubbleSort(atoms []Atom) int {
	sign := 1
	n := len(atoms)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if atoms[j+1].Less(atoms[j]) {
				sign *= koszul(atoms[j].Degree, atoms[j+1].Degree)
				atoms[j], atoms[j+1] = atoms[j+1], atoms[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return sign
}

// koszul returns (-1)^(p·q).
func koszul(p, q int) int {
	if p%2 != 0 && q%2 != 0 {
		return -1
	}

	return 1
}

// collect merges like terms and prunes zeros.
//
// Implementation:
//   - Stage 1: skip terms holding a "0" atom.
//   - Stage 2: strip Identity from multi-atom terms (degree 0, so no sign).
//   - Stage 3: merge equal atom sequences by summing coefficients.
//   - Stage 4: drop zero coefficients; order by (degree, key).
func collect(terms []Term) []Term {
	out := make([]Term, 0, len(terms))
	index := make(map[string]int, len(terms))
	for _, t := range terms {
		if hasZeroAtom(t.Atoms) {
			continue
		}
		t.Atoms = stripIdentity(t.Atoms)
		k := t.key()
		if i, ok := index[k]; ok {
			out[i].Coeff = out[i].Coeff.Add(t.Coeff)
			continue
		}
		index[k] = len(out)
		out = append(out, t)
	}
	out = slices.DeleteFunc(out, func(t Term) bool { return t.Coeff.IsZero() })
	slices.SortStableFunc(out, func(a, b Term) int {
		if c := cmp.Compare(a.Degree(), b.Degree()); c != 0 {
			return c
		}

		return strings.Compare(a.key(), b.key())
	})

	return out
}

func hasZeroAtom(atoms []Atom) bool {
	for _, a := range atoms {
		if a.Symbol == "0" {
			return true
		}
	}

	return false
}

// stripIdentity removes Identity atoms; a term made only of them keeps one.
func stripIdentity(atoms []Atom) []Atom {
	out := atoms[:0:0]
	for _, a := range atoms {
		if !a.Equal(Identity) {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return []Atom{Identity}
	}

	return out
}

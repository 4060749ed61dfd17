package forms

import "slices"

// permutations returns all n! permutations of [0, n) using Heap's algorithm.
// Each returned slice is a separate allocation. n == 0 yields one empty
// permutation.
func permutations(n int) [][]int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	out := [][]int{slices.Clone(perm)}
	state := make([]int, n)
	for i := 0; i < n; {
		if state[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			out = append(out, slices.Clone(perm))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}

	return out
}

// factorial returns n! for small n.
func factorial(n int) int64 {
	f := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		f *= i
	}

	return f
}

// leviCivita returns the sign of idx as a permutation of its sorted values,
// or 0 when an index repeats. On a permutation of [0, n) it is the parity.
func leviCivita(idx []int) int {
	sign := 1
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			switch {
			case idx[i] == idx[j]:
				return 0
			case idx[i] > idx[j]:
				sign = -sign
			}
		}
	}

	return sign
}

// SPDX-License-Identifier: MIT

package sparsity

import "sort"

// sortInts sorts a small slice in place; insertion sort for the short
// column segments that dominate, sort.Ints otherwise.
func sortInts(a []int) {
	if len(a) > 16 {
		sort.Ints(a)
		return
	}
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// identityPerm returns [0, 1, ..., n-1].
func identityPerm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// InversePerm returns the inverse of permutation perm.
func InversePerm(perm []int) []int {
	inv := make([]int, len(perm))
	for k, v := range perm {
		inv[v] = k
	}

	return inv
}

// filled returns a slice of length n with every element set to v.
func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

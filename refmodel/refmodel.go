// Package refmodel is the trusted model candidates are judged against.
//
// It uses the most obvious possible implementation, since it has to be
// correct by inspection: sort a copy, collapse duplicates, scan linearly.
package refmodel

import "golang.org/x/exp/slices"

// SortedUnique returns the distinct values of vs in ascending order.
//
// The result depends only on which values occur in vs, not on their order
// or multiplicity. An empty input yields an empty slice, never an error.
func SortedUnique(vs []int) []int {
	out := make([]int, len(vs))
	copy(out, vs)
	slices.Sort(out)
	return slices.Compact(out)
}

// SuccessorOf returns the smallest distinct value in vs strictly greater
// than v. The second return value is false if v is the maximum of vs or
// larger.
//
// v itself does not need to occur in vs.
func SuccessorOf(v int, vs []int) (int, bool) {
	for _, w := range SortedUnique(vs) {
		if w > v {
			return w, true
		}
	}
	return 0, false
}

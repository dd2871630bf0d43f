package search

import "cmp"

// IsSorted reports whether s is in non-decreasing order, which is the
// precondition of Index.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return FirstUnsorted(s) == NotFound
}

// FirstUnsorted returns the smallest index i such that s[i] < s[i-1], or
// NotFound if s is sorted.
func FirstUnsorted[S ~[]E, E cmp.Ordered](s S) int {
	return FirstUnsortedFunc(s, cmp.Compare[E])
}

// FirstUnsortedFunc is FirstUnsorted with a caller-supplied ordering.
func FirstUnsortedFunc[S ~[]E, E any](s S, cmp func(a, b E) int) int {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return i
		}
	}
	return NotFound
}

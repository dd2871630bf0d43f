package search

import "cmp"

// NotFound is returned by Index, IndexFunc and Trace when no element equals
// the target. It is never a valid index.
const NotFound = -1

// Index returns the index of an element of s equal to target, or NotFound.
//
// s must be sorted in non-decreasing order. Worst case is floor(log2(n))+1
// comparisons.
func Index[S ~[]E, E cmp.Ordered](s S, target E) int {
	return IndexFunc(s, target, cmp.Compare[E])
}

// IndexFunc is like Index but orders elements with cmp, which must return a
// negative number when the element sorts before target, zero when it matches
// and a positive number when it sorts after. s must be sorted by the same
// ordering.
func IndexFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		c := cmp(s[mid], target)
		switch {
		case c == 0:
			return mid
		case c > 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return NotFound
}

// Find reports the index of an element of s equal to target and whether one
// was found. On absence it returns (NotFound, false).
func Find[S ~[]E, E cmp.Ordered](s S, target E) (int, bool) {
	i := Index(s, target)
	return i, i != NotFound
}

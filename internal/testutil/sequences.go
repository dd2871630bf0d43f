package testutil

import (
	"math/rand/v2"
	"slices"
)

// SortedInts returns n pseudo-random integers in [0, limit) in
// non-decreasing order. The same seed always yields the same slice.
func SortedInts(seed uint64, n, limit int) []int64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := make([]int64, n)
	for i := range s {
		s[i] = rng.Int64N(int64(limit))
	}
	slices.Sort(s)
	return s
}

package search

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Scenarios(t *testing.T) {
	odds := []int{1, 3, 5, 7, 9, 11, 13}

	tests := []struct {
		name     string
		s        []int
		target   int
		expected int
	}{
		{"found in middle", odds, 7, 3},
		{"absent between elements", odds, 2, NotFound},
		{"empty slice", []int{}, 5, NotFound},
		{"nil slice", nil, 5, NotFound},
		{"single element match", []int{5}, 5, 0},
		{"single element miss", []int{5}, 4, NotFound},
		{"first element", odds, 1, 0},
		{"last element", odds, 13, 6},
		{"below range", odds, -4, NotFound},
		{"above range", odds, 14, NotFound},
		{"negative values", []int{-1, 0, 3, 5, 9, 12}, 9, 4},
		{"negative values miss", []int{-1, 0, 3, 5, 9, 12}, 2, NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Index(tt.s, tt.target))
		})
	}
}

func TestIndex_Strings(t *testing.T) {
	words := []string{"apple", "banana", "cherry", "date"}

	assert.Equal(t, 2, Index(words, "cherry"))
	assert.Equal(t, NotFound, Index(words, "blueberry"))
}

func TestIndex_NamedSliceType(t *testing.T) {
	type offsets []uint32
	s := offsets{10, 20, 30}

	assert.Equal(t, 1, Index(s, 20))
}

func TestIndex_Duplicates(t *testing.T) {
	s := []int{1, 2, 2, 2, 2, 3, 4}

	i := Index(s, 2)
	require.NotEqual(t, NotFound, i)
	assert.Equal(t, 2, s[i])
}

func TestIndex_AllEqual(t *testing.T) {
	s := []int{7, 7, 7, 7, 7}

	i := Index(s, 7)
	require.NotEqual(t, NotFound, i)
	assert.Equal(t, 7, s[i])
	assert.Equal(t, NotFound, Index(s, 6))
	assert.Equal(t, NotFound, Index(s, 8))
}

func TestIndex_DoesNotMutate(t *testing.T) {
	s := []int{1, 3, 5, 7}
	before := slices.Clone(s)

	Index(s, 5)
	Index(s, 6)

	assert.Equal(t, before, s)
}

func TestIndex_UnsortedDoesNotPanic(t *testing.T) {
	s := []int{9, 1, 8, 2, 7}

	assert.NotPanics(t, func() {
		i := Index(s, 8)
		if i != NotFound {
			assert.Equal(t, 8, s[i])
		}
	})
}

// Every present value is found at a matching index and every absent value
// yields NotFound, over seeded random sorted slices.
func TestIndex_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(704, 1))

	for round := 0; round < 200; round++ {
		n := rng.IntN(64)
		s := make([]int, n)
		for i := range s {
			s[i] = rng.IntN(100)
		}
		slices.Sort(s)

		for _, v := range s {
			i := Index(s, v)
			require.NotEqual(t, NotFound, i, "round %d: %v not found in %v", round, v, s)
			require.Equal(t, v, s[i])
		}

		for v := -1; v <= 100; v++ {
			if slices.Contains(s, v) {
				continue
			}
			require.Equal(t, NotFound, Index(s, v), "round %d: %v found in %v", round, v, s)
		}

		_, want := slices.BinarySearch(s, 50)
		_, got := Find(s, 50)
		require.Equal(t, want, got)
	}
}

func TestIndexFunc_CaseInsensitive(t *testing.T) {
	names := []string{"Alpha", "bravo", "Charlie", "delta"}

	i := IndexFunc(names, "CHARLIE", func(e, target string) int {
		return strings.Compare(strings.ToLower(e), strings.ToLower(target))
	})
	assert.Equal(t, 2, i)
}

func TestIndexFunc_ByField(t *testing.T) {
	type entry struct {
		Key   int
		Value string
	}
	entries := []entry{{1, "a"}, {4, "b"}, {9, "c"}, {16, "d"}}
	byKey := func(e entry, key int) int { return e.Key - key }

	assert.Equal(t, 2, IndexFunc(entries, 9, byKey))
	assert.Equal(t, NotFound, IndexFunc(entries, 10, byKey))
}

func TestFind(t *testing.T) {
	s := []int{1, 3, 5, 7, 9, 11, 13}

	i, ok := Find(s, 7)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = Find(s, 2)
	assert.False(t, ok)
	assert.Equal(t, NotFound, i)

	_, ok = Find([]int{}, 5)
	assert.False(t, ok)
}

func BenchmarkIndex(b *testing.B) {
	s := make([]int, 1<<20)
	for i := range s {
		s[i] = i * 2
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Index(s, (i*7919)%(len(s)*2))
	}
}

package filesystem

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanker_KeepsLargest(t *testing.T) {
	r := NewRanker(3)
	for _, p := range []string{"b", "e", "a", "d", "c", "f"} {
		r.Push(p)
		assert.LessOrEqual(t, r.Len(), 3)
	}

	assert.Equal(t, []string{"d", "e", "f"}, r.Sorted())
	assert.Equal(t, 0, r.Len())
}

func TestRanker_FewerThanLimit(t *testing.T) {
	r := NewRanker(RecentLimit)
	r.Push("2024/b")
	r.Push("2024/a")

	assert.Equal(t, []string{"2024/a", "2024/b"}, r.Sorted())
}

func TestRanker_Empty(t *testing.T) {
	assert.Empty(t, NewRanker(RecentLimit).Sorted())
	assert.Empty(t, NewRanker(0).Sorted())
}

func TestRanker_Duplicates(t *testing.T) {
	r := NewRanker(2)
	for _, p := range []string{"x", "x", "y", "x"} {
		r.Push(p)
	}
	assert.Equal(t, []string{"x", "y"}, r.Sorted())
}

func TestRanker_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := rng.Intn(40)
		input := make([]string, n)
		for i := range input {
			input[i] = fmt.Sprintf("%04d", rng.Intn(500))
		}

		r := NewRanker(RecentLimit)
		for _, p := range input {
			r.Push(p)
			assert.LessOrEqual(t, r.Len(), RecentLimit)
		}
		got := r.Sorted()

		want := append([]string{}, input...)
		sort.Strings(want)
		if len(want) > RecentLimit {
			want = want[len(want)-RecentLimit:]
		}

		assert.Len(t, got, min(RecentLimit, n))
		assert.Equal(t, want, got, "round %d", round)
	}
}

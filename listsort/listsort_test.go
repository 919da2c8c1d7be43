package listsort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/listsort"
)

func TestQuicksort_Empty(t *testing.T) {
	assert.Equal(t, []int{}, listsort.Quicksort([]int{}))
}

func TestQuicksort_Single(t *testing.T) {
	assert.Equal(t, []int{7}, listsort.Quicksort([]int{7}))
}

func TestQuicksort_Small(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, listsort.Quicksort([]int{3, 1, 2}))
}

func TestQuicksort_Duplicates(t *testing.T) {
	in := []int{9, -9, 9, -9, 9, -9, 9, 9, 9}
	want := []int{-9, -9, -9, 9, 9, 9, 9, 9, 9}
	assert.Equal(t, want, listsort.Quicksort(in))
}

func TestQuicksort_InputUntouched(t *testing.T) {
	in := []int{3, 1, 2}
	_ = listsort.Quicksort(in)
	assert.Equal(t, []int{3, 1, 2}, in, "input slice must not be mutated")
}

func TestQuicksort_Strings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "apple"}
	want := []string{"apple", "apple", "fig", "pear"}
	assert.Equal(t, want, listsort.Quicksort(in))
}

func TestMergesort_Empty(t *testing.T) {
	assert.Equal(t, []int{}, listsort.Mergesort([]int{}))
}

func TestMergesort_Single(t *testing.T) {
	assert.Equal(t, []int{-4}, listsort.Mergesort([]int{-4}))
}

func TestMergesort_Duplicates(t *testing.T) {
	in := []int{9, -9, -9, 9, 9, -9}
	want := []int{-9, -9, -9, 9, 9, 9}
	assert.Equal(t, want, listsort.Mergesort(in))
}

func TestMergesort_OddLength(t *testing.T) {
	in := []int{5, 3, 8, 1, 9, 2, 7}
	want := []int{1, 2, 3, 5, 7, 8, 9}
	assert.Equal(t, want, listsort.Mergesort(in))
}

func TestMergesort_InputUntouched(t *testing.T) {
	in := []int{2, 1}
	_ = listsort.Mergesort(in)
	assert.Equal(t, []int{2, 1}, in, "input slice must not be mutated")
}

// TestSorts_PermutationProperty checks that both sorts produce a sorted
// permutation of the input for a batch of deterministic pseudo-random slices.
func TestSorts_PermutationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(64)
		in := make([]int, n)
		for i := range in {
			in[i] = rng.Intn(20) - 10 // small range forces duplicates
		}

		want := make([]int, n)
		copy(want, in)
		sort.Ints(want)

		require.Equal(t, want, listsort.Quicksort(in), "quicksort trial %d", trial)
		require.Equal(t, want, listsort.Mergesort(in), "mergesort trial %d", trial)
	}
}

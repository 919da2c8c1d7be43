package listsort

import "cmp"

// Mergesort returns the elements of items in non-decreasing order.
//
// The slice is split at round-half-up of n/2, so for odd n the first half
// receives the extra element. Each half is sorted recursively, then the two
// halves are merged from their largest ends first: at every step the larger
// of the two top elements moves into the result, which is filled from the
// back toward the front; when the tops are exactly equal, both move in a
// single step. The largest-first construction is equivalent to reversing
// both halves and consuming their fronts, and yields an ascending result
// without a final reversal.
//
// The input slice is left untouched. Time: O(n log n), memory: O(n).
func Mergesort[T cmp.Ordered](items []T) []T {
	// 1. Base case: nothing to split.
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)

		return out
	}

	// 2. Round-half-up split: odd lengths put the extra element up front.
	mid := (len(items) + 1) / 2

	// 3. Sort both halves independently.
	left := Mergesort(items[:mid])
	right := Mergesort(items[mid:])

	// 4. Merge largest-first into a back-filled accumulator.
	return mergeDescending(left, right)
}

// mergeDescending merges two ascending slices by consuming them from their
// top (largest) ends, writing into the shared result slice from the back.
// Equal tops are consumed together, one from each side.
func mergeDescending[T cmp.Ordered](a, b []T) []T {
	out := make([]T, len(a)+len(b))
	i, j := len(a)-1, len(b)-1 // tops of each half
	k := len(out) - 1          // next free slot, filled right-to-left

	// 1. While both halves still have elements, move the larger top.
	for i >= 0 && j >= 0 {
		switch {
		case a[i] > b[j]:
			out[k] = a[i]
			i--
			k--
		case a[i] < b[j]:
			out[k] = b[j]
			j--
			k--
		default: // equal tops: both advance in one step
			out[k] = a[i]
			out[k-1] = b[j]
			i--
			j--
			k -= 2
		}
	}

	// 2. Drain whichever half remains; it is already ascending.
	for i >= 0 {
		out[k] = a[i]
		i--
		k--
	}
	for j >= 0 {
		out[k] = b[j]
		j--
		k--
	}

	return out
}

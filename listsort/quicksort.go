package listsort

import "cmp"

// Quicksort returns the elements of items in non-decreasing order.
// The pivot is always the first element; the remainder is partitioned
// three ways (strictly less, equal to pivot, strictly greater), the outer
// partitions are sorted recursively, and the result is the concatenation
//
//	sorted(less) ++ [pivot, equal...] ++ sorted(greater)
//
// The input slice is left untouched. Time: O(n log n) average.
func Quicksort[T cmp.Ordered](items []T) []T {
	// 1. Base case: empty and single-element slices are already sorted.
	if len(items) <= 1 {
		out := make([]T, len(items)) // fresh slice, input never aliased
		copy(out, items)

		return out
	}

	// 2. Pick the pivot and partition the remainder three ways.
	pivot := items[0]
	var less, equal, greater []T
	equal = append(equal, pivot) // pivot leads its equality group
	var v T
	for _, v = range items[1:] {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	// 3. Sort the outer partitions recursively.
	sortedLess := Quicksort(less)
	sortedGreater := Quicksort(greater)

	// 4. Concatenate: less ++ pivot·equal ++ greater.
	out := make([]T, 0, len(items))
	out = append(out, sortedLess...)
	out = append(out, equal...)
	out = append(out, sortedGreater...)

	return out
}

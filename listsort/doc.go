// Package listsort implements pure list sorting over slices of ordered
// elements: a three-way quicksort and a reversed-merge mergesort.
//
// Both sorts are value transformations: the input slice is never mutated,
// and the result is always a freshly allocated slice. Empty and
// single-element inputs are fixed points.
//
// Key features:
//   - Quicksort(items): first-element pivot, three-way partition
//     (less / equal / greater), so repeated values never degrade to
//     quadratic behavior on their own
//   - Mergesort(items): round-half-up split, then a largest-first merge
//     that consumes both halves from their top ends and fills the result
//     back-to-front
//
// Complexity:
//
//   - Quicksort: O(n log n) average, O(n²) worst case (adversarially
//     ordered input against the first-element pivot), O(n) extra memory
//     per level for the three partitions.
//   - Mergesort: O(n log n) worst case, O(n) auxiliary memory.
//
// Errors: none. Both functions are total over all finite slices.
package listsort

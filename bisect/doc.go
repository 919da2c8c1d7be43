// Package bisect implements binary search over a fixed-size, zero-indexed,
// ascending-sorted random-access sequence — with a deliberately non-standard
// probe sequence.
//
// The probe rules differ from textbook bisection:
//   - the initial probe is floor(n/2);
//   - when the probed value is too large, the next probe is floor(probe/2) —
//     the probe collapses toward index 0 rather than halving the remaining
//     left sub-range;
//   - when the probed value is too small, the next probe is ceil((probe+n)/2);
//   - the search fails at index 0 or index n-1 without a match, or when a
//     probe index repeats.
//
// This probe order is part of the package's compatibility contract and is
// preserved exactly; "fixing" it to true bisection would change the probe
// counts that callers and fixtures depend on. Because the left rule ignores
// the live lower bound, O(log n) is NOT guaranteed, and the probe can cycle
// past a present element (index 3 of a 5-element slice is the smallest
// blind spot) — the repeat-probe guard bounds the search at O(n) probes and
// turns such cycles into a NotFound result.
//
// Errors: none. A failed search returns the NotFound sentinel (-1), never
// an error.
package bisect

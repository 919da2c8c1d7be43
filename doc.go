// Package strata is your in-memory toolbox of classic data structures and
// algorithms — pure, deterministic, value-transforming.
//
// 🚀 What is strata?
//
//	A modern, generic library that brings together:
//		• Rose trees: arbitrary branching, insertion-ordered children,
//		  immutable edits, structural flattening & traversal hooks
//		• List sorting: three-way quicksort and a reversed-merge mergesort
//		• Persistent stacks & queues over singly-linked sequences
//		• Binary search with a documented, non-standard probe sequence
//
// ✨ Why choose strata?
//
//   - Pure values – every operation returns a new structure; callers keep
//     the old one untouched
//   - Total functions – empty inputs yield sentinels and no-ops, never panics
//   - Honest complexity – each package documents its asymptotic contract,
//     including the deliberately asymmetric ones
//   - Generics throughout – no interface{} round-trips in hot paths
//
// Under the hood, everything is organized under five subpackages:
//
//	rosetree/ — the core: generic N-ary tree with value/meta payloads,
//	            membership, flattening, leaves, immutable child edits
//	listsort/ — quicksort & mergesort over ordered element slices
//	stack/    — persistent LIFO, all operations O(1)
//	queue/    — persistent FIFO, peek/dequeue O(1), enqueue O(n)
//	bisect/   — fixed-size ordered lookup with an idiosyncratic probe
//
// Quick ASCII example:
//
//	     1
//	    / \
//	   2   7
//	  /|\
//	 3 ⊢ 6
//	    └ 4 5
//
//	a rose tree built from the nested sequence [1 [2 3 [4 5] 6] 7].
//
// Dive into examples/ for full walkthroughs, and cmd/strata for a thin CLI
// over the same function-call surface.
//
//	go get github.com/katalvlaran/strata
package strata

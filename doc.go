// Package mstpq computes Minimum Spanning Trees with Prim's algorithm
// over a pluggable priority-queue backbone.
//
// 🚀 What is mstpq?
//
//	A small, focused library that exists to answer one practical question:
//	how much does the priority queue matter? It ships three interchangeable
//	indexed min-priority queues behind one contract and a single Prim
//	traversal that drives whichever one you pick:
//		• Binary min-heap with index-tracked handles (the fast path)
//		• Unordered linear scan (the O(n) baseline to benchmark against)
//		• Ordered skip list (an expected-O(log n) middle ground)
//
// ✨ Why choose mstpq?
//
//   - Stable handles – every queue entry is addressed by an opaque Handle
//     that survives internal reordering; stale handles fail loudly instead
//     of corrupting state
//   - True update-key – relaxation mutates an entry in place and re-sifts
//     it, no remove-and-reinsert churn
//   - Deterministic – sorted vertex enumeration, seeded graph generation
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — undirected weighted Graph, Edge and adjacency primitives
//	pqueue/  — the indexed min-priority queues (heap, list, skip list)
//	prim/    — the Prim traversal producing the MST edge sequence
//	builder/ — seeded random connected graphs for tests and benchmarks
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──3──D
//
//	Prim rooted at A keeps A—B, B—D and D—C for a total weight of 6.
//
//	go get github.com/katalvlaran/mstpq
package mstpq

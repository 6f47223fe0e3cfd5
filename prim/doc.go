// Package prim computes Minimum Spanning Trees of undirected, weighted
// core.Graph values with Prim's algorithm, driven by any of the pqueue
// strategies.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST
//     is a subset T ⊆ E that connects every vertex in V with minimum
//     total edge weight and no cycles.
//
//   - Why the queue is pluggable:
//     Prim's cost profile is entirely the priority queue's. Every vertex
//     enters the queue once, leaves it once, and each edge can lower a
//     neighbor's key once. With the binary heap that is O(E log V); with
//     the linear-scan baseline the same traversal degrades to O(V²).
//     Running the identical traversal over both is the cleanest way to
//     see the difference, which is what this module is for.
//
// Algorithm (eager, frontier-map variant)
//
//  1. Every vertex is inserted with key +Inf — except the root, keyed 0 —
//     and its handle is recorded in the frontier map.
//  2. While the queue is non-empty: extract the minimum vertex, delete it
//     from the frontier, and append its connecting edge (if any) to the
//     result.
//  3. For each edge incident to the extracted vertex whose far endpoint
//     is still in the frontier: if the edge weight beats that neighbor's
//     current key, lower the key in place through the neighbor's handle
//     and remember the edge as the neighbor's connecting edge.
//
// The result sequence lists tree edges in the order their vertices were
// pulled from the frontier; its length is |V|−1 for a connected graph.
//
// Disconnected graphs are not an error: unreachable vertices surface with
// key +Inf and no connecting edge, so the result is a spanning forest and
// its length is |V| minus the number of components. Compare len(edges)
// against |V|−1 if you need to detect this.
//
// Error Conditions
//
//   - ErrNilGraph            : graph is nil.
//   - core.ErrVertexNotFound : WithRoot named a vertex absent from the graph.
//   - pqueue.ErrUnknownStrategy : WithStrategy named no known queue.
//
// Complexity: O(E log V) time with StrategyHeap or StrategySkipList,
// O(V² + E) with StrategyList; O(V + E) memory either way.
//
// For examples of usage, see the example_test.go file in this package.
package prim

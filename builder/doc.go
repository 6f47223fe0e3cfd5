// Package builder generates random connected graphs for tests, examples
// and benchmarks.
//
// The one constructor, RandomConnected(n, m), produces an undirected
// weighted graph with n vertices and exactly m edges that is connected by
// construction: a random-weight chain V0—V1—…—V(n-1) guarantees a
// spanning path, then extra distinct random edges are added until m is
// reached.
//
// Randomness is always injected, never ambient: pass WithRand for full
// control or WithSeed for a one-off deterministic source. Without either,
// a fixed documented seed is used, so two calls with the same arguments
// always build the same graph.
//
// Errors (sentinel):
//
//	ErrTooFewVertices - n < 1.
//	ErrTooFewEdges    - m < n-1 (cannot even hold the connecting chain).
//	ErrTooManyEdges   - m > n(n-1)/2 (simple graph capacity exceeded).
//	ErrBadWeightRange - weight range empty or inverted.
package builder

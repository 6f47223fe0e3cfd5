// Package core defines the Graph and Edge types that the rest of mstpq
// consumes: an undirected, weighted, in-memory graph with adjacency
// queries.
//
// The graph is deliberately thin. It is a data container, not an
// algorithm host: it stores vertices and edges, answers "which edges
// touch this vertex", and nothing more. Traversals live in sibling
// packages (prim), generation in builder.
//
// Model:
//
//   - Vertices are identified by non-empty string IDs.
//   - Edges are undirected, carry a float64 weight, and connect two
//     distinct vertices (no self-loops, no parallel edges).
//   - AddEdge creates missing endpoints implicitly.
//
// Concurrency:
//
//	All methods are safe for concurrent use. A single sync.RWMutex guards
//	both the vertex set and the adjacency structure; read queries take the
//	read lock only.
//
// Determinism:
//
//	Vertices() returns IDs in ascending lexicographic order, and
//	IncidentEdges() sorts by the opposite endpoint's ID, so every
//	iteration over the graph is repeatable.
//
// Errors (sentinel):
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrNotIncident         - Edge.Other called with a non-endpoint vertex.
//	ErrLoopNotAllowed      - self-loop attempted.
//	ErrMultiEdgeNotAllowed - parallel edge attempted.
package core

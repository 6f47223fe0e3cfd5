// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying undirected weighted
// graphs.
//
// This file declares Edge, Graph, the sentinel errors, and the NewGraph
// constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotIncident indicates Edge.Other was asked about a vertex that is
	// not an endpoint of the edge.
	ErrNotIncident = errors.New("core: vertex not incident to edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// From and To record the endpoints in insertion order; the edge itself
// carries no direction. Weight is the cost of the edge.
type Edge struct {
	// From is the first endpoint's vertex ID.
	From string

	// To is the second endpoint's vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to id.
//
// Returns ErrNotIncident if id is neither endpoint.
// Complexity: O(1).
func (e *Edge) Other(id string) (string, error) {
	switch id {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	default:
		return "", ErrNotIncident
	}
}

// Graph is the core in-memory graph data structure: undirected, weighted,
// at most one edge per vertex pair, no self-loops.
//
// mu guards vertices, adjacency and edgeCount together; the structures
// are always mutated under the write lock as one unit.
type Graph struct {
	mu sync.RWMutex

	// vertices is the vertex set, keyed by ID.
	vertices map[string]struct{}

	// adjacency[u][v] is the edge between u and v; each undirected edge
	// is stored under both endpoints, pointing at the same *Edge.
	adjacency map[string]map[string]*Edge

	// edgeCount is the number of distinct edges (each counted once).
	edgeCount int
}

// NewGraph creates an empty undirected weighted Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
	}
}

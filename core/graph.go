// File: graph.go
// Role: Mutation (AddVertex, AddEdge) and query (Vertices, IncidentEdges,
//
//	GetEdge, Degree, counts) methods on Graph.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - IncidentEdges(id) sorts by the opposite endpoint's ID ascending.
package core

import "sort"

// AddVertex inserts a vertex with the given id.
//
// Adding an existing vertex is a no-op, not an error, so callers can use
// AddVertex as "ensure present".
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id into the vertex set and allocates its
// adjacency bucket. Caller must hold the write lock; id must be non-empty.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]*Edge)
}

// AddEdge inserts an undirected edge between from and to with the given
// weight and returns it. Missing endpoints are created implicitly.
//
// Errors:
//   - ErrEmptyVertexID       if either endpoint ID is empty.
//   - ErrLoopNotAllowed      if from == to.
//   - ErrMultiEdgeNotAllowed if an edge between the pair already exists.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (*Edge, error) {
	// 1. Validate endpoint IDs before touching any state.
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if from == to {
		return nil, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Ensure both endpoints exist.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3. Reject a second edge on the same pair; the mirrored adjacency
	//    entry makes one direction's check sufficient.
	if _, ok := g.adjacency[from][to]; ok {
		return nil, ErrMultiEdgeNotAllowed
	}

	// 4. Store one Edge under both endpoints.
	e := &Edge{From: from, To: to, Weight: weight}
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e
	g.edgeCount++

	return e, nil
}

// HasVertex reports whether the vertex id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// IncidentEdges returns every edge touching the vertex id, sorted by the
// opposite endpoint's ID ascending.
//
// The returned slice is freshly allocated but the *Edge pointers are the
// live stored edges; treat them as read-only.
//
// Errors:
//   - ErrEmptyVertexID  if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	// Collect the opposite endpoints, sort them, then emit edges in that
	// order so iteration is repeatable.
	others := make([]string, 0, len(bucket))
	for other := range bucket {
		others = append(others, other)
	}
	sort.Strings(others)

	edges := make([]*Edge, 0, len(others))
	for _, other := range others {
		edges = append(edges, bucket[other])
	}

	return edges, nil
}

// GetEdge returns the edge between u and v, in either orientation.
//
// Errors:
//   - ErrEmptyVertexID  if either ID is empty.
//   - ErrVertexNotFound if either vertex does not exist.
//   - ErrEdgeNotFound   if the vertices exist but are not connected.
//
// Complexity: O(1).
func (g *Graph) GetEdge(u, v string) (*Edge, error) {
	if u == "" || v == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[u]
	if !ok {
		return nil, ErrVertexNotFound
	}
	if _, ok = g.vertices[v]; !ok {
		return nil, ErrVertexNotFound
	}

	e, ok := bucket[v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Degree returns the number of edges incident to the vertex id.
//
// Errors:
//   - ErrEmptyVertexID  if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of distinct edges (each undirected edge
// counted once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

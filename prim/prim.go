// Package prim provides the MST traversal itself: an eager Prim over an
// indexed priority queue, relaxing frontier keys in place through their
// handles.
package prim

import (
	"fmt"

	"github.com/katalvlaran/mstpq/core"
	"github.com/katalvlaran/mstpq/pqueue"
)

// MST computes a Minimum Spanning Tree of the undirected, weighted graph
// g, growing outward from the root one vertex at a time.
//
// Returns:
//
//	[]*core.Edge — tree edges in the order their vertices joined the tree
//	               (|V|−1 entries for a connected graph, fewer for a
//	               forest, empty for ≤1 vertex).
//	float64      — total weight of the returned edges.
//	error        — non-nil only for contract violations; a disconnected
//	               graph is NOT an error (see package doc).
//
// Steps:
//  1. Validate: g non-nil; explicit root, if any, present in g.
//  2. Seed the queue: one entry per vertex keyed +Inf (root keyed 0),
//     recording every handle in the frontier map.
//  3. Loop while the queue is non-empty:
//     a. Extract the minimum-key vertex and delete it from the frontier.
//     b. Append its connecting edge, when one was recorded, to the tree.
//     c. For each incident edge whose far endpoint is still in the
//     frontier and whose weight is strictly below that neighbor's
//     key: lower the neighbor's key through its handle and record
//     the edge as the neighbor's connection into the tree.
//  4. The queue empties after exactly |V| extractions; return the tree.
//
// Complexity: O(E log V) with StrategyHeap/StrategySkipList,
// O(V² + E) with StrategyList. O(V + E) memory.
func MST(g *core.Graph, opts ...Option) ([]*core.Edge, float64, error) {
	// 1. Build options and validate inputs fail-fast.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, 0, ErrNilGraph
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		// Nothing to span; trivially empty tree.
		return []*core.Edge{}, 0, nil
	}

	root := cfg.Root
	if root == "" {
		// Implicit start: Vertices() is sorted, so this is deterministic.
		root = vertices[0]
	} else if !g.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	queue, err := pqueue.New[string](cfg.Strategy)
	if err != nil {
		return nil, 0, err
	}

	// 2. Seed the frontier: every vertex unreached (+Inf) except the root.
	//    frontier holds exactly the vertices not yet in the tree; via
	//    holds the cheapest known edge connecting each frontier vertex to
	//    the tree, mirroring the keys in the queue.
	frontier := make(map[string]pqueue.Handle, len(vertices))
	via := make(map[string]*core.Edge, len(vertices))
	for _, v := range vertices {
		key := pqueue.Inf
		if v == root {
			key = 0
		}
		frontier[v] = queue.Insert(key, v)
	}

	tree := make([]*core.Edge, 0, len(vertices)-1)
	var totalWeight float64

	// 3. Main loop: one extraction fixes one vertex into the tree.
	for queue.Len() > 0 {
		_, u, exErr := queue.ExtractMin()
		if exErr != nil {
			// Unreachable while Len() > 0; surface loudly rather than
			// continue with a corrupted queue.
			return nil, 0, fmt.Errorf("prim: frontier queue failed: %w", exErr)
		}
		delete(frontier, u)

		// 3b. The root (and any vertex unreachable from it) carries no
		//     connecting edge.
		if e, ok := via[u]; ok {
			tree = append(tree, e)
			totalWeight += e.Weight
		}

		// 3c. Relax the frontier neighbors of u.
		incident, inErr := g.IncidentEdges(u)
		if inErr != nil {
			return nil, 0, fmt.Errorf("prim: incident edges of %q: %w", u, inErr)
		}
		for _, e := range incident {
			v, oErr := e.Other(u)
			if oErr != nil {
				return nil, 0, fmt.Errorf("prim: edge %s—%s: %w", e.From, e.To, oErr)
			}

			h, inFrontier := frontier[v]
			if !inFrontier {
				// v is already in the tree; this edge would close a cycle.
				continue
			}

			key, kErr := queue.Key(h)
			if kErr != nil {
				return nil, 0, fmt.Errorf("prim: frontier handle for %q: %w", v, kErr)
			}
			if e.Weight < key {
				// Cheaper connection found: lower the key in place and
				// remember the edge. The handle survives the re-sift.
				if uErr := queue.UpdateKey(h, e.Weight); uErr != nil {
					return nil, 0, fmt.Errorf("prim: relaxing %q: %w", v, uErr)
				}
				via[v] = e
			}
		}
	}

	// 4. Every vertex was extracted exactly once; tree holds |V|−1 edges
	//    for a connected graph, fewer when g is a forest.
	return tree, totalWeight, nil
}

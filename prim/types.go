// Package prim defines configuration options and sentinel errors for the
// MST traversal. The queue strategy and the start vertex are both chosen
// via functional options.
package prim

import (
	"errors"

	"github.com/katalvlaran/mstpq/pqueue"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to MST.
var ErrNilGraph = errors.New("prim: graph is nil")

// Options configures a single MST traversal.
//
// Fields:
//
//	Strategy pqueue.Strategy — which queue implementation drives the
//	                          frontier; every strategy yields a spanning
//	                          tree of the same total weight.
//	Root     string          — start vertex ID; when empty, the first
//	                          vertex in sorted order is used.
type Options struct {
	// Strategy selects the frontier queue implementation.
	Strategy pqueue.Strategy

	// Root is the starting vertex. Empty means "first vertex in sorted
	// order", which keeps the default deterministic.
	Root string
}

// Option configures Options.
type Option func(*Options)

// WithStrategy returns an Option that selects the queue implementation.
// Allowed values: pqueue.StrategyHeap, pqueue.StrategyList,
// pqueue.StrategySkipList.
func WithStrategy(s pqueue.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithRoot returns an Option that sets the starting vertex.
// The vertex must exist in the graph; MST fails with
// core.ErrVertexNotFound otherwise.
func WithRoot(root string) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// DefaultOptions returns Options initialized for the common case:
//
//	– Strategy = pqueue.StrategyHeap
//	– Root     = "" (first vertex in sorted order).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Strategy: pqueue.StrategyHeap,
		Root:     "",
	}
}

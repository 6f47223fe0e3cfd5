// Package pqueue defines the shared Queue contract, the Strategy selector
// and the sentinel errors common to all queue implementations.
package pqueue

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by every queue implementation.
var (
	// ErrEmptyQueue indicates PeekMin or ExtractMin was called on a queue
	// with zero entries.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrInvalidHandle indicates an operation was addressed through a
	// handle whose entry has already been extracted or removed, or through
	// a handle belonging to a different queue.
	ErrInvalidHandle = errors.New("pqueue: invalid or expired handle")

	// ErrUnknownStrategy indicates New was called with a Strategy value
	// outside the declared constants.
	ErrUnknownStrategy = errors.New("pqueue: unknown queue strategy")
)

// Inf is the conventional "not yet reachable" key: positive infinity.
// Every finite key compares strictly less than Inf.
var Inf = math.Inf(1)

// Handle is an opaque reference to a queue entry. It stays valid while
// the entry is in its queue, across any internal reordering, and becomes
// dead the moment the entry is extracted or removed.
//
// The zero Handle is never valid. Handles are only meaningful to the
// queue that issued them.
type Handle struct {
	id uint64
}

// Strategy selects a queue implementation in New.
type Strategy int

const (
	// StrategyHeap selects the binary min-heap (O(log n) operations).
	StrategyHeap Strategy = iota

	// StrategyList selects the unordered linear-scan baseline (O(n)
	// extract-min).
	StrategyList

	// StrategySkipList selects the ordered skip list (expected O(log n)).
	StrategySkipList
)

// String returns the strategy's name, for logs and benchmark labels.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyList:
		return "list"
	case StrategySkipList:
		return "skiplist"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Queue is the contract shared by all strategies: a min-priority queue
// over (float64 key, V payload) entries addressed by stable handles.
//
// Implementations are single-owner: no method is safe for concurrent use.
type Queue[V any] interface {
	// Len returns the number of entries currently in the queue.
	Len() int

	// Insert adds an entry and returns its handle.
	Insert(key float64, value V) Handle

	// PeekMin returns the handle of a minimum-key entry without removing
	// it. Repeated calls without intervening mutation return the same
	// handle. Returns ErrEmptyQueue if the queue is empty.
	PeekMin() (Handle, error)

	// ExtractMin removes a minimum-key entry and returns its key and
	// payload. Returns ErrEmptyQueue if the queue is empty.
	ExtractMin() (float64, V, error)

	// Remove detaches the entry behind h and returns its key and payload.
	// Returns ErrInvalidHandle if h is dead or foreign.
	Remove(h Handle) (float64, V, error)

	// UpdateKey re-keys the entry behind h, restoring queue order in
	// whichever direction the new key requires. Returns ErrInvalidHandle
	// if h is dead or foreign.
	UpdateKey(h Handle, key float64) error

	// Key returns the current key of the entry behind h.
	// Returns ErrInvalidHandle if h is dead or foreign.
	Key(h Handle) (float64, error)

	// Value returns the payload of the entry behind h.
	// Returns ErrInvalidHandle if h is dead or foreign.
	Value(h Handle) (V, error)
}

// New constructs a queue for the given strategy.
//
// Returns ErrUnknownStrategy (wrapped with the offending value) when s is
// not one of the declared constants.
// Complexity: O(1).
func New[V any](s Strategy) (Queue[V], error) {
	switch s {
	case StrategyHeap:
		return NewHeap[V](), nil
	case StrategyList:
		return NewList[V](), nil
	case StrategySkipList:
		return NewSkipList[V](), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

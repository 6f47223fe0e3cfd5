// Package pqueue: unordered linear-scan implementation of the Queue
// contract — the baseline the heap is benchmarked against.
package pqueue

// listEntry is one (key, payload) pair in the unordered backing slice.
type listEntry[V any] struct {
	key   float64
	value V
	id    uint64
}

// List is a priority queue over an unordered growable slice. Insert and
// UpdateKey are O(1); PeekMin and ExtractMin scan all entries. It fulfills
// the same contract and error set as Heap, so the two are interchangeable
// under prim — that is the whole point of keeping it around.
//
// Not safe for concurrent use.
type List[V any] struct {
	entries []listEntry[V]
	slots   map[uint64]int // handle id → current slot
	nextID  uint64
}

// NewList creates an empty linear-scan queue.
// Complexity: O(1).
func NewList[V any]() *List[V] {
	return &List[V]{slots: make(map[uint64]int)}
}

// Len returns the number of entries in the queue.
// Complexity: O(1).
func (l *List[V]) Len() int { return len(l.entries) }

// Insert appends the entry, with no ordering work at all.
// Complexity: O(1).
func (l *List[V]) Insert(key float64, value V) Handle {
	l.nextID++
	id := l.nextID

	l.entries = append(l.entries, listEntry[V]{key: key, value: value, id: id})
	l.slots[id] = len(l.entries) - 1

	return Handle{id: id}
}

// PeekMin scans for a minimum-key entry and returns its handle without
// removing it. The scan is front-to-back and keeps the first minimum, so
// repeated calls without mutation return the same handle.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(n).
func (l *List[V]) PeekMin() (Handle, error) {
	if len(l.entries) == 0 {
		return Handle{}, ErrEmptyQueue
	}

	return Handle{id: l.entries[l.minSlot()].id}, nil
}

// ExtractMin scans for a minimum-key entry, detaches it, and returns its
// key and payload. Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(n).
func (l *List[V]) ExtractMin() (float64, V, error) {
	if len(l.entries) == 0 {
		var zero V
		return 0, zero, ErrEmptyQueue
	}

	return l.removeAt(l.minSlot())
}

// Remove detaches the entry behind h and returns its key and payload.
// Returns ErrInvalidHandle if h is dead or foreign.
// Complexity: O(1) — the handle table supplies the slot directly.
func (l *List[V]) Remove(h Handle) (float64, V, error) {
	slot, ok := l.slots[h.id]
	if !ok {
		var zero V
		return 0, zero, ErrInvalidHandle
	}

	return l.removeAt(slot)
}

// UpdateKey re-keys the entry behind h in place; with no ordering to
// maintain there is nothing to restructure. Returns ErrInvalidHandle if
// h is dead or foreign.
// Complexity: O(1).
func (l *List[V]) UpdateKey(h Handle, key float64) error {
	slot, ok := l.slots[h.id]
	if !ok {
		return ErrInvalidHandle
	}

	l.entries[slot].key = key

	return nil
}

// Key returns the current key of the entry behind h.
// Complexity: O(1).
func (l *List[V]) Key(h Handle) (float64, error) {
	slot, ok := l.slots[h.id]
	if !ok {
		return 0, ErrInvalidHandle
	}

	return l.entries[slot].key, nil
}

// Value returns the payload of the entry behind h.
// Complexity: O(1).
func (l *List[V]) Value(h Handle) (V, error) {
	slot, ok := l.slots[h.id]
	if !ok {
		var zero V
		return zero, ErrInvalidHandle
	}

	return l.entries[slot].value, nil
}

// minSlot returns the slot of the first minimum-key entry.
// Caller guarantees the queue is non-empty.
func (l *List[V]) minSlot() int {
	min := 0
	for i := 1; i < len(l.entries); i++ {
		if l.entries[i].key < l.entries[min].key {
			min = i
		}
	}

	return min
}

// removeAt detaches the entry at slot by moving the last entry into its
// place (updating that entry's handle table row), shrinking the slice and
// retiring the detached handle.
func (l *List[V]) removeAt(slot int) (float64, V, error) {
	last := len(l.entries) - 1
	detached := l.entries[slot]

	if slot < last {
		l.entries[slot] = l.entries[last]
		l.slots[l.entries[slot].id] = slot
	}
	l.entries[last] = listEntry[V]{} // release payload reference
	l.entries = l.entries[:last]
	delete(l.slots, detached.id)

	return detached.key, detached.value, nil
}

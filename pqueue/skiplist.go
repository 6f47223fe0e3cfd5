// Package pqueue: ordered skip-list implementation of the Queue contract,
// backed by github.com/huandu/skiplist.
package pqueue

import "github.com/huandu/skiplist"

// skipKey orders skip-list elements: primarily by priority key, then by
// insertion sequence so that entries with equal keys coexist as distinct
// elements instead of overwriting each other.
type skipKey struct {
	key float64
	seq uint64
}

// skipEntry is the element payload: the handle token plus the caller's
// value.
type skipEntry[V any] struct {
	id    uint64
	value V
}

// SkipList is a priority queue over an ascending skip list. The list's
// front element is always a minimum, so PeekMin/ExtractMin are cheap;
// Insert, Remove and UpdateKey are expected O(log n).
//
// Not safe for concurrent use.
type SkipList[V any] struct {
	list    *skiplist.SkipList
	elems   map[uint64]*skiplist.Element // handle id → live element
	nextID  uint64
	nextSeq uint64
}

// NewSkipList creates an empty skip-list queue.
// Complexity: O(1).
func NewSkipList[V any]() *SkipList[V] {
	return &SkipList[V]{
		list:  skiplist.New(skiplist.GreaterThanFunc(compareSkipKeys)),
		elems: make(map[uint64]*skiplist.Element),
	}
}

// compareSkipKeys is the skip list's ordering: ascending by key, ties
// broken by insertion sequence.
func compareSkipKeys(lhs, rhs interface{}) int {
	a, b := lhs.(skipKey), rhs.(skipKey)
	switch {
	case a.key < b.key:
		return -1
	case a.key > b.key:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	default:
		return 0
	}
}

// Len returns the number of entries in the queue.
// Complexity: O(1).
func (s *SkipList[V]) Len() int { return s.list.Len() }

// Insert adds the entry at its ordered position and returns its handle.
// Complexity: expected O(log n).
func (s *SkipList[V]) Insert(key float64, value V) Handle {
	s.nextID++
	s.nextSeq++
	id := s.nextID

	elem := s.list.Set(
		skipKey{key: key, seq: s.nextSeq},
		skipEntry[V]{id: id, value: value},
	)
	s.elems[id] = elem

	return Handle{id: id}
}

// PeekMin returns the front element's handle without removing it.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (s *SkipList[V]) PeekMin() (Handle, error) {
	front := s.list.Front()
	if front == nil {
		return Handle{}, ErrEmptyQueue
	}

	return Handle{id: front.Value.(skipEntry[V]).id}, nil
}

// ExtractMin removes the front element and returns its key and payload.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1) for the front lookup plus O(log n) removal.
func (s *SkipList[V]) ExtractMin() (float64, V, error) {
	front := s.list.Front()
	if front == nil {
		var zero V
		return 0, zero, ErrEmptyQueue
	}

	return s.detach(front)
}

// Remove detaches the entry behind h and returns its key and payload.
// Returns ErrInvalidHandle if h is dead or foreign.
// Complexity: expected O(log n).
func (s *SkipList[V]) Remove(h Handle) (float64, V, error) {
	elem, ok := s.elems[h.id]
	if !ok {
		var zero V
		return 0, zero, ErrInvalidHandle
	}

	return s.detach(elem)
}

// UpdateKey re-keys the entry behind h. Skip-list elements are immutable
// in their ordering key, so the element is removed and re-inserted at the
// new position — under the same handle, which is what keeps the caller's
// reference valid. Returns ErrInvalidHandle if h is dead or foreign.
// Complexity: expected O(log n).
func (s *SkipList[V]) UpdateKey(h Handle, key float64) error {
	elem, ok := s.elems[h.id]
	if !ok {
		return ErrInvalidHandle
	}

	entry := elem.Value.(skipEntry[V])
	s.list.RemoveElement(elem)

	s.nextSeq++
	s.elems[h.id] = s.list.Set(skipKey{key: key, seq: s.nextSeq}, entry)

	return nil
}

// Key returns the current key of the entry behind h.
// Complexity: O(1).
func (s *SkipList[V]) Key(h Handle) (float64, error) {
	elem, ok := s.elems[h.id]
	if !ok {
		return 0, ErrInvalidHandle
	}

	return elem.Key().(skipKey).key, nil
}

// Value returns the payload of the entry behind h.
// Complexity: O(1).
func (s *SkipList[V]) Value(h Handle) (V, error) {
	elem, ok := s.elems[h.id]
	if !ok {
		var zero V
		return zero, ErrInvalidHandle
	}

	return elem.Value.(skipEntry[V]).value, nil
}

// detach removes elem from the list, retires its handle and returns its
// key and payload.
func (s *SkipList[V]) detach(elem *skiplist.Element) (float64, V, error) {
	entry := elem.Value.(skipEntry[V])
	s.list.RemoveElement(elem)
	delete(s.elems, entry.id)

	return elem.Key().(skipKey).key, entry.value, nil
}

// Package pqueue: binary min-heap implementation of the Queue contract.
//
// The heap keeps its entries in a contiguous slice and a handle table
// mapping each live handle to the entry's current slot. Every swap
// updates the table, which is what keeps handles valid while entries
// migrate during sift-up and sift-down.
package pqueue

// heapEntry is one (key, payload) pair in the backing slice. The id is
// the entry's handle token; its current slot lives in Heap.slots and is
// maintained on every swap.
type heapEntry[V any] struct {
	key   float64
	value V
	id    uint64
}

// Heap is a binary min-heap with index-tracked handles.
//
// Invariant: for every non-root slot i,
// entries[i].key >= entries[parentSlot(i)].key, and for every live entry,
// slots[entries[i].id] == i. Both are re-established before any method
// returns.
//
// Children of slot i are at 2i+1 and 2i+2; the parent of slot i is
// (i-1)/2. Not safe for concurrent use.
type Heap[V any] struct {
	entries []heapEntry[V]
	slots   map[uint64]int // handle id → current slot
	nextID  uint64         // last issued handle token
}

// NewHeap creates an empty binary min-heap queue.
// Complexity: O(1).
func NewHeap[V any]() *Heap[V] {
	return &Heap[V]{slots: make(map[uint64]int)}
}

// Len returns the number of entries in the heap.
// Complexity: O(1).
func (h *Heap[V]) Len() int { return len(h.entries) }

// Insert appends the entry at the next free slot, sifts it up until its
// parent's key is no longer greater, and returns its handle.
// Complexity: O(log n).
func (h *Heap[V]) Insert(key float64, value V) Handle {
	h.nextID++
	id := h.nextID

	h.entries = append(h.entries, heapEntry[V]{key: key, value: value, id: id})
	h.slots[id] = len(h.entries) - 1
	h.siftUp(len(h.entries) - 1)

	return Handle{id: id}
}

// PeekMin returns the root entry's handle without removing it.
// Returns ErrEmptyQueue if the heap is empty.
// Complexity: O(1).
func (h *Heap[V]) PeekMin() (Handle, error) {
	if len(h.entries) == 0 {
		return Handle{}, ErrEmptyQueue
	}

	return Handle{id: h.entries[0].id}, nil
}

// ExtractMin removes the root entry and returns its key and payload.
// Returns ErrEmptyQueue if the heap is empty.
// Complexity: O(log n).
func (h *Heap[V]) ExtractMin() (float64, V, error) {
	if len(h.entries) == 0 {
		var zero V
		return 0, zero, ErrEmptyQueue
	}

	return h.removeAt(0)
}

// Remove detaches the entry behind hd, wherever it currently sits, and
// returns its key and payload. Returns ErrInvalidHandle if hd is dead or
// foreign. The handle is dead afterwards.
// Complexity: O(log n).
func (h *Heap[V]) Remove(hd Handle) (float64, V, error) {
	slot, ok := h.slots[hd.id]
	if !ok {
		var zero V
		return 0, zero, ErrInvalidHandle
	}

	return h.removeAt(slot)
}

// UpdateKey re-keys the entry behind hd and repairs the heap in whichever
// direction the new key requires. Returns ErrInvalidHandle if hd is dead
// or foreign.
// Complexity: O(log n).
func (h *Heap[V]) UpdateKey(hd Handle, key float64) error {
	slot, ok := h.slots[hd.id]
	if !ok {
		return ErrInvalidHandle
	}

	h.entries[slot].key = key
	h.repair(slot)

	return nil
}

// Key returns the current key of the entry behind hd.
// Complexity: O(1).
func (h *Heap[V]) Key(hd Handle) (float64, error) {
	slot, ok := h.slots[hd.id]
	if !ok {
		return 0, ErrInvalidHandle
	}

	return h.entries[slot].key, nil
}

// Value returns the payload of the entry behind hd.
// Complexity: O(1).
func (h *Heap[V]) Value(hd Handle) (V, error) {
	slot, ok := h.slots[hd.id]
	if !ok {
		var zero V
		return zero, ErrInvalidHandle
	}

	return h.entries[slot].value, nil
}

// removeAt detaches the entry at slot:
//  1. swap it with the last entry (handle table updated by swap),
//  2. shrink the slice and retire the detached entry's handle,
//  3. repair from the vacated slot — the replacement, formerly the last
//     entry, may violate the heap property in either direction relative
//     to its new parent and children.
func (h *Heap[V]) removeAt(slot int) (float64, V, error) {
	last := len(h.entries) - 1
	h.swap(slot, last)

	detached := h.entries[last]
	h.entries[last] = heapEntry[V]{} // release payload reference
	h.entries = h.entries[:last]
	delete(h.slots, detached.id)

	// Nothing landed in the vacated slot when the target was the last
	// entry; otherwise restore order around the replacement.
	if slot < last {
		h.repair(slot)
	}

	return detached.key, detached.value, nil
}

// repair restores min-heap order around slot after its key changed or a
// replacement landed there: a single parent comparison decides the
// direction, then exactly one of siftUp/siftDown runs. One comparison is
// sufficient because only the entry at slot moved relative to an
// otherwise valid heap.
func (h *Heap[V]) repair(slot int) {
	if slot > 0 && h.entries[slot].key < h.entries[parentSlot(slot)].key {
		h.siftUp(slot)
		return
	}
	h.siftDown(slot)
}

// siftUp swaps the entry at slot with its parent while the parent's key
// is strictly greater, walking it toward the root.
func (h *Heap[V]) siftUp(slot int) {
	for slot > 0 {
		p := parentSlot(slot)
		if h.entries[p].key <= h.entries[slot].key {
			break
		}
		h.swap(slot, p)
		slot = p
	}
}

// siftDown swaps the entry at slot with the smaller of its children while
// a child's key is strictly smaller, walking it toward the leaves.
func (h *Heap[V]) siftDown(slot int) {
	n := len(h.entries)
	for {
		smallest := slot
		if l := 2*slot + 1; l < n && h.entries[l].key < h.entries[smallest].key {
			smallest = l
		}
		if r := 2*slot + 2; r < n && h.entries[r].key < h.entries[smallest].key {
			smallest = r
		}
		if smallest == slot {
			return
		}
		h.swap(slot, smallest)
		slot = smallest
	}
}

// swap exchanges the entries at slots i and j and rewrites both handle
// table rows. Every entry move in the heap goes through here, which is
// the single point keeping handles consistent.
func (h *Heap[V]) swap(i, j int) {
	if i == j {
		return
	}
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slots[h.entries[i].id] = i
	h.slots[h.entries[j].id] = j
}

// parentSlot returns the parent slot of i: (i-1)/2 in integer division.
func parentSlot(i int) int { return (i - 1) / 2 }

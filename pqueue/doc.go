// Package pqueue provides indexed min-priority queues with stable opaque
// handles, supporting insert, peek-min, extract-min, arbitrary removal
// and in-place key update.
//
// What & Why
//
//   - What is an indexed priority queue?
//     A priority queue whose entries remain addressable after insertion:
//     Insert returns a Handle, and the queue can later remove or re-key
//     exactly that entry, wherever its internal position has drifted to.
//     This is the structure eager graph algorithms (Prim, Dijkstra with
//     true decrease-key) are built on.
//
//   - Why handles instead of positions?
//     A binary heap moves entries on every sift. Exposing raw positions
//     (or raw entry pointers) invites callers to mutate state the heap
//     depends on. Handles here are opaque tokens resolved through an
//     internal table; once an entry is extracted or removed, its handle
//     is dead and every operation through it fails with ErrInvalidHandle
//     instead of corrupting the queue.
//
// Strategies Provided
//
//   - NewHeap[V]() — binary min-heap with index-tracked entries.
//     Insert, ExtractMin, Remove, UpdateKey in O(log n); PeekMin in O(1).
//     Every swap updates the handle table, so handles survive reordering.
//
//   - NewList[V]() — unordered linear scan, the baseline.
//     Insert and UpdateKey in O(1); PeekMin, ExtractMin in O(n);
//     Remove in O(1) via swap-with-last. Same contract, same error set —
//     it exists to make the heap's advantage measurable, not to be used.
//
//   - NewSkipList[V]() — ordered skip list (github.com/huandu/skiplist).
//     All operations in expected O(log n). Entries are keyed by
//     (key, insertion sequence) so equal priorities coexist.
//
//   - New[V](strategy) — dispatch by Strategy constant.
//
// Contract notes
//
//   - Keys are float64 and totally ordered by <. Inf (positive infinity)
//     is the conventional "not yet reachable" sentinel.
//   - UpdateKey is a general re-key: it moves the entry toward the root
//     or toward the leaves as the new key requires. A decrease-key is
//     simply an UpdateKey with a smaller key.
//   - No tie-break ordering is guaranteed among equal keys; any of the
//     equal-minimum entries may surface first.
//   - Queues are not safe for concurrent use; each caller owns its queue.
//
// For examples of usage, see the example_test.go file in this package.
package pqueue

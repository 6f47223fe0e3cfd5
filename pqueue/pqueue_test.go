package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstpq/pqueue"
)

// strategies enumerates every implementation; each contract test runs
// against all of them so the three stay interchangeable.
var strategies = []pqueue.Strategy{
	pqueue.StrategyHeap,
	pqueue.StrategyList,
	pqueue.StrategySkipList,
}

// newQueue constructs a queue for the strategy, failing the test on a
// dispatch error.
func newQueue(t *testing.T, s pqueue.Strategy) pqueue.Queue[int] {
	t.Helper()
	q, err := pqueue.New[int](s)
	require.NoError(t, err)

	return q
}

// TestRoundTrip_SortedExtraction inserts shuffled keys and verifies that
// extracting everything yields them in ascending order.
func TestRoundTrip_SortedExtraction(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			q := newQueue(t, s)

			keys := []float64{7, 3, 9, 1, 5, 8, 2, 6, 4, 0}
			for i, k := range keys {
				q.Insert(k, i)
			}
			require.Equal(t, len(keys), q.Len())

			got := make([]float64, 0, len(keys))
			for q.Len() > 0 {
				k, _, err := q.ExtractMin()
				require.NoError(t, err)
				got = append(got, k)
			}

			assert.True(t, sort.Float64sAreSorted(got), "extraction order %v not ascending", got)
			assert.Len(t, got, len(keys))
		})
	}
}

// TestPeekMin_Idempotent verifies that repeated peeks without mutation
// return the same handle, and that peeking does not consume the entry.
func TestPeekMin_Idempotent(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			q := newQueue(t, s)
			q.Insert(5, 50)
			q.Insert(1, 10)
			q.Insert(3, 30)

			first, err := q.PeekMin()
			require.NoError(t, err)
			for i := 0; i < 5; i++ {
				again, perr := q.PeekMin()
				require.NoError(t, perr)
				assert.Equal(t, first, again)
			}

			k, kerr := q.Key(first)
			require.NoError(t, kerr)
			assert.Equal(t, 1.0, k)
			assert.Equal(t, 3, q.Len(), "peek must not consume")
		})
	}
}

// TestEmptyQueue_Errors verifies the empty-collection condition on peek
// and extract.
func TestEmptyQueue_Errors(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			q := newQueue(t, s)

			_, err := q.PeekMin()
			assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)

			_, _, err = q.ExtractMin()
			assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)

			// Drained queues behave like fresh ones.
			h := q.Insert(1, 1)
			_, _, err = q.ExtractMin()
			require.NoError(t, err)
			_, _, err = q.ExtractMin()
			assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
			_ = h
		})
	}
}

// TestDeadHandle_Errors verifies that every handle-addressed operation
// fails with ErrInvalidHandle once the entry is gone, and that the zero
// Handle is never valid.
func TestDeadHandle_Errors(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			q := newQueue(t, s)

			h := q.Insert(2, 20)
			q.Insert(5, 50)

			_, _, err := q.Remove(h)
			require.NoError(t, err)

			// The handle is dead now: all four addressed operations fail.
			_, _, err = q.Remove(h)
			assert.ErrorIs(t, err, pqueue.ErrInvalidHandle)
			assert.ErrorIs(t, q.UpdateKey(h, 1), pqueue.ErrInvalidHandle)
			_, err = q.Key(h)
			assert.ErrorIs(t, err, pqueue.ErrInvalidHandle)
			_, err = q.Value(h)
			assert.ErrorIs(t, err, pqueue.ErrInvalidHandle)

			// Same for a handle consumed by ExtractMin.
			h2, err := q.PeekMin()
			require.NoError(t, err)
			_, _, err = q.ExtractMin()
			require.NoError(t, err)
			assert.ErrorIs(t, q.UpdateKey(h2, 1), pqueue.ErrInvalidHandle)

			// The zero Handle must never resolve.
			_, err = q.Key(pqueue.Handle{})
			assert.ErrorIs(t, err, pqueue.ErrInvalidHandle)
		})
	}
}

// TestRemove_Interior verifies arbitrary-position removal: the removed
// key never surfaces and the remaining extraction order is intact.
func TestRemove_Interior(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			q := newQueue(t, s)

			handles := make(map[float64]pqueue.Handle)
			for _, k := range []float64{4, 1, 6, 3, 8, 2, 7} {
				handles[k] = q.Insert(k, int(k))
			}

			k, v, err := q.Remove(handles[3])
			require.NoError(t, err)
			assert.Equal(t, 3.0, k)
			assert.Equal(t, 3, v)
			assert.Equal(t, 6, q.Len())

			got := make([]float64, 0, 6)
			for q.Len() > 0 {
				ek, _, eerr := q.ExtractMin()
				require.NoError(t, eerr)
				got = append(got, ek)
			}
			assert.Equal(t, []float64{1, 2, 4, 6, 7, 8}, got)
		})
	}
}

// TestRemoveThenReinsert_Equivalence verifies that removing an entry and
// reinserting an equivalent one leaves the queue indistinguishable, by
// key-extraction order, from never having removed it.
func TestRemoveThenReinsert_Equivalence(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			keys := []float64{9, 4, 7, 1, 5, 3, 8, 2, 6}

			untouched := newQueue(t, s)
			churned := newQueue(t, s)

			var victim pqueue.Handle
			for i, k := range keys {
				untouched.Insert(k, i)
				h := churned.Insert(k, i)
				if k == 5 {
					victim = h
				}
			}

			k, v, err := churned.Remove(victim)
			require.NoError(t, err)
			churned.Insert(k, v)

			for untouched.Len() > 0 {
				wantK, _, werr := untouched.ExtractMin()
				require.NoError(t, werr)
				gotK, _, gerr := churned.ExtractMin()
				require.NoError(t, gerr)
				assert.Equal(t, wantK, gotK)
			}
			assert.Zero(t, churned.Len())
		})
	}
}

// TestUpdateKey_BothDirections verifies the general update-key contract:
// a decrease surfaces the entry earlier, an increase pushes it later, and
// the queue stays consistent either way.
func TestUpdateKey_BothDirections(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			q := newQueue(t, s)

			q.Insert(10, 100)
			mid := q.Insert(20, 200)
			q.Insert(30, 300)

			// Decrease 20 → 1: it must surface first.
			require.NoError(t, q.UpdateKey(mid, 1))
			k, v, err := q.ExtractMin()
			require.NoError(t, err)
			assert.Equal(t, 1.0, k)
			assert.Equal(t, 200, v)

			// Reinsert and increase 20 → 99: it must surface last.
			last := q.Insert(20, 200)
			require.NoError(t, q.UpdateKey(last, 99))

			var got []int
			for q.Len() > 0 {
				_, ev, eerr := q.ExtractMin()
				require.NoError(t, eerr)
				got = append(got, ev)
			}
			assert.Equal(t, []int{100, 300, 200}, got)
		})
	}
}

// TestRandomized_AgainstReferenceScan drives every strategy through a
// randomized op sequence, mirroring the queue into a plain handle→key
// map, and checks each observation against a linear scan of the mirror.
func TestRandomized_AgainstReferenceScan(t *testing.T) {
	const ops = 2000

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			q := newQueue(t, s)
			rng := rand.New(rand.NewSource(1))

			// Payloads are unique, so the payload→handle map lets us
			// identify which mirror row an extraction consumed.
			mirror := make(map[pqueue.Handle]float64)
			byPayload := make(map[int]pqueue.Handle)
			live := make([]pqueue.Handle, 0, ops)
			nextPayload := 0

			mirrorMin := func() float64 {
				min := pqueue.Inf
				for _, k := range mirror {
					if k < min {
						min = k
					}
				}
				return min
			}
			dropLive := func(h pqueue.Handle) {
				for i, lh := range live {
					if lh == h {
						live[i] = live[len(live)-1]
						live = live[:len(live)-1]
						return
					}
				}
			}

			for i := 0; i < ops; i++ {
				switch op := rng.Intn(10); {
				case op < 4 || len(live) == 0: // insert
					key := float64(rng.Intn(500))
					h := q.Insert(key, nextPayload)
					mirror[h] = key
					byPayload[nextPayload] = h
					live = append(live, h)
					nextPayload++

				case op < 6: // extract-min, compare against mirror scan
					k, v, err := q.ExtractMin()
					require.NoError(t, err)
					assert.Equal(t, mirrorMin(), k, "extract-min disagreed with scan at op %d", i)
					h := byPayload[v]
					assert.Equal(t, mirror[h], k)
					delete(mirror, h)
					delete(byPayload, v)
					dropLive(h)

				case op < 8: // update-key on a random live handle
					h := live[rng.Intn(len(live))]
					key := float64(rng.Intn(500))
					require.NoError(t, q.UpdateKey(h, key))
					mirror[h] = key

				case op < 9: // remove a random live handle
					h := live[rng.Intn(len(live))]
					k, v, err := q.Remove(h)
					require.NoError(t, err)
					assert.Equal(t, mirror[h], k)
					delete(mirror, h)
					delete(byPayload, v)
					dropLive(h)

				default: // peek, compare against mirror scan
					h, err := q.PeekMin()
					require.NoError(t, err)
					k, kerr := q.Key(h)
					require.NoError(t, kerr)
					assert.Equal(t, mirrorMin(), k, "peek disagreed with scan at op %d", i)
				}

				require.Equal(t, len(mirror), q.Len(), "length drifted at op %d", i)
			}

			// Drain: ascending order, and exactly the mirrored population.
			prev := -1.0
			for q.Len() > 0 {
				k, v, err := q.ExtractMin()
				require.NoError(t, err)
				assert.GreaterOrEqual(t, k, prev)
				prev = k
				delete(mirror, byPayload[v])
			}
			assert.Empty(t, mirror)
		})
	}
}

// TestNew_UnknownStrategy verifies dispatch rejection.
func TestNew_UnknownStrategy(t *testing.T) {
	_, err := pqueue.New[int](pqueue.Strategy(99))
	assert.ErrorIs(t, err, pqueue.ErrUnknownStrategy)
}

// TestStrategy_String pins the labels used in benchmarks and logs.
func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "heap", pqueue.StrategyHeap.String())
	assert.Equal(t, "list", pqueue.StrategyList.String())
	assert.Equal(t, "skiplist", pqueue.StrategySkipList.String())
	assert.Equal(t, "strategy(99)", pqueue.Strategy(99).String())
}

package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoundsCapacityToPowerOfTwo(t *testing.T) {
	r := New[int](5)
	require.Equal(t, 8, r.Cap())
}

func TestNewRaisesTooSmallCapacityToTwo(t *testing.T) {
	r := New[int](1)
	require.Equal(t, 2, r.Cap())
}

func TestEnqueueDequeueRoundTrip(t *testing.T) {
	r := New[int](4)
	require.True(t, r.IsEmpty())

	ok := r.TryEnqueue(42)
	require.True(t, ok)
	require.False(t, r.IsEmpty())
	require.Equal(t, 1, r.Len())

	v, ok := r.TryDequeue()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.True(t, r.IsEmpty())
}

func TestFullRingRejectsEnqueue(t *testing.T) {
	r := New[int](4) // rounds to 4, usable capacity 3 (one slot reserved)
	for i := 0; i < 3; i++ {
		require.True(t, r.TryEnqueue(i))
	}
	require.False(t, r.TryEnqueue(99))
}

func TestEmptyRingRejectsDequeue(t *testing.T) {
	r := New[int](4)
	_, ok := r.TryDequeue()
	require.False(t, ok)
}

// TestSPSCOrdering mirrors spec scenario 5: a single producer enqueues
// 0..N (spinning past drops), a single consumer dequeues the same count,
// and the sequence must come out in order.
func TestSPSCOrdering(t *testing.T) {
	const n = 100000
	r := New[int](1024)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			for !r.TryEnqueue(i) {
			}
		}
	}()

	got := make([]int, 0, n)
	for len(got) < n {
		if v, ok := r.TryDequeue(); ok {
			got = append(got, v)
		}
	}
	<-done

	for i, v := range got {
		require.Equal(t, i, v)
	}
}

// TestMPMCNoDuplicateNoLoss exercises many producers and many consumers
// concurrently and checks the multiset of dequeued values against what
// successfully enqueued, with no duplicates.
func TestMPMCNoDuplicateNoLoss(t *testing.T) {
	const producers = 8
	const perProducer = 2000
	r := New[int](4096)

	var wg sync.WaitGroup
	enqueued := make([]int64, producers)
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				val := p*perProducer + i
				for !r.TryEnqueue(val) {
					// ring full: spin, as a test harness is allowed to where
					// the engine itself would drop.
				}
				enqueued[p]++
			}
		}(p)
	}

	results := make(chan int, producers*perProducer)
	var consumerWg sync.WaitGroup
	stop := make(chan struct{})
	for c := 0; c < 4; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				select {
				case <-stop:
					// Drain whatever remains before exiting.
					for {
						v, ok := r.TryDequeue()
						if !ok {
							return
						}
						results <- v
					}
				default:
					if v, ok := r.TryDequeue(); ok {
						results <- v
					}
				}
			}
		}()
	}

	wg.Wait()
	close(stop)
	consumerWg.Wait()
	close(results)

	seen := make(map[int]bool)
	count := 0
	for v := range results {
		require.False(t, seen[v], "duplicate value dequeued: %d", v)
		seen[v] = true
		count++
	}
	require.Equal(t, producers*perProducer, count)
}

func TestHeadNeverLessThanTail(t *testing.T) {
	r := New[int](16)
	for i := 0; i < 1000; i++ {
		r.TryEnqueue(i)
		if i%3 == 0 {
			r.TryDequeue()
		}
		require.GreaterOrEqual(t, r.head.Load(), r.tail.Load())
	}
}

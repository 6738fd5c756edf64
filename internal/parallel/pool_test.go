package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}

	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if pool.Workers() != DefaultWorkers {
		t.Errorf("Workers() = %d, want DefaultWorkers %d", pool.Workers(), DefaultWorkers)
	}
}

func TestWorkerPool_CreateNegativeWorkers(t *testing.T) {
	pool := NewWorkerPool(-5)
	defer pool.Close()

	if pool.Workers() != DefaultWorkers {
		t.Errorf("Workers() = %d, want DefaultWorkers %d", pool.Workers(), DefaultWorkers)
	}
}

// =============================================================================
// RunWave Tests
// =============================================================================

func TestWorkerPool_RunWave(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	pool.RunWave(work)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_RunWave_EachTaskClaimedOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var mu sync.Mutex
	results := make([]int, 0, 10)

	work := make([]func(), 10)
	for i := range work {
		idx := i
		work[i] = func() {
			mu.Lock()
			results = append(results, idx)
			mu.Unlock()
		}
	}

	pool.RunWave(work)

	if len(results) != 10 {
		t.Errorf("results length = %d, want 10 (a task ran twice or not at all)", len(results))
	}

	seen := make(map[int]bool)
	for _, v := range results {
		seen[v] = true
	}
	for i := 0; i < 10; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

func TestWorkerPool_RunWave_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic or block
	pool.RunWave(nil)
	pool.RunWave([]func(){})
}

func TestWorkerPool_RunWave_DisjointSlices(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// The vertex-dispatch pattern: each task owns one contiguous slice of
	// a shared output buffer and never touches a peer's range.
	out := make([]int, 400)
	work := make([]func(), 4)
	for b := range work {
		start, end := b*100, (b+1)*100
		work[b] = func() {
			for i := start; i < end; i++ {
				out[i] = i
			}
		}
	}

	pool.RunWave(work)

	for i, v := range out {
		if v != i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestWorkerPool_RunWave_BackToBackWaves(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	// The draw-call shape: wave 2 must observe wave 1's countdown join.
	var first atomic.Int64
	waveA := make([]func(), 20)
	for i := range waveA {
		waveA[i] = func() { first.Add(1) }
	}
	pool.RunWave(waveA)

	if first.Load() != 20 {
		t.Fatalf("wave 1 incomplete: %d of 20", first.Load())
	}

	var second atomic.Int64
	waveB := make([]func(), 20)
	for i := range waveB {
		waveB[i] = func() { second.Add(1) }
	}
	pool.RunWave(waveB)

	if second.Load() != 20 {
		t.Fatalf("wave 2 incomplete: %d of 20", second.Load())
	}
}

func TestWorkerPool_RunWave_SingleTask(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var executed atomic.Bool
	pool.RunWave([]func(){
		func() { executed.Store(true) },
	})

	if !executed.Load() {
		t.Error("single task was not executed")
	}
}

func TestWorkerPool_RunWave_MoreClaimersThanTasks(t *testing.T) {
	pool := NewWorkerPool(8)
	defer pool.Close()

	// Fewer tasks than claimers: the surplus claimers must return without
	// executing anything and the join must still release.
	var counter atomic.Int64
	pool.RunWave([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	if counter.Load() != 2 {
		t.Errorf("counter = %d, want 2", counter.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not report running after Close")
	}

	// RunWave after Close is a no-op and must not block.
	pool.RunWave([]func(){func() { t.Error("task ran on a closed pool") }})
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // must not panic
}

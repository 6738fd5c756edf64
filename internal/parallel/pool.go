// Package parallel implements the pipeline's two concurrency primitives: a
// fixed worker pool that executes a draw call's task waves with a
// countdown join, and a tile lock grid serializing per-pixel
// read-modify-write across concurrently running tasks.
package parallel

import (
	"sync"
	"sync/atomic"
)

// DefaultWorkers is the pool size used when a pipeline is constructed
// without an explicit override.
const DefaultWorkers = 8

// wave is one pre-enqueued batch of draw-call tasks: wave 1 shades
// vertex ranges, wave 2 runs one primitive end to end. Claimers advance
// the cursor to take the next task; the countdown reaches zero when the
// last task returns and releases the submitting goroutine.
type wave struct {
	tasks     []func()
	cursor    atomic.Int64
	countdown atomic.Int64
	done      chan struct{}
}

// run claims and executes tasks until the cursor passes the end of the
// wave. Whoever finishes the wave's last task closes done.
func (w *wave) run() {
	for {
		i := int(w.cursor.Add(1)) - 1
		if i >= len(w.tasks) {
			return
		}
		w.tasks[i]()
		if w.countdown.Add(-1) == 0 {
			close(w.done)
		}
	}
}

// WorkerPool is a fixed set of goroutines executing task waves. Every
// claimer shares the current wave's task slice through its cursor, so a
// wave needs no per-worker partitioning and leaves nothing queued once
// its countdown hits zero.
//
// Thread safety: waves are submitted one at a time from the draw path;
// Close may be called from any goroutine, any number of times.
type WorkerPool struct {
	workers int
	kicks   chan *wave
	quit    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given worker count. A count <= 0
// falls back to DefaultWorkers.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	p := &WorkerPool{
		workers: workers,
		kicks:   make(chan *wave, workers),
		quit:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.workerLoop()
	}
	return p
}

func (p *WorkerPool) workerLoop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case w := <-p.kicks:
			w.run()
		}
	}
}

// RunWave submits tasks as one wave and blocks until every task has
// completed. The calling goroutine claims tasks alongside the workers
// instead of idling, then parks on the countdown join. A closed pool
// runs nothing.
func (p *WorkerPool) RunWave(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	w := &wave{tasks: tasks, done: make(chan struct{})}
	w.countdown.Store(int64(len(tasks)))

	// Drop kicks left over from the previous wave (its cursor is already
	// exhausted, so a late receiver would run nothing), then wake every
	// worker on this one.
	for {
		select {
		case <-p.kicks:
			continue
		default:
		}
		break
	}
	for i := 0; i < p.workers; i++ {
		select {
		case p.kicks <- w:
		default:
		}
	}

	w.run()
	<-w.done
}

// Close stops all workers. Safe to call multiple times. A wave in
// flight still completes: its submitter keeps claiming tasks until the
// countdown join releases it.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.quit)
	p.wg.Wait()
}

// Workers returns the configured worker count.
func (p *WorkerPool) Workers() int { return p.workers }

// IsRunning reports whether the pool still accepts waves.
func (p *WorkerPool) IsRunning() bool { return p.running.Load() }

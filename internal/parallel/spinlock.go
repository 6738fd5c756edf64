package parallel

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a mutual-exclusion lock that busy-waits instead of parking
// the calling goroutine. Wave-2 tasks never suspend on the scheduler; a
// lock held by a peer worker is expected to be released in a handful of
// instructions (one pixel's read-modify-write), so spinning costs less
// than a context switch.
type SpinLock struct {
	held atomic.Bool
}

// Lock spins until the lock is acquired.
func (s *SpinLock) Lock() {
	spins := 0
	for !s.held.CompareAndSwap(false, true) {
		spins++
		if spins > 64 {
			runtime.Gosched()
			spins = 0
		}
	}
}

// Unlock releases the lock. Unlock on a lock not held by the caller is
// undefined, as with sync.Mutex.
func (s *SpinLock) Unlock() {
	s.held.Store(false)
}

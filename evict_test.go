package threadpool

import (
	"sync/atomic"
	"testing"
	"time"
)

// spawnGated runs n callbacks that block until the returned release
// function is called, forcing the pool to grow past its warm floor.
func spawnGated(t *testing.T, p *Pool[int], n int) func() {
	t.Helper()

	gate := make(chan struct{})
	var running atomic.Int32
	for i := 0; i < n; i++ {
		err := p.Spawn(Task[int]{
			Payload: i,
			Fn: func(int) {
				running.Add(1)
				<-gate
			},
		})
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
	}
	waitUntil(t, time.Second, func() bool { return running.Load() == int32(n) })
	return func() { close(gate) }
}

func TestOverflowEviction(t *testing.T) {
	m := &AtomicMetrics{}
	p := NewPoolFromOptions[int](Options{
		Threads:      1,
		IdleLifetime: 10 * time.Millisecond,
		Metrics:      m,
	})
	defer p.Stop()

	release := spawnGated(t, p, 3)
	if got := p.LiveThreads(); got != 3 {
		t.Fatalf("live threads under load = %d; want 3", got)
	}
	release()

	// with no further activity the idle set must shrink back to the floor
	waitUntil(t, 2*time.Second, func() bool { return p.LiveThreads() == 1 })
	if got := p.IdleThreads(); got != 1 {
		t.Fatalf("idle threads after eviction = %d; want 1", got)
	}
	if got := m.Evicted(); got != 2 {
		t.Fatalf("evicted = %d; want 2", got)
	}
}

func TestEvictionRetriesWhileBusy(t *testing.T) {
	p := NewPoolFromOptions[int](Options{
		Threads:      1,
		IdleLifetime: 5 * time.Millisecond,
	})
	defer p.Stop()

	// hold both threads well past the idle lifetime so the overflow
	// timer fires mid-callback at least once
	release := spawnGated(t, p, 2)
	time.Sleep(50 * time.Millisecond)
	if got := p.LiveThreads(); got != 2 {
		t.Fatalf("live threads while busy = %d; want 2", got)
	}
	release()

	waitUntil(t, 2*time.Second, func() bool { return p.LiveThreads() == 1 })
}

func TestEvictionDisabled(t *testing.T) {
	p := NewPool[int](1, 0)
	defer p.Stop()

	release := spawnGated(t, p, 3)
	release()
	waitUntil(t, time.Second, func() bool { return p.IdleThreads() == 3 })

	// nothing may shrink the idle set without eviction timers
	time.Sleep(50 * time.Millisecond)
	if got := p.IdleThreads(); got != 3 {
		t.Fatalf("idle threads = %d; want 3", got)
	}
	if got := p.LiveThreads(); got != 3 {
		t.Fatalf("live threads = %d; want 3", got)
	}
}

func TestDynamicModeNeverEvicts(t *testing.T) {
	p := NewPool[int](-1, 5*time.Millisecond)
	defer p.Stop()

	release := spawnGated(t, p, 3)
	release()
	waitUntil(t, time.Second, func() bool { return p.IdleThreads() == 3 })

	time.Sleep(50 * time.Millisecond)
	if got := p.LiveThreads(); got != 3 {
		t.Fatalf("live threads = %d; want 3", got)
	}
}

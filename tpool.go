package threadpool

import (
	"context"
	"fmt"
	"sync"
	"time"

	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/google/uuid"
)

const (
	// DefaultThreads is the warm-set size used when Options.Threads is zero.
	DefaultThreads = 10

	// DefaultIdleLifetime is how long an overflow thread survives unused
	// before the pool reclaims it.
	DefaultIdleLifetime = 60 * time.Second

	// evictBackoffCap bounds the eviction retry delay as a multiple of
	// the configured idle lifetime.
	evictBackoffCap = 8
)

// ErrPoolClosed is returned by Spawn after Shutdown or Stop.
var ErrPoolClosed = fmt.Errorf("threadpool: pool closed")

type TaskFunc[T any] func(T)

// Task carries a callback and its payload onto a pooled thread.
type Task[T any] struct {
	Payload     T
	Fn          TaskFunc[T]
	Ctx         context.Context
	CleanupFunc func()
}

// thread is one reusable execution context: a goroutine parked on its
// own work channel. Handing it a task resumes it; closing the channel
// terminates its reuse loop.
type thread[T any] struct {
	id   uuid.UUID
	work chan Task[T]

	// timer is armed only for overflow threads; nil for the warm floor.
	timer *time.Timer
}

// Pool hands reusable threads to Spawn callers instead of starting a
// fresh goroutine per task. See the package documentation for the
// recycling and eviction rules.
type Pool[T any] struct {
	mu   sync.Mutex
	idle idleStack[T] // parked threads, most recent last
	live int          // threads currently alive, idle or running

	threads      int // signed configured target; negative selects dynamic mode
	floor        int // abs(threads); never evicted below this
	idleLifetime time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	closed   chan struct{} // signals no more spawns

	metrics MetricsPolicy

	// OnPanic, when set, receives the recovered value of a callback
	// panic. The thread itself always survives the panic.
	OnPanic func(recovered any)
}

// NewPool creates a pool with abs(threads) threads started and parked
// up front. A negative threads value selects dynamic mode: the pool
// keeps abs(threads) warm and never schedules eviction for growth past
// it. threads == 0 falls back to DefaultThreads.
//
// idleLifetime is how long an overflow thread may sit unused before it
// is reclaimed; 0 disables eviction entirely (overflow threads become
// permanent). Use DefaultIdleLifetime for the standard 60s policy.
func NewPool[T any](threads int, idleLifetime time.Duration) *Pool[T] {
	return NewPoolFromOptions[T](Options{
		Threads:         threads,
		IdleLifetime:    idleLifetime,
		DisableEviction: idleLifetime == 0,
	})
}

func NewPoolFromOptions[T any](opts Options) *Pool[T] {
	opts.FillDefaults()

	floor := opts.Threads
	if floor < 0 {
		floor = -floor
	}
	p := &Pool[T]{
		threads:      opts.Threads,
		floor:        floor,
		idleLifetime: opts.IdleLifetime,
		closed:       make(chan struct{}),
		metrics:      opts.Metrics,
		OnPanic:      opts.OnPanic,
	}
	p.mu.Lock()
	for range floor {
		p.newThread()
	}
	p.mu.Unlock()
	return p
}

// Spawn runs task on an idle thread, creating one when none is parked.
// It returns once the task has been handed off; it never waits for the
// callback to finish. Any value the callback produces is discarded.
func (p *Pool[T]) Spawn(task Task[T]) error {
	if task.Ctx == nil {
		task.Ctx = context.Background()
	}

	p.mu.Lock()
	select {
	case <-p.closed:
		p.mu.Unlock()
		return ErrPoolClosed
	default:
	}
	if p.idle.len() == 0 {
		p.newThread()
	}
	w, _ := p.idle.pop()
	p.mu.Unlock()

	p.metrics.IncSpawned()
	w.work <- task
	lg.FromContext(task.Ctx).Info("task spawned",
		lg.Any("payload", task.Payload),
		lg.String("thread", w.id.String()),
	)
	return nil
}

// Shutdown rejects further spawns, terminates every parked thread, and
// waits for running callbacks to finish or ctx to expire.
func (p *Pool[T]) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.closed)
		p.mu.Lock()
		parked := p.idle.drain()
		p.mu.Unlock()
		for _, w := range parked {
			if w.timer != nil {
				w.timer.Stop()
			}
			close(w.work)
		}
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop is a blocking Shutdown.
func (p *Pool[T]) Stop() { _ = p.Shutdown(context.Background()) }

// newThread creates a thread, starts its reuse loop, and parks it.
// Overflow threads (live count past a positive target) get a one-shot
// eviction timer. Caller must hold p.mu.
func (p *Pool[T]) newThread() {
	w := &thread[T]{
		id:   uuid.New(),
		work: make(chan Task[T]),
	}
	p.wg.Add(1)
	go p.runThread(w)
	p.idle.push(w)
	p.live++
	p.metrics.IncCreated()
	if p.threads > 0 && p.live > p.threads && p.idleLifetime > 0 {
		p.scheduleEviction(w)
	}
}

// runThread is the reuse loop: run a task, park, wait for the next one.
// The loop ends when the work channel is closed or the pool shuts down
// while the thread is busy.
func (p *Pool[T]) runThread(w *thread[T]) {
	defer func() {
		p.mu.Lock()
		p.live--
		p.mu.Unlock()
		p.wg.Done()
	}()
	for task := range w.work {
		p.runTask(w, task)
		if !p.park(w) {
			return
		}
	}
}

func (p *Pool[T]) runTask(w *thread[T], task Task[T]) {
	defer func() {
		if r := recover(); r != nil {
			lg.FromContext(task.Ctx).Error("task panicked",
				lg.Any("panic", r),
				lg.String("thread", w.id.String()),
			)
			p.reportPanic(r)
		}
		if task.CleanupFunc != nil {
			task.CleanupFunc()
		}
		p.metrics.IncExecuted()
	}()
	task.Fn(task.Payload)
}

// park re-registers w in the idle set. Returns false when the pool has
// been closed, in which case the caller must exit its loop.
func (p *Pool[T]) park(w *thread[T]) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.closed:
		return false
	default:
	}
	p.idle.push(w)
	return true
}

// IdleThreads reports how many threads are currently parked.
func (p *Pool[T]) IdleThreads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle.len()
}

// LiveThreads reports how many threads exist, parked or running.
func (p *Pool[T]) LiveThreads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// Package threadpool provides a recycling pool of reusable execution
// threads for fire-and-forget task execution.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Amortize thread start-up cost under high spawn volume
//   - Keep the idle set hot by handing threads out in LIFO order
//   - Bound idle capacity with a time-based eviction policy
//   - Never queue work: a spawn either reuses a thread or creates one
//
// Rather than starting a fresh goroutine per task, the pool keeps a
// set of parked threads and resumes one of them with each task.
//
// Recycling model
//
// Every thread runs a persistent reuse loop: wait for a task, run its
// callback to completion, park back in the idle set, wait again.
// A thread handed out by Spawn is never present in the idle set while
// its callback runs, so no task can be double-dispatched.
//
// Spawn is fire-and-forget. It returns once the task has been handed
// off to a thread; callers cannot wait for, cancel, or observe the
// callback. When the idle set is empty, Spawn creates exactly one
// thread before proceeding, so it never blocks on another caller's
// callback.
//
// Sizing and eviction
//
// The pool is constructed with a signed target thread count.
// Its absolute value is the warm floor: that many threads are started
// up front and are never evicted. With a positive target, threads
// created past it under load are overflow threads and carry a one-shot
// timer; a thread still unused when its timer catches it idle is
// removed from the idle set and terminated. A negative target selects
// dynamic mode: the pool still grows one thread at a time under load,
// but never schedules eviction for the extra threads.
//
// The timer is armed once, at creation, and is deliberately not reset
// on reuse. When it fires while the thread is mid-callback, eviction
// is retried with backoff until the timer catches the thread parked.
// An idle lifetime of zero disables eviction entirely.
//
// Eviction removes threads by identity, never by position in the idle
// set, so reordering between timer arm and timer fire cannot reclaim
// the wrong thread.
//
// Error handling
//
// Callback panics are recovered inside the reuse loop and reported via
// the optional OnPanic handler. The thread always re-registers itself
// afterwards, so a failing callback cannot silently shrink the pool.
// Failed callbacks are never retried.
//
// Shutdown
//
// Shutdown rejects further spawns, terminates every parked thread
// through its reuse loop, and waits for in-flight callbacks to finish.
// Threads busy at shutdown exit as soon as their callback returns.
package threadpool

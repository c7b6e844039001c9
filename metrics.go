package threadpool

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the pool to report thread
// lifecycle and spawn activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking
type MetricsPolicy interface {

	// IncSpawned increments the spawned tasks counter.
	IncSpawned()

	// IncExecuted increments the executed tasks counter.
	IncExecuted()

	// IncCreated increments the created threads counter.
	IncCreated()

	// IncEvicted increments the evicted threads counter.
	IncEvicted()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// spawned is the total number of tasks handed to a thread.
	spawned atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// executed is the total number of tasks run to completion.
	executed atomic.Uint64

	// created is the total number of threads ever started.
	created atomic.Uint64

	// evicted is the total number of overflow threads reclaimed.
	evicted atomic.Uint64
}

// Spawned returns the total number of spawned tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Spawned() uint64 {
	return m.spawned.Load()
}

// Executed returns the total number of executed tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Created returns the total number of threads ever started.
func (m *AtomicMetrics) Created() uint64 {
	return m.created.Load()
}

// Evicted returns the total number of evicted threads.
func (m *AtomicMetrics) Evicted() uint64 {
	return m.evicted.Load()
}

// IncSpawned increments the spawned tasks counter by one.
func (m *AtomicMetrics) IncSpawned() {
	m.spawned.Add(1)
}

// IncExecuted increments the executed tasks counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

// IncCreated increments the created threads counter by one.
func (m *AtomicMetrics) IncCreated() {
	m.created.Add(1)
}

// IncEvicted increments the evicted threads counter by one.
func (m *AtomicMetrics) IncEvicted() {
	m.evicted.Add(1)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncSpawned()  {}
func (m *NoopMetrics) IncExecuted() {}
func (m *NoopMetrics) IncCreated()  {}
func (m *NoopMetrics) IncEvicted()  {}

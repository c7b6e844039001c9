package threadpool

import (
	"time"
)

// Options configure a thread Pool.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Threads is the signed target thread count. Its absolute value is
	// the number of threads started at construction. A positive value
	// marks growth past it as overflow, subject to eviction; a negative
	// value selects dynamic mode, where the pool keeps abs(Threads)
	// warm and never schedules eviction for extra threads.
	Threads int

	// IdleLifetime is how long an overflow thread may sit unused
	// before the pool reclaims it.
	IdleLifetime time.Duration

	// DisableEviction keeps every thread alive for the lifetime of the
	// pool, regardless of IdleLifetime.
	DisableEviction bool

	// Metrics receives pool activity counters. Defaults to NoopMetrics.
	Metrics MetricsPolicy

	// OnPanic, when set, receives the recovered value of a callback
	// panic.
	OnPanic func(recovered any)
}

func (o *Options) FillDefaults() {
	if o.Threads == 0 {
		o.Threads = DefaultThreads
	}
	if o.DisableEviction {
		o.IdleLifetime = 0
	} else if o.IdleLifetime <= 0 {
		o.IdleLifetime = DefaultIdleLifetime
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}

package threadpool

import (
	"context"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// scheduleEviction arms the one-shot overflow timer for w. The timer
// fires once, idleLifetime after creation; it is not reset when the
// thread is reused in between. Caller must hold p.mu.
func (p *Pool[T]) scheduleEviction(w *thread[T]) {
	bo := boff.New(p.idleLifetime, evictBackoffCap*p.idleLifetime, time.Now().UnixNano())
	w.timer = time.AfterFunc(p.idleLifetime, func() {
		p.evict(w, bo.Next)
	})
}

// evict removes w from the idle set by identity and terminates it.
// When the timer catches w mid-callback the eviction is retried with
// backoff rather than removing whichever thread happens to occupy the
// slot; w is reclaimed the first time the timer finds it parked.
func (p *Pool[T]) evict(w *thread[T], next func() time.Duration) {
	p.mu.Lock()
	select {
	case <-p.closed:
		p.mu.Unlock()
		return
	default:
	}
	if !p.idle.remove(w) {
		// busy at expiry
		p.mu.Unlock()
		w.timer.Reset(next())
		return
	}
	p.mu.Unlock()

	close(w.work)
	p.metrics.IncEvicted()
	lg.FromContext(context.Background()).Info("idle thread evicted",
		lg.String("thread", w.id.String()),
	)
}

package threadpool

// reportPanic reports a value recovered from a callback panic.
//
// Panics never terminate the thread that ran the callback; the thread
// re-registers itself regardless of the callback's outcome, so a
// failing callback cannot leak pool capacity.
// The recovery site logs the panic; if no handler is registered the
// value is otherwise dropped.
func (p *Pool[T]) reportPanic(recovered any) {
	if p.OnPanic != nil {
		p.OnPanic(recovered)
	}
}

package cothread

// reaperLoop is the trampoline context every thread's uc_link points to
// (spec.md section 4.6). A thread cannot free its own resources while still
// running on top of them, so once a thread's entry function returns —
// after calling Exit, as its contract requires — control falls through
// into this dedicated context instead.
//
// Each iteration: the thread that just fell through (still referenced by
// rt.current) is reaped, then the next ready thread is dispatched, or, if
// none remain, the host context is restored and Run returns.
func (rt *Runtime) reaperLoop() {
	for {
		rt.reaperCtx.park()

		finished := rt.current
		finished.state = StateDestroyed
		rt.traceDispatch("reap", finished.id, "thread reaped")

		rt.dispatchNext(nil)
	}
}

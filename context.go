package cothread

// execContext is this runtime's stand-in for a machine context (spec.md
// section 4.1): instead of saved registers and a stack pointer, it is an
// unbuffered channel gating a single parked goroutine. Resuming a context
// means sending on resume; a context saves itself by blocking on a receive
// from its own channel. Because the channel is unbuffered, at most one side
// of any swap is ever runnable, which is what gives the runtime its
// single-flow-of-control guarantee without any locks.
type execContext struct {
	resume chan struct{}
}

func newExecContext() *execContext {
	return &execContext{resume: make(chan struct{})}
}

// park blocks the calling goroutine until another execContext swaps into
// this one. It is the "save" half of save/make/swap: by the time park
// returns, this context has effectively been "restored".
func (c *execContext) park() {
	<-c.resume
}

// swapContext atomically (from the scheduler's point of view) transfers
// control from the caller to to, then blocks until something swaps back
// into from. from may be nil, e.g. when the reaper trampoline dispatches the
// next thread and there is nothing to park (the reaper loop itself will be
// resumed on its own channel on its next iteration).
func swapContext(from, to *execContext) {
	to.resume <- struct{}{}
	if from != nil {
		from.park()
	}
}

// resumeContext unparks to without parking the caller. It is used for the
// one-way transfer out of a thread's entry function into the reaper: once a
// thread has fallen through to the reaper, nothing will ever resume it
// again, so its goroutine simply returns instead of parking forever (a
// real ucontext's stack would be freed by the reaper either way; a Go
// goroutine can't be freed from the outside, so it must exit on its own).
func resumeContext(to *execContext) {
	to.resume <- struct{}{}
}

// makeContext is the "make" primitive: it initializes ctx so that resuming
// it starts executing entry(arg), and, upon return from entry, transfers to
// link — the thread's uc_link equivalent, always the reaper in this
// runtime. The goroutine backing ctx is spawned immediately but does no
// work until first resumed.
func makeContext(link *execContext, entry func(arg any), arg any) *execContext {
	ctx := newExecContext()
	go func() {
		ctx.park()
		entry(arg)
		// entry is required to call Exit as its last action; falling out of
		// it here transfers to the reaper, exactly like a ucontext whose
		// uc_link is the reaper. This goroutine then returns: ctx will never
		// be resumed again.
		resumeContext(link)
	}()
	return ctx
}

package cothread

// Runtime is the process-wide state described by spec.md section 3: the
// current-thread pointer, the ready queue, the host context, and the
// reaper. A Runtime is not safe for concurrent use from multiple
// goroutines — by design, exactly one flow of control (host, thread, or
// reaper) is ever active at a time, so nothing in the runtime needs a lock.
type Runtime struct {
	opts *runtimeOptions

	initialized bool
	nextID      uint64

	ready   []*Thread
	current *Thread

	hostCtx   *execContext
	reaperCtx *execContext
}

// New constructs a Runtime. It does nothing until Run is called.
func New(opts ...Option) *Runtime {
	return &Runtime{opts: resolveOptions(opts)}
}

// defaultRuntime backs the package-level convenience functions, matching
// spec.md's framing of run/create/yield/... as a single, process-wide
// library surface (section 6). Tests and hosts that want isolation should
// construct their own Runtime with New instead.
var defaultRuntime = New()

// Run bootstraps the default Runtime. See (*Runtime).Run.
func Run(entry func(arg any), arg any) { defaultRuntime.Run(entry, arg) }

// Create creates a thread on the default Runtime. See (*Runtime).Create.
func Create(entry func(arg any), arg any) *Thread { return defaultRuntime.Create(entry, arg) }

// Yield yields on the default Runtime. See (*Runtime).Yield.
func Yield() { defaultRuntime.Yield() }

// Exit exits the current thread on the default Runtime. See (*Runtime).Exit.
func Exit() { defaultRuntime.Exit() }

// Join joins on the default Runtime. See (*Runtime).Join.
func Join(h *Thread) error { return defaultRuntime.Join(h) }

// JoinAll joins all children on the default Runtime. See (*Runtime).JoinAll.
func JoinAll() { defaultRuntime.JoinAll() }

// SemInit creates a semaphore on the default Runtime. See (*Runtime).SemInit.
func SemInit(initial int) (*Semaphore, error) { return defaultRuntime.SemInit(initial) }

func (rt *Runtime) nextThreadID() uint64 {
	rt.nextID++
	return rt.nextID
}

// Run bootstraps the runtime: it builds the reaper, creates the first
// thread from entry/arg, and dispatches it. It returns only once the ready
// queue has drained and no thread remains current — i.e. once every thread,
// transitively, has exited. A second call to Run on the same Runtime is a
// no-op, matching spec.md's MyThreadInit guard.
func (rt *Runtime) Run(entry func(arg any), arg any) {
	if rt.initialized {
		return
	}
	rt.initialized = true

	rt.reaperCtx = newExecContext()
	rt.hostCtx = newExecContext()
	go rt.reaperLoop()

	rt.Create(entry, arg)
	rt.dispatchNext(rt.hostCtx)
}

// Create allocates a Thread, links it to the calling thread (if any) as a
// child, initializes its context so it will start at entry(arg) with the
// reaper as its link, and appends it to the ready queue. It never suspends
// the caller (spec.md section 4.2).
func (rt *Runtime) Create(entry func(arg any), arg any) *Thread {
	t := newThread(rt, rt.current, rt.opts.stackSize)
	t.ctx = makeContext(rt.reaperCtx, entry, arg)
	t.state = StateReady
	rt.ready = append(rt.ready, t)
	rt.traceDispatch("create", t.id, "thread created")
	return t
}

// Yield suspends the calling thread so another ready thread may run. If the
// ready queue is empty it is a no-op — the calling thread simply continues.
// Otherwise the caller is appended to the tail of the ready queue and the
// head of the queue becomes the new current thread (spec.md section 4.3).
func (rt *Runtime) Yield() {
	t := rt.current
	if t == nil {
		panic(errNoCurrentThread)
	}
	if len(rt.ready) == 0 {
		return
	}
	t.state = StateReady
	rt.ready = append(rt.ready, t)
	rt.traceDispatch("yield", t.id, "thread yielded")
	rt.dispatchNext(t.ctx)
}

// Exit performs the parent/child bookkeeping required when the calling
// thread terminates (spec.md section 4.3): it removes itself from its
// parent's children, unblocks the parent if it was joined on this thread
// and has no other outstanding blockers, and detaches all of its own
// children. It does not itself switch context — the entry function is
// expected to return immediately afterwards, which (via makeContext) falls
// through into the reaper. Must be the last call made by a thread; behavior
// after is undefined.
func (rt *Runtime) Exit() {
	t := rt.current
	if t == nil {
		panic(errNoCurrentThread)
	}

	if t.parent != nil {
		delete(t.parent.children, t)
		if _, blocked := t.parent.blockers[t]; blocked {
			delete(t.parent.blockers, t)
			if len(t.parent.blockers) == 0 {
				t.parent.state = StateReady
				rt.ready = append(rt.ready, t.parent)
			}
		}
	}

	t.detachChildren()
	t.state = StateZombie
	rt.traceDispatch("exit", t.id, "thread exited")
}

// dispatchNext is the scheduler's single entry/exit point for transferring
// control away from prevCtx (spec.md's _popNextThread / dispatch_next): if
// the ready queue is empty it restores the host context, ending Run;
// otherwise it pops the head of the ready queue, makes it current, and
// swaps into it.
func (rt *Runtime) dispatchNext(prevCtx *execContext) {
	if len(rt.ready) == 0 {
		rt.current = nil
		swapContext(prevCtx, rt.hostCtx)
		return
	}

	next := rt.ready[0]
	rt.ready = rt.ready[1:]
	next.state = StateRunning
	rt.current = next
	rt.traceDispatch("dispatch", next.id, "thread dispatched")
	swapContext(prevCtx, next.ctx)
}

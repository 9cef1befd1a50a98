package cothread

// Join blocks the calling thread until h exits, provided h is currently a
// live child of the caller. If h is not a child — either it never was, or
// it already exited and was reaped — Join returns ErrNotChild immediately
// without blocking (spec.md section 4.4).
func (rt *Runtime) Join(h *Thread) error {
	t := rt.current
	if t == nil {
		panic(errNoCurrentThread)
	}

	if !h.isChildOf(t) {
		err := ErrNotChild
		rt.warnContractViolation("Join", err)
		return err
	}

	t.blockers[h] = struct{}{}
	t.state = StateBlocked
	rt.traceDispatch("join", t.id, "thread blocked on join")
	rt.dispatchNext(t.ctx)
	return nil
}

// JoinAll blocks the calling thread until every child present at the call
// site has exited. It returns immediately if the caller currently has no
// children. Children created after JoinAll begins blocking are not awaited
// — the blocker set is a snapshot taken once, at the call (spec.md section
// 4.4).
func (rt *Runtime) JoinAll() {
	t := rt.current
	if t == nil {
		panic(errNoCurrentThread)
	}

	if len(t.children) == 0 {
		return
	}

	for c := range t.children {
		t.blockers[c] = struct{}{}
	}
	t.state = StateBlocked
	rt.traceDispatch("join-all", t.id, "thread blocked on join-all")
	rt.dispatchNext(t.ctx)
}

package cothread

// Semaphore is a counting semaphore with a FIFO wait queue (spec.md section
// 4.5). The invariant value > 0 ⇒ waiters is empty always holds: Signal on
// an empty waiter queue increments value; Signal with waiters present wakes
// the head waiter and leaves value unchanged, so the woken thread proceeds
// as though it had itself successfully decremented. This avoids the
// lost-wakeup race between a concurrent Wait and Signal that a naive
// decrement-on-wake implementation would have — moot in a single-flow-of-
// control scheduler, but kept because it is what makes wake order exactly
// FIFO regardless of how many Signals arrive while waiters are queued.
type Semaphore struct {
	rt      *Runtime
	value   int
	waiters []*Thread
}

// SemInit allocates a Semaphore with the given initial value. It returns
// ErrNegativeInitialValue if initial is negative, matching spec.md's
// MySemaphoreInit returning null in that case.
func (rt *Runtime) SemInit(initial int) (*Semaphore, error) {
	if initial < 0 {
		err := ErrNegativeInitialValue
		rt.warnContractViolation("SemInit", err)
		return nil, err
	}
	return &Semaphore{rt: rt, value: initial}, nil
}

// Wait decrements the semaphore's value if it is positive, returning
// immediately. Otherwise it enqueues the calling thread on the semaphore's
// wait queue and blocks until a matching Signal wakes it; it does not
// decrement value upon waking, per the Signal rule above.
func (s *Semaphore) Wait() {
	rt := s.rt
	t := rt.current
	if t == nil {
		panic(errNoCurrentThread)
	}

	if s.value > 0 {
		s.value--
		return
	}

	s.waiters = append(s.waiters, t)
	t.state = StateBlocked
	rt.traceDispatch("sem-wait", t.id, "thread blocked on semaphore")
	rt.dispatchNext(t.ctx)
}

// Signal wakes the longest-waiting blocked thread if the wait queue is
// non-empty, leaving value unchanged; otherwise it increments value. The
// signaling thread is never preempted — it continues running.
func (s *Semaphore) Signal() {
	if len(s.waiters) == 0 {
		s.value++
		return
	}

	w := s.waiters[0]
	s.waiters = s.waiters[1:]
	w.state = StateReady
	s.rt.ready = append(s.rt.ready, w)
	s.rt.traceDispatch("sem-signal", w.id, "thread woken by semaphore")
}

// Destroy frees the semaphore, returning ErrWaitersPresent if any thread is
// still blocked in its wait queue.
func (s *Semaphore) Destroy() error {
	if len(s.waiters) != 0 {
		err := ErrWaitersPresent
		s.rt.warnContractViolation("Destroy", err)
		return err
	}
	s.rt = nil
	return nil
}

// Value returns the semaphore's current count, for diagnostics and tests.
func (s *Semaphore) Value() int { return s.value }

package cothread

// traceDispatch logs a scheduling transition at Trace level, subject to the
// Runtime's rate limiter (if any). category identifies the kind of event
// for rate-limiting purposes, e.g. "yield", "dispatch", "sem-wait".
func (rt *Runtime) traceDispatch(category string, threadID uint64, msg string) {
	if rt.opts.logger == nil {
		return
	}
	if rt.opts.rateLimiter != nil {
		if _, ok := rt.opts.rateLimiter.Allow(category); !ok {
			return
		}
	}
	rt.opts.logger.Trace().Uint64("thread", threadID).Str("event", category).Log(msg)
}

// warnContractViolation logs a recoverable contract violation (spec.md
// section 7.1) at Warning level: a non-child passed to Join, a negative
// SemInit value, or a Destroy with waiters present.
func (rt *Runtime) warnContractViolation(op string, err error) {
	if rt.opts.logger == nil {
		return
	}
	rt.opts.logger.Warning().Str("op", op).Err(err).Log("contract violation")
}

package cothread

import (
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// defaultStackSize matches spec's recommended fixed per-thread stack budget.
const defaultStackSize = 8 * 1024

// runtimeOptions holds configuration resolved once, at New.
type runtimeOptions struct {
	stackSize   int
	logger      *logiface.Logger[*stumpy.Event]
	rateLimiter *catrate.Limiter
}

// Option configures a Runtime constructed via New.
type Option interface {
	applyRuntime(*runtimeOptions)
}

type optionFunc func(*runtimeOptions)

func (f optionFunc) applyRuntime(o *runtimeOptions) { f(o) }

// WithStackSize overrides the per-thread stack budget recorded against every
// Thread created by the Runtime. It has no effect on actual goroutine stack
// growth (Go manages that automatically); it exists so the runtime's
// bookkeeping (Thread.StackSize) reflects the size a host configured, the same way
// the original ucontext-based implementation sized malloc'd stacks.
func WithStackSize(n int) Option {
	return optionFunc(func(o *runtimeOptions) {
		if n > 0 {
			o.stackSize = n
		}
	})
}

// WithLogger attaches a structured logger used to trace scheduling events
// (thread creation, dispatch, block, reap) at Trace level, and
// contract violations (non-child Join, negative SemInit, Destroy with
// waiters) at Warning. A Runtime constructed without this option logs
// nothing.
func WithLogger(logger *logiface.Logger[*stumpy.Event]) Option {
	return optionFunc(func(o *runtimeOptions) {
		o.logger = logger
	})
}

// WithRateLimiter gates the volume of Trace-level dispatch logging so a
// tight producer/consumer loop hammering a semaphore thousands of times
// doesn't flood the log. It never throttles scheduling itself, only the
// logging calls describing it. If no limiter is given (or a nil one), a
// Runtime that has a logger uses defaultRateLimiter instead; a Runtime
// without a logger has no limiter, since it logs nothing.
func WithRateLimiter(limiter *catrate.Limiter) Option {
	return optionFunc(func(o *runtimeOptions) {
		o.rateLimiter = limiter
	})
}

// defaultRateLimiter returns the limiter used when a Runtime is constructed
// with logging enabled but no explicit WithRateLimiter: at most 20
// dispatch-trace lines per 100ms per event category.
func defaultRateLimiter() *catrate.Limiter {
	return catrate.NewLimiter(map[time.Duration]int{
		100 * time.Millisecond: 20,
	})
}

func resolveOptions(opts []Option) *runtimeOptions {
	o := &runtimeOptions{stackSize: defaultStackSize}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyRuntime(o)
	}
	if o.logger != nil && o.rateLimiter == nil {
		o.rateLimiter = defaultRateLimiter()
	}
	return o
}

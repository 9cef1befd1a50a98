// Package cothread implements a user-space cooperative threading runtime:
// counting semaphores, parent/child join semantics, and a scheduler built on
// a channel-rendezvous stand-in for machine-context switching.
//
// # Architecture
//
// A [Runtime] owns a ready queue and a current-thread pointer. [Runtime.Run]
// bootstraps the runtime, creates the first thread, and dispatches it; it
// returns only once every thread has run to completion. Threads yield,
// block on a join, or block on a [Semaphore]; the scheduler never preempts
// them. All scheduling is strictly FIFO: a yielding thread runs no earlier
// than anything already queued, and a semaphore wakes waiters in arrival
// order.
//
// # Execution contexts
//
// Go offers no portable way for user code to save and restore raw machine
// registers and swap a stack pointer, so [Runtime] does not do that. Instead
// every [Thread] is backed by a goroutine parked on an unbuffered channel;
// "swapping contexts" means unparking one goroutine and parking the caller.
// Exactly one goroutine is ever unparked at a time, so the runtime behaves
// as a single flow of control and needs no locks of its own.
//
// A dedicated reaper goroutine is the link context for every thread: when a
// thread's entry function returns, control falls through into the reaper,
// which frees that thread's bookkeeping and dispatches the next ready
// thread. A thread can never free its own resources while still "running"
// on top of them, hence the separate reaper.
//
// # Usage
//
//	rt := cothread.New(cothread.WithStackSize(16 * 1024))
//
//	rt.Run(func(arg any) {
//	    child := rt.Create(func(arg any) {
//	        fmt.Println("child running")
//	        rt.Exit()
//	    }, nil)
//	    rt.Join(child)
//	    rt.Exit()
//	}, nil)
package cothread

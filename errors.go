package cothread

import "errors"

var (
	// ErrNotChild is returned by Join when the handle passed is not a
	// current child of the calling thread — either it never was, or it
	// already exited and was reaped. Join never blocks in this case.
	ErrNotChild = errors.New("cothread: handle is not a child of the calling thread")

	// ErrNegativeInitialValue is returned by Runtime.SemInit when the
	// requested initial value is negative.
	ErrNegativeInitialValue = errors.New("cothread: semaphore initial value must be non-negative")

	// ErrWaitersPresent is returned by Semaphore.Destroy when one or more
	// threads are still blocked in the semaphore's wait queue.
	ErrWaitersPresent = errors.New("cothread: semaphore has waiting threads")
)

// errNoCurrentThread is used internally to construct the panic message for
// scheduling calls made with no thread running (e.g. before Run has
// dispatched a first thread). Spec leaves this undefined; panicking makes
// the misuse loud rather than corrupting scheduler state silently.
const errNoCurrentThread = "cothread: called with no thread currently running"

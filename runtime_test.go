package cothread_test

import (
	"testing"

	"github.com/cothread/cothread"
	"github.com/stretchr/testify/require"
)

// TestRun_BootstrapAndExit covers spec scenario 1: a Run whose entry does
// nothing but Exit returns cleanly.
func TestRun_BootstrapAndExit(t *testing.T) {
	rt := cothread.New()
	ran := false
	rt.Run(func(arg any) {
		ran = true
		rt.Exit()
	}, nil)
	require.True(t, ran)
}

// TestRun_Idempotent covers spec.md's "second call is a no-op" guarantee.
func TestRun_Idempotent(t *testing.T) {
	rt := cothread.New()
	calls := 0
	entry := func(arg any) {
		calls++
		rt.Exit()
	}
	rt.Run(entry, nil)
	rt.Run(entry, nil)
	require.Equal(t, 1, calls)
}

// TestYield_Fairness covers spec scenario 2: strict FIFO over the ready
// queue. Parent creates children A, B, C; each records its id then exits.
// Expected observed order: A, B, C, all before the parent resumes from
// JoinAll.
func TestYield_Fairness(t *testing.T) {
	rt := cothread.New()
	var order []string

	rt.Run(func(arg any) {
		for _, name := range []string{"A", "B", "C"} {
			name := name
			rt.Create(func(arg any) {
				order = append(order, name)
				rt.Exit()
			}, nil)
		}
		rt.JoinAll()
		order = append(order, "parent")
		rt.Exit()
	}, nil)

	require.Equal(t, []string{"A", "B", "C", "parent"}, order)
}

// TestYield_NoOpWhenReadyQueueEmpty covers spec.md section 4.3: Yield with
// an empty ready queue does not suspend the caller.
func TestYield_NoOpWhenReadyQueueEmpty(t *testing.T) {
	rt := cothread.New()
	reached := false
	rt.Run(func(arg any) {
		rt.Yield()
		reached = true
		rt.Exit()
	}, nil)
	require.True(t, reached)
}

// TestCreate_DoesNotPreemptCreator covers spec.md section 4.2: creating a
// thread does not reorder the creator's execution.
func TestCreate_DoesNotPreemptCreator(t *testing.T) {
	rt := cothread.New()
	var order []string

	rt.Run(func(arg any) {
		rt.Create(func(arg any) {
			order = append(order, "child")
			rt.Exit()
		}, nil)
		order = append(order, "creator-continues")
		rt.JoinAll()
		rt.Exit()
	}, nil)

	require.Equal(t, []string{"creator-continues", "child"}, order)
}

// TestDetachedChild_RunsToCompletion covers the documented Open Question:
// a child whose parent has already exited is detached (parent set to nil)
// but still runs to completion and is reaped normally.
func TestDetachedChild_RunsToCompletion(t *testing.T) {
	rt := cothread.New()
	childRan := false

	rt.Run(func(arg any) {
		rt.Create(func(arg any) {
			rt.Yield() // let the parent exit first
			childRan = true
			rt.Exit()
		}, nil)
		rt.Exit() // parent exits without joining; child is detached
	}, nil)

	require.True(t, childRan)
}

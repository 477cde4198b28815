/*
Package future provides a minimal task/future facility: submit a
function for concurrent execution, get back a handle, and block on the
result later.

The split between Submit and Wait is the point of the package.  The
parallel sequence operations in the parent module rely on submitting
every task eagerly before awaiting any result; an implementation that
blocked in Submit would silently degrade parallel mapping to sequential
execution.
*/
package future

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/semaphore"
)

// PanicError captures a panic raised inside a submitted function.  It
// is returned by Task.Wait, so a worker's failure surfaces to whoever
// awaits that task, and to nobody else.
type PanicError struct {
	// Value is the value the function panicked with.
	Value any

	// Stack is the worker goroutine's stack at the point of the panic.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Pool bounds how many submitted tasks execute at once.  A nil *Pool,
// or one created with size 0, applies no bound at all.
//
// The bound gates execution, not submission: a task over the limit
// waits for a slot on its own goroutine, so Submit never blocks.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool returns a Pool that lets at most size tasks run concurrently.
// A size of 0 means unbounded.
func NewPool(size uint) *Pool {
	if size == 0 {
		return nil
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}
}

func (p *Pool) acquire() {
	if p == nil {
		return
	}
	// Acquire cannot fail with a background context.
	_ = p.sem.Acquire(context.Background(), 1)
}

func (p *Pool) release() {
	if p != nil {
		p.sem.Release(1)
	}
}

// Task is a handle to a concurrently-running computation.  Its result
// slot is written exactly once, by the worker, and becomes readable
// through Wait when the computation finishes.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Submit starts f on a new goroutine and returns a Task for its result.
// A nil pool runs the task with no concurrency bound.
//
// Submit is a package-level function rather than a Pool method due to
// limitations of Golang's generic syntax.
func Submit[T any](p *Pool, f func() T) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()

		p.acquire()
		defer p.release()

		t.val = f()
	}()

	return t
}

// Go runs f with no concurrency bound; it is shorthand for Submit with
// a nil pool.
func Go[T any](f func() T) *Task[T] {
	return Submit(nil, f)
}

// Wait blocks until the task has finished, then returns its result, or
// a *PanicError if the task's function panicked.  Wait may be called
// any number of times, from any goroutine.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.val, t.err
}

// Done returns a channel that is closed when the task has finished.  It
// allows a Task to be selected on alongside other channels.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

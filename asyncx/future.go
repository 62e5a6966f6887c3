package asyncx

import (
	"context"
	"sync"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
// A Future settles exactly once, either with a value or with an error, and
// every waiter observes the same settlement.
type Future[T any] struct {
	result T
	err    error
	once   sync.Once
	done   chan struct{}
}

// newFuture returns an unsettled future
func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// settle records the outcome; subsequent calls are no-ops
func (f *Future[T]) settle(result T, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Resolved returns a future that is already settled with the given value
func Resolved[T any](result T) *Future[T] {
	f := newFuture[T]()
	f.settle(result, nil)
	return f
}

// Rejected returns a future that is already settled with the given error
func Rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.settle(zero, err)
	return f
}

// Go runs fn in its own goroutine and returns a future for its result.
// If ctx is already done when Go is called, the future settles immediately
// with the context error and fn never runs.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()

	go func() {
		// Early exit prevents running fn against a pre-canceled context
		select {
		case <-ctx.Done():
			var zero T
			f.settle(zero, contextError(ctx))
			return
		default:
		}

		result, err := fn(ctx)
		f.settle(result, err)
	}()

	return f
}

// Then returns a future that settles with fn applied to f's result.
// If f settles with an error, the error passes through unmodified and fn
// never runs.
func Then[T any, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	out := newFuture[U]()

	go func() {
		<-f.done
		if f.err != nil {
			var zero U
			out.settle(zero, f.err)
			return
		}
		out.settle(fn(f.result))
	}()

	return out
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. A context expiry reports an asyncx timeout or cancellation error;
// the future itself stays unsettled from the caller's point of view and can
// be awaited again.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, contextError(ctx)
	}
}

// AwaitTimeout blocks until the future settles or the timeout elapses
func (f *Future[T]) AwaitTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrorRegistry.New(ErrTimeout)
	}
}

// IsComplete reports whether the future has settled, without blocking
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the future settles
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func contextError(ctx context.Context) error {
	if ctx.Err() == context.Canceled {
		return ErrorRegistry.NewWithCause(ErrCanceled, ctx.Err())
	}
	return ErrorRegistry.NewWithCause(ErrTimeout, ctx.Err())
}

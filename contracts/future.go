package contracts

import (
	"context"
	"sync"
)

// Future is the completion of an asynchronous handler invocation. It is
// completed exactly once; duplicate or late completions are ignored.
// Waiters observe completion through the Done channel, which is closed when
// the value or error is set.
type Future[T any] struct {
	ch    chan struct{}
	value T
	err   error

	once sync.Once
	mu   sync.Mutex
}

// NewFuture allocates an incomplete future. The producer completes it with
// Complete or Fail.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{ch: make(chan struct{})}
}

// ResolvedFuture returns a future already completed with value.
func ResolvedFuture[T any](value T) *Future[T] {
	f := NewFuture[T]()
	f.Complete(value)
	return f
}

// FailedFuture returns a future already completed with err.
func FailedFuture[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Fail(err)
	return f
}

// GoFuture runs fn on its own goroutine and returns a future completed with
// fn's result.
func GoFuture[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		v, err := fn()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()
	return f
}

// Complete completes the future successfully. Only the first completion,
// whether Complete or Fail, takes effect.
func (f *Future[T]) Complete(value T) {
	f.once.Do(func() {
		f.mu.Lock()
		f.value = value
		f.mu.Unlock()
		close(f.ch)
	})
}

// Fail completes the future with an error. Only the first completion,
// whether Complete or Fail, takes effect.
func (f *Future[T]) Fail(err error) {
	f.once.Do(func() {
		f.mu.Lock()
		f.err = err
		f.mu.Unlock()
		close(f.ch)
	})
}

// Done returns a channel closed when the future is completed, for
// select-based waiting.
func (f *Future[T]) Done() <-chan struct{} {
	return f.ch
}

// Wait blocks until the future completes or ctx is done. If ctx wins, the
// future stays pending and Wait returns ctx.Err().
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.ch:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Poll returns the result without blocking. The boolean reports whether the
// future has completed; if false, the value and error are zero.
func (f *Future[T]) Poll() (T, error, bool) {
	select {
	case <-f.ch:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

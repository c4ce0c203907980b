// Package task models cooperative units of work on top of goroutines.
//
// A unit of work is started with Go and delivers exactly one Result through a
// buffered channel, which is then closed. Waiting on that channel with Await
// suspends only the awaiting goroutine; other units keep running.
//
// The package offers no cancellation of its own. Contexts passed in by the
// caller are honoured at Await and Sleep points only.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTaskClosed is returned by Await when a result channel closes empty.
var ErrTaskClosed = errors.New("task result channel closed")

// Result represents the outcome of one unit of work.
type Result[T any] struct {
	Value T
	Err   error
}

// ResultFrom packs a (value, error) pair.
func ResultFrom[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// Go runs fn in its own goroutine and returns the channel its Result will be
// delivered on. A panic in fn is converted into an error result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	done := make(chan Result[T], 1)
	ready := make(chan struct{})
	go func() {
		defer close(done)
		close(ready)

		var res Result[T]
		func() {
			defer func() {
				if r := recover(); r != nil {
					res = Result[T]{Err: fmt.Errorf("panic in task: %v", r)}
				}
			}()
			res = ResultFrom(fn(ctx))
		}()
		done <- res
	}()
	<-ready

	return done
}

// Done returns an already-completed unit of work.
func Done[T any](v T, err error) <-chan Result[T] {
	done := make(chan Result[T], 1)
	done <- ResultFrom(v, err)
	close(done)
	return done
}

// Await suspends the caller until ch delivers, or until ctx ends.
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	var zero T
	select {
	case res, ok := <-ch:
		if !ok {
			return zero, ErrTaskClosed
		}
		return res.Value, res.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Sleep suspends the calling unit of work for d. It returns early with
// ctx.Err() only if ctx ends first. Non-positive durations return at once.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Package decorators wraps functions with timing, retry, memoization and
// pause policies.
//
// Every decorator comes in two execution models that share the same policy:
//
//   - Blocking: a Func runs on the calling goroutine and any delay (retry
//     wait, pause) blocks that goroutine for its full length.
//   - Cooperative: an AsyncFunc runs as a unit of work (see package task).
//     Delays suspend only that unit, so other units keep running while it
//     waits. The caller resumes it with task.Await.
//
// A decorated function keeps the signature of the function it wraps, so it
// is a drop-in replacement:
//
//	divide := decorators.Retry(divideFn, decorators.RetryConfig{
//	    MaxAttempts: 3,
//	    Delay:       500 * time.Millisecond,
//	    On:          []error{ErrDivideByZero},
//	})
//	q, err := divide(Pair{10, 2})
//
// Failures are plain Go errors. Decorators pass them through unchanged,
// except Retry, which inspects them against its retryable set.
//
// Diagnostics are fixed-format lines written to each decorator's Out writer
// (stdout when nil). They are a side channel, never part of the result.
//
// Nothing here offers cancellation. In the cooperative model, the context the
// caller passes in is honoured at suspension points only.
package decorators

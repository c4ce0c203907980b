package decorators

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrNoFailureCaptured reports a retry loop that ended without a successful
// call and without a captured failure. It only happens when no attempt is
// allowed at all, and never wraps an error of the target.
var ErrNoFailureCaptured = errors.New("retry finished without capturing a failure")

// RetryConfig configures Retry and RetryAsync.
type RetryConfig struct {
	// MaxAttempts bounds the number of calls, first one included. Zero means
	// 3. Negative values make every call fail with ErrNoFailureCaptured.
	MaxAttempts int
	// Delay is the constant wait between two attempts. Zero means 1s, a
	// negative value retries at once.
	Delay time.Duration
	// On lists retryable failures, matched with errors.Is. When both On and
	// OnFunc are empty every failure is retryable.
	On []error
	// OnFunc reports additional retryable failures.
	OnFunc func(error) bool
	Out    io.Writer
}

// DefaultRetryConfig retries every failure three times, one second apart.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		Delay:       time.Second,
	}
}

func (c RetryConfig) normalized() RetryConfig {
	def := DefaultRetryConfig()
	if c.MaxAttempts == 0 {
		c.MaxAttempts = def.MaxAttempts
	}
	switch {
	case c.Delay == 0:
		c.Delay = def.Delay
	case c.Delay < 0:
		c.Delay = 0
	}
	return c
}

func (c RetryConfig) retryable(err error) bool {
	if len(c.On) == 0 && c.OnFunc == nil {
		return true
	}
	for _, target := range c.On {
		if errors.Is(err, target) {
			return true
		}
	}
	return c.OnFunc != nil && c.OnFunc(err)
}

// backoff is built per invocation: the attempt counter inside WithMaxRetries
// belongs to one call only.
func (c RetryConfig) backoff() retry.Backoff {
	constant := retry.BackoffFunc(func() (time.Duration, bool) {
		return c.Delay, false
	})
	return retry.WithMaxRetries(uint64(c.MaxAttempts-1), constant)
}

// Retry calls fn again after a retryable failure, waiting Delay between
// attempts, for at most MaxAttempts calls. Each retryable failure writes
//
//	Attempt <i>/<n> failed: <error>
//
// After the last attempt the error of that attempt is returned as is. A
// failure outside the retryable set is returned at once, without waiting.
// The wait blocks the calling goroutine.
func Retry[A, R any](fn Func[A, R], cfg RetryConfig) Func[A, R] {
	cfg = cfg.normalized()
	return Wrap(fn, func(ctx context.Context, call Func[A, R], args A) (R, error) {
		return retrying(ctx, cfg, call, args)
	})
}

// RetryAsync is Retry for the cooperative model: the wait between attempts
// suspends only the current unit of work, and ends early if the caller's
// context does, in which case the context error is delivered.
func RetryAsync[A, R any](fn AsyncFunc[A, R], cfg RetryConfig) AsyncFunc[A, R] {
	cfg = cfg.normalized()
	return WrapAsync(fn, func(ctx context.Context, call Func[A, R], args A) (R, error) {
		return retrying(ctx, cfg, call, args)
	})
}

func retrying[A, R any](ctx context.Context, cfg RetryConfig, call Func[A, R], args A) (R, error) {
	var result R
	if cfg.MaxAttempts < 1 {
		return result, fmt.Errorf("%w: max attempts %d", ErrNoFailureCaptured, cfg.MaxAttempts)
	}

	attempt := 0
	err := retry.Do(ctx, cfg.backoff(), func(ctx context.Context) error {
		attempt++
		res, err := call(args)
		if err == nil {
			result = res
			return nil
		}
		// the caller gave up while the unit was awaited
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return err
		}
		if !cfg.retryable(err) {
			return err
		}
		emitLine(cfg.Out, "Attempt %d/%d failed: %v", attempt, cfg.MaxAttempts, err)
		return retry.RetryableError(err)
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return result, nil
}

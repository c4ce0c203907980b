package decorators

import (
	"context"
	"fmt"
	"io"
	"time"
)

// PauseConfig configures WithPause and WithPauseAsync.
type PauseConfig struct {
	// Delay is the wait after each successful call. Zero means 2s, a
	// negative value disables the wait.
	Delay   time.Duration
	Message string    // default: "Pausing for <delay> to avoid timeouts..."
	Out     io.Writer // default: os.Stdout
}

// DefaultPauseConfig pauses two seconds after each call.
func DefaultPauseConfig() PauseConfig {
	return PauseConfig{Delay: 2 * time.Second}
}

func (c PauseConfig) normalized() PauseConfig {
	switch {
	case c.Delay == 0:
		c.Delay = DefaultPauseConfig().Delay
	case c.Delay < 0:
		c.Delay = 0
	}
	return c
}

func (c PauseConfig) message() string {
	if c.Message != "" {
		return c.Message
	}
	return fmt.Sprintf("Pausing for %s to avoid timeouts...", c.Delay)
}

// WithPause waits Delay after every successful call before returning its
// result, to space out calls against a rate-limited resource. A failing call
// returns at once, without message or pause. The wait blocks the calling
// goroutine.
func WithPause[A, R any](fn Func[A, R], cfg PauseConfig) Func[A, R] {
	cfg = cfg.normalized()
	return Wrap(fn, func(ctx context.Context, call Func[A, R], args A) (R, error) {
		return paused(ctx, cfg, blockingSleep, call, args)
	})
}

// WithPauseAsync is WithPause for the cooperative model: the pause suspends
// only the current unit of work. If the caller's context ends during the
// pause, the captured result is delivered early.
func WithPauseAsync[A, R any](fn AsyncFunc[A, R], cfg PauseConfig) AsyncFunc[A, R] {
	cfg = cfg.normalized()
	return WrapAsync(fn, func(ctx context.Context, call Func[A, R], args A) (R, error) {
		return paused(ctx, cfg, cooperativeSleep, call, args)
	})
}

func paused[A, R any](ctx context.Context, cfg PauseConfig, sleep sleeper, call Func[A, R], args A) (R, error) {
	res, err := call(args)
	if err != nil {
		return res, err
	}
	emitLine(cfg.Out, "%s", cfg.message())
	_ = sleep(ctx, cfg.Delay)
	return res, nil
}

package decorators

import (
	"context"
	"io"
	"time"

	"github.com/on-the-ground/toolbelt/shared/format"
)

const (
	DefaultTimeitPrefix      = "[TIMEIT]"
	DefaultAsyncTimeitPrefix = "[ASYNC TIMEIT]"
)

// TimeitConfig configures Timeit and TimeitAsync.
type TimeitConfig struct {
	Prefix string    // default: DefaultTimeitPrefix / DefaultAsyncTimeitPrefix
	Name   string    // default: FuncName of the target
	Out    io.Writer // default: os.Stdout
}

// Timeit measures the wall-clock duration of each successful call and writes
//
//	<prefix> <name> executed in <duration>
//
// A failing call writes nothing; its error is returned unchanged.
func Timeit[A, R any](fn Func[A, R], cfg TimeitConfig) Func[A, R] {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultTimeitPrefix
	}
	name := nameOr(cfg.Name, fn)
	return Wrap(fn, func(ctx context.Context, call Func[A, R], args A) (R, error) {
		return timed(cfg, name, call, args)
	})
}

// TimeitAsync is Timeit for the cooperative model. The reported duration
// includes any time the unit spent suspended.
func TimeitAsync[A, R any](fn AsyncFunc[A, R], cfg TimeitConfig) AsyncFunc[A, R] {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultAsyncTimeitPrefix
	}
	name := nameOr(cfg.Name, fn)
	return WrapAsync(fn, func(ctx context.Context, call Func[A, R], args A) (R, error) {
		return timed(cfg, name, call, args)
	})
}

func timed[A, R any](cfg TimeitConfig, name string, call Func[A, R], args A) (R, error) {
	start := time.Now()
	res, err := call(args)
	if err != nil {
		return res, err
	}
	emitLine(cfg.Out, "%s %s executed in %s", cfg.Prefix, name, format.Duration(time.Since(start)))
	return res, nil
}

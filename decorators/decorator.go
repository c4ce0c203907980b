package decorators

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/on-the-ground/toolbelt/task"
)

// Func is a blocking callable. A is the argument tuple: a single value, a
// struct, or an Args call record.
type Func[A, R any] func(A) (R, error)

// AsyncFunc is a callable that runs as a unit of cooperative work and
// delivers exactly one result on the returned channel.
type AsyncFunc[A, R any] func(context.Context, A) <-chan task.Result[R]

// Decorator transforms a Func into a Func with the same signature.
type Decorator[A, R any] func(Func[A, R]) Func[A, R]

// AsyncDecorator transforms an AsyncFunc into an AsyncFunc with the same
// signature.
type AsyncDecorator[A, R any] func(AsyncFunc[A, R]) AsyncFunc[A, R]

// Around is policy logic run in place of a call. It receives the context of
// the current unit of work, the target as a blocking call and the arguments.
// Returning call(args) unchanged is a transparent pass-through.
type Around[A, R any] func(ctx context.Context, call Func[A, R], args A) (R, error)

// Wrap builds a Func that runs around in place of fn. The blocking model has
// no unit of work, so around always sees context.Background().
func Wrap[A, R any](fn Func[A, R], around Around[A, R]) Func[A, R] {
	return func(args A) (R, error) {
		return around(context.Background(), fn, args)
	}
}

// WrapAsync builds an AsyncFunc that runs around in a new unit of work.
// Inside around, the target is awaited like a blocking call.
func WrapAsync[A, R any](fn AsyncFunc[A, R], around Around[A, R]) AsyncFunc[A, R] {
	return func(ctx context.Context, args A) <-chan task.Result[R] {
		return task.Go(ctx, func(ctx context.Context) (R, error) {
			call := func(a A) (R, error) {
				return task.Await(ctx, fn(ctx, a))
			}
			return around(ctx, call, args)
		})
	}
}

// Chain applies decorators to fn. The first decorator is the outermost.
func Chain[A, R any](fn Func[A, R], decorators ...Decorator[A, R]) Func[A, R] {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// ChainAsync is Chain for the cooperative model.
func ChainAsync[A, R any](fn AsyncFunc[A, R], decorators ...AsyncDecorator[A, R]) AsyncFunc[A, R] {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// Lift adapts a function that cannot fail.
func Lift[A, R any](fn func(A) R) Func[A, R] {
	return func(args A) (R, error) {
		return fn(args), nil
	}
}

// Async adapts a blocking Func to the cooperative model by running each call
// in its own unit of work.
func Async[A, R any](fn Func[A, R]) AsyncFunc[A, R] {
	return func(ctx context.Context, args A) <-chan task.Result[R] {
		return task.Go(ctx, func(context.Context) (R, error) {
			return fn(args)
		})
	}
}

// FuncName resolves the symbol name of fn with its package path stripped,
// e.g. "divide" or "TestRetry.func1". Decorator wrappers resolve to the
// wrapper's own closure, so stacked decorators should set a Name explicitly.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<unknown>"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func nameOr(name string, fn any) string {
	if name != "" {
		return name
	}
	return FuncName(fn)
}

func outOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// emitLine writes one diagnostic line. Write errors are dropped: the output
// is a side channel and must not turn a successful call into a failure.
func emitLine(w io.Writer, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_, _ = io.WriteString(outOrStdout(w), line)
}

// sleeper is the suspension primitive that distinguishes the two models.
type sleeper func(ctx context.Context, d time.Duration) error

func blockingSleep(_ context.Context, d time.Duration) error {
	time.Sleep(d)
	return nil
}

var cooperativeSleep sleeper = task.Sleep

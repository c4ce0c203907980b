package decorators

import (
	"context"

	"go.uber.org/zap"

	"github.com/on-the-ground/toolbelt/decorators/internal/callkey"
	"github.com/on-the-ground/toolbelt/decorators/internal/memo"
	"github.com/on-the-ground/toolbelt/task"
)

// Memoize caches the results of fn by argument tuple for the lifetime of the
// returned Func. A repeated call with identical arguments returns the cached
// result without calling fn. Failures are never cached, so the next identical
// call computes again.
//
// Keys come from the canonical encoding of the arguments: a Keyer supplies
// its own, anything else is encoded from its type and Go-syntax value. The
// arguments must encode stably and reflect equality. Funcs, channels, and
// pointers whose target may change do not make meaningful keys; that is the
// caller's precondition and is not checked.
//
// The cache is never evicted. Concurrent first calls with the same arguments
// are not coalesced: each computes and the last one stored wins.
//
// Hits and misses are traced at debug level on the global zap logger.
func Memoize[A, R any](fn Func[A, R]) Func[A, R] {
	table := memo.NewTable[R]()
	return func(args A) (R, error) {
		k := callkey.Of(args)
		if v, ok := table.Load(k); ok {
			traceMemo("memo hit", table, k)
			return v, nil
		}
		traceMemo("memo miss", table, k)
		v, err := fn(args)
		if err != nil {
			return v, err
		}
		table.Store(k, v)
		return v, nil
	}
}

// MemoizeAsync is Memoize for the cooperative model. A hit completes without
// starting a new unit of work.
func MemoizeAsync[A, R any](fn AsyncFunc[A, R]) AsyncFunc[A, R] {
	table := memo.NewTable[R]()
	return func(ctx context.Context, args A) <-chan task.Result[R] {
		k := callkey.Of(args)
		if v, ok := table.Load(k); ok {
			traceMemo("memo hit", table, k)
			return task.Done(v, nil)
		}
		traceMemo("memo miss", table, k)
		return task.Go(ctx, func(ctx context.Context) (R, error) {
			v, err := task.Await(ctx, fn(ctx, args))
			if err != nil {
				return v, err
			}
			table.Store(k, v)
			return v, nil
		})
	}
}

func traceMemo[R any](msg string, table *memo.Table[R], k callkey.Key) {
	if ce := zap.L().Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("table", table.ID),
			zap.Uint64("key", k.Sum),
			zap.Int("size", table.Len()),
		)
	}
}

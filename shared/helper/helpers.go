package helper

import (
	"fmt"
	"io"
	"iter"
	"os"
	"time"
)

// Chunks groups seq into slices of size elements. The last slice may be
// shorter. Each yielded slice is freshly allocated and safe to retain.
// Panics if size is not positive.
func Chunks[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		panic(fmt.Sprintf("helper.Chunks: size must be positive, got %d", size))
	}
	return func(yield func([]T) bool) {
		chunk := make([]T, 0, size)
		for v := range seq {
			chunk = append(chunk, v)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// Timer starts timing a block and returns the func that ends it:
//
//	defer helper.Timer("load", nil)()
//
// The stop func writes "[name] finished in 1.23s" to out (os.Stdout if nil).
func Timer(name string, out io.Writer) func() {
	if out == nil {
		out = os.Stdout
	}
	start := time.Now()
	return func() {
		fmt.Fprintf(out, "[%s] finished in %.2fs\n", name, time.Since(start).Seconds())
	}
}

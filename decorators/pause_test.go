package decorators_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/on-the-ground/toolbelt/decorators"
	"github.com/on-the-ground/toolbelt/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPauseConfig(t *testing.T) {
	assert.Equal(t, 2*time.Second, decorators.DefaultPauseConfig().Delay)
}

func TestWithPause(t *testing.T) {
	for _, d := range []time.Duration{10 * time.Millisecond, 100 * time.Millisecond} {
		t.Run(d.String(), func(t *testing.T) {
			var out bytes.Buffer
			called := 0
			fn := decorators.WithPause(func(n int) (int, error) {
				called++
				return 42, nil
			}, decorators.PauseConfig{Delay: d, Out: &out})

			start := time.Now()
			v, err := fn(0)
			elapsed := time.Since(start)

			require.NoError(t, err)
			assert.Equal(t, 42, v)
			assert.Equal(t, 1, called)
			assert.GreaterOrEqual(t, elapsed, d)
			assert.Equal(t, "Pausing for "+d.String()+" to avoid timeouts...\n", out.String())
		})
	}
}

func TestWithPause_NegativeDelaySkipsWait(t *testing.T) {
	var out bytes.Buffer
	fn := decorators.WithPause(decorators.Lift(func(n int) int { return n }),
		decorators.PauseConfig{Delay: -1, Out: &out})

	start := time.Now()
	_, err := fn(1)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, "Pausing for 0s to avoid timeouts...\n", out.String())
}

func TestWithPauseAsync_ZeroDelayUsesDefault(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	fn := decorators.WithPauseAsync(decorators.Async(decorators.Lift(func(n int) int { return n })),
		decorators.PauseConfig{Out: &out})

	v, err := task.Await(context.Background(), fn(ctx, 7))
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, "Pausing for 2s to avoid timeouts...\n", out.String())
}

func TestWithPause_CustomMessage(t *testing.T) {
	var out bytes.Buffer
	fn := decorators.WithPause(decorators.Lift(strings.ToLower), decorators.PauseConfig{
		Delay:   time.Millisecond,
		Message: "cooling down",
		Out:     &out,
	})

	v, err := fn("ABC")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Equal(t, "cooling down\n", out.String())
}

func TestWithPause_FailureSkipsPause(t *testing.T) {
	var out bytes.Buffer
	fn := decorators.WithPause(divide, decorators.PauseConfig{Delay: time.Second, Out: &out})

	start := time.Now()
	_, err := fn(pair{1, 0})

	assert.ErrorIs(t, err, errDivideByZero)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Empty(t, out.String())
}

func TestWithPauseAsync(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	fn := decorators.WithPauseAsync(decorators.Async(func(n int) (int, error) {
		return 99, nil
	}), decorators.PauseConfig{Delay: 100 * time.Millisecond, Out: &out})

	start := time.Now()
	v, err := task.Await(ctx, fn(ctx, 0))
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	assert.Contains(t, out.String(), "Pausing for 100ms")
}

func TestWithPauseAsync_UnitsPauseConcurrently(t *testing.T) {
	ctx := context.Background()
	fn := decorators.WithPauseAsync(decorators.Async(decorators.Lift(func(n int) int { return n })),
		decorators.PauseConfig{Delay: 100 * time.Millisecond, Message: "pause", Out: &syncBuffer{}})

	start := time.Now()
	chs := make([]<-chan task.Result[int], 0, 5)
	for i := 0; i < 5; i++ {
		chs = append(chs, fn(ctx, i))
	}
	for i, ch := range chs {
		v, err := task.Await(ctx, ch)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 400*time.Millisecond)
}

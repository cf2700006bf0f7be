package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/pkg/logger"
)

func TestWorker_RunsSubmittedTasks(t *testing.T) {
	w := NewWorker(10, logger.NewNop())
	w.Start(2)

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, w.Submit(Task{Handler: func(ctx context.Context) error {
			done.Add(1)
			return nil
		}}))
	}
	w.Stop()

	assert.Equal(t, int32(5), done.Load())
}

func TestWorker_RetriesUntilSuccess(t *testing.T) {
	w := NewWorker(1, logger.NewNop())
	w.backoff = time.Millisecond
	w.Start(1)

	var attempts atomic.Int32
	require.NoError(t, w.Submit(Task{
		RetryMax: 3,
		Handler: func(ctx context.Context) error {
			if attempts.Add(1) < 3 {
				return errors.New("smtp unavailable")
			}
			return nil
		},
	}))
	w.Stop()

	assert.Equal(t, int32(3), attempts.Load())
}

func TestWorker_RecoversFromPanic(t *testing.T) {
	w := NewWorker(2, logger.NewNop())
	w.Start(1)

	var ran atomic.Bool
	require.NoError(t, w.Submit(Task{Handler: func(ctx context.Context) error { panic("boom") }}))
	require.NoError(t, w.Submit(Task{Handler: func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}}))
	w.Stop()

	assert.True(t, ran.Load())
}

func TestWorker_QueueFullAndStopped(t *testing.T) {
	w := NewWorker(1, logger.NewNop())

	noop := Task{Handler: func(ctx context.Context) error { return nil }}
	require.NoError(t, w.Submit(noop))
	assert.ErrorIs(t, w.Submit(noop), ErrQueueFull)

	w.Start(1)
	w.Stop()
	assert.ErrorIs(t, w.Submit(noop), ErrStopped)
	w.Stop()
}

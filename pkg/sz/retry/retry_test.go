package retry

import (
	"context"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

func fastOpts(maxTries uint) []backoff.RetryOption {
	return []backoff.RetryOption{
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Millisecond)),
		backoff.WithMaxTries(maxTries),
	}
}

func TestDoRetriesTransientErrors(t *testing.T) {
	attempts := 0
	got, err := Do(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", szerror.FromCode(1019, szerror.ComponentEngine, "Datastore deadlock, retry the operation")
		}
		return "done", nil
	}, fastOpts(5)...)
	require.NoError(t, err)
	assert.Equal(t, "done", got)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnNonRetryableError(t *testing.T) {
	attempts := 0
	notFound := szerror.FromCode(33, szerror.ComponentEngine, "Unknown record ID")
	_, err := Do(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		return "", notFound
	}, fastOpts(5)...)
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, notFound)
	assert.True(t, szerror.IsNotFound(err))
}

func TestDoExhaustsTryBudget(t *testing.T) {
	attempts := 0
	_, err := Do(context.Background(), func(ctx context.Context) (int, error) {
		attempts++
		return 0, szerror.FromCode(8410, szerror.ComponentEngine, "Temporary datastore contention")
	}, fastOpts(4)...)
	require.Error(t, err)
	assert.Equal(t, 4, attempts)
	assert.True(t, szerror.IsRetryable(err))
}

func TestDoVoidStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	attempts := 0
	err := DoVoid(ctx, func(ctx context.Context) error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return szerror.FromCode(1007, szerror.ComponentEngine, "Datastore connection lost")
	}, fastOpts(100)...)
	require.Error(t, err)
	assert.Less(t, attempts, 100)
}

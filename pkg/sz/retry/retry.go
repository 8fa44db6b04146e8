// Package retry reruns engine operations that fail transiently.
//
// The native library reports conditions worth retrying, a dropped
// datastore connection for example, with distinct error codes, and
// szerror classifies all of them under Retryable. Do reruns an
// operation while its error carries that classification and returns
// every other error immediately.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// Defaults for Do. Pass backoff options to override them.
const (
	DefaultMaxTries        = 8
	DefaultInitialInterval = 100 * time.Millisecond
	DefaultMaxInterval     = 5 * time.Second
)

// An Operation produces a value or fails. Do reruns the whole operation,
// so it must be safe to repeat.
type Operation[T any] func(ctx context.Context) (T, error)

// Do runs op, rerunning it with exponential backoff while it fails with
// a retryable error. It returns the first success, the first
// non-retryable error unchanged, or the last error when ctx ends or the
// try budget is spent.
func Do[T any](ctx context.Context, op Operation[T], opts ...backoff.RetryOption) (T, error) {
	merged := make([]backoff.RetryOption, 0, len(opts)+2)
	merged = append(merged,
		backoff.WithBackOff(defaultBackOff()),
		backoff.WithMaxTries(DefaultMaxTries),
	)
	merged = append(merged, opts...)

	return backoff.Retry(ctx, func() (T, error) {
		v, err := op(ctx)
		if err != nil && !szerror.IsRetryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, merged...)
}

// DoVoid is Do for operations that return only an error.
func DoVoid(ctx context.Context, op func(ctx context.Context) error, opts ...backoff.RetryOption) error {
	_, err := Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, opts...)
	return err
}

func defaultBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = DefaultInitialInterval
	b.MaxInterval = DefaultMaxInterval
	return b
}

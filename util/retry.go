package util

import (
	"context"
	"fmt"
	"time"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/log"
)

// DoWithRetry runs the action until it succeeds, up to maxRetries additional times, sleeping for
// sleepBetweenRetries between attempts. An action that fails with a FatalError is not retried.
// When every attempt fails, the result is a MaxRetriesExceeded error wrapping the last failure.
func DoWithRetry(ctx context.Context, actionDescription string, maxRetries int, sleepBetweenRetries time.Duration, logger log.Logger, action func(ctx context.Context) error) error {
	var err error

	for i := 0; i <= maxRetries; i++ {
		logger.Debug(actionDescription)

		if err = action(ctx); err == nil {
			return nil
		}

		var fatalErr FatalError
		if ok := errors.As(err, &fatalErr); ok {
			return err
		}

		if ctx.Err() != nil {
			logger.Debugf("%s returned an error: %s.", actionDescription, err.Error())

			return errors.New(ctx.Err())
		}

		if i == maxRetries {
			break
		}

		logger.Warnf("%s returned an error: %s. Retry %d of %d. Sleeping for %s and will try again.", actionDescription, err.Error(), i+1, maxRetries, sleepBetweenRetries)

		select {
		case <-time.After(sleepBetweenRetries): // Try again
		case <-ctx.Done():
			return errors.New(ctx.Err())
		}
	}

	return MaxRetriesExceeded{Description: actionDescription, MaxRetries: maxRetries, Err: err}
}

// MaxRetriesExceeded is an error that occurs when the maximum amount of retries is exceeded.
type MaxRetriesExceeded struct {
	Err         error
	Description string
	MaxRetries  int
}

func (err MaxRetriesExceeded) Error() string {
	return fmt.Sprintf("'%s' unsuccessful after %d retries: %v", err.Description, err.MaxRetries, err.Err)
}

func (err MaxRetriesExceeded) Unwrap() error {
	return err.Err
}

// FatalError is error interface for cases that should not be retried.
type FatalError struct {
	Underlying error
}

func (err FatalError) Error() string {
	return err.Underlying.Error()
}

func (err FatalError) Unwrap() error {
	return err.Underlying
}

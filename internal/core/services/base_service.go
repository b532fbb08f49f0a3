package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acculab/vpledger/internal/apperrors"
)

// retryOnConflict runs fn, retrying while it reports a retryable write
// conflict. It sleeps backoff between attempts, doubling each time, and
// respects context cancellation. Exhausting every attempt surfaces as a
// dependency failure carrying the last conflict.
func retryOnConflict(ctx context.Context, attempts int, backoff time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", apperrors.ErrDependency, ctx.Err())
		case <-time.After(backoff * (1 << i)):
		}
	}
	return fmt.Errorf("%w: conflict retries exhausted: %v", apperrors.ErrDependency, err)
}

package util_test

import (
	"context"
	"errors"
	"fmt"
	"media-share-server/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	calls := 0

	err := util.Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("таймаут сети")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	transient := errors.New("таймаут сети")

	err := util.Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}

func TestRetry_PermanentErrorShortCircuits(t *testing.T) {
	calls := 0
	notFound := errors.New("не найдено")

	err := util.Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return notFound
	}, notFound)

	assert.ErrorIs(t, err, notFound)
	// постоянная ошибка не ретраится
	assert.Equal(t, 1, calls)
}

func TestRetry_WrappedPermanentError(t *testing.T) {
	calls := 0
	notFound := errors.New("не найдено")

	err := util.Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return fmt.Errorf("контекст операции: %w", notFound)
	}, notFound)

	assert.ErrorIs(t, err, notFound)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := util.Retry(ctx, 3, 10*time.Millisecond, func() error {
		calls++
		return errors.New("таймаут сети")
	})

	assert.ErrorIs(t, err, context.Canceled)
	// первая попытка выполняется до проверки контекста
	assert.Equal(t, 1, calls)
}

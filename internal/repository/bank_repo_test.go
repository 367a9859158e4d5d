package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_TransientErrorIsRetried(t *testing.T) {
	transient := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return transient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_GivesUpAfterThreeAttempts(t *testing.T) {
	transient := errors.New("write: broken pipe")

	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return transient
	})

	require.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ConstraintViolationSurfacesExactlyOnce(t *testing.T) {
	// A *pq.Error means the statement reached the server; a duplicate-key
	// violation must never be re-executed.
	pqErr := &pq.Error{
		Code:    "23505",
		Message: `duplicate key value violates unique constraint "uk_banks_bank_code"`,
	}

	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return pqErr
	})

	require.Error(t, err)
	var got *pq.Error
	require.ErrorAs(t, err, &got)
	assert.Equal(t, pq.ErrorCode("23505"), got.Code)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_CancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transient := errors.New("read: connection reset by peer")

	calls := 0
	err := withRetry(ctx, func() error {
		calls++
		return transient
	})

	require.ErrorIs(t, err, transient)
	assert.Equal(t, 1, calls)
}

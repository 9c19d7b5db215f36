package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(tries uint) Config {
	return Config{
		MaxTries:     tries,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestDoWithResult_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := DoWithResult(context.Background(), fastConfig(5), "flaky", func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection refused")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_GivesUpAfterMaxTries(t *testing.T) {
	calls := 0
	cause := errors.New("connection refused")

	_, err := DoWithResult(context.Background(), fastConfig(3), "postgres_connect", func() (int, error) {
		calls++
		return 0, cause
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "postgres_connect failed after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_PermanentErrorStopsImmediately(t *testing.T) {
	calls := 0
	cause := errors.New("invalid DATABASE_URL")

	_, err := DoWithResult(context.Background(), fastConfig(5), "parse", func() (int, error) {
		calls++
		return 0, Permanent(cause)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DoWithResult(ctx, StartupConfig(), "cancelled", func() (int, error) {
		return 0, errors.New("unreachable")
	})

	assert.Error(t, err)
}

func TestStartupConfig(t *testing.T) {
	cfg := StartupConfig()
	assert.Greater(t, cfg.MaxTries, DefaultConfig().MaxTries)
	assert.Equal(t, 10*time.Second, cfg.MaxDelay)
}

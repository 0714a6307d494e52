package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"gatehouse/config"
	mockUsecase "gatehouse/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSweeper(t *testing.T, interval time.Duration) (*sessionSweeper, *mockUsecase.MockSessionUsecase) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	cfg := &config.Config{
		Session: &config.SessionConfig{SweepInterval: interval},
	}

	delivery, err := NewSessionSweeper(SweeperParams{
		Cfg:      cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions: sessions,
	})
	require.NoError(t, err)

	sweeper, ok := delivery.(*sessionSweeper)
	require.True(t, ok)

	return sweeper, sessions
}

func TestSessionSweeper_SweepsOnTick(t *testing.T) {
	sweeper, sessions := createTestSweeper(t, 10*time.Millisecond)

	var sweeps atomic.Int64
	sessions.EXPECT().
		SweepExpired(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			sweeps.Add(1)

			return 3, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sweeper.Serve(ctx)
	}()

	assert.Eventually(t, func() bool {
		return sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestSessionSweeper_KeepsRunningAfterFailure(t *testing.T) {
	sweeper, sessions := createTestSweeper(t, 10*time.Millisecond)

	var sweeps atomic.Int64
	sessions.EXPECT().
		SweepExpired(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			if sweeps.Add(1) == 1 {
				return 0, errors.New("connection refused")
			}

			return 0, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sweeper.Serve(ctx)
	}()

	// The loop survives the failed sweep and ticks again.
	assert.Eventually(t, func() bool {
		return sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

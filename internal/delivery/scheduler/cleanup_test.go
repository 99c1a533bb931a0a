package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rentauth/config"
	mockUsecase "rentauth/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCleanupScheduler_SweepsUntilStopped(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	swept := make(chan struct{}, 10)

	accountUC.EXPECT().CleanupExpiredTokens(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}

			return 2, nil
		})

	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Cleanup: &config.CleanupConfig{Enabled: true, Interval: 10 * time.Millisecond}}
	s := NewCleanupScheduler(CleanupParams{Lc: lc, Cfg: cfg, AccountUC: accountUC, Logger: discardLogger()})

	lc.RequireStart()
	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("cleanup did not run")
		}
	}

	lc.RequireStop()
	require.NoError(t, <-served)
}

func TestCleanupScheduler_ErrorDoesNotStopLoop(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	calls := make(chan struct{}, 10)

	accountUC.EXPECT().CleanupExpiredTokens(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return 0, errors.New("db down")
		})

	s := newCleanupScheduler(&config.CleanupConfig{Enabled: true, Interval: 5 * time.Millisecond}, accountUC, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("cleanup was not retried")
		}
	}

	cancel()
	require.NoError(t, <-served)
}

func TestCleanupScheduler_Disabled(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	s := newCleanupScheduler(&config.CleanupConfig{Enabled: false}, accountUC, discardLogger())

	require.NoError(t, s.Serve(context.Background()))
	require.NoError(t, s.shutdown(context.Background()))
}

func TestNewCleanupScheduler_Defaults(t *testing.T) {
	s := newCleanupScheduler(nil, nil, discardLogger())
	assert.False(t, s.enabled)
	assert.Equal(t, config.DefaultCleanupInterval, s.interval)

	s = newCleanupScheduler(&config.CleanupConfig{Enabled: true, Interval: -time.Second}, nil, discardLogger())
	assert.True(t, s.enabled)
	assert.Equal(t, config.DefaultCleanupInterval, s.interval)
}

// Package scheduler runs periodic maintenance jobs as deliveries.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rentauth/config"
	"rentauth/internal/delivery"
	"rentauth/internal/domain/lifecycle"
	"rentauth/internal/usecase"
	"rentauth/internal/util"

	"go.uber.org/fx"
)

// cleanupScheduler sweeps expired verification and reset tokens.
type cleanupScheduler struct {
	enabled   bool
	interval  time.Duration
	accountUC usecase.AccountUsecase
	logger    *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// CleanupParams holds dependencies for the token cleanup scheduler
type CleanupParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

func NewCleanupScheduler(params CleanupParams) delivery.Delivery {
	s := newCleanupScheduler(params.Cfg.Cleanup, params.AccountUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s
}

func newCleanupScheduler(cfg *config.CleanupConfig, accountUC usecase.AccountUsecase, logger *slog.Logger) *cleanupScheduler {
	s := &cleanupScheduler{
		interval:  config.DefaultCleanupInterval,
		accountUC: accountUC,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	if cfg != nil {
		s.enabled = cfg.Enabled
		if cfg.Interval > 0 {
			s.interval = cfg.Interval
		}
	}

	return s
}

// Serve blocks until the scheduler is stopped or ctx is done.
func (s *cleanupScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("Token cleanup disabled")

		return nil
	}

	s.logger.Info("Starting token cleanup", slog.String("interval", util.FormatDuration(s.interval)))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *cleanupScheduler) sweep(ctx context.Context) {
	start := time.Now()

	cleared, err := s.accountUC.CleanupExpiredTokens(ctx)
	if err != nil {
		// The next tick retries.
		s.logger.Error("Token cleanup failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Token cleanup finished",
		slog.Int64("cleared", cleared),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)
}

func (s *cleanupScheduler) shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
	case <-waitCtx.Done():
		s.logger.Warn("Token cleanup did not stop in time")
	}

	return nil
}

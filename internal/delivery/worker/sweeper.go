// Package worker contains background deliveries that run alongside the
// HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	"gatehouse/internal/delivery"
	"gatehouse/internal/usecase"

	"go.uber.org/fx"
)

// sessionSweeper periodically reclaims expired session rows. Expired
// sessions are already invisible to lookups; the sweeper only keeps the
// table from growing without bound.
type sessionSweeper struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger
}

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// NewSessionSweeper creates the background session sweeper delivery.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	return &sessionSweeper{
		sessions: params.Sessions,
		interval: params.Cfg.Session.SweepInterval,
		logger:   params.Logger,
	}, nil
}

// Serve runs the sweep loop until the context is cancelled. A failed sweep
// is logged and retried on the next tick; it never stops the loop.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session sweeper stopped")

			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("Session sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Session sweep completed", slog.Int64("removed", removed))
}

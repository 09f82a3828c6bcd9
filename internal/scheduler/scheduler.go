package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"grantsync/internal/domain"
	"grantsync/internal/service"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.CycleResult, error)
}

// Scheduler runs sync cycles on a fixed cadence. It shares the single-flight
// syncer with the HTTP trigger, so an overlap simply skips a tick.
type Scheduler struct {
	syncer       Syncer
	interval     time.Duration
	cycleTimeout time.Duration
	logger       *slog.Logger
}

func NewScheduler(syncer Syncer, interval, cycleTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:       syncer,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	if _, err := s.syncer.Sync(cycleCtx); err != nil {
		if errors.Is(err, service.ErrSyncInFlight) {
			s.logger.Info("skipping tick, cycle already in flight")
			return
		}
		s.logger.Error("sync cycle failed", "error", err)
	}
}

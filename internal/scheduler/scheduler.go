package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionCompleter interface {
	CompletePast(ctx context.Context, now time.Time) (int, error)
}

// Scheduler periodically moves classes and PT sessions whose time has passed
// to COMPLETED.
type Scheduler struct {
	scheduleService sessionCompleter
	interval        time.Duration
	logger          logger.Logger
}

func New(
	scheduleService sessionCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		scheduleService: scheduleService,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.scheduleService.CompletePast(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to complete past sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if completed > 0 {
		s.logger.Debug("completion sweep finished",
			logger.Int("completed", completed),
		)
	}
}

// Package scheduler runs the periodic jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"trial-match/internal/core/port"
)

const jobTimeout = 30 * time.Second

// ExpiryCloser closes recruiting campaigns whose end date has passed.
type ExpiryCloser struct {
	campaigns port.CampaignUseCase
	logger    *slog.Logger
}

func NewExpiryCloser(campaigns port.CampaignUseCase, logger *slog.Logger) *ExpiryCloser {
	return &ExpiryCloser{campaigns: campaigns, logger: logger}
}

// Run performs one pass and returns the ids it closed.
func (j *ExpiryCloser) Run(ctx context.Context) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	ids, err := j.campaigns.CloseExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("close expired campaigns: %w", err)
	}
	if len(ids) > 0 {
		j.logger.Info("closed expired campaigns", slog.Int("count", len(ids)), slog.Any("campaign_ids", ids))
	}
	return ids, nil
}

// Scheduler wraps a cron runner whose jobs share the context passed to Run.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	ctx    context.Context
}

func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DiscardLogger),
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		logger: logger,
	}
}

// Add registers fn under spec. It fails on a malformed spec, before anything
// runs.
func (s *Scheduler) Add(name, spec string, fn func(context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		if err := fn(s.ctx); err != nil {
			s.logger.Error("job failed", slog.String("job", name), slog.Any("error", err))
			return
		}
		s.logger.Debug("job done", slog.String("job", name), slog.Duration("took", time.Since(start)))
	})
	return err
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish. Jobs receive ctx.
func (s *Scheduler) Run(ctx context.Context) error {
	s.ctx = ctx
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}

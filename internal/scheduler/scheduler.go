package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/cache"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/config"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	tables *cache.TableCache
	cfg    config.Config
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, tables *cache.TableCache, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		tables: tables,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the cache refresh job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Refresh.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Refresh.CronSchedule, s.refreshReferenceTables)
	if err != nil {
		s.logger.Error("failed to schedule cache refresh", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// refreshReferenceTables reloads the reference tables so field sessions work
// against warm, bounded-stale data between explicit reloads.
func (s *Scheduler) refreshReferenceTables() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.tables.WarmUp(ctx); err != nil {
		s.logger.Warn("reference table refresh incomplete", zap.Error(err))
		return
	}

	s.logger.Info("reference tables refreshed")
}

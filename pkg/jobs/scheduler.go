// Package jobs runs the recurring background work of the API. The only job
// today is the weekly class-generation poll, which fires on an interval and
// relies on the week-anchor check to make repeated runs harmless.
package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TaskFunc is a unit of recurring work.
type TaskFunc func(context.Context) error

// Scheduler invokes a task on a fixed interval from a single goroutine, so
// two runs of the same task never overlap.
type Scheduler struct {
	name     string
	interval time.Duration
	task     TaskFunc
	logger   *zap.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewScheduler builds a scheduler for the given task.
func NewScheduler(name string, interval time.Duration, task TaskFunc, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

// Start launches the scheduler loop. Safe to call once; subsequent calls are
// no-ops. The task also runs once immediately so a restarted instance does
// not wait a full interval to catch up on generation.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.started = true
	s.wg.Add(1)
	go s.loop()
	s.logger.Sugar().Infow("scheduler started", "job", s.name, "interval", s.interval)
}

// Stop cancels the loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
	s.logger.Sugar().Infow("scheduler stopped", "job", s.name)
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	s.run()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run()
		}
	}
}

func (s *Scheduler) run() {
	if err := s.task(s.ctx); err != nil {
		s.logger.Error("scheduled job failed",
			zap.String("job", s.name),
			zap.Error(err),
		)
	}
}

package periodic

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/shared"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeSkipped = "skipped"
)

// Job is one periodic task. A tick that finds the job still running, or held
// by another process, is skipped.
type Job struct {
	Name string
	Run  func(ctx context.Context) error

	running atomic.Bool
}

type Scheduler struct {
	jobs     []*Job
	interval time.Duration
	lockTTL  time.Duration
	locker   Locker
	metrics  shared.Metrics

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewScheduler(jobs []*Job, locker Locker, metrics shared.Metrics, cfg config.JanitorConfig) *Scheduler {
	return &Scheduler{
		jobs:     jobs,
		interval: cfg.Interval,
		lockTTL:  cfg.LockTTL,
		locker:   locker,
		metrics:  metrics,
		stop:     make(chan struct{}),
	}
}

// JanitorJobs exposes the janitor use case as periodic jobs.
func JanitorJobs(janitor commands.JanitorCommands) []*Job {
	return []*Job{
		{
			Name: commands.JobCleanOldReservations,
			Run: func(ctx context.Context) error {
				_, err := janitor.CleanOldReservations(ctx)
				return err
			},
		},
		{
			Name: commands.JobNotifyExists,
			Run:  janitor.NotifyExists,
		},
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
	slog.InfoContext(ctx, "periodic scheduler started",
		slog.Duration("interval", s.interval),
		slog.Int("jobs", len(s.jobs)))
}

// Stop halts the ticker and waits for running jobs.
func (s *Scheduler) Stop() {
	close(s.stop)
	s.wg.Wait()
}

// Tick launches every job that is not already running.
func (s *Scheduler) Tick(ctx context.Context) {
	for _, job := range s.jobs {
		if !job.running.CompareAndSwap(false, true) {
			slog.WarnContext(ctx, "periodic job still running, skipping tick", slog.String("job", job.Name))
			s.metrics.ObserveJanitorRun(job.Name, outcomeSkipped)
			continue
		}
		s.wg.Add(1)
		go func(job *Job) {
			defer s.wg.Done()
			defer job.running.Store(false)
			s.RunJob(ctx, job)
		}(job)
	}
}

// RunJob runs job once under the cross-process lock.
func (s *Scheduler) RunJob(ctx context.Context, job *Job) {
	log := slog.With(slog.String("job", job.Name))

	release, err := s.locker.TryLock(ctx, job.Name, s.lockTTL)
	if err != nil {
		log.ErrorContext(ctx, "periodic job lock failed", slog.String("error", err.Error()))
		s.metrics.ObserveJanitorRun(job.Name, outcomeError)
		return
	}
	if release == nil {
		log.InfoContext(ctx, "periodic job held by another worker")
		s.metrics.ObserveJanitorRun(job.Name, outcomeSkipped)
		return
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.WarnContext(ctx, "periodic job unlock failed", slog.String("error", err.Error()))
		}
	}()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		log.ErrorContext(ctx, "periodic job failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		s.metrics.ObserveJanitorRun(job.Name, outcomeError)
		return
	}
	log.InfoContext(ctx, "periodic job finished", slog.Duration("elapsed", time.Since(start)))
	s.metrics.ObserveJanitorRun(job.Name, outcomeSuccess)
}

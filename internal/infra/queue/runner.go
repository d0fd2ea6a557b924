package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/shared"
)

const (
	baseRetryDelay = 5 * time.Second
	maxRetryDelay  = 10 * time.Minute
)

var ErrUnknownJobKind = errs.New("unknown lease job kind")

// Runner drains the lease job outbox with a fixed number of workers.
type Runner struct {
	uow     shared.UnitOfWork
	leases  commands.LeaseCommands
	metrics shared.Metrics
	clock   clock.Clock
	cfg     config.WorkerConfig

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewRunner(uow shared.UnitOfWork, leases commands.LeaseCommands, metrics shared.Metrics, clk clock.Clock, cfg config.WorkerConfig) *Runner {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Runner{
		uow:     uow,
		leases:  leases,
		metrics: metrics,
		clock:   clk,
		cfg:     cfg,
		stop:    make(chan struct{}),
	}
}

func (r *Runner) Start(ctx context.Context) {
	for i := 0; i < r.cfg.Concurrency; i++ {
		r.wg.Add(1)
		go func(worker int) {
			defer r.wg.Done()
			r.loop(ctx, worker)
		}(i)
	}
	slog.InfoContext(ctx, "lease job runner started", slog.Int("workers", r.cfg.Concurrency))
}

// Stop signals the workers and waits for in-flight jobs to finish.
func (r *Runner) Stop() {
	close(r.stop)
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, worker int) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		case <-timer.C:
		}

		processed, err := r.RunOnce(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "lease job poll failed",
				slog.Int("worker", worker),
				slog.String("error", err.Error()))
		}
		if processed {
			timer.Reset(0)
		} else {
			timer.Reset(r.cfg.PollInterval)
		}
	}
}

// RunOnce claims and processes at most one job. It reports whether a job was claimed.
func (r *Runner) RunOnce(ctx context.Context) (bool, error) {
	var job *shared.LeaseJob
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		job, err = tx.LeaseJobs().Claim(ctx, r.clock.Now(), r.cfg.ClaimTTL)
		return err
	})
	if err != nil {
		return false, errs.Wrap(err, "claiming lease job")
	}
	if job == nil {
		return false, nil
	}

	log := slog.With(
		slog.String("job_id", job.ID.String()),
		slog.String("reservation_id", job.ReservationID.String()),
		slog.Int("attempt", job.Attempts))

	jobErr := r.dispatch(ctx, job)
	now := r.clock.Now()

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		switch {
		case jobErr == nil:
			return tx.LeaseJobs().Complete(ctx, job.ID, now)
		case job.Attempts >= r.cfg.MaxAttempts || errs.Is(jobErr, ErrUnknownJobKind):
			return tx.LeaseJobs().Fail(ctx, job.ID, jobErr.Error(), now)
		default:
			return tx.LeaseJobs().Retry(ctx, job.ID, now.Add(RetryDelay(job.Attempts)), jobErr.Error(), now)
		}
	})
	if err != nil {
		return true, errs.Wrap(err, "recording lease job outcome")
	}

	if jobErr != nil {
		log.ErrorContext(ctx, "lease job failed", slog.String("error", jobErr.Error()))
		r.metrics.ObserveLeaseJob(string(job.Kind), "failed")
	}
	return true, nil
}

func (r *Runner) dispatch(ctx context.Context, job *shared.LeaseJob) error {
	switch job.Kind {
	case shared.LeaseJobCreate:
		return r.leases.CreateLease(ctx, job.ReservationID)
	default:
		return errs.Wrapf(ErrUnknownJobKind, "kind %q", job.Kind)
	}
}

// RetryDelay doubles from baseRetryDelay per attempt, capped at maxRetryDelay.
func RetryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseRetryDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return d
}

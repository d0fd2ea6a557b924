package repository

import (
	"context"
	"time"

	"flavor-reservation/internal/infra"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeaseJobQueries interface {
	EnqueueLeaseJob(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueLeaseJobParams) error
	ClaimLeaseJob(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimLeaseJobParams) (sqlc.LeaseJobs, error)
	CompleteLeaseJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteLeaseJobParams) error
	RetryLeaseJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RetryLeaseJobParams) error
	FailLeaseJob(ctx context.Context, db sqlc.DBTX, arg sqlc.FailLeaseJobParams) error
}

type LeaseJobRepository struct {
	queries LeaseJobQueries
	db      sqlc.DBTX
}

func NewLeaseJobRepository(queries LeaseJobQueries, db sqlc.DBTX) *LeaseJobRepository {
	return &LeaseJobRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LeaseJobRepository) Enqueue(ctx context.Context, job shared.LeaseJob) error {
	err := r.queries.EnqueueLeaseJob(ctx, r.db, sqlc.EnqueueLeaseJobParams{
		ID:            job.ID,
		Kind:          string(job.Kind),
		ReservationID: job.ReservationID,
		RunAt:         pgconv.TimeToPgtype(job.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue lease job", err)
	}
	return nil
}

func (r *LeaseJobRepository) Claim(ctx context.Context, now time.Time, ttl time.Duration) (*shared.LeaseJob, error) {
	row, err := r.queries.ClaimLeaseJob(ctx, r.db, sqlc.ClaimLeaseJobParams{
		ClaimedUntil: pgconv.TimeToPgtype(now.Add(ttl)),
		Now:          pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to claim lease job", err)
	}
	return &shared.LeaseJob{
		ID:            row.ID,
		Kind:          shared.LeaseJobKind(row.Kind),
		ReservationID: row.ReservationID,
		Attempts:      int(row.Attempts),
		RunAt:         pgconv.TimeFromPgtype(row.RunAt),
		LastError:     pgconv.StringPtrFromPgtype(row.LastError),
	}, nil
}

func (r *LeaseJobRepository) Complete(ctx context.Context, id uuid.UUID, now time.Time) error {
	err := r.queries.CompleteLeaseJob(ctx, r.db, sqlc.CompleteLeaseJobParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete lease job", err)
	}
	return nil
}

func (r *LeaseJobRepository) Retry(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string, now time.Time) error {
	err := r.queries.RetryLeaseJob(ctx, r.db, sqlc.RetryLeaseJobParams{
		ID:        id,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.StringToPgtype(lastErr),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule lease job", err)
	}
	return nil
}

func (r *LeaseJobRepository) Fail(ctx context.Context, id uuid.UUID, lastErr string, now time.Time) error {
	err := r.queries.FailLeaseJob(ctx, r.db, sqlc.FailLeaseJobParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(lastErr),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark lease job failed", err)
	}
	return nil
}

//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/infra/repository"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
	"flavor-reservation/internal/usecase/shared"
	repositorymock "flavor-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeaseJobRepository_Claim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	ttl := 5 * time.Minute
	jobID := uuid.New()
	resID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.LeaseJobs
		returnErr  error
		want       *shared.LeaseJob
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: job claimed",
			row: sqlc.LeaseJobs{
				ID:            jobID,
				Kind:          "create_lease",
				ReservationID: resID,
				Attempts:      2,
				RunAt:         pgconv.TimeToPgtype(now),
				LastError:     pgconv.StringToPgtype("timeout"),
			},
			want: &shared.LeaseJob{
				ID:            jobID,
				Kind:          shared.LeaseJobCreate,
				ReservationID: resID,
				Attempts:      2,
				RunAt:         now,
				LastError:     ptr("timeout"),
			},
		},
		{
			name:      "success: nothing due",
			returnErr: pgx.ErrNoRows,
		},
		{
			name:       "error: database error occurs",
			returnErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockLeaseJobQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewLeaseJobRepository(mockQueries, mockDB)

			mockQueries.EXPECT().
				ClaimLeaseJob(ctx, mockDB, sqlc.ClaimLeaseJobParams{
					ClaimedUntil: pgconv.TimeToPgtype(now.Add(ttl)),
					Now:          pgconv.TimeToPgtype(now),
				}).
				Return(tc.row, tc.returnErr)

			job, err := repo.Claim(ctx, now, ttl)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, job)
		})
	}
}

func TestLeaseJobRepository_Transitions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockLeaseJobQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewLeaseJobRepository(mockQueries, mockDB)

	mockQueries.EXPECT().
		EnqueueLeaseJob(ctx, mockDB, sqlc.EnqueueLeaseJobParams{
			ID:            id,
			Kind:          "create_lease",
			ReservationID: id,
			RunAt:         pgconv.TimeToPgtype(now),
		}).
		Return(nil)
	mockQueries.EXPECT().
		RetryLeaseJob(ctx, mockDB, sqlc.RetryLeaseJobParams{
			ID:        id,
			RunAt:     pgconv.TimeToPgtype(now.Add(time.Minute)),
			LastError: pgconv.StringToPgtype("boom"),
			UpdatedAt: pgconv.TimeToPgtype(now),
		}).
		Return(nil)
	mockQueries.EXPECT().
		CompleteLeaseJob(ctx, mockDB, sqlc.CompleteLeaseJobParams{ID: id, UpdatedAt: pgconv.TimeToPgtype(now)}).
		Return(nil)
	mockQueries.EXPECT().
		FailLeaseJob(ctx, mockDB, gomock.Any()).
		Return(errors.New("database connection error"))

	require.NoError(t, repo.Enqueue(ctx, shared.LeaseJob{ID: id, Kind: shared.LeaseJobCreate, ReservationID: id, RunAt: now}))
	require.NoError(t, repo.Retry(ctx, id, now.Add(time.Minute), "boom", now))
	require.NoError(t, repo.Complete(ctx, id, now))

	err := repo.Fail(ctx, id, "boom", now)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestLockRepository_LockFlavor(t *testing.T) {
	ctx := context.Background()
	flavorID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockLockQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewLockRepository(mockQueries, mockDB)

	mockQueries.EXPECT().AcquireFlavorLock(ctx, mockDB, "flavor:"+flavorID.String()).Return(nil)
	require.NoError(t, repo.LockFlavor(ctx, flavorID))

	mockQueries.EXPECT().AcquireFlavorLock(ctx, mockDB, gomock.Any()).Return(errors.New("lock timeout"))
	assert.True(t, infra.IsKind(repo.LockFlavor(ctx, flavorID), infra.KindDBFailure))
}

func ptr[T any](v T) *T { return &v }

//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/domain/schedule"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/infra/repository"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
	"flavor-reservation/internal/usecase/shared"
	"flavor-reservation/tests/common/builder"
	repositorymock "flavor-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Find Reservation Tests
// =============================================================================

func TestReservationRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	start := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row converted to domain",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, db *mockDBTX) {
				mock.EXPECT().GetReservation(ctx, db, id).Return(sqlc.Reservations{
					ID:            id,
					FlavorID:      uuid.New(),
					UserID:        "user-1",
					ProjectID:     "project-1",
					StartAt:       pgconv.TimeToPgtype(start),
					EndAt:         pgconv.TimeToPgtype(end),
					InstanceCount: 2,
					Status:        "ALLOCATED",
					LeaseID:       pgconv.StringToPgtype("lease-1"),
					CreatedAt:     pgconv.TimeToPgtype(start),
					UpdatedAt:     pgconv.TimeToPgtype(start),
				}, nil)
			},
		},
		{
			name: "error: not found",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, db *mockDBTX) {
				mock.EXPECT().GetReservation(ctx, db, id).Return(sqlc.Reservations{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, db *mockDBTX) {
				mock.EXPECT().GetReservation(ctx, db, id).Return(sqlc.Reservations{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			res, err := repo.FindByID(ctx, id)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, res.ID())
			assert.Equal(t, reservation.StatusAllocated, res.Status())
			assert.Equal(t, 2, res.InstanceCount())
			assert.Equal(t, start, res.Start())
			require.NotNil(t, res.LeaseID())
			assert.Equal(t, "lease-1", *res.LeaseID())
			assert.Nil(t, res.ComputeFlavor())
		})
	}
}

// =============================================================================
// Overlap Query Tests
// =============================================================================

func TestReservationRepository_Overlap(t *testing.T) {
	ctx := context.Background()
	exclude := uuid.New()
	filter := shared.OverlapFilter{
		FlavorID:  uuid.New(),
		From:      time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		Statuses:  reservation.EffectiveStatuses(),
		ExcludeID: &exclude,
	}

	t.Run("sum passes the window and statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			SumOverlappingInstances(ctx, mockDB, sqlc.SumOverlappingInstancesParams{
				FlavorID:    filter.FlavorID,
				Statuses:    []string{"PENDING_CREATE", "ALLOCATED", "ACTIVE"},
				WindowStart: pgconv.TimeToPgtype(filter.From),
				WindowEnd:   pgconv.TimeToPgtype(filter.To),
				ExcludeID:   pgconv.UUIDPtrToPgtype(&exclude),
			}).
			Return(int32(3), nil)

		n, err := repo.SumInstanceCount(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("occupancy rows become weighted intervals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			ListOverlappingReservations(ctx, mockDB, gomock.Any()).
			Return([]sqlc.ListOverlappingReservationsRow{
				{StartAt: pgconv.TimeToPgtype(filter.From), EndAt: pgconv.TimeToPgtype(filter.To), InstanceCount: 2},
			}, nil)

		occ, err := repo.ListOccupancy(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, []schedule.Occupancy{{Start: filter.From, End: filter.To, Units: 2}}, occ)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().SumOverlappingInstances(ctx, gomock.Any(), gomock.Any()).Return(int32(0), errors.New("timeout"))

		_, err := repo.SumInstanceCount(ctx, filter)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Write Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reservation created"},
		{name: "error: unknown flavor", returnErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "error: check constraint", returnErr: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindConstraintViolated},
		{name: "error: database error occurs", returnErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, "PENDING_CREATE", arg.Status)
					assert.False(t, arg.LeaseID.Valid)
					return tc.returnErr
				})

			err = repo.Create(ctx, res)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	res := builder.NewReservationBuilder().WithLease("lease-1").WithComputeFlavor("cf-1").AsActive().Build()

	mockQueries.EXPECT().
		UpdateReservation(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationParams) error {
			assert.Equal(t, "ACTIVE", arg.Status)
			assert.Equal(t, "lease-1", arg.LeaseID.String)
			assert.Equal(t, "cf-1", arg.ComputeFlavor.String)
			assert.Equal(t, pgconv.TimeToPgtype(res.End()), arg.EndAt)
			return nil
		})

	require.NoError(t, repo.Update(ctx, res))
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row deleted", affected: 1},
		{name: "error: nothing deleted", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", returnErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteReservation(ctx, mockDB, id).Return(tc.affected, tc.returnErr)

			err := repo.Delete(ctx, id)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReservationRepository_ListByStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)
	cutoff := time.Date(2021, 1, 30, 0, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().
		ListReservationsByStatus(ctx, mockDB, sqlc.ListReservationsByStatusParams{
			Status:    "COMPLETE",
			EndBefore: pgconv.TimeToPgtype(cutoff),
		}).
		Return([]sqlc.Reservations{{
			ID:            uuid.New(),
			UserID:        "user-1",
			ProjectID:     "project-1",
			StartAt:       pgconv.TimeToPgtype(cutoff.Add(-48 * time.Hour)),
			EndAt:         pgconv.TimeToPgtype(cutoff.Add(-24 * time.Hour)),
			InstanceCount: 1,
			Status:        "COMPLETE",
		}}, nil)

	rows, err := repo.ListByStatus(ctx, reservation.StatusComplete, &cutoff)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, reservation.StatusComplete, rows[0].Status())
}

// =============================================================================
// Mock DBTX
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

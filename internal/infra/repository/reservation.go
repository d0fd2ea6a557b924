package repository

import (
	"context"
	"time"

	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/domain/schedule"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/infra/repository/converter"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByLeaseID(ctx context.Context, db sqlc.DBTX, leaseID pgtype.Text) (sqlc.Reservations, error)
	SumOverlappingInstances(ctx context.Context, db sqlc.DBTX, arg sqlc.SumOverlappingInstancesParams) (int32, error)
	ListOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingReservationsParams) ([]sqlc.ListOverlappingReservationsRow, error)
	CountReservationsByFlavor(ctx context.Context, db sqlc.DBTX, flavorID uuid.UUID) (int32, error)
	ListReservationsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByStatusParams) ([]sqlc.Reservations, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) error
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *ReservationRepository) FindByLeaseID(ctx context.Context, leaseID string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByLeaseID(ctx, r.db, pgconv.StringToPgtype(leaseID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation by lease", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *ReservationRepository) SumInstanceCount(ctx context.Context, filter shared.OverlapFilter) (int, error) {
	total, err := r.queries.SumOverlappingInstances(ctx, r.db, sqlc.SumOverlappingInstancesParams{
		FlavorID:    filter.FlavorID,
		Statuses:    converter.StatusStrings(filter.Statuses),
		WindowStart: pgconv.TimeToPgtype(filter.From),
		WindowEnd:   pgconv.TimeToPgtype(filter.To),
		ExcludeID:   pgconv.UUIDPtrToPgtype(filter.ExcludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum overlapping instances", err)
	}
	return int(total), nil
}

func (r *ReservationRepository) ListOccupancy(ctx context.Context, filter shared.OverlapFilter) ([]schedule.Occupancy, error) {
	rows, err := r.queries.ListOverlappingReservations(ctx, r.db, sqlc.ListOverlappingReservationsParams{
		FlavorID:    filter.FlavorID,
		Statuses:    converter.StatusStrings(filter.Statuses),
		WindowStart: pgconv.TimeToPgtype(filter.From),
		WindowEnd:   pgconv.TimeToPgtype(filter.To),
		ExcludeID:   pgconv.UUIDPtrToPgtype(filter.ExcludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}
	return converter.OccupancyFromRows(rows), nil
}

func (r *ReservationRepository) CountByFlavor(ctx context.Context, flavorID uuid.UUID) (int, error) {
	n, err := r.queries.CountReservationsByFlavor(ctx, r.db, flavorID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return int(n), nil
}

func (r *ReservationRepository) ListByStatus(ctx context.Context, status reservation.Status, endBefore *time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByStatus(ctx, r.db, sqlc.ListReservationsByStatusParams{
		Status:    status.String(),
		EndBefore: pgconv.TimePtrToPgtype(endBefore),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by status", err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.NotFound("reservation not found")
	}
	return nil
}

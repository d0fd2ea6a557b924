package readstore

import (
	"context"

	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/infra"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
	"flavor-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := s.queries.GetReservation(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row), nil
}

func (s *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	rows, err := s.queries.ListReservations(ctx, s.db, sqlc.ListReservationsParams{
		ProjectID: pgconv.StringPtrToPgtype(filter.ProjectID),
		FlavorID:  pgconv.UUIDPtrToPgtype(filter.FlavorID),
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		RowLimit:  int32(filter.Limit),
		RowOffset: int32(filter.Offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	start := pgconv.TimeFromPgtype(row.StartAt)
	end := pgconv.TimeFromPgtype(row.EndAt)
	return &queries.ReservationView{
		ID:            row.ID,
		FlavorID:      row.FlavorID,
		UserID:        row.UserID,
		ProjectID:     row.ProjectID,
		Start:         start,
		End:           end,
		InstanceCount: row.InstanceCount,
		TotalHours:    int32(reservation.CeilHours(end.Sub(start))),
		Status:        row.Status,
		LeaseID:       pgconv.StringPtrFromPgtype(row.LeaseID),
		ComputeFlavor: pgconv.StringPtrFromPgtype(row.ComputeFlavor),
		StatusReason:  pgconv.StringPtrFromPgtype(row.StatusReason),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

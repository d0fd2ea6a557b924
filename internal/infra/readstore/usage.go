package readstore

import (
	"context"

	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/infra/repository/converter"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/usecase/shared"
)

type UsageQueries interface {
	ProjectUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.ProjectUsageParams) (sqlc.ProjectUsageRow, error)
}

// UsageReadStore sums what a project holds in effective-status reservations.
type UsageReadStore struct {
	queries UsageQueries
	db      sqlc.DBTX
}

func NewUsageReadStore(queries UsageQueries, db sqlc.DBTX) *UsageReadStore {
	return &UsageReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *UsageReadStore) ProjectUsage(ctx context.Context, projectID string) (shared.Usage, error) {
	row, err := s.queries.ProjectUsage(ctx, s.db, sqlc.ProjectUsageParams{
		ProjectID: projectID,
		Statuses:  converter.StatusStrings(reservation.EffectiveStatuses()),
	})
	if err != nil {
		return shared.Usage{}, infra.WrapRepoErr("failed to compute project usage", err)
	}
	return shared.Usage{
		Reservations: int(row.Reservations),
		Hours:        int(row.Hours),
	}, nil
}

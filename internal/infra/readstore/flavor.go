package readstore

import (
	"context"
	"encoding/json"

	"flavor-reservation/internal/infra"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
	"flavor-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type FlavorViewQueries interface {
	GetFlavor(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Flavors, error)
	ListFlavors(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFlavorsParams) ([]sqlc.Flavors, error)
	FlavorProjectExists(ctx context.Context, db sqlc.DBTX, arg sqlc.FlavorProjectExistsParams) (bool, error)
}

type FlavorReadStore struct {
	queries FlavorViewQueries
	db      sqlc.DBTX
}

func NewFlavorReadStore(queries FlavorViewQueries, db sqlc.DBTX) *FlavorReadStore {
	return &FlavorReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *FlavorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FlavorView, error) {
	row, err := s.queries.GetFlavor(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find flavor by ID", err)
	}
	return toFlavorView(row), nil
}

func (s *FlavorReadStore) List(ctx context.Context, filter queries.FlavorFilter) ([]*queries.FlavorView, error) {
	rows, err := s.queries.ListFlavors(ctx, s.db, sqlc.ListFlavorsParams{
		Category:         pgconv.StringPtrToPgtype(filter.Category),
		AvailabilityZone: pgconv.StringPtrToPgtype(filter.AvailabilityZone),
		AllProjects:      filter.AllProjects,
		ProjectID:        filter.ProjectID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list flavors", err)
	}

	result := make([]*queries.FlavorView, len(rows))
	for i, row := range rows {
		result[i] = toFlavorView(row)
	}
	return result, nil
}

func (s *FlavorReadStore) IsGranted(ctx context.Context, flavorID uuid.UUID, projectID string) (bool, error) {
	ok, err := s.queries.FlavorProjectExists(ctx, s.db, sqlc.FlavorProjectExistsParams{
		FlavorID:  flavorID,
		ProjectID: projectID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check flavor grant", err)
	}
	return ok, nil
}

func toFlavorView(row sqlc.Flavors) *queries.FlavorView {
	extra := map[string]string{}
	if len(row.ExtraSpecs) > 0 {
		_ = json.Unmarshal(row.ExtraSpecs, &extra)
	}
	return &queries.FlavorView{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		VCPU:             row.Vcpu,
		MemoryMB:         row.MemoryMb,
		DiskGB:           row.DiskGb,
		EphemeralGB:      row.EphemeralGb,
		Properties:       row.Properties,
		ExtraSpecs:       extra,
		Category:         pgconv.StringPtrFromPgtype(row.Category),
		AvailabilityZone: pgconv.StringPtrFromPgtype(row.AvailabilityZone),
		Active:           row.Active,
		IsPublic:         row.IsPublic,
		MaxLengthHours:   row.MaxLengthHours,
		Slots:            row.Slots,
		Start:            pgconv.TimePtrFromPgtype(row.StartAt),
		End:              pgconv.TimePtrFromPgtype(row.EndAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

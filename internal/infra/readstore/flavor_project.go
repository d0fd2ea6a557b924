package readstore

import (
	"context"

	"flavor-reservation/internal/infra"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"
	"flavor-reservation/internal/usecase/queries"
)

type FlavorProjectViewQueries interface {
	ListFlavorProjects(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFlavorProjectsParams) ([]sqlc.FlavorProjects, error)
}

type FlavorProjectReadStore struct {
	queries FlavorProjectViewQueries
	db      sqlc.DBTX
}

func NewFlavorProjectReadStore(queries FlavorProjectViewQueries, db sqlc.DBTX) *FlavorProjectReadStore {
	return &FlavorProjectReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *FlavorProjectReadStore) List(ctx context.Context, filter queries.FlavorProjectFilter) ([]*queries.FlavorProjectView, error) {
	rows, err := s.queries.ListFlavorProjects(ctx, s.db, sqlc.ListFlavorProjectsParams{
		FlavorID:  pgconv.UUIDPtrToPgtype(filter.FlavorID),
		ProjectID: pgconv.StringPtrToPgtype(filter.ProjectID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list flavor projects", err)
	}

	result := make([]*queries.FlavorProjectView, len(rows))
	for i, row := range rows {
		result[i] = &queries.FlavorProjectView{
			ID:        row.ID,
			FlavorID:  row.FlavorID,
			ProjectID: row.ProjectID,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

package repository

import (
	"context"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/infra/repository/converter"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FlavorProjectWriteQueries interface {
	GetFlavorProject(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FlavorProjects, error)
	FlavorProjectExists(ctx context.Context, db sqlc.DBTX, arg sqlc.FlavorProjectExistsParams) (bool, error)
	CreateFlavorProject(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFlavorProjectParams) (sqlc.FlavorProjects, error)
	DeleteFlavorProject(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type FlavorProjectRepository struct {
	queries FlavorProjectWriteQueries
	db      sqlc.DBTX
}

func NewFlavorProjectRepository(queries FlavorProjectWriteQueries, db sqlc.DBTX) *FlavorProjectRepository {
	return &FlavorProjectRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FlavorProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*flavor.Grant, error) {
	row, err := r.queries.GetFlavorProject(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get flavor project", err)
	}
	return converter.GrantFromRow(row), nil
}

func (r *FlavorProjectRepository) Exists(ctx context.Context, flavorID uuid.UUID, projectID string) (bool, error) {
	ok, err := r.queries.FlavorProjectExists(ctx, r.db, sqlc.FlavorProjectExistsParams{
		FlavorID:  flavorID,
		ProjectID: projectID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check flavor project", err)
	}
	return ok, nil
}

func (r *FlavorProjectRepository) Create(ctx context.Context, g *flavor.Grant) error {
	_, err := r.queries.CreateFlavorProject(ctx, r.db, sqlc.CreateFlavorProjectParams{
		ID:        g.ID(),
		FlavorID:  g.FlavorID(),
		ProjectID: g.ProjectID(),
		CreatedAt: pgconv.TimeToPgtype(g.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create flavor project", err)
	}
	return nil
}

func (r *FlavorProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteFlavorProject(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete flavor project", err)
	}
	if n == 0 {
		return infra.NotFound("flavor project not found")
	}
	return nil
}

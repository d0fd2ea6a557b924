package repository

import (
	"context"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/infra/repository/converter"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FlavorWriteQueries interface {
	GetFlavor(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Flavors, error)
	CreateFlavor(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFlavorParams) (sqlc.Flavors, error)
	UpdateFlavor(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateFlavorParams) error
	DeleteFlavor(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type FlavorRepository struct {
	queries FlavorWriteQueries
	db      sqlc.DBTX
}

func NewFlavorRepository(queries FlavorWriteQueries, db sqlc.DBTX) *FlavorRepository {
	return &FlavorRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FlavorRepository) FindByID(ctx context.Context, id uuid.UUID) (*flavor.Flavor, error) {
	row, err := r.queries.GetFlavor(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get flavor", err)
	}
	return converter.FlavorFromRow(row), nil
}

func (r *FlavorRepository) Create(ctx context.Context, f *flavor.Flavor) error {
	params, err := converter.FlavorToCreateParams(f)
	if err != nil {
		return err
	}
	if _, err := r.queries.CreateFlavor(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create flavor", err)
	}
	return nil
}

func (r *FlavorRepository) Update(ctx context.Context, f *flavor.Flavor) error {
	params, err := converter.FlavorToUpdateParams(f)
	if err != nil {
		return err
	}
	if err := r.queries.UpdateFlavor(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update flavor", err)
	}
	return nil
}

func (r *FlavorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteFlavor(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete flavor", err)
	}
	if n == 0 {
		return infra.NotFound("flavor not found")
	}
	return nil
}

package repository

import (
	"context"

	"flavor-reservation/internal/infra"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type LockQueries interface {
	AcquireFlavorLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
}

// LockRepository takes transaction scoped advisory locks.
type LockRepository struct {
	queries LockQueries
	db      sqlc.DBTX
}

func NewLockRepository(queries LockQueries, db sqlc.DBTX) *LockRepository {
	return &LockRepository{
		queries: queries,
		db:      db,
	}
}

func FlavorLockKey(flavorID uuid.UUID) string {
	return "flavor:" + flavorID.String()
}

func (r *LockRepository) LockFlavor(ctx context.Context, flavorID uuid.UUID) error {
	if err := r.queries.AcquireFlavorLock(ctx, r.db, FlavorLockKey(flavorID)); err != nil {
		return infra.WrapRepoErr("failed to lock flavor", err)
	}
	return nil
}

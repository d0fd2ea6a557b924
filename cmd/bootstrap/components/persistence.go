package components

import (
	"flavor-reservation/internal/infra/readstore"
	sqlc "flavor-reservation/internal/infra/sqlc/generated"
	"flavor-reservation/internal/infra/uow"
	"flavor-reservation/internal/usecase/queries"
	"flavor-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction by the unit of work; only the
// read side is provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Flavor
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FlavorViewQueries)),
		),
		fx.Annotate(
			readstore.NewFlavorReadStore,
			fx.As(new(queries.FlavorReadStore)),
		),
		// FlavorProject
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FlavorProjectViewQueries)),
		),
		fx.Annotate(
			readstore.NewFlavorProjectReadStore,
			fx.As(new(queries.FlavorProjectReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Usage
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UsageQueries)),
		),
		fx.Annotate(
			readstore.NewUsageReadStore,
			fx.As(new(shared.UsageReader)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

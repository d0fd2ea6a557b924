package components

import (
	"log/slog"

	"flavor-reservation/internal/infra/lease"
	"flavor-reservation/internal/infra/notifier"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/queries"
	"flavor-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecasePortsModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.QuotaConfig { return cfg.Quota },
)

var usecasePortsModule = fx.Module("usecase/ports",
	fx.Provide(
		func(cfg config.Config) commands.LeaseProvider {
			return lease.NewClient(cfg.Lease)
		},
		func(cfg config.Config) commands.ResourcePool {
			return lease.NewComputeClient(cfg.Compute, cfg.Lease)
		},
		func(cfg config.Config, rdb *redis.Client) commands.EventPublisher {
			return notifier.NewAuditPublisher(rdb, cfg.Notifier.AuditStream)
		},
		func(cfg config.Config, rdb *redis.Client, logger *slog.Logger) (commands.UserNotifier, error) {
			return notifier.NewUserNotifier(cfg.Notifier, rdb, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFlavorQueries,
		queries.NewFlavorProjectQueries,
		queries.NewReservationQueries,
		queries.NewLimitsQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuotaEnforcer,
		commands.NewFlavorUseCase,
		commands.NewReservationUseCase,
		commands.NewLeaseUseCase,
		NewJanitorCommands,
	),
)

func NewJanitorCommands(
	uow shared.UnitOfWork,
	pool commands.ResourcePool,
	publisher commands.EventPublisher,
	metrics shared.Metrics,
	clk clock.Clock,
	cfg config.Config,
) commands.JanitorCommands {
	return commands.NewJanitorUseCase(uow, pool, publisher, metrics, clk, cfg.Janitor.Retention)
}

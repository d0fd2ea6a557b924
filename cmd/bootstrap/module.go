package bootstrap

import (
	"flavor-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is shared by every process: config, logging, storage, redis,
// metrics and the use cases.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// APIModule adds the HTTP surface.
var APIModule = fx.Options(
	CoreModule,
	JWTModule,
	components.HandlerModule,
)

// WorkerProcessModule adds the lease job runner, the lease event consumer and
// the periodic janitor.
var WorkerProcessModule = fx.Options(
	CoreModule,
	WorkerModule,
)

package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"flavor-reservation/internal/infra/periodic"
	"flavor-reservation/internal/infra/queue"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewJobRunner,
		NewEventConsumer,
		NewJanitorScheduler,
	),
	fx.Invoke(
		startWorkers,
		startTelemetryServer,
	),
)

func NewJobRunner(uow shared.UnitOfWork, leases commands.LeaseCommands, metrics shared.Metrics, clk clock.Clock, cfg config.Config) *queue.Runner {
	return queue.NewRunner(uow, leases, metrics, clk, cfg.Worker)
}

func NewEventConsumer(rdb *redis.Client, leases commands.LeaseCommands, cfg config.Config) *queue.EventConsumer {
	return queue.NewEventConsumer(rdb, leases, cfg.Worker)
}

// NewJanitorScheduler runs the janitor jobs under a Redis lock so that only
// one worker replica executes each tick.
func NewJanitorScheduler(janitor commands.JanitorCommands, rdb *redis.Client, metrics shared.Metrics, cfg config.Config) *periodic.Scheduler {
	return periodic.NewScheduler(periodic.JanitorJobs(janitor), periodic.NewRedisLocker(rdb), metrics, cfg.Janitor)
}

// startWorkers runs the background loops on a context that outlives fx's
// start timeout and is cancelled on stop.
func startWorkers(lc fx.Lifecycle, runner *queue.Runner, consumer *queue.EventConsumer, scheduler *periodic.Scheduler, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := consumer.Start(ctx); err != nil {
				cancel()
				return err
			}
			runner.Start(ctx)
			scheduler.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping workers")
			scheduler.Stop()
			runner.Stop()
			consumer.Stop()
			cancel()
			return nil
		},
	})
}

// startTelemetryServer exposes /metrics and /health for the worker process.
func startTelemetryServer(lc fx.Lifecycle, cfg config.Config, gatherer prometheus.Gatherer, logger *slog.Logger) {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Worker.MetricsPort,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("worker telemetry listening", slog.String("address", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("worker telemetry server failed", slog.Any("error", err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

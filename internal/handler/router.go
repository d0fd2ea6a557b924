package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flavor-reservation/internal/handler/api"
	"flavor-reservation/internal/handler/middleware"
	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Flavor        *api.FlavorHandler
	FlavorProject *api.FlavorProjectHandler
	Reservation   *api.ReservationHandler
	Limits        *api.LimitsHandler
	LeaseEvent    *api.LeaseEventHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics shared.Metrics, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, cfg, handlers, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics shared.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}

	v1 := engine.Group("/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		flavors := v1.Group("/flavors")
		addRoutes(flavors, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Flavor.List},
			{Method: http.MethodPost, Path: "", Handler: h.Flavor.Create, Mw: admin},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Flavor.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Flavor.Update, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Flavor.Delete, Mw: admin},
			{Method: http.MethodGet, Path: "/:id/freeslots", Handler: h.Flavor.FreeSlots},
		})

		flavorProjects := v1.Group("/flavorprojects")
		flavorProjects.Use(authMiddleware.RequireAdmin())
		addRoutes(flavorProjects, []route{
			{Method: http.MethodGet, Path: "", Handler: h.FlavorProject.List},
			{Method: http.MethodPost, Path: "", Handler: h.FlavorProject.Create},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.FlavorProject.Delete},
		})

		reservations := v1.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Extend},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
		})

		addRoutes(v1, []route{
			{Method: http.MethodGet, Path: "/limits", Handler: h.Limits.Get},
			{Method: http.MethodPost, Path: "/lease-events", Handler: h.LeaseEvent.Handle, Mw: admin},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}

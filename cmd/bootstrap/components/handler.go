package components

import (
	"flavor-reservation/internal/handler"
	"flavor-reservation/internal/handler/api"
	"flavor-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFlavorHandler,
		api.NewFlavorProjectHandler,
		api.NewReservationHandler,
		api.NewLimitsHandler,
		api.NewLeaseEventHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	flavors *api.FlavorHandler,
	flavorProjects *api.FlavorProjectHandler,
	reservations *api.ReservationHandler,
	limits *api.LimitsHandler,
	leaseEvents *api.LeaseEventHandler,
) handler.Handlers {
	return handler.Handlers{
		Flavor:        flavors,
		FlavorProject: flavorProjects,
		Reservation:   reservations,
		Limits:        limits,
		LeaseEvent:    leaseEvents,
	}
}

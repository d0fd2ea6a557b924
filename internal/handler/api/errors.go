package api

import (
	"log/slog"
	"net/http"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/handler/httperr"
	"flavor-reservation/internal/handler/middleware"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = errs.New("no identity on request context")

// requireIdentity is only false when a route was registered without the auth middleware.
func requireIdentity(c *gin.Context) (shared.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return shared.Identity{}, false
	}
	return identity, true
}

// abortWithUseCaseError maps use case errors onto status codes. Unknown errors are logged and hidden.
func abortWithUseCaseError(c *gin.Context, err error) {
	if rej, ok := reservation.AsRejection(err); ok {
		status := http.StatusUnprocessableEntity
		if rej.Reason == reservation.ReasonNoCapacity {
			status = http.StatusConflict
		}
		httperr.AbortWithError(c, status, err, rej.Message, gin.H{"reason": rej.Reason.String()})
		return
	}

	var quotaErr *commands.QuotaExceededError
	if errs.As(err, &quotaErr) {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, quotaErr.Error(), nil)
		return
	}

	var inUseErr *commands.FlavorInUseError
	if errs.As(err, &inUseErr) {
		httperr.AbortWithError(c, http.StatusConflict, err, inUseErr.Error(), nil)
		return
	}

	switch {
	case errs.Is(err, flavor.ErrCapacityLocked):
		httperr.AbortWithError(c, http.StatusConflict, err, flavor.ErrCapacityLocked.Error(), nil)
	case errs.Is(err, errs.ErrFlavorProjectExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Flavor is already granted to the project", nil)
	case errs.Is(err, errs.ErrFlavorNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Flavor not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrFlavorProjectMissing):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Flavor project not found", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errs.Is(err, commands.ErrUnknownLeaseEvent):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown lease event type", nil)
	case errs.Is(err, errs.ErrProviderUnavailable):
		slog.WarnContext(c.Request.Context(), "lease provider call failed", "error", err)
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Lease provider unavailable", nil)
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled use case error",
			"error", err,
			"request_id", middleware.GetRequestID(c),
			"stack", errs.ExtractStackLines(err, 12),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
